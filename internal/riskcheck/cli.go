package riskcheck

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/otienotonny/Diabetes-Risk-Assessment-Tool/pkg/logger"
)

// SetupLogging configures logging for the check run. Output goes to both
// stdout and a timestamped log file so runs can be compared afterwards.
func SetupLogging(logFile string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		logFile = fmt.Sprintf("risk_check_%s.log", time.Now().Format("20060102_150405"))
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", logFile, err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	return nil
}

// ShowHelp displays usage information.
func ShowHelp() {
	fmt.Println(`Diabetes Risk Check Tool

Submits a set of known assessment profiles to a running service and
verifies the responses: risk bands against the published thresholds,
recommendation counts per band, rejection of out-of-range submissions,
and the shape of the reference content.

Usage:
  risk-check [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8090")
  -timeout duration
        HTTP request timeout (default 30s)
  -log string
        Log file for check output (default: risk_check_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  risk-check
  risk-check -url http://localhost:8090 -verbose
  risk-check -url https://risk.example.com -timeout 10s

The band expectations assume the model artifacts shipped with the
service. A retrained model may place the same profiles in different
bands; the internal consistency checks still apply.`)
}
