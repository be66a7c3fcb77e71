package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/otienotonny/Diabetes-Risk-Assessment-Tool/internal/riskcheck"
)

// Default configuration constants.
const (
	defaultTimeout      = 30 * time.Second
	defaultCheckTimeout = 2 * time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:8090", "Base URL of the service")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		logFile = flag.String("log", "", "Log file for check output (default: risk_check_TIMESTAMP.log)")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		riskcheck.ShowHelp()
		return
	}

	// Setup logging
	if err := riskcheck.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultCheckTimeout)
	defer cancel()

	// Create check configuration
	config := &riskcheck.Config{
		BaseURL: *baseURL,
		Timeout: *timeout,
		LogFile: *logFile,
		Verbose: *verbose,
	}

	// Run the checks
	if err := riskcheck.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Check failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
