package riskcheck

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/otienotonny/Diabetes-Risk-Assessment-Tool/pkg/logger"
)

// Run executes the complete smoke check against a running service.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get()

	if config.Verbose {
		if err := logger.SetLevelString("debug"); err != nil {
			return fmt.Errorf("failed to enable verbose logging: %w", err)
		}
	}

	log.Info(ctx, "Starting risk check",
		logger.String("base_url", config.BaseURL),
		logger.Duration("timeout", config.Timeout))

	client := newHTTPClient(config.Timeout)

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, client, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Submit assessment scenarios
	runAssessmentScenarios(ctx, client, config, stats)

	// Step 3: Submit out-of-range and malformed profiles
	runRejectionScenarios(ctx, client, config, stats)

	// Step 4: Check the reference content
	runReferenceCheck(ctx, client, config, stats)

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(ctx, stats)

	if stats.ChecksFailed > 0 {
		return fmt.Errorf("%d of %d checks failed", stats.ChecksFailed, stats.ChecksRun)
	}

	log.Info(ctx, "Risk check completed successfully")
	return nil
}

// checkServiceHealth verifies the service is reachable before submitting.
func checkServiceHealth(ctx context.Context, client *HTTPClient, config *Config) error {
	log := logger.Get()
	log.Info(ctx, "Checking service health", logger.String("base_url", config.BaseURL))

	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("service not reachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health endpoint returned status %d", resp.StatusCode)
	}

	log.Info(ctx, "Service is healthy")
	return nil
}

func runAssessmentScenarios(ctx context.Context, client *HTTPClient, config *Config, stats *Stats) {
	log := logger.Get()

	for _, sc := range assessmentScenarios() {
		stats.ChecksRun++
		stats.AssessmentsSubmitted++

		assessment, err := submitAssessment(ctx, client, config, sc.Submission)
		if err == nil {
			err = checkAssessment(sc, assessment)
		}

		if err != nil {
			stats.ChecksFailed++
			log.Error(ctx, "Assessment scenario failed",
				logger.String("scenario", sc.Name),
				logger.Error(err))
			continue
		}

		stats.ChecksPassed++
		log.Info(ctx, "Assessment scenario passed",
			logger.String("scenario", sc.Name),
			logger.String("band", assessment.Band),
			logger.String("risk_percent", assessment.RiskPercent),
			logger.Int("factors", len(assessment.Factors)))
	}
}

func submitAssessment(ctx context.Context, client *HTTPClient, config *Config, sub Submission) (*Assessment, error) {
	resp, err := client.Post(ctx, config.BaseURL+"/assess", sub)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var reply ErrorReply
		if err := readJSON(resp, &reply); err != nil {
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, reply.Message)
	}

	var assessment Assessment
	if err := readJSON(resp, &assessment); err != nil {
		return nil, err
	}

	logger.Get().Debug(ctx, "Assessment received",
		logger.String("assessment_id", assessment.AssessmentID),
		logger.Float64("probability", assessment.Probability))

	return &assessment, nil
}

func runRejectionScenarios(ctx context.Context, client *HTTPClient, config *Config, stats *Stats) {
	log := logger.Get()

	for _, sc := range rejectionScenarios() {
		stats.ChecksRun++

		err := submitRejection(ctx, client, config, sc)
		if err != nil {
			stats.ChecksFailed++
			log.Error(ctx, "Rejection scenario failed",
				logger.String("scenario", sc.Name),
				logger.Error(err))
			continue
		}

		stats.ChecksPassed++
		stats.RejectionsVerified++
		log.Info(ctx, "Rejection scenario passed",
			logger.String("scenario", sc.Name),
			logger.String("field", sc.WantField))
	}
}

func submitRejection(ctx context.Context, client *HTTPClient, config *Config, sc rejectionScenario) error {
	resp, err := client.Post(ctx, config.BaseURL+"/assess", sc.Submission)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusBadRequest {
		resp.Body.Close()
		return fmt.Errorf("status %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}

	var reply ErrorReply
	if err := readJSON(resp, &reply); err != nil {
		return err
	}

	return checkRejection(sc, &reply)
}

func runReferenceCheck(ctx context.Context, client *HTTPClient, config *Config, stats *Stats) {
	log := logger.Get()
	stats.ChecksRun++

	err := fetchAndCheckReference(ctx, client, config)
	if err != nil {
		stats.ChecksFailed++
		log.Error(ctx, "Reference check failed", logger.Error(err))
		return
	}

	stats.ChecksPassed++
	log.Info(ctx, "Reference check passed")
}

func fetchAndCheckReference(ctx context.Context, client *HTTPClient, config *Config) error {
	resp, err := client.Get(ctx, config.BaseURL+"/reference")
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return fmt.Errorf("status %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var ref Reference
	if err := readJSON(resp, &ref); err != nil {
		return err
	}

	return checkReference(&ref)
}

// displayFinalStats logs a summary of the check run.
func displayFinalStats(ctx context.Context, stats *Stats) {
	log := logger.Get()

	successRate := 0.0
	if stats.ChecksRun > 0 {
		successRate = float64(stats.ChecksPassed) / float64(stats.ChecksRun) * 100
	}

	log.Info(ctx, "Risk check summary",
		logger.Int("checks_run", stats.ChecksRun),
		logger.Int("checks_passed", stats.ChecksPassed),
		logger.Int("checks_failed", stats.ChecksFailed),
		logger.Int("assessments_submitted", stats.AssessmentsSubmitted),
		logger.Int("rejections_verified", stats.RejectionsVerified),
		logger.Float64("success_rate_percent", successRate),
		logger.Duration("duration", stats.Duration))
}
