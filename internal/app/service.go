// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	artifact "github.com/otienotonny/Diabetes-Risk-Assessment-Tool/internal/adapters/artifact"
	"github.com/otienotonny/Diabetes-Risk-Assessment-Tool/internal/domain/attribution"
	"github.com/otienotonny/Diabetes-Risk-Assessment-Tool/internal/domain/classify"
	"github.com/otienotonny/Diabetes-Risk-Assessment-Tool/internal/domain/model"
	"github.com/otienotonny/Diabetes-Risk-Assessment-Tool/internal/domain/predict"
	"github.com/otienotonny/Diabetes-Risk-Assessment-Tool/pkg/logger"
	"github.com/otienotonny/Diabetes-Risk-Assessment-Tool/pkg/metrics"
)

// Default artifact locations, relative to the working directory.
const (
	defaultModelPath        = "artifacts/diabetes_risk_model.json"
	defaultFeatureNamesPath = "artifacts/feature_names.json"
)

const nanosecondsPerMillisecond = 1e6

// Service implements the API dependencies for the risk assessment system.
type Service struct {
	mu sync.RWMutex

	// Core components
	model predict.Model

	// Configuration
	modelPath        string
	featureNamesPath string
	topFactors       int

	// State
	started     bool
	assessments atomic.Uint64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithModelPath sets the model artifact location.
func WithModelPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.modelPath = path
		}
	}
}

// WithFeatureNamesPath sets the feature names artifact location.
func WithFeatureNamesPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.featureNamesPath = path
		}
	}
}

// WithTopFactors sets how many importances are considered for the
// contributing factor sentences.
func WithTopFactors(k int) Option {
	return func(s *Service) {
		if k > 0 {
			s.topFactors = k
		}
	}
}

// WithModel injects an already constructed model, bypassing artifact
// loading in Start. Intended for tests and embedders.
func WithModel(m predict.Model) Option {
	return func(s *Service) {
		if m != nil {
			s.model = m
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		modelPath:        defaultModelPath,
		featureNamesPath: defaultFeatureNamesPath,
		topFactors:       attribution.DefaultTopK,
		logger:           nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the model artifacts and readies the service.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting risk service...")

	if s.model == nil {
		loadStart := time.Now()
		m, err := artifact.Load(ctx, s.modelPath, s.featureNamesPath)
		if err != nil {
			metrics.UpdateModelLoaded(false)
			return fmt.Errorf("load model artifacts: %w", err)
		}
		s.model = m
		metrics.RecordModelLoadDuration(float64(time.Since(loadStart).Nanoseconds()) / nanosecondsPerMillisecond)
	}

	names := s.model.FeatureNames()
	importancesAvailable := len(s.model.FeatureImportances()) > 0
	metrics.UpdateModelLoaded(true)
	metrics.UpdateModelFeatureCount(len(names))
	metrics.UpdateImportancesAvailable(importancesAvailable)

	s.started = true
	s.logger.Info(ctx, "risk service started",
		logger.String("modelPath", s.modelPath),
		logger.Int("features", len(names)),
		logger.Bool("importancesAvailable", importancesAvailable),
		logger.Int("topFactors", s.topFactors),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping risk service...")

	s.started = false
	s.logger.Info(context.Background(), "risk service stopped")
}

// Assess runs the full pipeline for one record: validate, encode,
// predict, classify, attribute. Validation failures surface as
// *model.FieldError; any later failure wraps ErrAssessment.
func (s *Service) Assess(ctx context.Context, rec model.Record) (model.Assessment, error) {
	s.mu.RLock()
	m := s.model
	started := s.started
	topFactors := s.topFactors
	s.mu.RUnlock()

	if !started {
		return model.Assessment{}, ErrNotStarted
	}

	if err := rec.Validate(); err != nil {
		metrics.RecordValidationError()
		metrics.RecordErrorByType("validation_error", "warning")
		s.logger.Debug(ctx, "record rejected", logger.Error(err))
		return model.Assessment{}, err
	}

	features, err := m.Encode(rec)
	if err != nil {
		metrics.RecordPredictionError()
		metrics.RecordErrorByComponent("encoder", "encode_failed")
		s.logger.Error(ctx, "encoding failed", logger.Error(err))
		return model.Assessment{}, fmt.Errorf("%w: %w", ErrAssessment, err)
	}

	predictStart := time.Now()
	p, err := m.PredictProba(ctx, features)
	if err != nil {
		metrics.RecordPredictionError()
		metrics.RecordErrorByComponent("predictor", "predict_failed")
		s.logger.Error(ctx, "prediction failed", logger.Error(err))
		return model.Assessment{}, fmt.Errorf("%w: %w", ErrAssessment, err)
	}
	metrics.RecordPredictionLatency(float64(time.Since(predictStart).Nanoseconds()) / nanosecondsPerMillisecond)
	metrics.ObserveProbability(p)

	band, recommendations := classify.Classify(p)
	factors := attribution.TopFactors(m.FeatureImportances(), rec, topFactors)

	metrics.RecordAssessment(band.String())
	metrics.ObserveFactorCount(len(factors))
	s.assessments.Add(1)

	a := model.Assessment{
		ID:              uuid.NewString(),
		Probability:     p,
		Band:            band,
		Recommendations: recommendations,
		Factors:         factors,
		GeneratedAt:     time.Now().UTC(),
	}

	s.logger.Info(ctx, "assessment completed",
		logger.String("id", a.ID),
		logger.Float64("probability", p),
		logger.String("band", band.String()),
		logger.Int("factors", len(factors)),
	)

	return a, nil
}

// Reference returns the static educational content.
func (s *Service) Reference(_ context.Context) model.Reference {
	return model.DefaultReference()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":    s.started,
		"modelPath":  s.modelPath,
		"topFactors": s.topFactors,
	}

	if s.started {
		names := s.model.FeatureNames()
		importancesAvailable := len(s.model.FeatureImportances()) > 0

		stats["featureCount"] = len(names)
		stats["importancesAvailable"] = importancesAvailable
		stats["assessments"] = int(s.assessments.Load())

		if ta, ok := s.model.(interface{ TrainedAt() string }); ok && ta.TrainedAt() != "" {
			stats["trainedAt"] = ta.TrainedAt()
		}

		// Update metrics
		metrics.UpdateModelFeatureCount(len(names))
		metrics.UpdateImportancesAvailable(importancesAvailable)
	}

	return stats
}
