// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error kinds.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// ModelPath points at the trained model artifact.
	ModelPath string `koanf:"model_path"`

	// FeatureNamesPath points at the encoded feature name list the model
	// artifact is checked against.
	FeatureNamesPath string `koanf:"feature_names_path"`

	// TopFactors caps how many contributing factors a response carries.
	TopFactors int `koanf:"top_factors"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":8090",
		ModelPath:        "artifacts/diabetes_risk_model.json",
		FeatureNamesPath: "artifacts/feature_names.json",
		TopFactors:       3,
	}
}
