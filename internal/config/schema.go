// Package config loads cronbuild settings from a TOML file.
//
// Configuration structure:
//   - [logging]: level, format and output of the structured logger
//   - [editor]: default expression for new editor sessions, strict linting
//   - [metrics]: editor metrics collection
//
// String values may reference environment variables with ${VAR} or
// ${VAR:default}, for example: output = "${CRONBUILD_LOG:stderr}".
package config

// Config represents the application configuration.
type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Editor  EditorConfig  `toml:"editor"`
	Metrics MetricsConfig `toml:"metrics"`
}

// LoggingConfig mirrors logger.Config.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Output string `toml:"output"`
}

// EditorConfig controls editor sessions.
type EditorConfig struct {
	// DefaultExpression seeds sessions started without an expression.
	DefaultExpression string `toml:"default_expression"`
	// StrictLint rejects expressions with lint errors instead of
	// silently dropping what cannot be parsed.
	StrictLint bool `toml:"strict_lint"`
}

// MetricsConfig controls editor metrics.
type MetricsConfig struct {
	Enabled   bool   `toml:"enabled"`
	Namespace string `toml:"namespace"`
}
