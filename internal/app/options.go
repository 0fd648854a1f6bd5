package app

import (
	"github.com/thenoetrevino/testdeck/internal/config"
	executionservice "github.com/thenoetrevino/testdeck/internal/services/execution"
	"go.uber.org/zap"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	config        *config.Config
	logger        *zap.Logger
	executionOpts []executionservice.Option
}

// WithConfig sets the loaded configuration
func WithConfig(c *config.Config) Option {
	return func(cfg *appConfig) {
		if c != nil {
			cfg.config = c
		}
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithExecutionOptions forwards options to the execution service
func WithExecutionOptions(opts ...executionservice.Option) Option {
	return func(cfg *appConfig) {
		cfg.executionOpts = append(cfg.executionOpts, opts...)
	}
}
