package caseconv

import (
	"context"

	"github.com/baditaflorin/go_text_utils/internal/adapters/logger"
	"github.com/baditaflorin/go_text_utils/internal/adapters/transform"
	"github.com/baditaflorin/go_text_utils/internal/ports"
	"github.com/baditaflorin/go_text_utils/internal/warmup"
	"github.com/baditaflorin/l"
)

// Converter provides configurable snake_case and camelCase conversion.
type Converter struct {
	snake  ports.Transformer
	camel  ports.Transformer
	logger ports.Logger
	warmed bool
}

// ConverterOption defines a functional option for configuring Converter.
type ConverterOption func(*converterConfig)

type converterConfig struct {
	Logger       ports.Logger
	WarmUp       bool
	WarmUpConfig warmup.Config
}

// WithLogger sets a custom logger for the converter.
func WithLogger(l l.Logger) ConverterOption {
	return func(cfg *converterConfig) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithWarmUp enables transformer warm-up on initialization.
func WithWarmUp(enable bool) ConverterOption {
	return func(cfg *converterConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(config warmup.Config) ConverterOption {
	return func(cfg *converterConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new Converter instance.
func New(opts ...ConverterOption) (*Converter, error) {
	config := &converterConfig{
		WarmUp:       false,
		WarmUpConfig: warmup.DefaultConfig(),
	}

	// Apply options
	for _, opt := range opts {
		opt(config)
	}

	// Set up logger if not provided
	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	c := &Converter{
		snake:  transform.NewSnake(),
		camel:  transform.NewCamel(),
		logger: config.Logger,
	}

	// Perform warm-up if configured
	if config.WarmUp {
		c.WarmUp(context.Background(), config.WarmUpConfig)
	}

	return c, nil
}

// Snake converts text to snake_case.
func (c *Converter) Snake(text string) string {
	result := c.snake.Transform(text)
	c.logger.Debug("Converted to snake_case",
		"input", text,
		"output", result,
	)
	return result
}

// Camel converts text to camelCase.
func (c *Converter) Camel(text string) string {
	result := c.camel.Transform(text)
	c.logger.Debug("Converted to camelCase",
		"input", text,
		"output", result,
	)
	return result
}

// WarmUp pre-touches the conversion hot paths and builder pools.
func (c *Converter) WarmUp(ctx context.Context, config warmup.Config) {
	if c.warmed {
		c.logger.Debug("Converter already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(c.logger, config)
	warmupMgr.RegisterTransformer(c.snake)
	warmupMgr.RegisterTransformer(c.camel)

	warmupMgr.WarmUp(ctx)
	c.warmed = true
}
