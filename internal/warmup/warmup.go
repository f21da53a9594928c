package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_text_utils/internal/ports"
)

// Config defines configuration for warming up the transformers
type Config struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Sample text size for warmup
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultConfig returns the default warmup configuration
func DefaultConfig() Config {
	return Config{
		Concurrency:    runtime.NumCPU(),
		Iterations:     1000,
		SampleTextSize: 1000,
		Duration:       5 * time.Second,
		ForceGC:        true,
	}
}

// Manager handles transformer warmup operations
type Manager struct {
	logger       ports.Logger
	transformers []ports.Transformer
	config       Config
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config Config) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterTransformer adds a transformer to be warmed up
func (wm *Manager) RegisterTransformer(t ports.Transformer) {
	wm.transformers = append(wm.transformers, t)
}

// WarmUp runs the warmup process for all registered transformers.
// Warming pre-populates the builder pools and touches the hot paths so the
// first real request does not pay allocation and page-fault costs.
func (wm *Manager) WarmUp(ctx context.Context) {
	if len(wm.transformers) == 0 {
		return
	}

	startTime := time.Now()
	wm.logger.Info("Starting transformer warmup",
		"transformers", len(wm.transformers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	// Create a context with timeout if duration is specified
	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	sampleText := generateSampleText(wm.config.SampleTextSize)

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-warmupCtx.Done():
					return
				default:
				}

				for _, t := range wm.transformers {
					_ = t.Transform(sampleText)
				}
			}
		}()
	}
	wg.Wait()

	// Force garbage collection if configured
	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("Transformer warmup completed",
		"duration", time.Since(startTime),
	)
}

// generateSampleText builds a mixed-case, punctuated sample of roughly the
// requested byte size so warmup exercises every branch of the transforms.
func generateSampleText(size int) string {
	const sample = "The Quick-Brown Fox, jumps over the LazyDog! numbers 0123456789. "
	var sb strings.Builder
	sb.Grow(size + len(sample))
	for sb.Len() < size {
		sb.WriteString(sample)
	}
	return sb.String()
}
