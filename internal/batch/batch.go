// Package batch enciphers many independent messages concurrently. Every
// message gets its own freshly built machine, so results never depend on
// scheduling order or on the other messages in the batch.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/enigma/internal/logging"
	"github.com/katalvlaran/enigma/machine"
)

// Result is the outcome of one message, at the same index as its input.
type Result struct {
	Index    int               `json:"index" yaml:"index"`
	Input    string            `json:"input" yaml:"input"`
	Output   string            `json:"output" yaml:"output"`
	Outcomes []machine.Outcome `json:"outcomes,omitempty" yaml:"outcomes,omitempty"`
}

type options struct {
	parallel    int
	detailed    bool
	machineOpts []machine.Option
	logger      *slog.Logger
}

// Option customises Run.
type Option func(*options)

// WithParallel bounds the number of messages in flight. Panics if n < 1.
func WithParallel(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("batch: WithParallel(%d): need at least 1", n))
	}
	return func(o *options) { o.parallel = n }
}

// WithDetailed also collects the per-letter outcomes of every message.
func WithDetailed() Option {
	return func(o *options) { o.detailed = true }
}

// WithMachineOptions passes opts to every machine the batch builds.
func WithMachineOptions(opts ...machine.Option) Option {
	return func(o *options) { o.machineOpts = append(o.machineOpts, opts...) }
}

// WithLogger overrides the default "batch" component logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("batch: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// Run enciphers every message with its own machine built from cfg.
//
// The configuration is validated once up front; an invalid cfg returns
// machine.ErrInvalidConfig before any work starts. Results are in input
// order. Cancelling ctx stops scheduling further messages and Run returns
// ctx.Err().
func Run(ctx context.Context, cfg machine.Config, messages []string, opts ...Option) ([]Result, error) {
	o := options{parallel: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.New("batch")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("batch.Run: %w", err)
	}

	o.logger.Info("batch started", "messages", len(messages), "workers", o.parallel)

	results := make([]Result, len(messages))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallel)
	for i, msg := range messages {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, err := machine.New(cfg, o.machineOpts...)
			if err != nil {
				return fmt.Errorf("batch.Run: message %d: %w", i, err)
			}
			r := Result{Index: i, Input: msg}
			if o.detailed {
				r.Outcomes = m.ProcessStringDetailed(msg)
				r.Output = outputOf(r.Outcomes)
			} else {
				r.Output = m.ProcessString(msg)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Wait returns nil if the parent was cancelled before any goroutine ran.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o.logger.Debug("batch finished", "messages", len(messages))

	return results, nil
}

func outputOf(outcomes []machine.Outcome) string {
	b := make([]byte, len(outcomes))
	for i, o := range outcomes {
		b[i] = byte(o.Output)
	}

	return string(b)
}
