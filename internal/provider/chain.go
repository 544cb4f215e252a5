package provider

import (
	"context"

	"github.com/charmbracelet/log"
)

// Chain tries providers in order.
type Chain struct {
	Providers []Provider
	Logger    *log.Logger
}

// NewChain creates a chain over providers.
func NewChain(logger *log.Logger, providers ...Provider) *Chain {
	return &Chain{Providers: providers, Logger: logger}
}

// Open returns the first non-empty binding. Failures of earlier providers
// are logged and collected; if every provider fails the result is a
// *LoadError listing each attempt.
func (c *Chain) Open(ctx context.Context) (*Binding, error) {
	logger := c.Logger
	if logger == nil {
		logger = log.Default()
	}

	var attempts []Attempt
	for _, p := range c.Providers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		b, err := p.Open(ctx)
		if err == nil && (b == nil || b.Symbols.Len() == 0) {
			if b != nil {
				_ = b.Close()
			}
			err = ErrEmptyTable
		}
		if err != nil {
			logger.Debug("provider failed", "provider", p.Name(), "err", err)
			attempts = append(attempts, Attempt{Provider: p.Name(), Err: err})
			continue
		}

		if b.Provider == "" {
			b.Provider = p.Name()
		}
		logger.Debug("provider succeeded",
			"provider", b.Provider,
			"location", b.Location,
			"symbols", b.Symbols.Len(),
		)
		return b, nil
	}

	return nil, &LoadError{Attempts: attempts}
}
