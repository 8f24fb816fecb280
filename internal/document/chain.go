package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-desk-widget/internal/logger"
	"github.com/MKhiriev/go-desk-widget/models"
)

// Chain tries its generators in order and returns the first artifact.
type Chain struct {
	generators []Generator
	logger     *logger.Logger
}

// NewChain returns a chain over generators, tried in the given order.
func NewChain(log *logger.Logger, generators ...Generator) *Chain {
	return &Chain{generators: generators, logger: log}
}

// NewDefaultChain returns the docx generator with the HTML fallback.
func NewDefaultChain(log *logger.Logger) *Chain {
	return NewChain(log, NewDocxGenerator(), NewHTMLGenerator())
}

func (c *Chain) Name() string { return "chain" }

// Available reports whether any generator can run.
func (c *Chain) Available() bool {
	for _, g := range c.generators {
		if g.Available() {
			return true
		}
	}
	return false
}

// Generate returns the first successful artifact. Unavailable generators are
// skipped; failures are logged and the next generator is tried. When all
// fail the error wraps [ErrGenerationFailure] and every cause.
func (c *Chain) Generate(ctx context.Context, doc Document) (*models.Artifact, error) {
	if len(c.generators) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailure, ErrNoGenerators)
	}

	var errs []error
	for _, g := range c.generators {
		if !g.Available() {
			c.logger.Debug().Str("func", "Chain.Generate").Str("generator", g.Name()).Msg("generator unavailable, skipping")
			continue
		}

		artifact, err := g.Generate(ctx, doc)
		if err == nil {
			return artifact, nil
		}
		c.logger.Err(err).Str("func", "Chain.Generate").Str("generator", g.Name()).Msg("document generator failed, trying next")
		errs = append(errs, fmt.Errorf("%s: %w", g.Name(), err))

		if ctx.Err() != nil {
			break
		}
	}

	if len(errs) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailure, ErrNoGenerators)
	}
	return nil, fmt.Errorf("%w: %w", ErrGenerationFailure, errors.Join(errs...))
}
