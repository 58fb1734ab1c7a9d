package export

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/amishk599/vaplan/internal/model"
)

// Document is one generated text file.
type Document struct {
	Name string
	Text string
}

// Strategy delivers a document to the user one way.
type Strategy interface {
	Name() string
	Export(doc Document) error
}

// Chain tries its strategies in order and stops at the first success.
type Chain struct {
	strategies []Strategy
	logger     *slog.Logger
}

// NewChain returns a chain over strategies, tried in the given order.
func NewChain(logger *slog.Logger, strategies ...Strategy) *Chain {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chain{strategies: strategies, logger: logger}
}

// Run exports doc and returns the name of the strategy that delivered it.
// Each failure is logged. If every strategy fails the error wraps
// model.ErrDownloadBlocked together with all failures.
func (c *Chain) Run(doc Document) (string, error) {
	errs := []error{model.ErrDownloadBlocked}
	for _, s := range c.strategies {
		err := s.Export(doc)
		if err == nil {
			c.logger.Info("document exported", "name", doc.Name, "strategy", s.Name())
			return s.Name(), nil
		}
		c.logger.Warn("export strategy failed", "name", doc.Name, "strategy", s.Name(), "error", err)
		errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
	}
	return "", errors.Join(errs...)
}
