// Package report runs sensor packages through the calculators and writes one
// summary line per package.
package report

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/sstent/trainingstats/internal/training"
)

// Service writes training summaries to out in input order.
type Service struct {
	out    io.Writer
	logger *log.Logger
}

// Option customises a Service.
type Option func(*Service)

// WithLogger sets the logger used for progress messages.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewService(out io.Writer, opts ...Option) *Service {
	s := &Service{
		out:    out,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reports every package. It stops at the first package that cannot be
// built and returns its error; lines for earlier packages are already written.
func (s *Service) Run(ctx context.Context, packages []training.Package) error {
	startTime := time.Now()
	s.logger.Printf("Processing %d packages", len(packages))
	defer func() {
		s.logger.Printf("Report completed in %s", time.Since(startTime))
	}()

	for i, pkg := range packages {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := s.reportPackage(pkg); err != nil {
			return fmt.Errorf("package %d (%s): %w", i+1, pkg.WorkoutType, err)
		}
	}

	return nil
}

func (s *Service) reportPackage(pkg training.Package) error {
	t, err := pkg.Training()
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(s.out, t.Info().Message()); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
