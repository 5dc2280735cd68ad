// Package scanner walks installed packages and produces their optional
// dependency reports, one package at a time.
package scanner

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/blackwell-systems/optdeps/internal/optdeps"
)

// Lister returns installed package names in the backend's order.
type Lister interface {
	ListPackages(ctx context.Context, explicit bool) ([]string, error)
}

// Fetcher returns the raw metadata text of one package.
type Fetcher interface {
	FetchMetadata(ctx context.Context, name string) (string, error)
}

// Backend is both a Lister and a Fetcher; *pacman.Client satisfies it.
type Backend interface {
	Lister
	Fetcher
}

// Summary counts what a scan looked at and reported.
type Summary struct {
	Packages int // packages examined
	Reported int // packages with a non-empty report
	Entries  int // reported entries across all packages
}

// Scanner runs the extraction pipeline over every listed package.
type Scanner struct {
	backend   Backend
	extractor *optdeps.Extractor
	opts      optdeps.Options
	logger    *log.Logger
}

// New creates a Scanner. A nil logger falls back to log.Default().
func New(backend Backend, opts optdeps.Options, logger *log.Logger) *Scanner {
	if logger == nil {
		logger = log.Default()
	}
	return &Scanner{
		backend:   backend,
		extractor: optdeps.NewExtractor(opts),
		opts:      opts,
		logger:    logger,
	}
}

// Options returns the options the scanner was created with.
func (s *Scanner) Options() optdeps.Options {
	return s.opts
}
