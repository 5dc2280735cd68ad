package scanner

import (
	"context"
	"fmt"

	"github.com/blackwell-systems/optdeps/internal/optdeps"
)

// Scan lists packages and, for each in order, fetches its metadata and
// extracts its report. emit is called only for non-empty reports.
//
// The first failure stops the scan: a fetch error, malformed metadata, an
// emit error or a cancelled context. Packages after the failing one are not
// examined, so a change in the backend's output format cannot produce a
// partly wrong report.
func (s *Scanner) Scan(ctx context.Context, emit func(optdeps.Report) error) (Summary, error) {
	var sum Summary

	names, err := s.backend.ListPackages(ctx, s.opts.OnlyExplicit)
	if err != nil {
		return sum, fmt.Errorf("failed to list installed packages: %w", err)
	}
	s.logger.Debug("listed packages", "count", len(names), "explicit", s.opts.OnlyExplicit)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		text, err := s.backend.FetchMetadata(ctx, name)
		if err != nil {
			return sum, fmt.Errorf("failed to fetch metadata for %s: %w", name, err)
		}

		report, err := s.extractor.Extract(name, text)
		if err != nil {
			return sum, err
		}
		sum.Packages++

		if report.Empty() {
			continue
		}
		s.logger.Debug("optional deps", "package", name, "entries", len(report.Entries))

		if err := emit(report); err != nil {
			return sum, fmt.Errorf("failed to report %s: %w", name, err)
		}
		sum.Reported++
		sum.Entries += len(report.Entries)
	}

	s.logger.Debug("scan complete", "packages", sum.Packages, "reported", sum.Reported, "entries", sum.Entries)
	return sum, nil
}

// Collect runs Scan and returns the non-empty reports in order.
func (s *Scanner) Collect(ctx context.Context) ([]optdeps.Report, Summary, error) {
	var reports []optdeps.Report
	sum, err := s.Scan(ctx, func(r optdeps.Report) error {
		reports = append(reports, r)
		return nil
	})
	if err != nil {
		return nil, sum, err
	}
	return reports, sum, nil
}
