package optdeps

import "errors"

// Report is the reportable optional dependencies of one package.
type Report struct {
	Package string
	Entries []Entry
}

// Empty reports whether there is nothing to show for the package.
func (r Report) Empty() bool {
	return len(r.Entries) == 0
}

// Lines returns the entry texts in order.
func (r Report) Lines() []string {
	lines := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		lines = append(lines, e.Text)
	}
	return lines
}

// Extractor turns raw package metadata into a filtered Report.
type Extractor struct {
	Format           Format
	IncludeInstalled bool
}

// NewExtractor returns an Extractor for the pacman format.
func NewExtractor(opts Options) *Extractor {
	return &Extractor{Format: PacmanFormat, IncludeInstalled: opts.IncludeInstalled}
}

// Extract locates, parses and filters the optional dependencies in text.
// A package whose block is the "no dependencies" sentinel yields an empty
// report. Missing labels yield a *MalformedMetadataError naming pkg.
func (x *Extractor) Extract(pkg, text string) (Report, error) {
	report := Report{Package: pkg}

	block, none, err := x.Format.Locate(text)
	if err != nil {
		var merr *MalformedMetadataError
		if errors.As(err, &merr) {
			merr.Package = pkg
		}
		return report, err
	}
	if none {
		return report, nil
	}

	report.Entries = Filter(x.Format.Parse(block), x.IncludeInstalled)
	return report, nil
}
