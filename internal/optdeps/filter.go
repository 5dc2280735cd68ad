package optdeps

// Options selects which packages and entries are reported.
type Options struct {
	// OnlyExplicit limits the report to explicitly installed packages.
	OnlyExplicit bool
	// IncludeInstalled keeps entries that are already installed.
	IncludeInstalled bool
}

// Filter returns the entries worth reporting, preserving order. Entries
// that are not installed are always kept; installed ones only when
// includeInstalled is set.
func Filter(entries []Entry, includeInstalled bool) []Entry {
	var kept []Entry
	for _, e := range entries {
		if !e.Installed || includeInstalled {
			kept = append(kept, e)
		}
	}
	return kept
}
