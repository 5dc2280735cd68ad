package optdeps

import "strings"

// Entry is one line of an optional dependency block, usually
// "name: reason", with the installed marker left in place.
type Entry struct {
	Text      string
	Installed bool
}

// Name returns the dependency name, the part of Text before the first colon.
func (e Entry) Name() string {
	name, _, _ := strings.Cut(e.Text, ":")
	return strings.TrimSpace(name)
}

// Parse splits a located block into entries in the order the backend
// printed them. Continuation lines are indented by the backend, so every
// line is trimmed and blank lines are dropped.
func (f Format) Parse(block string) []Entry {
	var entries []Entry
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entries = append(entries, Entry{
			Text:      line,
			Installed: strings.Contains(line, f.InstalledMarker),
		})
	}
	return entries
}
