package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/blackwell-systems/optdeps/internal/optdeps"
)

// entryIndent prefixes every dependency line under its package.
const entryIndent = "    "

// TextWriter prints reports as a highlighted package name followed by one
// indented line per entry:
//
//	firefox:
//	    speech-dispatcher: Text-to-Speech
//	    hunspell-en_US: Spell checking, American English
type TextWriter struct {
	w        io.Writer
	color    bool
	pkgStyle lipgloss.Style
}

// NewTextWriter returns a TextWriter that colours package names when w is
// a terminal.
func NewTextWriter(w io.Writer) *TextWriter {
	return NewTextWriterWithColor(w, ColorEnabled(w))
}

// NewTextWriterWithColor returns a TextWriter with colour forced on or off.
func NewTextWriterWithColor(w io.Writer, color bool) *TextWriter {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	}
	return &TextWriter{
		w:        w,
		color:    color,
		pkgStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	}
}

// WriteReport prints one package's report. Empty reports print nothing.
func (t *TextWriter) WriteReport(r optdeps.Report) error {
	if r.Empty() {
		return nil
	}

	name := r.Package
	if t.color {
		name = t.pkgStyle.Render(name)
	}

	if _, err := fmt.Fprintf(t.w, "%s:\n", name); err != nil {
		return err
	}
	for _, line := range r.Lines() {
		if _, err := fmt.Fprintf(t.w, "%s%s\n", entryIndent, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteAll prints reports in order.
func (t *TextWriter) WriteAll(reports []optdeps.Report) error {
	for _, r := range reports {
		if err := t.WriteReport(r); err != nil {
			return err
		}
	}
	return nil
}

type jsonEntry struct {
	Name      string `json:"name"`
	Text      string `json:"text"`
	Installed bool   `json:"installed"`
}

type jsonReport struct {
	Package      string      `json:"package"`
	OptionalDeps []jsonEntry `json:"optional_deps"`
}

// WriteJSON prints reports as an indented JSON array. Empty reports are
// skipped; no reports print "[]".
func WriteJSON(w io.Writer, reports []optdeps.Report) error {
	out := make([]jsonReport, 0, len(reports))
	for _, r := range reports {
		if r.Empty() {
			continue
		}
		jr := jsonReport{Package: r.Package, OptionalDeps: make([]jsonEntry, 0, len(r.Entries))}
		for _, e := range r.Entries {
			jr.OptionalDeps = append(jr.OptionalDeps, jsonEntry{
				Name:      e.Name(),
				Text:      e.Text,
				Installed: e.Installed,
			})
		}
		out = append(out, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
