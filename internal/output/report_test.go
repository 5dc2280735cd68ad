package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/optdeps/internal/optdeps"
	"github.com/blackwell-systems/optdeps/internal/store"
)

func firefoxReport() optdeps.Report {
	return optdeps.Report{Package: "firefox", Entries: []optdeps.Entry{
		{Text: "pulseaudio: Audio support [installed]", Installed: true},
		{Text: "speech-dispatcher: Text-to-Speech"},
	}}
}

func TestTextWriter_Plain(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriterWithColor(&buf, false)

	require.NoError(t, w.WriteReport(firefoxReport()))

	want := "firefox:\n" +
		"    pulseaudio: Audio support [installed]\n" +
		"    speech-dispatcher: Text-to-Speech\n"
	assert.Equal(t, want, buf.String())
}

func TestTextWriter_EmptyReportPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriterWithColor(&buf, true)

	require.NoError(t, w.WriteReport(optdeps.Report{Package: "coreutils"}))
	assert.Empty(t, buf.String())
}

func TestTextWriter_Color(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriterWithColor(&buf, true)

	require.NoError(t, w.WriteReport(firefoxReport()))

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "firefox")
	assert.Contains(t, out, "\n    speech-dispatcher: Text-to-Speech\n")
}

func TestNewTextWriter_BufferIsNotColored(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextWriter(&buf).WriteReport(firefoxReport()))
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestColorEnabled_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(&bytes.Buffer{}))
}

func TestTextWriter_WriteAll(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriterWithColor(&buf, false)

	reports := []optdeps.Report{
		firefoxReport(),
		{Package: "coreutils"},
		{Package: "vlc", Entries: []optdeps.Entry{{Text: "lirc: lirc control"}}},
	}
	require.NoError(t, w.WriteAll(reports))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"firefox:",
		"    pulseaudio: Audio support [installed]",
		"    speech-dispatcher: Text-to-Speech",
		"vlc:",
		"    lirc: lirc control",
	}, lines)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestTextWriter_WriteError(t *testing.T) {
	w := NewTextWriterWithColor(failingWriter{}, false)
	assert.Error(t, w.WriteReport(firefoxReport()))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []optdeps.Report{firefoxReport(), {Package: "coreutils"}}))

	var got []jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "firefox", got[0].Package)
	assert.Equal(t, []jsonEntry{
		{Name: "pulseaudio", Text: "pulseaudio: Audio support [installed]", Installed: true},
		{Name: "speech-dispatcher", Text: "speech-dispatcher: Text-to-Speech"},
	}, got[0].OptionalDeps)
}

func TestWriteJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestRenderRunTable(t *testing.T) {
	runs := []*store.Run{
		{
			ID:        2,
			CreatedAt: time.Now().Add(-3 * time.Hour),
			Options:   optdeps.Options{OnlyExplicit: true, IncludeInstalled: true},
			Packages:  40,
			Reported:  5,
			Entries:   11,
		},
		{ID: 1, CreatedAt: time.Now().Add(-8 * 24 * time.Hour), Packages: 900, Reported: 60, Entries: 140},
	}

	table := RenderRunTable(runs)
	lines := strings.Split(strings.TrimSpace(table), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Recorded")
	assert.Contains(t, lines[2], "3 hours ago")
	assert.Contains(t, lines[2], "--explicit --installed ")
	assert.Contains(t, lines[3], "1 week ago")
	assert.Contains(t, lines[3], " - ")
}

func TestRenderRunTable_BothFlagsFitColumn(t *testing.T) {
	runs := []*store.Run{{
		ID:        7,
		CreatedAt: time.Now(),
		Options:   optdeps.Options{OnlyExplicit: true, IncludeInstalled: true},
		Packages:  40,
	}}

	lines := strings.Split(RenderRunTable(runs), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	header, row := lines[0], lines[2]

	assert.NotContains(t, row, "...")
	assert.Equal(t, strings.Index(header, "Packages"), strings.Index(row, "40"),
		"packages column should line up with its header")
}

func TestRenderRunTable_Empty(t *testing.T) {
	assert.Equal(t, "No recorded runs found.\n", RenderRunTable(nil))
}

func TestFormatRelativeTime(t *testing.T) {
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{time.Minute + time.Second, "1 minute ago"},
		{5 * time.Minute, "5 minutes ago"},
		{2 * 24 * time.Hour, "2 days ago"},
		{400 * 24 * time.Hour, "1 year ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatRelativeTime(time.Now().Add(-tt.ago)))
	}
	assert.Equal(t, "never", formatRelativeTime(time.Time{}))
}
