package app

import (
	"bytes"
	"context"
	"path/filepath"
	"sync"
	"testing"
)

const (
	firefoxInfo = `Name            : firefox
Description     : Fast, Private & Safe Web Browser
Optional Deps   : networkmanager: Location detection via available WiFi networks [installed]
                  libnotify: Notification integration [installed]
                  speech-dispatcher: Text-to-Speech
Required By     : None
`
	coreutilsInfo = `Name            : coreutils
Optional Deps   : None
Required By     : base
`
	mpvInfo = `Name            : mpv
Optional Deps   : yt-dlp: for video-sharing websites playback [installed]
Required By     : None
`
	brokenInfo = `Name            : broken
Optional Deps   : thing: does stuff
`
)

// fakeBackend serves canned pacman output.
type fakeBackend struct {
	mu       sync.Mutex
	all      []string
	explicit []string
	info     map[string]string
	localDB  string
	lock     string
}

func (f *fakeBackend) ListPackages(_ context.Context, explicit bool) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if explicit {
		return f.explicit, nil
	}
	return f.all, nil
}

func (f *fakeBackend) FetchMetadata(_ context.Context, name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.info[name], nil
}

func (f *fakeBackend) LocalDBPath() string { return f.localDB }
func (f *fakeBackend) LockPath() string    { return f.lock }

func (f *fakeBackend) setAll(names ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.all = names
}

func defaultFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	return &fakeBackend{
		all:      []string{"coreutils", "firefox", "mpv"},
		explicit: []string{"firefox"},
		info: map[string]string{
			"coreutils": coreutilsInfo,
			"firefox":   firefoxInfo,
			"mpv":       mpvInfo,
			"broken":    brokenInfo,
		},
		localDB: t.TempDir(),
		lock:    filepath.Join(t.TempDir(), "db.lck"),
	}
}

// useBackend installs b for the duration of the test and resets global
// flag state.
func useBackend(t *testing.T, b *fakeBackend) {
	t.Helper()
	old := newBackend
	newBackend = func() backend { return b }
	t.Cleanup(func() { newBackend = old })
	resetFlags(t)
}

func resetFlags(t *testing.T) {
	t.Helper()
	explicit, installed, jsonOutput, record, verbose = false, false, false, false, false
	historyLimit = 10
	dbPath = filepath.Join(t.TempDir(), "history.db")
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	RootCmd.SetOut(&stdout)
	RootCmd.SetErr(&stderr)
	if args == nil {
		// cobra falls back to os.Args when args is nil
		args = []string{}
	}
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
	})
	err := RootCmd.Execute()
	return stdout.String(), err
}

// syncBuffer is a bytes.Buffer safe for one writer and one reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
