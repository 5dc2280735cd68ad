package store

import (
	"time"

	"github.com/blackwell-systems/optdeps/internal/optdeps"
)

// Run is one recorded report.
type Run struct {
	ID        int64
	CreatedAt time.Time
	Options   optdeps.Options
	Packages  int // packages examined
	Reported  int // packages with a non-empty report
	Entries   int // reported entries
}
