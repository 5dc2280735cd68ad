// Package optdeps extracts the optional dependencies of a package from the
// text that `pacman -Qi` prints for it.
//
// Extraction has three steps:
//   - Locate finds the "Optional Deps" block between its label and the
//     "Required By" label that follows it
//   - Parse splits the block into one Entry per line
//   - Filter drops entries that are already installed unless asked not to
package optdeps

// Format holds the fixed strings of the backend's info output. All of them
// are tied to the backend's text layout, so a format change touches only
// the Format value.
type Format struct {
	// OptionalLabel starts the optional dependency block.
	OptionalLabel string
	// Separator sits between the label's padding and the first entry.
	Separator string
	// TerminatorLabel starts the field that follows the block.
	TerminatorLabel string
	// InstalledMarker is appended by the backend to installed entries.
	InstalledMarker string
	// NoneSentinel is the whole block when a package has no optional deps.
	NoneSentinel string
}

// PacmanFormat is the layout of `pacman -Qi` output under the C locale.
//
//	Depends On      : gtk3  libxt  mime-types  dbus-glib  ffmpeg  nss
//	Optional Deps   : networkmanager: Location detection [installed]
//	                  libnotify: Notification integration [installed]
//	                  speech-dispatcher: Text-to-Speech
//	Required By     : None
var PacmanFormat = Format{
	OptionalLabel:   "Optional Deps",
	Separator:       ":",
	TerminatorLabel: "Required By",
	InstalledMarker: "[installed]",
	NoneSentinel:    "None",
}
