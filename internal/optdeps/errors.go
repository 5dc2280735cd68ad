package optdeps

import (
	"errors"
	"fmt"
)

// ErrMalformedMetadata is matched by every MalformedMetadataError.
var ErrMalformedMetadata = errors.New("malformed metadata")

// MalformedMetadataError reports package metadata that lacks one of the
// labels delimiting the optional dependency block. It means the backend's
// output format no longer matches Format, so callers should stop rather
// than skip the package.
type MalformedMetadataError struct {
	Package string
	Missing string // label that could not be found
}

func (e *MalformedMetadataError) Error() string {
	if e.Package == "" {
		return fmt.Sprintf("%v: missing %q label", ErrMalformedMetadata, e.Missing)
	}
	return fmt.Sprintf("%s: %v: missing %q label", e.Package, ErrMalformedMetadata, e.Missing)
}

// Is lets errors.Is match ErrMalformedMetadata.
func (e *MalformedMetadataError) Is(target error) bool {
	return target == ErrMalformedMetadata
}
