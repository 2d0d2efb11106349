package docsync

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidVersion marks a version string that is not a bare semantic
// triple. Prefixed ("v4.2.0"), truncated ("4.2") and pre-release
// ("4.2.0-beta") forms are all rejected.
var ErrInvalidVersion = errors.New("invalid version")

var versionPattern = regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+$`)

// ValidateVersion checks that v is exactly three dot-separated non-negative
// integers.
func ValidateVersion(v string) error {
	if !versionPattern.MatchString(v) {
		return fmt.Errorf("%w: %q (expected MAJOR.MINOR.PATCH, e.g. 4.2.0)", ErrInvalidVersion, v)
	}
	return nil
}
