package release

import "errors"

// Sentinel errors for the install pipeline. Callers classify failures with
// errors.Is and decide exit behaviour; every fatal path still prints the
// manual download fallback.
var (
	// ErrUnsupportedPlatform marks an OS/arch pair with no published asset.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrMissingDependency marks an absent external capability (no usable fetcher).
	ErrMissingDependency = errors.New("missing dependency")

	// ErrNetworkFailure marks a failed or non-2xx download.
	ErrNetworkFailure = errors.New("network failure")

	// ErrBinaryMissing marks an archive that extracted cleanly but did not
	// contain the expected executable.
	ErrBinaryMissing = errors.New("binary missing from archive")
)
