package release

import (
	"fmt"
	"runtime"
)

// Project release constants. The host serves a "latest" alias so the
// installer never needs to know the current version number.
const (
	DefaultHost    = "https://github.com/farion1231/cc-switch/releases"
	DefaultBinary  = "cc-switch-cli"
	ReleasesPage   = DefaultHost + "/latest"
	latestDownload = "%s/latest/download/%s"
)

// Asset identifies the platform-specific archive for one supported target.
type Asset struct {
	Name   string
	Binary string
}

// DownloadURL returns the fixed latest-release URL for the asset.
func (a Asset) DownloadURL(host string) string {
	if host == "" {
		host = DefaultHost
	}
	return fmt.Sprintf(latestDownload, host, a.Name)
}

// ResolveAsset maps an OS/arch pair onto the closed set of published
// archives. macOS ships a single universal binary; Linux ships static musl
// builds for x64 and arm64. Everything else, Windows included, has no
// published asset and the caller should point users at the releases page.
func ResolveAsset(goos, arch string) (Asset, error) {
	switch goos {
	case "darwin":
		return Asset{Name: DefaultBinary + "-darwin-universal.tar.gz", Binary: DefaultBinary}, nil
	case "linux":
		switch arch {
		case "amd64", "x86_64":
			return Asset{Name: DefaultBinary + "-linux-x64-musl.tar.gz", Binary: DefaultBinary}, nil
		case "arm64", "aarch64":
			return Asset{Name: DefaultBinary + "-linux-arm64-musl.tar.gz", Binary: DefaultBinary}, nil
		default:
			return Asset{}, fmt.Errorf("%w: linux/%s", ErrUnsupportedPlatform, arch)
		}
	default:
		return Asset{}, fmt.Errorf("%w: %s/%s", ErrUnsupportedPlatform, goos, arch)
	}
}

// HostAsset resolves the asset for the running process.
func HostAsset() (Asset, error) {
	return ResolveAsset(runtime.GOOS, runtime.GOARCH)
}
