package docsync

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrManifestVersion marks a manifest that exists but yields no usable
// version string.
var ErrManifestVersion = errors.New("no version in manifest")

type cargoManifest struct {
	Package struct {
		Version string `toml:"version"`
	} `toml:"package"`
}

var manifestLinePattern = regexp.MustCompile(`^\s*version\s*=\s*"([0-9]+\.[0-9]+\.[0-9]+)"`)

// ManifestVersion reads the authoritative version from the Cargo manifest.
// The document is decoded as TOML first; when the decoder rejects the file
// (workspace manifests with constructs v2 is strict about), the original
// first-matching-line scan is used instead.
func ManifestVersion(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read manifest %s: %w", path, err)
	}

	var manifest cargoManifest
	if err := toml.Unmarshal(data, &manifest); err == nil {
		if v := strings.TrimSpace(manifest.Package.Version); v != "" {
			return v, nil
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		if m := manifestLinePattern.FindStringSubmatch(scanner.Text()); m != nil {
			return m[1], nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrManifestVersion, path)
}

// ResolveVersion returns the explicit argument when given, otherwise the
// manifest version. The result is validated either way: an operator typo
// must fail the same way a broken manifest does.
func ResolveVersion(arg, manifestPath string) (string, error) {
	version := strings.TrimSpace(arg)
	if version == "" {
		var err error
		version, err = ManifestVersion(manifestPath)
		if err != nil {
			return "", err
		}
	}
	if err := ValidateVersion(version); err != nil {
		return "", err
	}
	return version, nil
}
