package release

import (
	"errors"
	"testing"
)

func TestResolveAssetSupported(t *testing.T) {
	cases := []struct {
		goos, arch string
		want       string
	}{
		{"darwin", "arm64", "cc-switch-cli-darwin-universal.tar.gz"},
		{"darwin", "amd64", "cc-switch-cli-darwin-universal.tar.gz"},
		{"linux", "amd64", "cc-switch-cli-linux-x64-musl.tar.gz"},
		{"linux", "x86_64", "cc-switch-cli-linux-x64-musl.tar.gz"},
		{"linux", "arm64", "cc-switch-cli-linux-arm64-musl.tar.gz"},
		{"linux", "aarch64", "cc-switch-cli-linux-arm64-musl.tar.gz"},
	}

	for _, tc := range cases {
		asset, err := ResolveAsset(tc.goos, tc.arch)
		if err != nil {
			t.Fatalf("ResolveAsset(%s, %s): %v", tc.goos, tc.arch, err)
		}
		if asset.Name != tc.want {
			t.Fatalf("ResolveAsset(%s, %s) = %s, want %s", tc.goos, tc.arch, asset.Name, tc.want)
		}
		if asset.Binary != "cc-switch-cli" {
			t.Fatalf("unexpected binary name %s", asset.Binary)
		}
	}
}

func TestResolveAssetDeterministic(t *testing.T) {
	first, err := ResolveAsset("linux", "amd64")
	if err != nil {
		t.Fatalf("ResolveAsset: %v", err)
	}
	second, err := ResolveAsset("linux", "amd64")
	if err != nil {
		t.Fatalf("ResolveAsset: %v", err)
	}
	if first != second {
		t.Fatalf("resolution not deterministic: %v vs %v", first, second)
	}
}

func TestResolveAssetUnsupported(t *testing.T) {
	cases := []struct{ goos, arch string }{
		{"windows", "amd64"},
		{"windows", "arm64"},
		{"linux", "riscv64"},
		{"linux", "386"},
		{"freebsd", "amd64"},
		{"plan9", "amd64"},
	}

	for _, tc := range cases {
		_, err := ResolveAsset(tc.goos, tc.arch)
		if !errors.Is(err, ErrUnsupportedPlatform) {
			t.Fatalf("ResolveAsset(%s, %s) = %v, want ErrUnsupportedPlatform", tc.goos, tc.arch, err)
		}
	}
}

func TestDownloadURL(t *testing.T) {
	asset := Asset{Name: "cc-switch-cli-linux-x64-musl.tar.gz"}

	got := asset.DownloadURL("")
	want := "https://github.com/farion1231/cc-switch/releases/latest/download/cc-switch-cli-linux-x64-musl.tar.gz"
	if got != want {
		t.Fatalf("DownloadURL default host = %s, want %s", got, want)
	}

	got = asset.DownloadURL("https://mirror.example/releases")
	want = "https://mirror.example/releases/latest/download/cc-switch-cli-linux-x64-musl.tar.gz"
	if got != want {
		t.Fatalf("DownloadURL custom host = %s, want %s", got, want)
	}
}
