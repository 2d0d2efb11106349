package release

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestHTTPFetcherDownloads(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("archive bytes"))
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "asset.tar.gz")
	f := httpFetcher{client: server.Client()}
	if err := f.Fetch(context.Background(), server.URL, dest, nil); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read downloaded file: %v", err)
	}
	if string(data) != "archive bytes" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestHTTPFetcherNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "asset.tar.gz")
	f := httpFetcher{client: server.Client()}
	err := f.Fetch(context.Background(), server.URL, dest, nil)
	if !errors.Is(err, ErrNetworkFailure) {
		t.Fatalf("Fetch = %v, want ErrNetworkFailure", err)
	}
	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Fatal("failed download must not leave a file at dest")
	}
}

func TestHTTPFetcherProgress(t *testing.T) {
	payload := make([]byte, 64*1024)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
		w.Write(payload)
	}))
	defer server.Close()

	var last, total int64
	dest := filepath.Join(t.TempDir(), "asset.tar.gz")
	f := httpFetcher{client: server.Client()}
	err := f.Fetch(context.Background(), server.URL, dest, func(written, t int64) {
		last = written
		total = t
	})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if last != int64(len(payload)) {
		t.Fatalf("final progress = %d, want %d", last, len(payload))
	}
	if total != int64(len(payload)) {
		t.Fatalf("reported total = %d, want %d", total, len(payload))
	}
}

func TestResolveFetcherPrefersHTTP(t *testing.T) {
	f, err := ResolveFetcher("")
	if err != nil {
		t.Fatalf("ResolveFetcher: %v", err)
	}
	if f.Name() != "http" {
		t.Fatalf("default fetcher = %s, want http", f.Name())
	}
}

func TestResolveFetcherUnknownPreference(t *testing.T) {
	_, err := ResolveFetcher("wget")
	if !errors.Is(err, ErrMissingDependency) {
		t.Fatalf("ResolveFetcher(wget) = %v, want ErrMissingDependency", err)
	}
}
