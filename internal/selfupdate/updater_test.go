package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseAssetFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "mindful_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "mindful_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "mindful_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "mindful_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "mindful_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "mindful_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "mindful_Windows_arm64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := releaseAssetFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecksumFor(t *testing.T) {
	manifest := []byte("abc123  mindful_Darwin_all.tar.gz\nbadline\n  \nfoo  bar  baz\ndef456  mindful_Linux_x86_64.tar.gz\n")

	t.Run("finds asset", func(t *testing.T) {
		got, ok := checksumFor(manifest, "mindful_Linux_x86_64.tar.gz")
		require.True(t, ok)
		assert.Equal(t, "def456", got)
	})

	t.Run("skips malformed lines", func(t *testing.T) {
		_, ok := checksumFor(manifest, "bar")
		assert.False(t, ok)
	})

	t.Run("missing asset", func(t *testing.T) {
		_, ok := checksumFor(manifest, "mindful_Windows_x86_64.zip")
		assert.False(t, ok)
	})

	t.Run("empty manifest", func(t *testing.T) {
		_, ok := checksumFor(nil, "mindful_Darwin_all.tar.gz")
		assert.False(t, ok)
	})
}

func TestBinaryFromArchive(t *testing.T) {
	binaryContent := []byte("#!/bin/sh\necho mindful")

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, "mindful", binaryContent)
		got, err := binaryFromArchive(archive, "mindful_Darwin_all.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		archive := buildTarGz(t, "other-file", binaryContent)
		_, err := binaryFromArchive(archive, "mindful_Darwin_all.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestSwapExecutable(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "mindful")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	newData := []byte("new-binary-content")
	h := sha256.Sum256(newData)

	require.NoError(t, swapExecutable(newData, target, h[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	// The replacement keeps the original mode bits.
	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestSwapExecutable_RejectsHashMismatch(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "mindful")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	wrong := sha256.Sum256([]byte("something else"))
	err := swapExecutable([]byte("new-binary-content"), target, wrong[:])
	assert.ErrorIs(t, err, ErrChecksum)

	// Target must be untouched after a failed swap.
	got, readErr := os.ReadFile(target)
	require.NoError(t, readErr)
	assert.Equal(t, []byte("old"), got)
}

// releaseServer serves a fake GitHub release: latest-tag JSON plus the
// archive and checksum manifest for v2.0.0.
func releaseServer(t *testing.T, asset string, archive []byte, checksums string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/mindfulme/mindful/releases/latest":
			_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
		case "/mindfulme/mindful/releases/download/v2.0.0/" + asset:
			_, _ = w.Write(archive)
		case "/mindfulme/mindful/releases/download/v2.0.0/checksums.txt":
			_, _ = w.Write([]byte(checksums))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestUpdate(t *testing.T) {
	asset, err := releaseAssetFor(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)
	binaryContent := []byte("new-mindful-binary")
	archive := buildTarGz(t, "mindful", binaryContent)
	archiveHash := sha256.Sum256(archive)
	archiveHex := hex.EncodeToString(archiveHash[:])

	t.Run("happy path", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "mindful")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		checksums := fmt.Sprintf("%s  %s\n", archiveHex, asset)
		server := releaseServer(t, asset, archive, checksums)

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)

		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		badSum := "0000000000000000000000000000000000000000000000000000000000000000"
		checksums := fmt.Sprintf("%s  %s\n", badSum, asset)
		server := releaseServer(t, asset, archive, checksums)

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/repos/mindfulme/mindful/releases/latest" {
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// buildTarGz creates a tar.gz archive containing a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
