// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const watchedDoc = "openapi: 3.0.3\ninfo:\n  title: T\n  version: 1\npaths: {}\n"

func TestNew_NoPaths(t *testing.T) {
	_, err := New(nil, 0, func([]string) {})
	assert.Error(t, err)
}

func TestNew_NoCallback(t *testing.T) {
	_, err := New([]string{"."}, 0, nil)
	assert.Error(t, err)
}

func TestNew_MissingPath(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "nope.yaml")}, 0, func([]string) {})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot watch")
}

func TestNew_DefaultDebounce(t *testing.T) {
	tmpDir := t.TempDir()
	w, err := New([]string{tmpDir}, 0, func([]string) {})
	require.NoError(t, err)
	assert.Equal(t, DefaultDebounce, w.debounce)
}

// startWatcher runs w until the test ends, forwarding each callback batch
// to the returned channel.
func startWatcher(t *testing.T, paths []string, opts ...Option) <-chan []string {
	t.Helper()

	batches := make(chan []string, 16)
	w, err := New(paths, 30*time.Millisecond, func(changed []string) {
		batches <- changed
	}, opts...)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})

	// Give the watcher time to register before the test writes files.
	time.Sleep(50 * time.Millisecond)
	return batches
}

func waitForBatch(t *testing.T, batches <-chan []string) []string {
	t.Helper()
	select {
	case batch := <-batches:
		return batch
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change callback")
		return nil
	}
}

func TestWatcher_FileChange(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "openapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(watchedDoc), 0o644))

	batches := startWatcher(t, []string{path})

	require.NoError(t, os.WriteFile(path, []byte(watchedDoc+"# touched\n"), 0o644))

	batch := waitForBatch(t, batches)
	assert.Contains(t, batch, path)
}

func TestWatcher_CoalescesBursts(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "openapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(watchedDoc), 0o644))

	batches := startWatcher(t, []string{path})

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte(watchedDoc), 0o644))
	}

	batch := waitForBatch(t, batches)
	assert.Equal(t, []string{path}, batch)

	// The burst is over; no further callback should arrive.
	select {
	case extra := <-batches:
		t.Fatalf("unexpected extra callback: %v", extra)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "openapi.yaml")
	other := filepath.Join(tmpDir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte(watchedDoc), 0o644))

	batches := startWatcher(t, []string{path})

	require.NoError(t, os.WriteFile(other, []byte("scratch"), 0o644))

	select {
	case batch := <-batches:
		t.Fatalf("unexpected callback for unrelated file: %v", batch)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_DirectoryWatchesDocuments(t *testing.T) {
	tmpDir := t.TempDir()

	batches := startWatcher(t, []string{tmpDir})

	docPath := filepath.Join(tmpDir, "api.yaml")
	require.NoError(t, os.WriteFile(docPath, []byte(watchedDoc), 0o644))

	batch := waitForBatch(t, batches)
	assert.Contains(t, batch, docPath)
}

func TestWatcher_DirectorySkipsNonDocuments(t *testing.T) {
	tmpDir := t.TempDir()

	batches := startWatcher(t, []string{tmpDir})

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "readme.md"), []byte("# hi"), 0o644))

	select {
	case batch := <-batches:
		t.Fatalf("unexpected callback for non-document: %v", batch)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_IgnoreOption(t *testing.T) {
	tmpDir := t.TempDir()
	inPath := filepath.Join(tmpDir, "in.yaml")
	outPath := filepath.Join(tmpDir, "out.yaml")
	require.NoError(t, os.WriteFile(inPath, []byte(watchedDoc), 0o644))

	batches := startWatcher(t, []string{tmpDir}, WithIgnore(outPath))

	require.NoError(t, os.WriteFile(outPath, []byte(watchedDoc), 0o644))

	select {
	case batch := <-batches:
		t.Fatalf("unexpected callback for ignored file: %v", batch)
	case <-time.After(150 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(inPath, []byte(watchedDoc+"# touched\n"), 0o644))
	batch := waitForBatch(t, batches)
	assert.Equal(t, []string{inPath}, batch)
}

func TestWatcher_IgnoreCoversTree(t *testing.T) {
	tmpDir := t.TempDir()
	outDir := filepath.Join(tmpDir, "dist")
	require.NoError(t, os.MkdirAll(outDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "in.yaml"), []byte(watchedDoc), 0o644))

	batches := startWatcher(t, []string{tmpDir}, WithIgnore(outDir))

	require.NoError(t, os.WriteFile(filepath.Join(outDir, "in.yaml"), []byte(watchedDoc), 0o644))

	select {
	case batch := <-batches:
		t.Fatalf("unexpected callback for file under ignored directory: %v", batch)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_Patterns(t *testing.T) {
	tmpDir := t.TempDir()
	keptPath := filepath.Join(tmpDir, "api.yaml")
	draftPath := filepath.Join(tmpDir, "draft.yaml")

	batches := startWatcher(t, []string{tmpDir}, WithPatterns([]string{"api.*"}, []string{"draft.*"}))

	require.NoError(t, os.WriteFile(draftPath, []byte(watchedDoc), 0o644))

	select {
	case batch := <-batches:
		t.Fatalf("unexpected callback for excluded file: %v", batch)
	case <-time.After(150 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(keptPath, []byte(watchedDoc), 0o644))
	batch := waitForBatch(t, batches)
	assert.Equal(t, []string{keptPath}, batch)
}
