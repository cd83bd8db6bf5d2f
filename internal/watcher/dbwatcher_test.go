package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestDBWatcher_FiresOnDatabaseWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "yabane.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("seed"), 0o644))

	var fired atomic.Int32
	w, err := NewDBWatcher(dbPath, 20*time.Millisecond, func() { fired.Add(1) })
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(dbPath, []byte("changed"), 0o644))

	assert.Eventually(t, func() bool { return fired.Load() >= 1 },
		2*time.Second, 10*time.Millisecond)
}

func TestDBWatcher_WalSidecarCountsAsChange(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "yabane.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("seed"), 0o644))

	var fired atomic.Int32
	w, err := NewDBWatcher(dbPath, 20*time.Millisecond, func() { fired.Add(1) })
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(dbPath+"-wal", []byte("frames"), 0o644))

	assert.Eventually(t, func() bool { return fired.Load() >= 1 },
		2*time.Second, 10*time.Millisecond)
}

func TestDBWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "yabane.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("seed"), 0o644))

	var fired atomic.Int32
	w, err := NewDBWatcher(dbPath, 20*time.Millisecond, func() { fired.Add(1) })
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	time.Sleep(150 * time.Millisecond)
	assert.Zero(t, fired.Load())
}

func TestDBWatcher_StopIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "yabane.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("seed"), 0o644))

	w, err := NewDBWatcher(dbPath, 0, func() {})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	w.Stop()
	w.Stop()
}
