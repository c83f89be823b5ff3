package uploads

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string, mtime time.Time) {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte("roll_number,name\n"), 0o644))
	require.NoError(t, os.Chtimes(p, mtime, mtime))
}

func TestSweepRemovesOnlyOldFiles(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	touch(t, dir, "old.csv", now.Add(-2*time.Hour))
	touch(t, dir, "fresh.csv", now.Add(-5*time.Minute))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "keep"), 0o755))

	n, err := Sweep(dir, time.Hour, now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = os.Stat(filepath.Join(dir, "old.csv"))
	assert.True(t, os.IsNotExist(err))
	assert.FileExists(t, filepath.Join(dir, "fresh.csv"))
	assert.DirExists(t, filepath.Join(dir, "keep"))
}

func TestSweepZeroAgeClearsEverything(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	touch(t, dir, "a.csv", now)
	touch(t, dir, "b.csv", now.Add(time.Minute))

	n, err := Sweep(dir, 0, now)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSweepMissingDir(t *testing.T) {
	n, err := Sweep(filepath.Join(t.TempDir(), "nope"), time.Hour, time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStartUploadSweeperRejectsBadSpec(t *testing.T) {
	_, err := StartUploadSweeper("not a schedule", t.TempDir(), time.Hour)
	assert.Error(t, err)
}
