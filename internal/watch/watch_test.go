package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "archive.csv")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(target, []byte("id\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- Files(ctx, []string{target}, 50*time.Millisecond, nil, func(context.Context) error {
			calls.Add(1)
			return nil
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(target, []byte{byte('a' + i)}, 0o644))
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "one burst, one callback")

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestFilesStopsOnCallbackError(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "chart.yaml")
	require.NoError(t, os.WriteFile(target, []byte("layout: {}\n"), 0o644))

	boom := errors.New("boom")
	done := make(chan error, 1)
	go func() {
		done <- Files(context.Background(), []string{target}, 10*time.Millisecond, nil, func(context.Context) error {
			return boom
		})
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(target, []byte("layout: {width: 10}\n"), 0o644))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestFilesNoPaths(t *testing.T) {
	assert.ErrorIs(t, Files(context.Background(), nil, 0, nil, nil), ErrNoFiles)
	assert.ErrorIs(t, Files(context.Background(), []string{""}, 0, nil, nil), ErrNoFiles)
}
