package tagpix

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, dir, func() { changes <- struct{}{} })
	}()

	// The watcher registers asynchronously; keep creating images until one is seen.
	deadline := time.After(5 * time.Second)
	for i := 0; ; i++ {
		writeFile(t, dir, "notes.txt", "ignored")
		writeImage(t, dir, "new.png", 2, 2)
		select {
		case <-changes:
			cancel()
			require.NoError(t, <-done)
			return
		case <-time.After(100 * time.Millisecond):
		case <-deadline:
			t.Fatalf("no change seen after %d writes", i)
		}
	}
}

func TestWatchMissingDir(t *testing.T) {
	err := Watch(context.Background(), t.TempDir()+"/missing", func() {})
	assert.Error(t, err)
}
