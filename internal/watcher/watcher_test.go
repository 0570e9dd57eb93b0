package watcher_test

import (
	"context"
	"testing"
	"time"

	"github.com/jonesrussell/cortexgate/internal/testhelpers"
	"github.com/jonesrussell/cortexgate/internal/watcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MissingDirectory(t *testing.T) {
	_, err := watcher.New(t.TempDir()+"/does-not-exist", testhelpers.NewTestLogger())
	assert.Error(t, err)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	w, err := watcher.New(t.TempDir(), testhelpers.NewTestLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after context cancellation")
	}
}
