package signal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitCancelled(t *testing.T, ctx context.Context) {
	t.Helper()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled")
	}
}

func TestHandlerSignalCancelsContext(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.sigChan <- nil

	waitCancelled(t, h.Context())
	assert.ErrorIs(t, h.Context().Err(), context.Canceled)
}

// TestHandlerDrainsRepeatedSignals sends more signals than the channel
// buffers; the listener must keep receiving so none of the sends block.
func TestHandlerDrainsRepeatedSignals(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.sigChan <- nil
	h.sigChan <- nil
	h.sigChan <- nil

	waitCancelled(t, h.Context())
}

func TestHandlerStopCancelsContext(t *testing.T) {
	h := NewHandler(context.Background())
	h.Stop()
	assert.Error(t, h.Context().Err())
}

func TestHandlerStopIsIdempotent(t *testing.T) {
	h := NewHandler(context.Background())
	h.Stop()
	h.Stop()
	h.Stop()
	assert.Error(t, h.Context().Err())
}

func TestHandlerParentCancellation(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	h := NewHandler(parent)
	defer h.Stop()

	cancel()
	waitCancelled(t, h.Context())
}

func TestHandlerContextOpenInitially(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()
	require.NoError(t, h.Context().Err())
}
