// Package signal turns SIGINT and SIGTERM into context cancellation, so a
// command caught mid-scan or mid-write unwinds through its deferred cleanup
// instead of dying where it stands.
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Handler owns a cancellable context that is cancelled on the first
// interrupt or termination signal.
type Handler struct {
	ctx     context.Context //nolint:containedctx // the handler owns this context's lifecycle
	cancel  context.CancelFunc
	done    chan struct{}
	stop    sync.Once
	sigChan chan os.Signal
}

// NewHandler starts listening for SIGINT and SIGTERM. Run work off
// Context() and call Stop when finished.
func NewHandler(parent context.Context) *Handler {
	ctx, cancel := context.WithCancel(parent)
	h := &Handler{
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
		// Buffer of one so signal.Notify never drops a signal.
		sigChan: make(chan os.Signal, 1),
	}

	signal.Notify(h.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go h.listen()

	return h
}

// Context returns the context cancelled by the first signal.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Stop detaches from the signal set and cancels the context. Safe to call
// more than once.
func (h *Handler) Stop() {
	h.stop.Do(func() {
		signal.Stop(h.sigChan)
		close(h.done)
		h.cancel()
	})
}

// listen cancels on the first signal and keeps draining the channel so
// repeated signals never block delivery.
func (h *Handler) listen() {
	for {
		select {
		case <-h.done:
			return
		case <-h.sigChan:
			h.cancel()
		}
	}
}
