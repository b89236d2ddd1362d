// Package poller defines the external readiness loop the socket monitor
// plugs into, plus a Linux epoll implementation and a manually driven loop
// for tests.
//
// Watches are scoped to one descriptor. Deregistration is asynchronous: the
// loop may still be dispatching an event for the descriptor when Close is
// called, so completion is signaled through a confirm callback that fires
// only after the watch can no longer be invoked.
package poller

import (
	"sync"

	"github.com/eapache/queue"
)

// Events is a readiness bitmask.
type Events uint32

const (
	EventRead Events = 1 << iota
	EventWrite
	EventError
)

// Callback receives readiness notifications for one watched descriptor.
// It runs on the loop's dispatch goroutine.
type Callback func(ev Events)

// Watch is one registered descriptor.
type Watch interface {
	// Update changes the events the watch is interested in.
	Update(ev Events) error

	// Close stops the watch. confirm runs after the final callback
	// dispatch; the watch must not be used afterwards.
	Close(confirm func()) error
}

// Loop multiplexes readiness over registered descriptors.
type Loop interface {
	// Add registers a descriptor with an interest set and a callback.
	Add(fd uintptr, ev Events, cb Callback) (Watch, error)

	// Close tears the loop down. Pending close confirmations still run.
	Close() error
}

// confirmQueue collects deferred close confirmations and runs them outside
// callback dispatch, preserving the close-then-confirm ordering.
type confirmQueue struct {
	mu sync.Mutex
	q  *queue.Queue
}

func newConfirmQueue() *confirmQueue {
	return &confirmQueue{q: queue.New()}
}

func (c *confirmQueue) push(confirm func()) {
	if confirm == nil {
		return
	}
	c.mu.Lock()
	c.q.Add(confirm)
	c.mu.Unlock()
}

func (c *confirmQueue) drain() {
	for {
		c.mu.Lock()
		if c.q.Length() == 0 {
			c.mu.Unlock()
			return
		}
		confirm := c.q.Remove().(func())
		c.mu.Unlock()
		confirm()
	}
}
