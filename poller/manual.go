package poller

import (
	"fmt"
	"sync"
)

// ManualLoop is a readiness loop driven entirely by the test: Fire injects
// events and Flush runs pending close confirmations. It mirrors the
// asynchronous close-confirm behavior of the epoll loop.
type ManualLoop struct {
	mu      sync.Mutex
	watches map[uintptr]*manualWatch

	confirms *confirmQueue
	closed   bool
}

type manualWatch struct {
	loop *ManualLoop
	fd   uintptr
	cb   Callback

	mu       sync.Mutex
	interest Events
	closed   bool
}

// NewManualLoop creates an empty manual loop.
func NewManualLoop() *ManualLoop {
	return &ManualLoop{
		watches:  make(map[uintptr]*manualWatch),
		confirms: newConfirmQueue(),
	}
}

// Add implements Loop.
func (l *ManualLoop) Add(fd uintptr, ev Events, cb Callback) (Watch, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, fmt.Errorf("loop is closed")
	}
	if _, dup := l.watches[fd]; dup {
		return nil, fmt.Errorf("descriptor %d already watched", fd)
	}

	w := &manualWatch{loop: l, fd: fd, cb: cb, interest: ev}
	l.watches[fd] = w
	return w, nil
}

// Fire delivers events to the watch on fd if any of them intersect its
// interest set, then runs pending close confirmations. It reports whether a
// callback ran.
func (l *ManualLoop) Fire(fd uintptr, ev Events) bool {
	l.mu.Lock()
	w := l.watches[fd]
	l.mu.Unlock()

	fired := false
	if w != nil {
		w.mu.Lock()
		deliver := !w.closed && ev&(w.interest|EventError) != 0
		cb := w.cb
		w.mu.Unlock()
		if deliver && cb != nil {
			cb(ev)
			fired = true
		}
	}

	l.confirms.drain()
	return fired
}

// Flush runs pending close confirmations without delivering events.
func (l *ManualLoop) Flush() {
	l.confirms.drain()
}

// Watching reports whether fd has an active watch.
func (l *ManualLoop) Watching(fd uintptr) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.watches[fd]
	return ok
}

// Close implements Loop.
func (l *ManualLoop) Close() error {
	l.mu.Lock()
	l.closed = true
	l.watches = make(map[uintptr]*manualWatch)
	l.mu.Unlock()

	l.confirms.drain()
	return nil
}

// Update implements Watch.
func (w *manualWatch) Update(ev Events) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return fmt.Errorf("watch is closed")
	}
	w.interest = ev
	return nil
}

// Close implements Watch.
func (w *manualWatch) Close(confirm func()) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return fmt.Errorf("watch is closed")
	}
	w.closed = true
	w.mu.Unlock()

	l := w.loop
	l.mu.Lock()
	delete(l.watches, w.fd)
	l.mu.Unlock()

	l.confirms.push(confirm)
	return nil
}
