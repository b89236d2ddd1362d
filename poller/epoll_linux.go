//go:build linux

package poller

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// EpollLoop is a readiness loop backed by Linux epoll. Poll must be driven
// by exactly one goroutine; Add, Update and Close are safe to call from
// others.
type EpollLoop struct {
	epfd int

	mu      sync.Mutex
	watches map[uintptr]*epollWatch

	confirms *confirmQueue
	closed   bool
}

type epollWatch struct {
	loop *EpollLoop
	fd   uintptr
	cb   Callback

	mu     sync.Mutex
	closed bool
}

// NewEpollLoop creates an epoll instance.
func NewEpollLoop() (*EpollLoop, error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("epoll create: %w", err)
	}
	return &EpollLoop{
		epfd:     epfd,
		watches:  make(map[uintptr]*epollWatch),
		confirms: newConfirmQueue(),
	}, nil
}

func epollEvents(ev Events) uint32 {
	var out uint32
	if ev&EventRead != 0 {
		out |= unix.EPOLLIN
	}
	if ev&EventWrite != 0 {
		out |= unix.EPOLLOUT
	}
	return out
}

// Add implements Loop.
func (l *EpollLoop) Add(fd uintptr, ev Events, cb Callback) (Watch, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, fmt.Errorf("loop is closed")
	}
	if _, dup := l.watches[fd]; dup {
		return nil, fmt.Errorf("descriptor %d already watched", fd)
	}

	e := unix.EpollEvent{Events: epollEvents(ev), Fd: int32(fd)}
	if err := unix.EpollCtl(l.epfd, unix.EPOLL_CTL_ADD, int(fd), &e); err != nil {
		return nil, fmt.Errorf("epoll ctl add: %w", err)
	}

	w := &epollWatch{loop: l, fd: fd, cb: cb}
	l.watches[fd] = w
	return w, nil
}

// Poll waits up to timeoutMs for readiness and dispatches callbacks, then
// runs any close confirmations queued during dispatch. timeoutMs < 0 blocks.
func (l *EpollLoop) Poll(timeoutMs int) error {
	var events [64]unix.EpollEvent

	n, err := unix.EpollWait(l.epfd, events[:], timeoutMs)
	if err != nil {
		if err == unix.EINTR {
			l.confirms.drain()
			return nil
		}
		return fmt.Errorf("epoll wait: %w", err)
	}

	for i := 0; i < n; i++ {
		fd := uintptr(events[i].Fd)

		l.mu.Lock()
		w := l.watches[fd]
		l.mu.Unlock()
		if w == nil {
			continue
		}

		var ev Events
		if events[i].Events&unix.EPOLLIN != 0 {
			ev |= EventRead
		}
		if events[i].Events&unix.EPOLLOUT != 0 {
			ev |= EventWrite
		}
		if events[i].Events&(unix.EPOLLERR|unix.EPOLLHUP) != 0 {
			ev |= EventError
		}

		w.dispatch(ev)
	}

	l.confirms.drain()
	return nil
}

// Close implements Loop.
func (l *EpollLoop) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	l.watches = make(map[uintptr]*epollWatch)
	l.mu.Unlock()

	l.confirms.drain()
	return unix.Close(l.epfd)
}

func (w *epollWatch) dispatch(ev Events) {
	w.mu.Lock()
	closed := w.closed
	cb := w.cb
	w.mu.Unlock()
	if closed || cb == nil {
		return
	}
	cb(ev)
}

// Update implements Watch.
func (w *epollWatch) Update(ev Events) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return fmt.Errorf("watch is closed")
	}
	e := unix.EpollEvent{Events: epollEvents(ev), Fd: int32(w.fd)}
	if err := unix.EpollCtl(w.loop.epfd, unix.EPOLL_CTL_MOD, int(w.fd), &e); err != nil {
		return fmt.Errorf("epoll ctl mod: %w", err)
	}
	return nil
}

// Close implements Watch.
func (w *epollWatch) Close(confirm func()) error {
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
	loopClosed := l.closed
	l.mu.Unlock()

	if !loopClosed {
		if err := unix.EpollCtl(l.epfd, unix.EPOLL_CTL_DEL, int(w.fd), nil); err != nil {
			return fmt.Errorf("epoll ctl del: %w", err)
		}
	}

	l.confirms.push(confirm)
	return nil
}
