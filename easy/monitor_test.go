package easy

import (
	"fmt"
	"testing"

	"github.com/TrustedPlus/trusted-curl/curl"
	"github.com/TrustedPlus/trusted-curl/errors"
	"github.com/TrustedPlus/trusted-curl/poller"
)

func TestMonitorLifecycle(t *testing.T) {
	e, lh := newTestEasy(t)
	loop := poller.NewManualLoop()
	defer loop.Close()
	e.SetReadinessLoop(loop)
	lh.SetActiveSocket(curl.Socket(9))

	var events []uint32
	var errArgs []any
	if err := e.OnSocketEvent(func(args ...any) (any, error) {
		errArgs = append(errArgs, args[0])
		events = append(events, args[1].(uint32))
		return nil, nil
	}); err != nil {
		t.Fatal(err)
	}

	if err := e.MonitorSocketEvents(); err != nil {
		t.Fatal(err)
	}
	if !e.IsMonitoringSockets() {
		t.Fatal("monitor not active")
	}
	if !loop.Watching(9) {
		t.Fatal("socket not registered with the loop")
	}

	loop.Fire(9, poller.EventRead)
	loop.Fire(9, poller.EventWrite|poller.EventError)

	if len(events) != 2 {
		t.Fatalf("listener invoked %d times", len(events))
	}
	if events[0] != uint32(poller.EventRead) {
		t.Errorf("first bitmask = %d", events[0])
	}
	if errArgs[0] != nil {
		t.Errorf("clean readiness carried an error indicator: %v", errArgs[0])
	}
	if errArgs[1] == nil {
		t.Error("error condition not surfaced to the listener")
	}

	if err := e.UnmonitorSocketEvents(); err != nil {
		t.Fatal(err)
	}
	// Deregistration completes asynchronously.
	if !e.IsMonitoringSockets() {
		t.Error("monitor dropped before the loop confirmed closure")
	}
	loop.Flush()
	if e.IsMonitoringSockets() {
		t.Error("monitor still active after confirmation")
	}
	if loop.Watching(9) {
		t.Error("socket still registered")
	}
}

func TestMonitorRequiresActiveSocket(t *testing.T) {
	e, _ := newTestEasy(t)
	loop := poller.NewManualLoop()
	defer loop.Close()
	e.SetReadinessLoop(loop)

	err := e.MonitorSocketEvents()
	assertKind(t, err, errors.KindBadSocket)
}

func TestMonitorRequiresLoop(t *testing.T) {
	e, lh := newTestEasy(t)
	lh.SetActiveSocket(curl.Socket(3))

	err := e.MonitorSocketEvents()
	assertKind(t, err, errors.KindRegistration)
}

func TestMonitorAtMostOne(t *testing.T) {
	e, lh := newTestEasy(t)
	loop := poller.NewManualLoop()
	defer loop.Close()
	e.SetReadinessLoop(loop)
	lh.SetActiveSocket(curl.Socket(5))

	if err := e.MonitorSocketEvents(); err != nil {
		t.Fatal(err)
	}
	err := e.MonitorSocketEvents()
	assertKind(t, err, errors.KindAlreadyMonitoring)
}

func TestUnmonitorWithoutMonitor(t *testing.T) {
	e, _ := newTestEasy(t)
	err := e.UnmonitorSocketEvents()
	assertKind(t, err, errors.KindNotMonitoring)
}

func TestMonitorVersionGate(t *testing.T) {
	lb := newGatedLoopback(t, curl.MakeVersion(7, 44, 0))
	e, err := New(lb)
	if err != nil {
		t.Fatal(err)
	}
	defer e.Close()

	loop := poller.NewManualLoop()
	defer loop.Close()
	e.SetReadinessLoop(loop)
	handleOf(e).SetActiveSocket(curl.Socket(5))

	merr := e.MonitorSocketEvents()
	assertKind(t, merr, errors.KindRegistration)
}

func TestMonitorWithoutListenerIsQuiet(t *testing.T) {
	e, lh := newTestEasy(t)
	loop := poller.NewManualLoop()
	defer loop.Close()
	e.SetReadinessLoop(loop)
	lh.SetActiveSocket(curl.Socket(2))

	if err := e.MonitorSocketEvents(); err != nil {
		t.Fatal(err)
	}
	// No listener registered: delivery is a no-op, not a failure.
	loop.Fire(2, poller.EventRead)
}

func TestDisposalStopsMonitor(t *testing.T) {
	e, lh := newTestEasy(t)
	loop := poller.NewManualLoop()
	defer loop.Close()
	e.SetReadinessLoop(loop)
	lh.SetActiveSocket(curl.Socket(4))

	if err := e.MonitorSocketEvents(); err != nil {
		t.Fatal(err)
	}
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}
	if loop.Watching(4) {
		t.Error("disposal left the socket registered")
	}
}

// failingCloseLoop hands out watches whose deregistration always fails, the
// way the epoll loop does when the descriptor is gone before CTL_DEL.
type failingCloseLoop struct{}

func (l *failingCloseLoop) Add(fd uintptr, ev poller.Events, cb poller.Callback) (poller.Watch, error) {
	return &failingCloseWatch{}, nil
}

func (l *failingCloseLoop) Close() error { return nil }

type failingCloseWatch struct{}

func (w *failingCloseWatch) Update(poller.Events) error { return nil }

func (w *failingCloseWatch) Close(confirm func()) error {
	return fmt.Errorf("descriptor vanished")
}

func TestUnmonitorFailureReleasesMonitor(t *testing.T) {
	e, lh := newTestEasy(t)
	e.SetReadinessLoop(&failingCloseLoop{})
	lh.SetActiveSocket(curl.Socket(6))

	if err := e.MonitorSocketEvents(); err != nil {
		t.Fatal(err)
	}

	err := e.UnmonitorSocketEvents()
	assertKind(t, err, errors.KindRegistration)
	if e.IsMonitoringSockets() {
		t.Fatal("failed deregistration left the monitor active")
	}

	// The defunct watch must not block a fresh registration.
	if err := e.MonitorSocketEvents(); err != nil {
		t.Fatalf("re-monitor after failed deregistration: %v", err)
	}
	if err := e.UnmonitorSocketEvents(); err == nil {
		t.Fatal("expected the failing watch to reject deregistration again")
	}
	if e.IsMonitoringSockets() {
		t.Error("second failed deregistration left the monitor active")
	}
}
