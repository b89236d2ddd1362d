package easy

import (
	"testing"

	"github.com/TrustedPlus/trusted-curl/curl"
	"github.com/TrustedPlus/trusted-curl/engine"
	"github.com/TrustedPlus/trusted-curl/errors"
)

// newTestEasy builds an adapter over a loopback engine and returns both
// sides so tests can script transfers and observe installed state.
func newTestEasy(t *testing.T) (*Easy, *engine.Handle) {
	t.Helper()
	lb := engine.NewLoopback()
	e, err := New(lb)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if e.IsOpen() {
			if err := e.Close(); err != nil {
				t.Fatal(err)
			}
		}
	})
	// New installs exactly one handle per adapter; reach through the
	// engine by installing a probe is unnecessary since the loopback
	// exposes its handle type directly.
	lh := handleOf(e)
	return e, lh
}

func handleOf(e *Easy) *engine.Handle {
	return e.handle.(*engine.Handle)
}

func newGatedLoopback(t *testing.T, v curl.Version) *engine.Loopback {
	t.Helper()
	lb := engine.NewLoopback()
	lb.SetVersion(v)
	return lb
}

func TestNewInstallsRequiredCallbacks(t *testing.T) {
	_, lh := newTestEasy(t)

	for _, opt := range []curl.Option{curl.OptWriteFunction, curl.OptHeaderFunction} {
		if !lh.HasFunc(opt) {
			t.Errorf("trampoline for %v not installed at construction", opt)
		}
	}
	if lh.Pointer(curl.OptWriteData) == nil || lh.Pointer(curl.OptHeaderData) == nil {
		t.Error("user data for write/header slots not installed")
	}
}

func TestIDsAreMonotonic(t *testing.T) {
	a, _ := newTestEasy(t)
	b, _ := newTestEasy(t)
	if b.ID() <= a.ID() {
		t.Errorf("ids not monotonic: %d then %d", a.ID(), b.ID())
	}
}

func TestOpenHandleAccounting(t *testing.T) {
	ResetProcessState()

	lb := engine.NewLoopback()
	a, err := New(lb)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(lb)
	if err != nil {
		t.Fatal(err)
	}
	if OpenHandles() != 2 {
		t.Fatalf("open handles = %d, want 2", OpenHandles())
	}

	if err := a.Close(); err != nil {
		t.Fatal(err)
	}
	if err := b.Close(); err != nil {
		t.Fatal(err)
	}
	if OpenHandles() != 0 {
		t.Fatalf("open handles = %d after close, want 0", OpenHandles())
	}
}

func TestCloseReleasesEngineHandleOnce(t *testing.T) {
	e, lh := newTestEasy(t)

	if err := e.Close(); err != nil {
		t.Fatal(err)
	}
	if lh.Cleanups() != 1 {
		t.Errorf("engine cleanups = %d, want 1", lh.Cleanups())
	}

	err := e.Close()
	if err == nil {
		t.Fatal("second Close must fail")
	}
	var he *errors.Error
	if !errors.AsError(err, &he) || he.Kind != errors.KindClosedHandle {
		t.Errorf("second Close error = %v", err)
	}
	if lh.Cleanups() != 1 {
		t.Errorf("engine cleanups after double close = %d", lh.Cleanups())
	}
}

func TestCloseRejectedInsideMulti(t *testing.T) {
	e, lh := newTestEasy(t)

	e.SetInsideMultiHandle(true)
	err := e.Close()
	if err == nil {
		t.Fatal("Close inside a multi handle must fail")
	}
	var he *errors.Error
	if !errors.AsError(err, &he) || he.Kind != errors.KindInsideMulti {
		t.Fatalf("error = %v", err)
	}
	if lh.Cleanups() != 0 {
		t.Error("rejected Close must not touch the engine handle")
	}

	e.SetInsideMultiHandle(false)
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestIsComparesEngineHandles(t *testing.T) {
	a, _ := newTestEasy(t)
	b, _ := newTestEasy(t)

	if !a.Is(a) {
		t.Error("handle must equal itself")
	}
	if a.Is(b) {
		t.Error("distinct engine handles must not compare equal")
	}
	if a.Is(nil) {
		t.Error("nil never compares equal")
	}
}

func TestClosedHandleRejectsEverything(t *testing.T) {
	e, _ := newTestEasy(t)
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}

	assertClosed := func(name string, err error) {
		t.Helper()
		var he *errors.Error
		if err == nil || !errors.AsError(err, &he) || he.Kind != errors.KindClosedHandle {
			t.Errorf("%s on closed handle = %v, want closed-handle error", name, err)
		}
	}

	_, err := e.SetOpt("URL", "http://example.test")
	assertClosed("SetOpt", err)

	_, err = e.GetInfo("EFFECTIVE_URL")
	assertClosed("GetInfo", err)

	_, err = e.Perform()
	assertClosed("Perform", err)

	_, _, err = e.Send([]byte("x"))
	assertClosed("Send", err)

	_, _, err = e.Recv(make([]byte, 4))
	assertClosed("Recv", err)

	assertClosed("OnSocketEvent", e.OnSocketEvent(nil))
	assertClosed("MonitorSocketEvents", e.MonitorSocketEvents())
	assertClosed("UnmonitorSocketEvents", e.UnmonitorSocketEvents())
}

func TestStrError(t *testing.T) {
	if StrError(curl.OK) == "" {
		t.Error("StrError(OK) empty")
	}
	if StrError(curl.ErrAgain) != curl.StrError(curl.ErrAgain) {
		t.Error("StrError must be the engine's lookup")
	}
}
