package easy

import (
	"go.uber.org/zap"

	"github.com/TrustedPlus/trusted-curl/curl"
	"github.com/TrustedPlus/trusted-curl/errors"
	"github.com/TrustedPlus/trusted-curl/host"
	"github.com/TrustedPlus/trusted-curl/poller"
)

// socketMonitor bridges the handle's active socket to the readiness loop.
// At most one exists per handle.
type socketMonitor struct {
	watch    poller.Watch
	socket   curl.Socket
	stopping bool
}

// OnSocketEvent registers the listener invoked on each readiness
// notification; nil clears it. The listener receives an error indicator
// (nil unless the loop reported an error condition) and the raw readiness
// bitmask. Its return value is ignored.
func (e *Easy) OnSocketEvent(cb host.Callable) error {
	if !e.isOpen {
		return errors.ClosedHandle(errors.PhaseMonitor)
	}
	e.socketListener = cb
	return nil
}

// MonitorSocketEvents queries the engine for the handle's active socket and
// registers it with the readiness loop for read and write readiness.
func (e *Easy) MonitorSocketEvents() error {
	if !e.isOpen {
		return errors.ClosedHandle(errors.PhaseMonitor)
	}
	if e.monitor != nil {
		return errors.AlreadyMonitoring()
	}
	if e.loop == nil {
		return errors.Registration(errors.PhaseMonitor, "no readiness loop attached", nil)
	}

	desc, _ := curl.ClassifyInfoID(curl.InfoActiveSocket, e.version)
	if desc.Class == curl.InfoNotImplemented {
		return errors.Registration(errors.PhaseMonitor,
			"engine release "+e.version.String()+" does not expose the active socket", nil)
	}

	sock, code := e.handle.GetSocket(curl.InfoActiveSocket)
	if code != curl.OK {
		return errors.Registration(errors.PhaseMonitor,
			"active socket query failed: "+curl.StrError(code), nil)
	}
	if sock == curl.SocketBad {
		return errors.BadSocket("handle has no active socket")
	}

	watch, err := e.loop.Add(uintptr(sock), poller.EventRead|poller.EventWrite, e.onSocketReadiness)
	if err != nil {
		return errors.Registration(errors.PhaseMonitor, "readiness loop registration failed", err)
	}

	e.monitor = &socketMonitor{watch: watch, socket: sock}
	Logger().Debug("socket monitor started",
		zap.Uint64("id", e.id),
		zap.Int64("socket", int64(sock)))
	return nil
}

// UnmonitorSocketEvents deregisters from the readiness loop. The transition
// back to unmonitored completes only when the loop confirms closure, which
// may happen after this call returns.
func (e *Easy) UnmonitorSocketEvents() error {
	if !e.isOpen {
		return errors.ClosedHandle(errors.PhaseMonitor)
	}
	m := e.monitor
	if m == nil || m.stopping {
		return errors.NotMonitoring()
	}

	m.stopping = true
	err := m.watch.Close(func() {
		if e.monitor == m {
			e.monitor = nil
		}
		Logger().Debug("socket monitor stopped", zap.Uint64("id", e.id))
	})
	if err != nil {
		// The watch is defunct once Close fails; no confirmation will
		// arrive. Drop the monitor so the handle can register a new one.
		if e.monitor == m {
			e.monitor = nil
		}
		return errors.Registration(errors.PhaseMonitor, "readiness loop deregistration failed", err)
	}
	return nil
}

// IsMonitoringSockets reports whether a monitor is active (including one
// whose deregistration has not yet been confirmed).
func (e *Easy) IsMonitoringSockets() bool {
	return e.monitor != nil
}

// onSocketReadiness redelivers one readiness notification to the host
// listener. Fire-and-forget: no return value conversion, no error routing.
func (e *Easy) onSocketReadiness(ev poller.Events) {
	cb := e.socketListener
	if cb == nil {
		return
	}
	var errArg any
	if ev&poller.EventError != 0 {
		errArg = errors.New(errors.PhaseMonitor, errors.KindBadSocket).
			Detail("readiness loop reported an error condition on the socket").
			Build()
	}
	_, _ = cb(errArg, uint32(ev))
}
