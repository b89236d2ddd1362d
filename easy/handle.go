package easy

import (
	"go.uber.org/zap"

	trustedcurl "github.com/TrustedPlus/trusted-curl"
	"github.com/TrustedPlus/trusted-curl/curl"
	"github.com/TrustedPlus/trusted-curl/errors"
	"github.com/TrustedPlus/trusted-curl/host"
	"github.com/TrustedPlus/trusted-curl/poller"
)

// Easy adapts one engine handle to the host. See the package documentation
// for the ownership and threading contract.
type Easy struct {
	engine  trustedcurl.Engine
	handle  trustedcurl.Handle
	version curl.Version
	loop    poller.Loop

	id     uint64
	isOpen bool

	// Scheduler ownership. While true, callback errors are deferred into
	// callbackError instead of surfacing from Perform, and Close is
	// rejected.
	insideMulti   bool
	callbackError error

	// Immediate-propagation slot, consumed by the Perform call that
	// triggered the failing callback.
	performError error

	// One-shot abort latch shared by the progress and transfer-progress
	// slots, reset at the start of each Perform.
	progressAborted bool

	callbacks map[curl.Option]host.Callable
	retained  *retainedStore

	// READDATA is intercepted client-side; the descriptor never reaches
	// the engine.
	readDataFD int64
	hasReadFD  bool

	// OnData and OnHeader receive body and header chunks when no
	// WRITEFUNCTION/HEADERFUNCTION callable is registered.
	OnData   host.Callable
	OnHeader host.Callable

	socketListener host.Callable
	monitor        *socketMonitor
}

// New opens a handle on the engine and installs the required write and
// header trampolines.
func New(eng trustedcurl.Engine) (*Easy, error) {
	h, err := eng.NewHandle()
	if err != nil {
		return nil, errors.Registration(errors.PhaseLifecycle, "engine could not open a handle", err)
	}

	e := &Easy{
		engine:    eng,
		handle:    h,
		version:   eng.Version(),
		id:        nextID(),
		isOpen:    true,
		callbacks: make(map[curl.Option]host.Callable),
		retained:  newRetainedStore(),
	}

	for _, install := range []struct {
		fn   curl.Option
		data curl.Option
		f    any
	}{
		{curl.OptWriteFunction, curl.OptWriteData, trustedcurl.WriteFunc(e.writeTrampoline)},
		{curl.OptHeaderFunction, curl.OptHeaderData, trustedcurl.WriteFunc(e.headerTrampoline)},
	} {
		if code := h.SetFunc(install.fn, install.f); code != curl.OK {
			h.Cleanup()
			return nil, errors.Registration(errors.PhaseLifecycle,
				"engine rejected a required callback: "+curl.StrError(code), nil)
		}
		if code := h.SetPointer(install.data, e); code != curl.OK {
			h.Cleanup()
			return nil, errors.Registration(errors.PhaseLifecycle,
				"engine rejected required user data: "+curl.StrError(code), nil)
		}
	}

	openHandles.Add(1)
	Logger().Debug("handle opened",
		zap.Uint64("id", e.id),
		zap.String("engine", e.version.String()))
	return e, nil
}

// SetReadinessLoop attaches the external readiness loop the socket monitor
// registers with. Must be set before MonitorSocketEvents.
func (e *Easy) SetReadinessLoop(loop poller.Loop) {
	e.loop = loop
}

// ID returns the handle's monotonically assigned identifier.
func (e *Easy) ID() uint64 { return e.id }

// IsOpen reports whether the handle is still usable.
func (e *Easy) IsOpen() bool { return e.isOpen }

// Is reports whether other wraps the same engine handle.
func (e *Easy) Is(other *Easy) bool {
	return other != nil && e.handle == other.handle
}

// IsInsideMultiHandle reports scheduler ownership.
func (e *Easy) IsInsideMultiHandle() bool { return e.insideMulti }

// SetInsideMultiHandle is called by the scheduler collaborator when it takes
// or releases ownership of the handle.
func (e *Easy) SetInsideMultiHandle(v bool) { e.insideMulti = v }

// TakeCallbackError drains the deferred-error slot. The scheduler is
// expected to call this after each driven step.
func (e *Easy) TakeCallbackError() error {
	err := e.callbackError
	e.callbackError = nil
	return err
}

// EngineHandle exposes the underlying engine handle for external
// collaborators such as the multi-handle scheduler. Callers must not
// release it; the adapter owns its lifetime.
func (e *Easy) EngineHandle() trustedcurl.Handle { return e.handle }

// ReadDataFD returns the intercepted READDATA descriptor, if one was set.
func (e *Easy) ReadDataFD() (int64, bool) {
	return e.readDataFD, e.hasReadFD
}

// Close releases the engine handle and every retained allocation. Closing
// while a scheduler owns the handle is rejected; detach it first.
func (e *Easy) Close() error {
	if !e.isOpen {
		return errors.ClosedHandle(errors.PhaseLifecycle)
	}
	if e.insideMulti {
		return errors.InsideMulti()
	}

	e.handle.Cleanup()
	if e.monitor != nil {
		_ = e.monitor.watch.Close(nil)
		e.monitor = nil
	}
	e.isOpen = false
	e.callbackError = nil
	e.performError = nil
	e.retained.releaseAll()
	e.callbacks = make(map[curl.Option]host.Callable)
	e.socketListener = nil

	openHandles.Add(-1)
	Logger().Debug("handle closed", zap.Uint64("id", e.id))
	return nil
}

// StrError maps an engine status code to its human-readable message.
func StrError(code curl.Code) string {
	return curl.StrError(code)
}
