// Package easy implements the handle adapter: the bridge between a
// dynamically typed scripting host and a native transfer engine's typed
// option slots, out-parameters and synchronous callback trampolines.
//
// An Easy owns exactly one engine handle plus every allocation the engine
// requires to outlive the call that created it. Configuration goes through
// SetOpt, which classifies the symbolic option, validates the host value for
// its class and only then calls into the engine; introspection goes through
// GetInfo, which always returns a status code paired with a converted value.
// Engine status codes are data, never Go errors. Host misuse (closed handle,
// wrong value type, malformed multipart descriptor) fails with a descriptive
// error before the engine is ever called.
//
// Callback-valued options install the adapter's fixed trampolines into the
// engine and keep the host callable in a registry. Trampolines run
// synchronously inside the engine's call stack; an error raised by a host
// callable cannot unwind through engine frames, so it is either captured in
// a deferred slot (while a multi-handle scheduler owns the handle, drained
// via TakeCallbackError) or returned from the Perform call that triggered
// the transfer.
//
// The socket monitor bridges the handle's active socket to an external
// readiness loop (package poller) and redelivers readiness to a host
// listener. At most one monitor exists per handle; deregistration completes
// asynchronously.
//
// An Easy is single-threaded by contract, matching the engine: no method is
// safe for concurrent use, and callbacks fire on the caller's goroutine.
package easy
