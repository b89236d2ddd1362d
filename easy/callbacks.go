package easy

import (
	trustedcurl "github.com/TrustedPlus/trusted-curl"
	"github.com/TrustedPlus/trusted-curl/curl"
	"github.com/TrustedPlus/trusted-curl/errors"
	"github.com/TrustedPlus/trusted-curl/host"
)

// asCallable accepts the host callable under either its named type or the
// raw function shape.
func asCallable(v any) (host.Callable, bool) {
	switch f := v.(type) {
	case host.Callable:
		return f, f != nil
	case func(args ...any) (any, error):
		return f, f != nil
	}
	return nil, false
}

// dataSlotFor maps a callback slot to the user-data option the engine pairs
// with it. Not every slot carries one: the write and header slots are wired
// at construction.
func dataSlotFor(opt curl.Option) (curl.Option, bool) {
	switch opt {
	case curl.OptChunkBgnFunction, curl.OptChunkEndFunction:
		return curl.OptChunkData, true
	case curl.OptProgressFunction, curl.OptXferInfoFunction:
		return curl.OptProgressData, true
	case curl.OptFnMatchFunction:
		return curl.OptFnMatchData, true
	case curl.OptDebugFunction:
		return curl.OptDebugData, true
	case curl.OptTrailerFunction:
		return curl.OptTrailerData, true
	}
	return 0, false
}

// sharedSlotPartner returns the other callback slot sharing opt's user-data
// option, if any. The shared slot may only be cleared once both are unset.
func sharedSlotPartner(opt curl.Option) (curl.Option, bool) {
	switch opt {
	case curl.OptChunkBgnFunction:
		return curl.OptChunkEndFunction, true
	case curl.OptChunkEndFunction:
		return curl.OptChunkBgnFunction, true
	case curl.OptProgressFunction:
		return curl.OptXferInfoFunction, true
	case curl.OptXferInfoFunction:
		return curl.OptProgressFunction, true
	}
	return 0, false
}

func (e *Easy) setFunctionOption(desc curl.OptionDesc, value any) (curl.Code, error) {
	clearing := host.IsNil(value)

	var cb host.Callable
	if !clearing {
		var ok bool
		cb, ok = asCallable(value)
		if !ok {
			return curl.OK, errors.TypeMismatch(errors.PhaseSetopt, desc.Name, "a callable or null", value)
		}
	}

	// The write and header trampolines are installed unconditionally at
	// construction, so these two slots never touch the engine here.
	if desc.Option == curl.OptWriteFunction || desc.Option == curl.OptHeaderFunction {
		if clearing {
			delete(e.callbacks, desc.Option)
		} else {
			e.callbacks[desc.Option] = cb
		}
		return curl.OK, nil
	}

	if clearing {
		code := e.handle.SetFunc(desc.Option, nil)
		if code != curl.OK {
			return code, nil
		}
		delete(e.callbacks, desc.Option)
		e.clearUserData(desc.Option)
		return curl.OK, nil
	}

	code := e.handle.SetFunc(desc.Option, e.trampolineFor(desc.Option))
	if code != curl.OK {
		return code, nil
	}
	if data, ok := dataSlotFor(desc.Option); ok {
		if c := e.handle.SetPointer(data, e); c != curl.OK {
			// Keep registry and engine consistent: undo the function.
			e.handle.SetFunc(desc.Option, nil)
			return c, nil
		}
	}
	e.callbacks[desc.Option] = cb
	return curl.OK, nil
}

// clearUserData releases the user-data slot paired with opt, unless a
// partner callback sharing that slot is still registered.
func (e *Easy) clearUserData(opt curl.Option) {
	data, ok := dataSlotFor(opt)
	if !ok {
		return
	}
	if partner, shared := sharedSlotPartner(opt); shared {
		if _, still := e.callbacks[partner]; still {
			return
		}
	}
	e.handle.SetPointer(data, nil)
}

func (e *Easy) trampolineFor(opt curl.Option) any {
	switch opt {
	case curl.OptChunkBgnFunction:
		return trustedcurl.ChunkBgnFunc(e.chunkBgnTrampoline)
	case curl.OptChunkEndFunction:
		return trustedcurl.ChunkEndFunc(e.chunkEndTrampoline)
	case curl.OptDebugFunction:
		return trustedcurl.DebugFunc(e.debugTrampoline)
	case curl.OptFnMatchFunction:
		return trustedcurl.FnMatchFunc(e.fnMatchTrampoline)
	case curl.OptProgressFunction:
		return trustedcurl.ProgressFunc(e.progressTrampoline)
	case curl.OptXferInfoFunction:
		return trustedcurl.XferInfoFunc(e.xferInfoTrampoline)
	case curl.OptTrailerFunction:
		return trustedcurl.TrailerFunc(e.trailerTrampoline)
	}
	return nil
}

// routeCallbackError implements the deferred-vs-immediate contract: while a
// scheduler owns the handle the error lands in the deferred slot for the
// scheduler to drain; otherwise the Perform call that triggered the
// transfer surfaces it. The engine itself only ever sees the slot's failure
// sentinel.
func (e *Easy) routeCallbackError(err error) {
	if e.insideMulti {
		e.callbackError = err
	} else {
		e.performError = err
	}
}

// invokeInt32 runs the registered callable for slot and coerces its return
// value to the 32-bit encoding every integer-returning slot uses. Any host
// failure is routed and answered with the slot's failure sentinel.
func (e *Easy) invokeInt32(slot curl.Option, fail int32, args ...any) int32 {
	cb := e.callbacks[slot]
	if cb == nil {
		// Trampoline without a registry entry is a programming defect,
		// not a user error.
		return fail
	}
	ret, err := cb(args...)
	if err != nil {
		e.routeCallbackError(errors.CallbackFailed(curl.OptionName(slot), err))
		return fail
	}
	n, err := host.ToInt32(ret)
	if err != nil {
		e.routeCallbackError(errors.TypeMismatch(errors.PhaseCallback, curl.OptionName(slot), "an integer", ret))
		return fail
	}
	return n
}

// writeTrampoline delivers one body chunk. Falls back to OnData when no
// WRITEFUNCTION callable is registered; with neither, data is consumed and
// discarded. The buffer is copied because the native memory is only valid
// for the duration of the call.
func (e *Easy) writeTrampoline(data []byte) int {
	return e.deliverChunk(curl.OptWriteFunction, e.OnData, data)
}

func (e *Easy) headerTrampoline(data []byte) int {
	return e.deliverChunk(curl.OptHeaderFunction, e.OnHeader, data)
}

func (e *Easy) deliverChunk(slot curl.Option, fallback host.Callable, data []byte) int {
	cb := e.callbacks[slot]
	if cb == nil {
		cb = fallback
	}
	if cb == nil {
		return len(data)
	}

	buf := append([]byte(nil), data...)
	ret, err := cb(buf)
	if err != nil {
		e.routeCallbackError(errors.CallbackFailed(curl.OptionName(slot), err))
		return -1
	}
	n, err := host.ToInt32(ret)
	if err != nil {
		e.routeCallbackError(errors.TypeMismatch(errors.PhaseCallback, curl.OptionName(slot), "a byte count", ret))
		return -1
	}
	return int(n)
}

func (e *Easy) chunkBgnTrampoline(info curl.FileInfo, remains int) int {
	return int(e.invokeInt32(curl.OptChunkBgnFunction, curl.ChunkBgnFuncFail, fileInfoValue(info), remains))
}

func (e *Easy) chunkEndTrampoline() int {
	return int(e.invokeInt32(curl.OptChunkEndFunction, curl.ChunkEndFuncFail))
}

func (e *Easy) debugTrampoline(kind curl.InfoType, data []byte) int {
	buf := append([]byte(nil), data...)
	return int(e.invokeInt32(curl.OptDebugFunction, 0, int32(kind), buf))
}

func (e *Easy) fnMatchTrampoline(pattern, s string) int {
	return int(e.invokeInt32(curl.OptFnMatchFunction, curl.FnMatchFuncFail, pattern, s))
}

// progressTrampoline consults the one-shot abort latch before re-entering
// host code: once an abort has been signaled during a transfer, the engine
// keeps asking but the host must not be called again, and the engine is
// answered with the continue sentinel.
func (e *Easy) progressTrampoline(dltotal, dlnow, ultotal, ulnow float64) int {
	if e.progressAborted {
		return 0
	}
	n := e.invokeInt32(curl.OptProgressFunction, 1, dltotal, dlnow, ultotal, ulnow)
	if n != 0 {
		e.progressAborted = true
	}
	return int(n)
}

func (e *Easy) xferInfoTrampoline(dltotal, dlnow, ultotal, ulnow int64) int {
	if e.progressAborted {
		return 0
	}
	n := e.invokeInt32(curl.OptXferInfoFunction, 1, dltotal, dlnow, ultotal, ulnow)
	if n != 0 {
		e.progressAborted = true
	}
	return int(n)
}

// trailerTrampoline asks the host for outgoing trailer headers. The host
// returns false to abort, or an ordered sequence of strings appended to the
// engine-owned list; the adapter does not retain that list.
func (e *Easy) trailerTrampoline(list **curl.SList) int {
	cb := e.callbacks[curl.OptTrailerFunction]
	if cb == nil {
		return curl.TrailerFuncAbort
	}
	ret, err := cb()
	if err != nil {
		e.routeCallbackError(errors.CallbackFailed(curl.OptionName(curl.OptTrailerFunction), err))
		return curl.TrailerFuncAbort
	}
	if b, ok := ret.(bool); ok && !b {
		return curl.TrailerFuncAbort
	}
	strs, err := host.ToStrings(ret)
	if err != nil {
		e.routeCallbackError(errors.TypeMismatch(errors.PhaseCallback,
			curl.OptionName(curl.OptTrailerFunction), "false or an ordered sequence of strings", ret))
		return curl.TrailerFuncAbort
	}
	for _, s := range strs {
		*list = (*list).Append(s)
	}
	return curl.TrailerFuncOK
}

// fileInfoValue converts a wildcard directory entry to the host shape.
// Absent textual forms become null rather than empty strings.
func fileInfoValue(info curl.FileInfo) map[string]any {
	optional := func(s string) any {
		if s == "" {
			return nil
		}
		return s
	}
	return map[string]any{
		"name":      info.Filename,
		"type":      int32(info.Filetype),
		"time":      info.Time,
		"perm":      info.Perm,
		"uid":       info.UID,
		"gid":       info.GID,
		"size":      info.Size,
		"hardlinks": info.Hardlinks,
		"strings": map[string]any{
			"time":   optional(info.Strings.Time),
			"perm":   optional(info.Strings.Perm),
			"user":   optional(info.Strings.User),
			"group":  optional(info.Strings.Group),
			"target": optional(info.Strings.Target),
		},
	}
}
