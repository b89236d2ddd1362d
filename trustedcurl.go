package trustedcurl

import (
	"github.com/TrustedPlus/trusted-curl/curl"
	"github.com/TrustedPlus/trusted-curl/form"
)

// Callback function types installed into an engine handle's callback slots.
// The engine invokes these synchronously, nested inside the call that drives
// the transfer; they must return without suspending.
type (
	// WriteFunc receives one chunk of body or header data and returns the
	// number of bytes it consumed. Returning anything other than len(data)
	// aborts the transfer.
	WriteFunc func(data []byte) int

	// ChunkBgnFunc is invoked before each entry of a wildcard transfer.
	ChunkBgnFunc func(info curl.FileInfo, remains int) int

	// ChunkEndFunc is invoked after each entry of a wildcard transfer.
	ChunkEndFunc func() int

	// DebugFunc receives trace output of the given kind.
	DebugFunc func(kind curl.InfoType, data []byte) int

	// FnMatchFunc matches a wildcard pattern against a name.
	FnMatchFunc func(pattern, s string) int

	// ProgressFunc receives transfer progress in floating point counts.
	// A non-zero return aborts the transfer.
	ProgressFunc func(dltotal, dlnow, ultotal, ulnow float64) int

	// XferInfoFunc is the wide-integer progress form.
	XferInfoFunc func(dltotal, dlnow, ultotal, ulnow int64) int

	// TrailerFunc may append outgoing trailer headers to list before the
	// request body ends. The engine owns the resulting list.
	TrailerFunc func(list **curl.SList) int
)

// Handle is one transfer execution context inside the engine. It is the
// C-style easy handle expressed as typed option slots: each setter mirrors
// one transfer type of the engine's variadic option call, and each getter
// mirrors one typed out-parameter of the info call.
//
// A Handle is exclusively owned by its adapter and is not safe for
// concurrent use.
type Handle interface {
	// SetString installs a string-valued option; nil clears it. The engine
	// copies the value during the call.
	SetString(opt curl.Option, value *string) curl.Code

	// SetInt installs an integer/enum option at native width.
	SetInt(opt curl.Option, value int64) curl.Code

	// SetOff installs a wide-range integer option.
	SetOff(opt curl.Option, value int64) curl.Code

	// SetList installs a linked string list; nil clears it. The engine
	// keeps the pointer: the caller must keep the list alive until the
	// handle is released and free it afterwards.
	SetList(opt curl.Option, list *curl.SList) curl.Code

	// SetForm installs a structured multipart body. Same lifetime contract
	// as SetList.
	SetForm(opt curl.Option, body *form.Form) curl.Code

	// SetPointer installs an opaque user-data value; nil clears it.
	SetPointer(opt curl.Option, p any) curl.Code

	// SetFunc installs a callback into a slot; nil clears it. The value
	// must be the typed callback function for that slot.
	SetFunc(opt curl.Option, fn any) curl.Code

	GetString(info curl.Info) (string, curl.Code)
	GetDouble(info curl.Info) (float64, curl.Code)
	GetLong(info curl.Info) (int64, curl.Code)
	GetOff(info curl.Info) (int64, curl.Code)
	GetSocket(info curl.Info) (curl.Socket, curl.Code)

	// GetList returns a freshly allocated list the caller must free.
	GetList(info curl.Info) (*curl.SList, curl.Code)

	// Perform runs the transfer to completion, invoking installed
	// callbacks from inside the call.
	Perform() curl.Code

	// Send attempts one non-blocking raw write on the connected socket.
	Send(p []byte) (n int, code curl.Code)

	// Recv attempts one non-blocking raw read on the connected socket.
	Recv(p []byte) (n int, code curl.Code)

	// Cleanup releases the handle. Must be called exactly once.
	Cleanup()
}

// Engine creates transfer handles. The production engine wraps the native
// transfer library; package engine provides an in-memory loopback
// implementation for tests and tooling.
type Engine interface {
	// Version reports the engine release, used to gate identifiers that
	// only exist above certain versions.
	Version() curl.Version

	NewHandle() (Handle, error)
}
