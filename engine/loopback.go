package engine

import (
	"go.uber.org/zap"

	trustedcurl "github.com/TrustedPlus/trusted-curl"
	"github.com/TrustedPlus/trusted-curl/curl"
	"github.com/TrustedPlus/trusted-curl/form"
)

// Loopback is an in-memory transfer engine. Transfers are scripted: the
// caller decides up front which headers, body chunks, progress ticks and
// trailer requests a Perform delivers, and the handle replays them through
// whatever callbacks are installed. It exists so the adapter and tools can
// run without the native engine.
type Loopback struct {
	version curl.Version
}

// NewLoopback returns an engine reporting a recent release, so no
// version-gated identifier is rejected by default.
func NewLoopback() *Loopback {
	return &Loopback{version: curl.MakeVersion(7, 79, 1)}
}

// SetVersion overrides the reported engine release.
func (l *Loopback) SetVersion(v curl.Version) { l.version = v }

// Version implements trustedcurl.Engine.
func (l *Loopback) Version() curl.Version { return l.version }

// NewHandle implements trustedcurl.Engine.
func (l *Loopback) NewHandle() (trustedcurl.Handle, error) {
	Logger().Debug("loopback handle created", zap.String("version", l.version.String()))
	return newHandle(), nil
}

// DebugEvent is one scripted debug-trace emission.
type DebugEvent struct {
	Kind curl.InfoType
	Data []byte
}

// Script drives one Perform on a loopback handle.
type Script struct {
	// Headers are delivered one per header-callback invocation.
	Headers []string

	// Body chunks are delivered one per write-callback invocation.
	Body [][]byte

	// Files wraps the transfer in wildcard chunk-begin/chunk-end calls,
	// one pair per entry.
	Files []curl.FileInfo

	// ProgressTicks is how many progress callbacks fire; TotalBytes is
	// the download total they report.
	ProgressTicks int
	TotalBytes    int64

	// WantTrailer asks the trailer callback for outgoing headers.
	WantTrailer bool

	Debug []DebugEvent

	// Result is the code Perform returns when the script runs through.
	Result curl.Code
}

// Handle is the loopback implementation of trustedcurl.Handle. Exported so
// tests can script transfers and observe installed state.
type Handle struct {
	strings  map[curl.Option]string
	ints     map[curl.Option]int64
	offs     map[curl.Option]int64
	lists    map[curl.Option]*curl.SList
	forms    map[curl.Option]*form.Form
	pointers map[curl.Option]any
	funcs    map[curl.Option]any

	infoStrings map[curl.Info]string
	infoLongs   map[curl.Info]int64
	infoDoubles map[curl.Info]float64
	infoOffs    map[curl.Info]int64
	infoLists   map[curl.Info][]string

	rejected map[curl.Option]bool

	activeSocket curl.Socket

	script Script

	sendCode  curl.Code
	sent      [][]byte
	recvQueue [][]byte

	// SentTrailers records what the trailer callback appended during the
	// last Perform.
	SentTrailers []string

	cleanups int
}

func newHandle() *Handle {
	return &Handle{
		strings:      make(map[curl.Option]string),
		ints:         make(map[curl.Option]int64),
		offs:         make(map[curl.Option]int64),
		lists:        make(map[curl.Option]*curl.SList),
		forms:        make(map[curl.Option]*form.Form),
		pointers:     make(map[curl.Option]any),
		funcs:        make(map[curl.Option]any),
		infoStrings:  make(map[curl.Info]string),
		infoLongs:    make(map[curl.Info]int64),
		infoDoubles:  make(map[curl.Info]float64),
		infoOffs:     make(map[curl.Info]int64),
		infoLists:    make(map[curl.Info][]string),
		rejected:     make(map[curl.Option]bool),
		activeSocket: curl.SocketBad,
	}
}

func (h *Handle) closed() bool { return h.cleanups > 0 }

// RejectOption makes every subsequent install of opt fail with the
// engine's unknown-option code, simulating an engine release that does not
// know the option.
func (h *Handle) RejectOption(opt curl.Option) { h.rejected[opt] = true }

func (h *Handle) gate(opt curl.Option) (curl.Code, bool) {
	if h.closed() {
		return curl.ErrFailedInit, false
	}
	if h.rejected[opt] {
		return curl.ErrUnknownOption, false
	}
	return curl.OK, true
}

// SetString implements trustedcurl.Handle. The value is copied.
func (h *Handle) SetString(opt curl.Option, value *string) curl.Code {
	if code, ok := h.gate(opt); !ok {
		return code
	}
	if value == nil {
		delete(h.strings, opt)
		return curl.OK
	}
	h.strings[opt] = *value
	return curl.OK
}

// SetInt implements trustedcurl.Handle.
func (h *Handle) SetInt(opt curl.Option, value int64) curl.Code {
	if code, ok := h.gate(opt); !ok {
		return code
	}
	h.ints[opt] = value
	return curl.OK
}

// SetOff implements trustedcurl.Handle.
func (h *Handle) SetOff(opt curl.Option, value int64) curl.Code {
	if code, ok := h.gate(opt); !ok {
		return code
	}
	h.offs[opt] = value
	return curl.OK
}

// SetList implements trustedcurl.Handle. The pointer is kept, not copied;
// the caller owns the list's lifetime.
func (h *Handle) SetList(opt curl.Option, list *curl.SList) curl.Code {
	if code, ok := h.gate(opt); !ok {
		return code
	}
	if list == nil {
		delete(h.lists, opt)
		return curl.OK
	}
	h.lists[opt] = list
	return curl.OK
}

// SetForm implements trustedcurl.Handle.
func (h *Handle) SetForm(opt curl.Option, body *form.Form) curl.Code {
	if code, ok := h.gate(opt); !ok {
		return code
	}
	if body == nil {
		delete(h.forms, opt)
		return curl.OK
	}
	h.forms[opt] = body
	return curl.OK
}

// SetPointer implements trustedcurl.Handle.
func (h *Handle) SetPointer(opt curl.Option, p any) curl.Code {
	if code, ok := h.gate(opt); !ok {
		return code
	}
	if p == nil {
		delete(h.pointers, opt)
		return curl.OK
	}
	h.pointers[opt] = p
	return curl.OK
}

// SetFunc implements trustedcurl.Handle.
func (h *Handle) SetFunc(opt curl.Option, fn any) curl.Code {
	if code, ok := h.gate(opt); !ok {
		return code
	}
	if fn == nil {
		delete(h.funcs, opt)
		return curl.OK
	}
	h.funcs[opt] = fn
	return curl.OK
}

// Observation hooks for tests.

// StringOpt returns an installed string option.
func (h *Handle) StringOpt(opt curl.Option) (string, bool) {
	s, ok := h.strings[opt]
	return s, ok
}

// IntOpt returns an installed integer option (native or wide).
func (h *Handle) IntOpt(opt curl.Option) (int64, bool) {
	if n, ok := h.ints[opt]; ok {
		return n, true
	}
	n, ok := h.offs[opt]
	return n, ok
}

// ListOpt returns the installed list for opt.
func (h *Handle) ListOpt(opt curl.Option) *curl.SList { return h.lists[opt] }

// FormOpt returns the installed multipart body for opt.
func (h *Handle) FormOpt(opt curl.Option) *form.Form { return h.forms[opt] }

// Pointer returns the installed user-data value for opt.
func (h *Handle) Pointer(opt curl.Option) any { return h.pointers[opt] }

// HasFunc reports whether a callback is installed in opt's slot.
func (h *Handle) HasFunc(opt curl.Option) bool {
	_, ok := h.funcs[opt]
	return ok
}

// Cleanups returns how many times the handle was released.
func (h *Handle) Cleanups() int { return h.cleanups }

// Scripting hooks.

// SetScript installs the transfer script replayed by the next Perform.
func (h *Handle) SetScript(s Script) { h.script = s }

// SetInfoString scripts a string introspection value.
func (h *Handle) SetInfoString(info curl.Info, v string) { h.infoStrings[info] = v }

// SetInfoLong scripts an integer introspection value.
func (h *Handle) SetInfoLong(info curl.Info, v int64) { h.infoLongs[info] = v }

// SetInfoDouble scripts a floating-point introspection value.
func (h *Handle) SetInfoDouble(info curl.Info, v float64) { h.infoDoubles[info] = v }

// SetInfoOff scripts a wide-integer introspection value.
func (h *Handle) SetInfoOff(info curl.Info, v int64) { h.infoOffs[info] = v }

// SetInfoList scripts a list introspection value.
func (h *Handle) SetInfoList(info curl.Info, v []string) { h.infoLists[info] = v }

// SetActiveSocket scripts the socket the active-socket info reports.
func (h *Handle) SetActiveSocket(s curl.Socket) { h.activeSocket = s }

// SetSendCode forces Send to answer with code instead of accepting data.
func (h *Handle) SetSendCode(code curl.Code) { h.sendCode = code }

// QueueRecv appends one chunk the next Recv calls will drain.
func (h *Handle) QueueRecv(p []byte) {
	h.recvQueue = append(h.recvQueue, append([]byte(nil), p...))
}

// Sent returns everything accepted by Send.
func (h *Handle) Sent() [][]byte { return h.sent }
