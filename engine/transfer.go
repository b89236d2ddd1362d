package engine

import (
	trustedcurl "github.com/TrustedPlus/trusted-curl"
	"github.com/TrustedPlus/trusted-curl/curl"
)

// Perform replays the installed script through the handle's callback slots,
// in the order a real transfer would: debug trace, wildcard chunk pairs,
// headers, body, progress, trailer. The first abort or failure a callback
// signals stops the transfer with the matching engine code.
func (h *Handle) Perform() curl.Code {
	if h.closed() {
		return curl.ErrFailedInit
	}

	h.SentTrailers = nil

	if fn, ok := h.funcs[curl.OptDebugFunction].(trustedcurl.DebugFunc); ok {
		for _, ev := range h.script.Debug {
			fn(ev.Kind, ev.Data)
		}
	}

	for i, file := range h.script.Files {
		bgn, _ := h.funcs[curl.OptChunkBgnFunction].(trustedcurl.ChunkBgnFunc)
		if bgn != nil {
			switch bgn(file, len(h.script.Files)-i) {
			case curl.ChunkBgnFuncOK:
			case curl.ChunkBgnFuncSkip:
				continue
			default:
				return curl.ErrChunkFailed
			}
		}
		end, _ := h.funcs[curl.OptChunkEndFunction].(trustedcurl.ChunkEndFunc)
		if end != nil && end() != curl.ChunkEndFuncOK {
			return curl.ErrChunkFailed
		}
	}

	if fn, ok := h.funcs[curl.OptHeaderFunction].(trustedcurl.WriteFunc); ok {
		for _, header := range h.script.Headers {
			data := []byte(header)
			if fn(data) != len(data) {
				return curl.ErrWriteError
			}
		}
	}

	for _, chunk := range h.script.Body {
		fn, ok := h.funcs[curl.OptWriteFunction].(trustedcurl.WriteFunc)
		if !ok {
			break
		}
		if fn(chunk) != len(chunk) {
			return curl.ErrWriteError
		}
	}

	for i := 0; i < h.script.ProgressTicks; i++ {
		now := h.script.TotalBytes * int64(i+1) / int64(h.script.ProgressTicks)
		if fn, ok := h.funcs[curl.OptXferInfoFunction].(trustedcurl.XferInfoFunc); ok {
			if fn(h.script.TotalBytes, now, 0, 0) != 0 {
				return curl.ErrAbortedByCallback
			}
			continue
		}
		if fn, ok := h.funcs[curl.OptProgressFunction].(trustedcurl.ProgressFunc); ok {
			if fn(float64(h.script.TotalBytes), float64(now), 0, 0) != 0 {
				return curl.ErrAbortedByCallback
			}
		}
	}

	if h.script.WantTrailer {
		if fn, ok := h.funcs[curl.OptTrailerFunction].(trustedcurl.TrailerFunc); ok {
			var trailers *curl.SList
			if fn(&trailers) != curl.TrailerFuncOK {
				trailers.FreeAll()
				return curl.ErrAbortedByCallback
			}
			h.SentTrailers = trailers.Strings()
			trailers.FreeAll()
		}
	}

	return h.script.Result
}

// Send implements trustedcurl.Handle.
func (h *Handle) Send(p []byte) (int, curl.Code) {
	if h.closed() {
		return 0, curl.ErrFailedInit
	}
	if h.sendCode != curl.OK {
		return 0, h.sendCode
	}
	h.sent = append(h.sent, append([]byte(nil), p...))
	return len(p), curl.OK
}

// Recv implements trustedcurl.Handle. An empty queue reports the
// would-block code.
func (h *Handle) Recv(p []byte) (int, curl.Code) {
	if h.closed() {
		return 0, curl.ErrFailedInit
	}
	if len(h.recvQueue) == 0 {
		return 0, curl.ErrAgain
	}
	chunk := h.recvQueue[0]
	n := copy(p, chunk)
	if n < len(chunk) {
		h.recvQueue[0] = chunk[n:]
	} else {
		h.recvQueue = h.recvQueue[1:]
	}
	return n, curl.OK
}

// GetString implements trustedcurl.Handle. The effective URL defaults to
// the configured URL option when the script did not set one, matching a
// transfer that saw no redirects.
func (h *Handle) GetString(info curl.Info) (string, curl.Code) {
	if h.closed() {
		return "", curl.ErrFailedInit
	}
	if s, ok := h.infoStrings[info]; ok {
		return s, curl.OK
	}
	if info == curl.InfoEffectiveURL {
		return h.strings[curl.OptURL], curl.OK
	}
	return "", curl.OK
}

// GetDouble implements trustedcurl.Handle.
func (h *Handle) GetDouble(info curl.Info) (float64, curl.Code) {
	if h.closed() {
		return 0, curl.ErrFailedInit
	}
	return h.infoDoubles[info], curl.OK
}

// GetLong implements trustedcurl.Handle.
func (h *Handle) GetLong(info curl.Info) (int64, curl.Code) {
	if h.closed() {
		return 0, curl.ErrFailedInit
	}
	return h.infoLongs[info], curl.OK
}

// GetOff implements trustedcurl.Handle.
func (h *Handle) GetOff(info curl.Info) (int64, curl.Code) {
	if h.closed() {
		return 0, curl.ErrFailedInit
	}
	return h.infoOffs[info], curl.OK
}

// GetSocket implements trustedcurl.Handle.
func (h *Handle) GetSocket(info curl.Info) (curl.Socket, curl.Code) {
	if h.closed() {
		return curl.SocketBad, curl.ErrFailedInit
	}
	if info != curl.InfoActiveSocket {
		return curl.SocketBad, curl.ErrBadFunctionArgument
	}
	return h.activeSocket, curl.OK
}

// GetList implements trustedcurl.Handle. The returned list is freshly
// allocated; the caller frees it.
func (h *Handle) GetList(info curl.Info) (*curl.SList, curl.Code) {
	if h.closed() {
		return nil, curl.ErrFailedInit
	}
	var list *curl.SList
	for _, s := range h.infoLists[info] {
		list = list.Append(s)
	}
	return list, curl.OK
}

// Cleanup implements trustedcurl.Handle. Cleanups are counted so tests can
// assert exactly-once release.
func (h *Handle) Cleanup() {
	h.cleanups++
}
