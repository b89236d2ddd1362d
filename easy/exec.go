package easy

import (
	"github.com/TrustedPlus/trusted-curl/curl"
	"github.com/TrustedPlus/trusted-curl/errors"
)

// Perform runs the transfer to completion, blocking the caller. Installed
// callbacks fire synchronously from inside this call. The returned code is
// the engine's verdict; the error carries a callback failure that must
// propagate immediately because no scheduler owns the handle.
func (e *Easy) Perform() (curl.Code, error) {
	if !e.isOpen {
		return curl.OK, errors.ClosedHandle(errors.PhaseIO)
	}

	// Fresh transfer, fresh abort latch and error slots.
	e.progressAborted = false
	e.performError = nil

	code := e.handle.Perform()

	err := e.performError
	e.performError = nil
	return code, err
}

// Send attempts one non-blocking raw write on the handle's connected
// socket. A "would block" condition is the ErrAgain code, not an error.
func (e *Easy) Send(p []byte) (int, curl.Code, error) {
	if !e.isOpen {
		return 0, curl.OK, errors.ClosedHandle(errors.PhaseIO)
	}
	n, code := e.handle.Send(p)
	return n, code, nil
}

// Recv attempts one non-blocking raw read into p.
func (e *Easy) Recv(p []byte) (int, curl.Code, error) {
	if !e.isOpen {
		return 0, curl.OK, errors.ClosedHandle(errors.PhaseIO)
	}
	n, code := e.handle.Recv(p)
	return n, code, nil
}
