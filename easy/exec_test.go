package easy

import (
	"testing"

	"github.com/TrustedPlus/trusted-curl/curl"
	"github.com/TrustedPlus/trusted-curl/engine"
)

func TestPerformReturnsEngineCode(t *testing.T) {
	e, lh := newTestEasy(t)

	lh.SetScript(engine.Script{Result: curl.ErrCouldntConnect})
	code, err := e.Perform()
	if err != nil {
		t.Fatalf("engine failure is data, got error %v", err)
	}
	if code != curl.ErrCouldntConnect {
		t.Errorf("code = %v", code)
	}
}

func TestSendRecvPassThrough(t *testing.T) {
	e, lh := newTestEasy(t)

	n, code, err := e.Send([]byte("ping"))
	if err != nil || code != curl.OK || n != 4 {
		t.Fatalf("Send = %d, %v, %v", n, code, err)
	}

	buf := make([]byte, 8)
	_, code, err = e.Recv(buf)
	if err != nil {
		t.Fatal(err)
	}
	if code != curl.ErrAgain {
		t.Errorf("empty Recv code = %v, want would-block as data", code)
	}

	lh.QueueRecv([]byte("pong"))
	n, code, err = e.Recv(buf)
	if err != nil || code != curl.OK || string(buf[:n]) != "pong" {
		t.Fatalf("Recv = %q, %v, %v", buf[:n], code, err)
	}
}

func TestSendWouldBlockIsData(t *testing.T) {
	e, lh := newTestEasy(t)

	lh.SetSendCode(curl.ErrAgain)
	n, code, err := e.Send([]byte("x"))
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 || code != curl.ErrAgain {
		t.Errorf("Send = %d, %v", n, code)
	}
}
