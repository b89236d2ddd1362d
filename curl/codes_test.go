package curl

import (
	"strings"
	"testing"
)

func TestCodeValues(t *testing.T) {
	// Spot checks pinning the iota block to the engine's numbering.
	tests := []struct {
		code Code
		want int32
	}{
		{OK, 0},
		{ErrUnsupportedProtocol, 1},
		{ErrURLMalformat, 3},
		{ErrWriteError, 23},
		{ErrReadError, 26},
		{ErrOperationTimedout, 28},
		{ErrAbortedByCallback, 42},
		{ErrBadFunctionArgument, 43},
		{ErrUnknownOption, 48},
		{ErrAgain, 81},
		{ErrChunkFailed, 88},
		{ErrConversionFailed, 1000},
	}
	for _, tt := range tests {
		if int32(tt.code) != tt.want {
			t.Errorf("%v = %d, want %d", tt.code, int32(tt.code), tt.want)
		}
	}
}

func TestStrError(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want string
	}{
		{"ok", OK, "No error"},
		{"unknown option", ErrUnknownOption, "An unknown option was passed in to libcurl"},
		{"again", ErrAgain, "Socket not ready for send/recv"},
		{"conversion failed", ErrConversionFailed, "Retrieved value could not be converted to a host value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StrError(tt.code); got != tt.want {
				t.Errorf("StrError(%d) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestStrErrorUnknownCode(t *testing.T) {
	got := StrError(Code(4242))
	if !strings.Contains(got, "4242") {
		t.Errorf("StrError for unknown code should name the code, got %q", got)
	}
}

func TestStrErrorCoversAllCodes(t *testing.T) {
	for _, c := range Codes() {
		msg := StrError(c)
		if msg == "" {
			t.Errorf("StrError(%d) is empty", c)
		}
		if strings.Contains(msg, "Unknown error code") {
			t.Errorf("listed code %d has no message", c)
		}
	}
}

func TestStrErrorStability(t *testing.T) {
	// Messages are part of the host-visible surface; same code, same string.
	for _, c := range Codes() {
		if StrError(c) != StrError(c) {
			t.Fatalf("StrError(%d) is not stable", c)
		}
	}
}
