package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseSetopt,
				Kind:   KindTypeMismatch,
				Option: "HTTPHEADER",
				Path:   []string{"fields", "0", "name"},
				Detail: "cannot convert",
			},
			contains: []string{"[setopt]", "type_mismatch", "HTTPHEADER", "fields.0.name", "cannot convert"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseGetinfo,
				Kind:  KindClosedHandle,
			},
			contains: []string{"[getinfo]", "closed_handle"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseMonitor,
				Kind:   KindRegistration,
				Detail: "loop rejected the descriptor",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[monitor]", "registration", "loop rejected the descriptor", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseCallback,
		Kind:  KindCallbackFailed,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	// Test with errors.Unwrap
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:  PhaseSetopt,
		Kind:   KindTypeMismatch,
		Option: "URL",
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseSetopt, Kind: KindTypeMismatch}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseGetinfo, Kind: KindTypeMismatch}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseSetopt, Kind: KindUnsupportedOption}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	target := &Error{Phase: PhaseSetopt, Kind: KindTypeMismatch}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestAsError(t *testing.T) {
	inner := TypeMismatch(PhaseSetopt, "VERBOSE", "a number", "yes")
	wrapped := Wrap(PhaseSetopt, KindInvalidInput, inner, "outer context")

	var got *Error
	if !AsError(wrapped, &got) {
		t.Fatal("AsError should extract a structured error")
	}
	if got.Kind != KindInvalidInput {
		t.Errorf("Kind = %v, want the outermost error", got.Kind)
	}

	if AsError(errors.New("plain"), &got) {
		t.Error("AsError should not match a plain error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseSetopt, KindTypeMismatch).
		Option("HTTPPOST").
		Path("fields", "2").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "string", "int").
		Build()

	if err.Phase != PhaseSetopt {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseSetopt)
	}
	if err.Kind != KindTypeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
	}
	if err.Option != "HTTPPOST" {
		t.Errorf("Option = %v, want HTTPPOST", err.Option)
	}
	if len(err.Path) != 2 || err.Path[0] != "fields" || err.Path[1] != "2" {
		t.Errorf("Path = %v, want [fields 2]", err.Path)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected string, got int" {
		t.Errorf("Detail = %v, want 'expected string, got int'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("ClosedHandle", func(t *testing.T) {
		err := ClosedHandle(PhaseIO)
		if err.Kind != KindClosedHandle {
			t.Errorf("Kind = %v, want %v", err.Kind, KindClosedHandle)
		}
		if err.Phase != PhaseIO {
			t.Errorf("Phase = %v, want %v", err.Phase, PhaseIO)
		}
	})

	t.Run("UnsupportedOption", func(t *testing.T) {
		err := UnsupportedOption(PhaseSetopt, "NO_SUCH_OPTION")
		if err.Kind != KindUnsupportedOption {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupportedOption)
		}
		if err.Option != "NO_SUCH_OPTION" {
			t.Errorf("Option = %v, want NO_SUCH_OPTION", err.Option)
		}
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		err := TypeMismatch(PhaseSetopt, "URL", "a string or null", 42)
		if err.Kind != KindTypeMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
		}
		if err.Value != 42 {
			t.Errorf("Value = %v, want 42", err.Value)
		}
		if !strings.Contains(err.Detail, "a string or null") || !strings.Contains(err.Detail, "int") {
			t.Errorf("Detail = %v, should name wanted and got types", err.Detail)
		}
	})

	t.Run("FieldMissing", func(t *testing.T) {
		err := FieldMissing(PhaseSetopt, []string{"fields", "0"}, "name")
		if err.Kind != KindFieldMissing {
			t.Errorf("Kind = %v, want %v", err.Kind, KindFieldMissing)
		}
		if !strings.Contains(err.Detail, "name") {
			t.Errorf("Detail = %v, should contain field name", err.Detail)
		}
	})

	t.Run("FieldUnknown", func(t *testing.T) {
		err := FieldUnknown(PhaseSetopt, []string{"fields", "1"}, "extra")
		if err.Kind != KindFieldUnknown {
			t.Errorf("Kind = %v, want %v", err.Kind, KindFieldUnknown)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseSetopt, "contents and file are mutually exclusive")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
	})

	t.Run("Registration", func(t *testing.T) {
		cause := errors.New("loop is closed")
		err := Registration(PhaseMonitor, "readiness loop registration failed", cause)
		if err.Kind != KindRegistration {
			t.Errorf("Kind = %v, want %v", err.Kind, KindRegistration)
		}
		if !errors.Is(err, cause) {
			t.Error("cause should survive wrapping")
		}
	})

	t.Run("BadSocket", func(t *testing.T) {
		err := BadSocket("handle has no active socket")
		if err.Kind != KindBadSocket {
			t.Errorf("Kind = %v, want %v", err.Kind, KindBadSocket)
		}
		if err.Phase != PhaseMonitor {
			t.Errorf("Phase = %v, want %v", err.Phase, PhaseMonitor)
		}
	})

	t.Run("AlreadyMonitoring", func(t *testing.T) {
		err := AlreadyMonitoring()
		if err.Kind != KindAlreadyMonitoring {
			t.Errorf("Kind = %v, want %v", err.Kind, KindAlreadyMonitoring)
		}
	})

	t.Run("NotMonitoring", func(t *testing.T) {
		err := NotMonitoring()
		if err.Kind != KindNotMonitoring {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotMonitoring)
		}
	})

	t.Run("InsideMulti", func(t *testing.T) {
		err := InsideMulti()
		if err.Kind != KindInsideMulti {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInsideMulti)
		}
		if err.Phase != PhaseLifecycle {
			t.Errorf("Phase = %v, want %v", err.Phase, PhaseLifecycle)
		}
	})

	t.Run("CallbackFailed", func(t *testing.T) {
		cause := errors.New("host raised")
		err := CallbackFailed("WRITEFUNCTION", cause)
		if err.Kind != KindCallbackFailed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindCallbackFailed)
		}
		if err.Option != "WRITEFUNCTION" {
			t.Errorf("Option = %v, want WRITEFUNCTION", err.Option)
		}
		if !errors.Is(err, cause) {
			t.Error("cause should survive wrapping")
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("inner")
		err := Wrap(PhaseLifecycle, KindRegistration, cause, "engine could not open a handle")
		if err.Phase != PhaseLifecycle || err.Kind != KindRegistration {
			t.Errorf("Phase/Kind = %v/%v", err.Phase, err.Kind)
		}
		if !errors.Is(err, cause) {
			t.Error("cause should survive wrapping")
		}
	})
}
