package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates which adapter operation the error came out of
type Phase string

const (
	PhaseSetopt    Phase = "setopt"    // option installation
	PhaseGetinfo   Phase = "getinfo"   // introspection
	PhaseCallback  Phase = "callback"  // trampoline invocation
	PhaseMonitor   Phase = "monitor"   // socket readiness monitoring
	PhaseLifecycle Phase = "lifecycle" // handle open/close
	PhaseIO        Phase = "io"        // raw send/recv
)

// Kind categorizes the error
type Kind string

const (
	KindClosedHandle      Kind = "closed_handle"
	KindUnsupportedOption Kind = "unsupported_option"
	KindTypeMismatch      Kind = "type_mismatch"
	KindFieldMissing      Kind = "field_missing"
	KindFieldUnknown      Kind = "field_unknown"
	KindInvalidInput      Kind = "invalid_input"
	KindRegistration      Kind = "registration"
	KindAlreadyMonitoring Kind = "already_monitoring"
	KindNotMonitoring     Kind = "not_monitoring"
	KindBadSocket         Kind = "bad_socket"
	KindInsideMulti       Kind = "inside_multi"
	KindCallbackFailed    Kind = "callback_failed"
)

// Error is the structured error type used for every host-visible failure.
// Engine status codes are not errors; they are returned as data.
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Option string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Option != "" {
		b.WriteString(" option ")
		b.WriteString(e.Option)
	}

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// AsError reports whether err is (or wraps) an *Error, extracting it into
// target on success.
func AsError(err error, target **Error) bool {
	return stderrors.As(err, target)
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Option names the option or info identifier involved
func (b *Builder) Option(name string) *Builder {
	b.err.Option = name
	return b
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// ClosedHandle reports an operation attempted on a closed handle
func ClosedHandle(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosedHandle,
		Detail: "handle is closed",
	}
}

// UnsupportedOption reports an identifier outside the supported tables
func UnsupportedOption(phase Phase, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupportedOption,
		Option: name,
		Detail: "unsupported identifier, either unknown or not representable across the host boundary",
	}
}

// TypeMismatch reports a host value of the wrong type for its destination
func TypeMismatch(phase Phase, option string, want string, got any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Option: option,
		Detail: fmt.Sprintf("value must be %s, got %T", want, got),
		Value:  got,
	}
}

// FieldMissing reports a required descriptor field that was not given
func FieldMissing(phase Phase, path []string, fieldName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFieldMissing,
		Path:   path,
		Detail: fmt.Sprintf("missing field %q", fieldName),
	}
}

// FieldUnknown reports an unrecognized descriptor field
func FieldUnknown(phase Phase, path []string, fieldName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFieldUnknown,
		Path:   path,
		Detail: fmt.Sprintf("unknown field %q", fieldName),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Registration reports a readiness-loop registration failure
func Registration(phase Phase, detail string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindRegistration,
		Detail: detail,
		Cause:  cause,
	}
}

// BadSocket reports that the engine had no usable socket to monitor
func BadSocket(detail string) *Error {
	return &Error{
		Phase:  PhaseMonitor,
		Kind:   KindBadSocket,
		Detail: detail,
	}
}

// AlreadyMonitoring reports a second monitor on the same handle
func AlreadyMonitoring() *Error {
	return &Error{
		Phase:  PhaseMonitor,
		Kind:   KindAlreadyMonitoring,
		Detail: "already monitoring sockets",
	}
}

// NotMonitoring reports an unmonitor with no active monitor
func NotMonitoring() *Error {
	return &Error{
		Phase:  PhaseMonitor,
		Kind:   KindNotMonitoring,
		Detail: "no socket monitor is active",
	}
}

// InsideMulti reports a close attempted while a scheduler owns the handle
func InsideMulti() *Error {
	return &Error{
		Phase:  PhaseLifecycle,
		Kind:   KindInsideMulti,
		Detail: "handle is inside a multi handle, remove it first",
	}
}

// CallbackFailed wraps an error raised by a host callable, carrying the
// slot it was registered under
func CallbackFailed(option string, cause error) *Error {
	return &Error{
		Phase:  PhaseCallback,
		Kind:   KindCallbackFailed,
		Option: option,
		Detail: "callback raised",
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
