// Package errors provides structured error types for the trusted-curl adapter.
//
// Errors are categorized by Phase (which adapter operation failed) and Kind
// (error category). The Error type includes rich context: the option or info
// identifier, a field path into multipart descriptors, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseSetopt, errors.KindTypeMismatch).
//		Option("HTTPHEADER").
//		Detail("value must be an ordered sequence of strings").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.ClosedHandle(errors.PhaseSetopt)
//	err := errors.TypeMismatch(errors.PhaseSetopt, "URL", "a string or null", 42)
//
// Engine status codes are never modeled as errors; they are plain values the
// caller inspects. This package only covers host-visible usage failures.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
