// Package errors provides structured error types for the cmem library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: field path, Go/C type
// names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseWrite, errors.KindTypeMismatch).
//		Path("rect", "topLeft", "x").
//		GoType("string").
//		CType("int32").
//		Detail("cannot convert string to integer").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseWrite, path, "string", "int32")
//	err := errors.OutOfBounds(errors.PhaseRead, path, 16, 4, 12)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
