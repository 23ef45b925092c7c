package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseBuild Phase = "build" // layout construction
	PhaseRead  Phase = "read"  // buffer to Go value
	PhaseWrite Phase = "write" // Go value to buffer
	PhaseDeref Phase = "deref" // pointer dereference
	PhaseParse Phase = "parse" // type name / definition parsing
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidDefinition Kind = "invalid_definition"
	KindInvalidOffset     Kind = "invalid_offset"
	KindOutOfBounds       Kind = "out_of_bounds"
	KindIndexOutOfRange   Kind = "index_out_of_range"
	KindNullPointer       Kind = "null_pointer"
	KindTypeMismatch      Kind = "type_mismatch"
	KindUnknownField      Kind = "unknown_field"
	KindUnsupported       Kind = "unsupported"
	KindOverflow          Kind = "overflow"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	GoType string
	CType  string
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

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.CType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.CType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", C type ")
			b.WriteString(e.CType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("C type ")
			b.WriteString(e.CType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.CType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// CType sets the C type name
func (b *Builder) CType(t string) *Builder {
	b.err.CType = t
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

// InvalidDefinition creates a layout definition error
func InvalidDefinition(detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindInvalidDefinition,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, cType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Path:   path,
		GoType: goType,
		CType:  cType,
	}
}

// InvalidOffset creates a negative or malformed offset error
func InvalidOffset(phase Phase, offset int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidOffset,
		Detail: fmt.Sprintf("invalid offset %d", offset),
		Value:  offset,
	}
}

// OutOfBounds creates an out of bounds buffer access error
func OutOfBounds(phase Phase, path []string, offset, size, bufLen int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("access at %d of %d bytes exceeds buffer length %d", offset, size, bufLen),
		Value:  offset,
	}
}

// IndexOutOfRange creates an array index error
func IndexOutOfRange(phase Phase, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIndexOutOfRange,
		Detail: fmt.Sprintf("index %d out of range (length %d)", index, length),
		Value:  index,
	}
}

// NullPointer creates a null pointer dereference error
func NullPointer(path ...string) *Error {
	return &Error{
		Phase:  PhaseDeref,
		Kind:   KindNullPointer,
		Path:   path,
		Detail: "null pointer dereference",
	}
}

// UnknownField creates an unknown struct field error
func UnknownField(phase Phase, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownField,
		Detail: fmt.Sprintf("unknown field %q", name),
		Value:  name,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}
