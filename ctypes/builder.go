package ctypes

import (
	"go.uber.org/zap"

	"github.com/ffikit/cmem/ctypes/internal/layout"
	"github.com/ffikit/cmem/ctypes/internal/types"
	"github.com/ffikit/cmem/errors"
)

// Builder accumulates field declarations for a struct or union and computes
// the layout on Build. Builders are single-use and not safe for concurrent
// use; the descriptors they produce are immutable and freely shareable.
type Builder struct {
	err    error
	target Target
	name   string
	specs  []layout.FieldSpec
	packed bool
	union  bool
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// Packed disables padding: fields are placed back to back and the struct
// alignment is 1. Ignored for unions.
func Packed() BuilderOption {
	return func(b *Builder) { b.packed = true }
}

// WithTarget lays the composite out for an explicit platform target instead
// of the native one. Primitive fields must be built with PrimitiveFor on the
// same target.
func WithTarget(t Target) BuilderOption {
	return func(b *Builder) { b.target = t }
}

// Named sets a tag used in diagnostics.
func Named(name string) BuilderOption {
	return func(b *Builder) { b.name = name }
}

// NewStruct starts a struct definition.
func NewStruct(opts ...BuilderOption) *Builder {
	b := &Builder{target: nativeTarget}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewUnion starts a union definition.
func NewUnion(opts ...BuilderOption) *Builder {
	b := &Builder{target: nativeTarget, union: true}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddField appends a named member of any type. The first definition error is
// latched and reported by Build.
func (b *Builder) AddField(name string, t *Type) *Builder {
	b.specs = append(b.specs, layout.FieldSpec{Name: name, Type: t})
	return b
}

// AddKind appends a named member of a primitive kind on the builder's target.
func (b *Builder) AddKind(name string, k Kind) *Builder {
	return b.AddField(name, types.NewPrimitive(k, b.target))
}

// AddBitfield appends a bitfield of width bits backed by the given integer
// storage type.
func (b *Builder) AddBitfield(name string, storage *Type, width int) *Builder {
	if b.err == nil && (width < 1 || width > 64) {
		b.err = errors.InvalidDefinition("bitfield %q width must be between 1 and 64, got %d", name, width)
		return b
	}
	b.specs = append(b.specs, layout.FieldSpec{Name: name, Type: storage, BitWidth: uint8(width)})
	return b
}

// AddAnonymous appends a struct or union member whose own field names are
// promoted into this composite's scope. The member keeps its name for dotted
// path access.
func (b *Builder) AddAnonymous(name string, t *Type) *Builder {
	b.specs = append(b.specs, layout.FieldSpec{Name: name, Type: t, Anonymous: true})
	return b
}

// Build computes the layout and returns the immutable descriptor.
func (b *Builder) Build() (*Type, error) {
	if b.err != nil {
		return nil, b.err
	}

	var res layout.Result
	var err error
	kind := types.KindStruct
	if b.union {
		kind = types.KindUnion
		res, err = layout.Union(b.specs)
	} else {
		res, err = layout.Struct(b.specs, b.packed)
	}
	if err != nil {
		return nil, err
	}

	t, err := types.NewComposite(kind, b.name, res.Fields, res.Size, res.Align, b.packed)
	if err != nil {
		return nil, err
	}

	Logger().Debug("layout built",
		zap.String("type", t.String()),
		zap.Uint32("size", t.Size),
		zap.Uint32("align", t.Align),
		zap.Int("fields", len(t.Fields)),
	)
	return t, nil
}
