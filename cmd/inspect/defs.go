package main

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/ffikit/cmem/ctypes"
)

// defsFile is the TOML schema for type definition files.
type defsFile struct {
	Types []typeDef `toml:"types"`
}

type typeDef struct {
	Name   string     `toml:"name"`
	Kind   string     `toml:"kind"` // "struct" (default) or "union"
	Fields []fieldDef `toml:"fields"`
	Packed bool       `toml:"packed"`
}

type fieldDef struct {
	Name      string `toml:"name"`
	Type      string `toml:"type"`
	Bits      int    `toml:"bits"`
	Anonymous bool   `toml:"anonymous"`
}

var arraySuffix = regexp.MustCompile(`^(.+)\[(\d+)\]$`)

// loadDefs parses a TOML definitions file and builds descriptors in file
// order. Later types may reference earlier ones by name.
func loadDefs(path string) ([]string, map[string]*ctypes.Type, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read defs: %w", err)
	}

	var file defsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("parse defs: %w", err)
	}

	var order []string
	byName := make(map[string]*ctypes.Type, len(file.Types))

	for _, td := range file.Types {
		if td.Name == "" {
			return nil, nil, fmt.Errorf("type definition missing name")
		}
		if _, dup := byName[td.Name]; dup {
			return nil, nil, fmt.Errorf("duplicate type %q", td.Name)
		}

		typ, err := buildType(td, byName)
		if err != nil {
			return nil, nil, fmt.Errorf("type %q: %w", td.Name, err)
		}
		byName[td.Name] = typ
		order = append(order, td.Name)
	}
	return order, byName, nil
}

func buildType(td typeDef, known map[string]*ctypes.Type) (*ctypes.Type, error) {
	var opts []ctypes.BuilderOption
	opts = append(opts, ctypes.Named(td.Name))
	if td.Packed {
		opts = append(opts, ctypes.Packed())
	}

	var b *ctypes.Builder
	switch td.Kind {
	case "", "struct":
		b = ctypes.NewStruct(opts...)
	case "union":
		b = ctypes.NewUnion(opts...)
	default:
		return nil, fmt.Errorf("unknown kind %q", td.Kind)
	}

	for _, fd := range td.Fields {
		ft, err := resolveTypeName(fd.Type, known)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", fd.Name, err)
		}
		switch {
		case fd.Bits > 0:
			b.AddBitfield(fd.Name, ft, fd.Bits)
		case fd.Anonymous:
			b.AddAnonymous(fd.Name, ft)
		default:
			b.AddField(fd.Name, ft)
		}
	}
	return b.Build()
}

// resolveTypeName resolves a field type string: a primitive name, a
// previously defined type, or either with an [N] array suffix.
func resolveTypeName(name string, known map[string]*ctypes.Type) (*ctypes.Type, error) {
	if m := arraySuffix.FindStringSubmatch(name); m != nil {
		elem, err := resolveTypeName(m[1], known)
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("array length %q: %w", m[2], err)
		}
		return ctypes.Array(elem, n)
	}
	if t, ok := known[name]; ok {
		return t, nil
	}
	return ctypes.ParseType(name)
}
