package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/ffikit/cmem/ctypes"
)

func main() {
	var (
		defsFile    = flag.String("defs", "", "Path to TOML type definitions file")
		typeName    = flag.String("type", "", "Type to inspect (default: all)")
		verbose     = flag.Bool("v", false, "Enable layout build tracing")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *defsFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -defs <types.toml> [-type name]")
		fmt.Fprintln(os.Stderr, "       inspect -defs <types.toml> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		ctypes.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*defsFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*defsFile, *typeName); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(defsFile, typeName string) error {
	order, byName, err := loadDefs(defsFile)
	if err != nil {
		return err
	}

	if typeName != "" {
		typ, ok := byName[typeName]
		if !ok {
			return fmt.Errorf("type %q not defined in %s", typeName, defsFile)
		}
		fmt.Print(formatLayout(typ))
		return nil
	}

	for i, name := range order {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(formatLayout(byName[name]))
	}
	return nil
}

// formatLayout renders a member table with offsets, sizes, bit positions,
// and padding gaps.
func formatLayout(t *ctypes.Type) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: size=%d align=%d", t, ctypes.Sizeof(t), ctypes.Alignof(t))
	if t.Packed {
		b.WriteString(" packed")
	}
	b.WriteString("\n")

	end := uint32(0)
	for i := range t.Fields {
		f := &t.Fields[i]

		if t.Kind == ctypes.KindStruct && f.Offset > end && !f.IsBitfield() {
			fmt.Fprintf(&b, "  %4d        <%d bytes padding>\n", end, f.Offset-end)
		}

		switch {
		case f.IsBitfield():
			fmt.Fprintf(&b, "  %4d  %-16s %s : bits [%d, %d)\n",
				f.Offset, f.Name, f.Type, f.BitOffset, f.BitOffset+f.BitWidth)
		case f.Anonymous:
			fmt.Fprintf(&b, "  %4d  %-16s %s (anonymous, %d bytes)\n",
				f.Offset, f.Name, f.Type, f.Type.Size)
		default:
			fmt.Fprintf(&b, "  %4d  %-16s %s (%d bytes)\n",
				f.Offset, f.Name, f.Type, f.Type.Size)
		}

		if t.Kind == ctypes.KindStruct {
			if fieldEnd := f.Offset + f.Type.Size; fieldEnd > end {
				end = fieldEnd
			}
		}
	}

	if t.Kind == ctypes.KindStruct && t.Size > end {
		fmt.Fprintf(&b, "  %4d        <%d bytes trailing padding>\n", end, t.Size-end)
	}
	return b.String()
}
