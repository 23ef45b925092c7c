package abi

import (
	"runtime"
	"strconv"
)

// Target describes the platform properties that affect layout: the pointer
// size, the wchar_t size, and the long size. These are the only platform
// branches in the layout core.
type Target struct {
	Name        string
	PointerSize uint32 // bytes: 4 or 8
	WCharSize   uint32 // bytes: 2 on Windows, 4 on Unix
	LongSize    uint32 // bytes: 4 on LLP64 Windows, 8 on LP64 Unix
}

// LP64 is the 64-bit Unix data model (Linux, macOS, BSD).
func LP64() Target {
	return Target{Name: "lp64", PointerSize: 8, WCharSize: 4, LongSize: 8}
}

// LLP64 is the 64-bit Windows data model.
func LLP64() Target {
	return Target{Name: "llp64", PointerSize: 8, WCharSize: 2, LongSize: 4}
}

// ILP32 is the 32-bit Unix data model.
func ILP32() Target {
	return Target{Name: "ilp32", PointerSize: 4, WCharSize: 4, LongSize: 4}
}

// ILP32Windows is the 32-bit Windows data model.
func ILP32Windows() Target {
	return Target{Name: "ilp32-windows", PointerSize: 4, WCharSize: 2, LongSize: 4}
}

// Native returns the target matching the host platform.
func Native() Target {
	ptrSize := uint32(strconv.IntSize / 8)
	if runtime.GOOS == "windows" {
		if ptrSize == 4 {
			return ILP32Windows()
		}
		return LLP64()
	}
	if ptrSize == 4 {
		return ILP32()
	}
	return LP64()
}

// MaxAlignment caps primitive alignment at the pointer size, so 8-byte
// scalars align to 4 on 32-bit targets.
func (t Target) MaxAlignment() uint32 {
	return t.PointerSize
}
