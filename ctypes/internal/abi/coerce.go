package abi

import "math"

// CoerceToInt64 accepts any Go numeric type that fits a signed 64-bit value.
// float inputs must be integral and in range.
func CoerceToInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint:
		if uint64(v) <= math.MaxInt64 {
			return int64(v), true
		}
	case uint64:
		if v <= math.MaxInt64 {
			return int64(v), true
		}
	case float32:
		if float64(v) >= math.MinInt64 && float64(v) <= math.MaxInt64 && v == float32(int64(v)) {
			return int64(v), true
		}
	case float64:
		if v >= math.MinInt64 && v <= math.MaxInt64 && v == float64(int64(v)) {
			return int64(v), true
		}
	}
	return 0, false
}

// CoerceToUint64 accepts any non-negative Go numeric type that fits an
// unsigned 64-bit value.
func CoerceToUint64(value any) (uint64, bool) {
	switch v := value.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uintptr:
		return uint64(v), true
	case int8:
		if v >= 0 {
			return uint64(v), true
		}
	case int16:
		if v >= 0 {
			return uint64(v), true
		}
	case int32:
		if v >= 0 {
			return uint64(v), true
		}
	case int:
		if v >= 0 {
			return uint64(v), true
		}
	case int64:
		if v >= 0 {
			return uint64(v), true
		}
	case float32:
		if v >= 0 && float64(v) <= math.MaxUint64 && v == float32(uint64(v)) {
			return uint64(v), true
		}
	case float64:
		if v >= 0 && v <= math.MaxUint64 && v == float64(uint64(v)) {
			return uint64(v), true
		}
	}
	return 0, false
}

// CoerceToFloat64 accepts any Go numeric type.
func CoerceToFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

// CoerceToBool accepts bool and any numeric type, C-style: nonzero is true.
func CoerceToBool(value any) (bool, bool) {
	if b, ok := value.(bool); ok {
		return b, true
	}
	if i, ok := CoerceToInt64(value); ok {
		return i != 0, true
	}
	if u, ok := CoerceToUint64(value); ok {
		return u != 0, true
	}
	if f, ok := CoerceToFloat64(value); ok {
		return f != 0, true
	}
	return false, false
}

// FitsSigned reports whether v fits in a signed integer of width bytes.
func FitsSigned(v int64, width uint32) bool {
	switch width {
	case 1:
		return v >= math.MinInt8 && v <= math.MaxInt8
	case 2:
		return v >= math.MinInt16 && v <= math.MaxInt16
	case 4:
		return v >= math.MinInt32 && v <= math.MaxInt32
	default:
		return true
	}
}

// FitsUnsigned reports whether v fits in an unsigned integer of width bytes.
func FitsUnsigned(v uint64, width uint32) bool {
	switch width {
	case 1:
		return v <= math.MaxUint8
	case 2:
		return v <= math.MaxUint16
	case 4:
		return v <= math.MaxUint32
	default:
		return true
	}
}
