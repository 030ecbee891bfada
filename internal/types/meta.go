package types

import "math"

// ColumnSizeMax is the size reported for variable-length types (text,
// binary, and the generic Object fallback), where no fixed upper bound
// applies.
const ColumnSizeMax = int64(math.MaxInt64)

// ColumnSize returns the fixed upper bound, in bytes, of a value of the
// given column type: the byte width for fixed-width numerics, 8 for
// DateTime (stored at tick resolution in 8 bytes), 16 for Guid, and
// ColumnSizeMax for variable-length types. A value outside the enumeration
// returns a DomainError.
func ColumnSize(ct ColumnType) (int64, error) {
	switch ct {
	case Int8, Uint8, Boolean:
		return 1, nil
	case Int16, Uint16:
		return 2, nil
	case Int32, Uint32, Float32:
		return 4, nil
	case Int64, Uint64, Float64, Decimal, DateTime:
		return 8, nil
	case Guid:
		return 16, nil
	case Text, TextFixed, Blob, BlobFixed, Object:
		return ColumnSizeMax, nil
	default:
		return 0, &DomainError{Kind: "ColumnType", Value: int(ct)}
	}
}

// NumericPrecision returns the decimal-digit precision of a numeric column
// type. The second result is false for types where precision is not
// meaningful (text, binary, boolean, date/time, guid, object); callers use
// that to omit the precision field entirely rather than report zero.
// A value outside the enumeration returns a DomainError.
func NumericPrecision(ct ColumnType) (int64, bool, error) {
	switch ct {
	case Int8, Uint8:
		return 3, true, nil
	case Int16, Uint16:
		return 5, true, nil
	case Int32, Uint32:
		return 10, true, nil
	case Int64:
		return 19, true, nil
	case Uint64:
		return 20, true, nil
	case Float32:
		return 7, true, nil
	case Float64:
		return 15, true, nil
	case Decimal:
		return 28, true, nil
	case Boolean, Guid, Text, TextFixed, Blob, BlobFixed, DateTime, Object:
		return 0, false, nil
	default:
		return 0, false, &DomainError{Kind: "ColumnType", Value: int(ct)}
	}
}

// NumericScale returns the decimal-digit scale of a numeric column type.
// Integer types have scale 0 (a concrete zero, reported); the approximate
// and decimal types report 0 as well since SQLite does not constrain scale.
// The second result is false exactly where NumericPrecision's is.
// A value outside the enumeration returns a DomainError.
func NumericScale(ct ColumnType) (int64, bool, error) {
	switch ct {
	case Int8, Uint8, Int16, Uint16, Int32, Uint32, Int64, Uint64,
		Float32, Float64, Decimal:
		return 0, true, nil
	case Boolean, Guid, Text, TextFixed, Blob, BlobFixed, DateTime, Object:
		return 0, false, nil
	default:
		return 0, false, &DomainError{Kind: "ColumnType", Value: int(ct)}
	}
}
