package types

import (
	"fmt"
	"strconv"
)

// TypeAffinity is the storage engine's coarse type classification. SQLite
// only ever stores one of the five meaningful values; AffinityDateTime and
// AffinityNone exist for the driver's own bookkeeping and are never handed
// to the engine.
type TypeAffinity int

const (
	AffinityNone TypeAffinity = iota
	AffinityInteger
	AffinityReal
	AffinityText
	AffinityBlob
	AffinityNull
	// AffinityDateTime marks columns the driver decodes through the
	// date-time codec; on disk they are stored as TEXT, REAL or INTEGER
	// depending on the configured encoding.
	AffinityDateTime
)

var affinityNames = [...]string{
	AffinityNone:     "None",
	AffinityInteger:  "Integer",
	AffinityReal:     "Real",
	AffinityText:     "Text",
	AffinityBlob:     "Blob",
	AffinityNull:     "Null",
	AffinityDateTime: "DateTime",
}

// String returns the affinity name, or a Go-syntax placeholder for values
// outside the defined range.
func (a TypeAffinity) String() string {
	if !a.Valid() {
		return "TypeAffinity(" + strconv.Itoa(int(a)) + ")"
	}
	return affinityNames[a]
}

// Valid reports whether a is one of the defined affinities.
func (a TypeAffinity) Valid() bool {
	return a >= AffinityNone && a <= AffinityDateTime
}

// DomainError reports a lookup with an enumeration value outside the
// defined table domain. It indicates a programming error in the caller,
// not bad input data, and is never recovered from inside this package.
type DomainError struct {
	Kind  string // which enumeration: "ColumnType" or "TypeAffinity"
	Value int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("types: %s value %d is outside the defined domain", e.Kind, e.Value)
}

// AffinityOf maps a column type to the storage affinity its values take on
// disk. The mapping is total over the defined column types:
//
//   - integer widths (signed and unsigned) and Boolean -> Integer
//   - floating widths and Decimal                      -> Real
//   - text (fixed or variable) and Object              -> Text
//   - binary (fixed or variable) and Guid              -> Blob
//   - DateTime                                         -> DateTime
//
// A value outside the enumeration returns a DomainError.
func AffinityOf(ct ColumnType) (TypeAffinity, error) {
	switch ct {
	case Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64, Boolean:
		return AffinityInteger, nil
	case Float32, Float64, Decimal:
		return AffinityReal, nil
	case Text, TextFixed, Object:
		return AffinityText, nil
	case Blob, BlobFixed, Guid:
		return AffinityBlob, nil
	case DateTime:
		return AffinityDateTime, nil
	default:
		return AffinityNone, &DomainError{Kind: "ColumnType", Value: int(ct)}
	}
}
