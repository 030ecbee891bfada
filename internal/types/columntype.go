// Package types implements the type-mapping tables of the driver: the
// narrow storage affinities SQLite itself distinguishes, the richer set of
// column types exposed to callers, and the explicit mappings between the
// two. Everything here is a pure function over closed enumerations or a
// lookup into a package-level read-only table, which makes the package safe
// for unsynchronized concurrent use and straightforward to test.
//
// The two enumerations are deliberately kept separate (no numeric casting
// between them); the only bridges are AffinityOf, GoType and the name
// tables in names.go.
package types

import "strconv"

// ColumnType is the client-facing column type. It is what a caller sees
// when asking "what kind of value does this column hold", and is much
// richer than the storage layer's affinity: it distinguishes integer
// widths, signedness, fixed- vs variable-length text and binary, and the
// driver-level Decimal, Guid and DateTime types.
type ColumnType int

// Column types, in enumeration order. Object is the generic fallback used
// when nothing more specific is known; it is also what unknown schema type
// names resolve to.
const (
	Int8 ColumnType = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Decimal
	Boolean
	Guid
	Text
	TextFixed
	Blob
	BlobFixed
	DateTime
	Object
)

var columnTypeNames = [...]string{
	Int8:      "Int8",
	Int16:     "Int16",
	Int32:     "Int32",
	Int64:     "Int64",
	Uint8:     "Uint8",
	Uint16:    "Uint16",
	Uint32:    "Uint32",
	Uint64:    "Uint64",
	Float32:   "Float32",
	Float64:   "Float64",
	Decimal:   "Decimal",
	Boolean:   "Boolean",
	Guid:      "Guid",
	Text:      "Text",
	TextFixed: "TextFixed",
	Blob:      "Blob",
	BlobFixed: "BlobFixed",
	DateTime:  "DateTime",
	Object:    "Object",
}

// String returns the enumeration name (e.g. "Int64"), or a Go-syntax
// placeholder for values outside the defined range.
func (ct ColumnType) String() string {
	if !ct.Valid() {
		return "ColumnType(" + strconv.Itoa(int(ct)) + ")"
	}
	return columnTypeNames[ct]
}

// Valid reports whether ct is one of the defined column types. Lookup
// functions use this to reject out-of-domain values with a DomainError
// instead of indexing past a table.
func (ct ColumnType) Valid() bool {
	return ct >= Int8 && ct <= Object
}
