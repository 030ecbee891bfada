package types

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Go type descriptors used by the affinity and column-type tables below.
// Cached once; reflect.Type values are immutable and safe to share.
var (
	goInt8     = reflect.TypeOf(int8(0))
	goInt16    = reflect.TypeOf(int16(0))
	goInt32    = reflect.TypeOf(int32(0))
	goInt64    = reflect.TypeOf(int64(0))
	goUint8    = reflect.TypeOf(uint8(0))
	goUint16   = reflect.TypeOf(uint16(0))
	goUint32   = reflect.TypeOf(uint32(0))
	goUint64   = reflect.TypeOf(uint64(0))
	goFloat32  = reflect.TypeOf(float32(0))
	goFloat64  = reflect.TypeOf(float64(0))
	goBool     = reflect.TypeOf(false)
	goString   = reflect.TypeOf("")
	goBytes    = reflect.TypeOf([]byte(nil))
	goTime     = reflect.TypeOf(time.Time{})
	goUUID     = reflect.TypeOf(uuid.UUID{})
	goAny      = reflect.TypeOf((*any)(nil)).Elem()
)

// columnTypeByKind resolves the primitive reflect kinds. Named types with
// one of these underlying kinds (the usual Go spelling of an enumeration)
// resolve the same way, which is what ColumnTypeOf relies on.
var columnTypeByKind = map[reflect.Kind]ColumnType{
	reflect.Int8:    Int8,
	reflect.Int16:   Int16,
	reflect.Int32:   Int32,
	reflect.Int64:   Int64,
	reflect.Int:     Int64,
	reflect.Uint8:   Uint8,
	reflect.Uint16:  Uint16,
	reflect.Uint32:  Uint32,
	reflect.Uint64:  Uint64,
	reflect.Uint:    Uint64,
	reflect.Float32: Float32,
	reflect.Float64: Float64,
	reflect.Bool:    Boolean,
	reflect.String:  Text,
}

// ColumnTypeOf inspects a host value's runtime type and returns the column
// type the driver would bind it as. The function never fails:
//
//   - the primitive kinds (including named types over them, i.e. Go-style
//     enumerations) resolve through their reflect.Kind
//   - time.Time -> DateTime, uuid.UUID -> Guid
//   - byte slices -> Blob
//   - nil and anything unrecognized degrade to Object and Text
//     respectively, never to an error
func ColumnTypeOf(value any) ColumnType {
	switch value.(type) {
	case nil:
		return Object
	case time.Time:
		return DateTime
	case uuid.UUID:
		return Guid
	case []byte:
		return Blob
	}

	rt := reflect.TypeOf(value)
	if ct, ok := columnTypeByKind[rt.Kind()]; ok {
		return ct
	}
	if rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.Uint8 {
		return Blob
	}
	return Text
}

// goTypeByAffinity resolves a Go type from storage affinity alone, used
// when the column declaration gave no usable type (declared == Object).
var goTypeByAffinity = map[TypeAffinity]reflect.Type{
	AffinityInteger:  goInt64,
	AffinityReal:     goFloat64,
	AffinityText:     goString,
	AffinityBlob:     goBytes,
	AffinityDateTime: goTime,
	AffinityNull:     goAny,
	AffinityNone:     goAny,
}

// goTypeByColumnType resolves a Go type from a declared column type and
// covers the whole enumeration, widths and driver-level types included.
// Decimal maps to string: SQLite stores it as REAL text and Go has no
// native decimal, so the lossless textual form is handed to the caller.
var goTypeByColumnType = map[ColumnType]reflect.Type{
	Int8:      goInt8,
	Int16:     goInt16,
	Int32:     goInt32,
	Int64:     goInt64,
	Uint8:     goUint8,
	Uint16:    goUint16,
	Uint32:    goUint32,
	Uint64:    goUint64,
	Float32:   goFloat32,
	Float64:   goFloat64,
	Decimal:   goString,
	Boolean:   goBool,
	Guid:      goUUID,
	Text:      goString,
	TextFixed: goString,
	Blob:      goBytes,
	BlobFixed: goBytes,
	DateTime:  goTime,
	Object:    goAny,
}

// GoType returns the Go type a column's values decode into. When declared
// is Object (no usable declaration), the result comes purely from the
// storage affinity; otherwise the declared column type decides. Values
// outside either enumeration return a DomainError.
func GoType(affinity TypeAffinity, declared ColumnType) (reflect.Type, error) {
	if declared == Object {
		rt, ok := goTypeByAffinity[affinity]
		if !ok {
			return nil, &DomainError{Kind: "TypeAffinity", Value: int(affinity)}
		}
		return rt, nil
	}
	rt, ok := goTypeByColumnType[declared]
	if !ok {
		return nil, &DomainError{Kind: "ColumnType", Value: int(declared)}
	}
	return rt, nil
}

// GuidFromValue converts the forms a GUID column value arrives in. The
// engine may hand back the 16-byte blob or the canonical 36-character
// text, and parameter values may already be uuid.UUID.
func GuidFromValue(value any) (uuid.UUID, error) {
	switch v := value.(type) {
	case uuid.UUID:
		return v, nil
	case []byte:
		if len(v) == 16 {
			return uuid.FromBytes(v)
		}
		return uuid.Parse(string(v))
	case string:
		return uuid.Parse(v)
	default:
		return uuid.UUID{}, fmt.Errorf("types: cannot convert %T to a GUID", value)
	}
}
