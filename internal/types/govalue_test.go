package types

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

/*
Unit tests for the host-value and Go-type mappings.

We cover:
  - ColumnTypeOf across the primitive kinds, named types over integer kinds
    (the Go spelling of an enumeration), byte slices, uuid.UUID, time.Time
  - the never-fails contract: nil and unrecognized types degrade, they do
    not error
  - GoType in both modes: declared == Object (affinity decides) and a
    concrete declared type (declaration decides)
  - GuidFromValue over its three accepted input forms
*/

// weekday is a named integer type standing in for a caller-defined
// enumeration; it must resolve through its underlying kind.
type weekday int32

func TestColumnTypeOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   any
		want ColumnType
	}{
		{int8(1), Int8},
		{int16(1), Int16},
		{int32(1), Int32},
		{int64(1), Int64},
		{int(1), Int64},
		{uint8(1), Uint8},
		{uint16(1), Uint16},
		{uint32(1), Uint32},
		{uint64(1), Uint64},
		{uint(1), Uint64},
		{float32(1), Float32},
		{float64(1), Float64},
		{true, Boolean},
		{"x", Text},
		{[]byte{1}, Blob},
		{uuid.New(), Guid},
		{time.Now(), DateTime},
		{weekday(3), Int32},
		{nil, Object},

		// unknown types degrade to text, never to an error
		{struct{ A int }{1}, Text},
		{map[string]int{}, Text},
		{3 + 4i, Text},
	}
	for _, c := range cases {
		if got := ColumnTypeOf(c.in); got != c.want {
			t.Fatalf("ColumnTypeOf(%T) = %v; want %v", c.in, got, c.want)
		}
	}
}

func TestGoTypeFromAffinity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   TypeAffinity
		want reflect.Type
	}{
		{AffinityInteger, reflect.TypeOf(int64(0))},
		{AffinityReal, reflect.TypeOf(float64(0))},
		{AffinityText, reflect.TypeOf("")},
		{AffinityBlob, reflect.TypeOf([]byte(nil))},
		{AffinityDateTime, reflect.TypeOf(time.Time{})},
		{AffinityNull, reflect.TypeOf((*any)(nil)).Elem()},
		{AffinityNone, reflect.TypeOf((*any)(nil)).Elem()},
	}
	for _, c := range cases {
		got, err := GoType(c.in, Object)
		if err != nil {
			t.Fatalf("GoType(%v, Object): unexpected error %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("GoType(%v, Object) = %v; want %v", c.in, got, c.want)
		}
	}

	if _, err := GoType(TypeAffinity(99), Object); err == nil {
		t.Fatal("GoType(99, Object): want DomainError, got nil")
	}
}

func TestGoTypeFromDeclared(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   ColumnType
		want reflect.Type
	}{
		{Int8, reflect.TypeOf(int8(0))},
		{Uint16, reflect.TypeOf(uint16(0))},
		{Float32, reflect.TypeOf(float32(0))},
		{Decimal, reflect.TypeOf("")},
		{Boolean, reflect.TypeOf(false)},
		{Guid, reflect.TypeOf(uuid.UUID{})},
		{TextFixed, reflect.TypeOf("")},
		{BlobFixed, reflect.TypeOf([]byte(nil))},
		{DateTime, reflect.TypeOf(time.Time{})},
	}
	for _, c := range cases {
		// The affinity argument must not matter when a type is declared.
		got, err := GoType(AffinityNone, c.in)
		if err != nil {
			t.Fatalf("GoType(None, %v): unexpected error %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("GoType(None, %v) = %v; want %v", c.in, got, c.want)
		}
	}

	if _, err := GoType(AffinityText, ColumnType(77)); err == nil {
		t.Fatal("GoType(Text, 77): want DomainError, got nil")
	}
}

func TestGuidFromValue(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("6f2c0a54-3a1e-4e7b-9d28-102030405060")

	if got, err := GuidFromValue(id); err != nil || got != id {
		t.Fatalf("GuidFromValue(uuid) = (%v, %v); want (%v, nil)", got, err, id)
	}
	if got, err := GuidFromValue(id.String()); err != nil || got != id {
		t.Fatalf("GuidFromValue(text) = (%v, %v); want (%v, nil)", got, err, id)
	}
	raw, _ := id.MarshalBinary()
	if got, err := GuidFromValue(raw); err != nil || got != id {
		t.Fatalf("GuidFromValue(blob) = (%v, %v); want (%v, nil)", got, err, id)
	}
	// Text arriving as bytes (how the engine hands back a TEXT column).
	if got, err := GuidFromValue([]byte(id.String())); err != nil || got != id {
		t.Fatalf("GuidFromValue(text bytes) = (%v, %v); want (%v, nil)", got, err, id)
	}

	if _, err := GuidFromValue(42); err == nil {
		t.Fatal("GuidFromValue(42): want error, got nil")
	}
	if _, err := GuidFromValue("not-a-guid"); err == nil {
		t.Fatal("GuidFromValue garbage text: want error, got nil")
	}
}
