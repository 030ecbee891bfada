package types

import "testing"

/*
Unit tests for the per-type metadata tables.

We cover:
  - ColumnSize: byte widths for fixed-width types, 16 for Guid, the
    ColumnSizeMax sentinel for variable-length types
  - NumericPrecision / NumericScale: concrete values for every numeric
    type, "none" (ok == false, not zero) for text, binary, boolean,
    date/time, guid and object
  - DomainError guards on all three lookups
*/

func TestColumnSize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   ColumnType
		want int64
	}{
		{Int8, 1},
		{Uint8, 1},
		{Boolean, 1},
		{Int16, 2},
		{Uint16, 2},
		{Int32, 4},
		{Uint32, 4},
		{Float32, 4},
		{Int64, 8},
		{Uint64, 8},
		{Float64, 8},
		{Decimal, 8},
		{DateTime, 8},
		{Guid, 16},
		{Text, ColumnSizeMax},
		{TextFixed, ColumnSizeMax},
		{Blob, ColumnSizeMax},
		{BlobFixed, ColumnSizeMax},
		{Object, ColumnSizeMax},
	}
	for _, c := range cases {
		got, err := ColumnSize(c.in)
		if err != nil {
			t.Fatalf("ColumnSize(%v): unexpected error %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ColumnSize(%v) = %d; want %d", c.in, got, c.want)
		}
	}

	if _, err := ColumnSize(ColumnType(42)); err == nil {
		t.Fatal("ColumnSize(42): want DomainError, got nil")
	}
}

func TestNumericPrecision(t *testing.T) {
	t.Parallel()

	concrete := []struct {
		in   ColumnType
		want int64
	}{
		{Int8, 3},
		{Uint8, 3},
		{Int16, 5},
		{Uint16, 5},
		{Int32, 10},
		{Uint32, 10},
		{Int64, 19},
		{Uint64, 20},
		{Float32, 7},
		{Float64, 15},
		{Decimal, 28},
	}
	for _, c := range concrete {
		got, ok, err := NumericPrecision(c.in)
		if err != nil {
			t.Fatalf("NumericPrecision(%v): unexpected error %v", c.in, err)
		}
		if !ok || got != c.want {
			t.Fatalf("NumericPrecision(%v) = (%d, %v); want (%d, true)", c.in, got, ok, c.want)
		}
	}

	// "None" must be distinguishable from zero: ok is false here.
	for _, ct := range []ColumnType{Boolean, Guid, Text, TextFixed, Blob, BlobFixed, DateTime, Object} {
		if _, ok, err := NumericPrecision(ct); err != nil || ok {
			t.Fatalf("NumericPrecision(%v) ok = %v, err = %v; want none", ct, ok, err)
		}
	}

	if _, _, err := NumericPrecision(ColumnType(42)); err == nil {
		t.Fatal("NumericPrecision(42): want DomainError, got nil")
	}
}

func TestNumericScale(t *testing.T) {
	t.Parallel()

	numeric := []ColumnType{
		Int8, Uint8, Int16, Uint16, Int32, Uint32, Int64, Uint64,
		Float32, Float64, Decimal,
	}
	for _, ct := range numeric {
		got, ok, err := NumericScale(ct)
		if err != nil {
			t.Fatalf("NumericScale(%v): unexpected error %v", ct, err)
		}
		if !ok || got != 0 {
			t.Fatalf("NumericScale(%v) = (%d, %v); want (0, true)", ct, got, ok)
		}
	}

	for _, ct := range []ColumnType{Boolean, Guid, Text, Blob, DateTime, Object} {
		if _, ok, err := NumericScale(ct); err != nil || ok {
			t.Fatalf("NumericScale(%v) ok = %v, err = %v; want none", ct, ok, err)
		}
	}

	if _, _, err := NumericScale(ColumnType(-3)); err == nil {
		t.Fatal("NumericScale(-3): want DomainError, got nil")
	}
}
