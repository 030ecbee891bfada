package nativetext

import "testing"

/*
Unit tests for the native buffer decode contract.

We cover:
  - DecodeText: nil buffer, zero length, explicit length, length past the
    buffer, and -1 with and without a NUL terminator
  - DecodeUTF16: both endiannesses, BOM override, NUL-pair termination,
    and odd trailing bytes being dropped
*/

func TestDecodeText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		buf  []byte
		n    int
		want string
	}{
		{"nil buffer", nil, -1, ""},
		{"zero length", []byte("hello"), 0, ""},
		{"exact length", []byte("hello"), 5, "hello"},
		{"partial length", []byte("hello"), 3, "hel"},
		{"length includes NUL region", []byte("he\x00lo"), 5, "he\x00lo"},
		{"length past buffer", []byte("hi"), 10, "hi"},
		{"scan to NUL", []byte("hi\x00rest"), -1, "hi"},
		{"scan without NUL", []byte("hi"), -1, "hi"},
		{"leading NUL", []byte("\x00hi"), -1, ""},
		{"multibyte", []byte("h\xc3\xa9\x00x"), -1, "hé"},
	}
	for _, c := range cases {
		if got := DecodeText(c.buf, c.n); got != c.want {
			t.Fatalf("%s: DecodeText(%q, %d) = %q; want %q", c.name, c.buf, c.n, got, c.want)
		}
	}
}

func TestDecodeUTF16(t *testing.T) {
	t.Parallel()

	le := []byte{0x68, 0x00, 0x69, 0x00}             // "hi" little-endian
	be := []byte{0x00, 0x68, 0x00, 0x69}             // "hi" big-endian
	bomLE := append([]byte{0xFF, 0xFE}, le...)       // BOM then "hi"
	termLE := append(le, 0x00, 0x00, 0x68, 0x00)     // "hi", NUL pair, junk

	cases := []struct {
		name  string
		buf   []byte
		n     int
		order ByteOrder
		want  string
	}{
		{"nil buffer", nil, -1, LittleEndian, ""},
		{"zero length", le, 0, LittleEndian, ""},
		{"little endian", le, len(le), LittleEndian, "hi"},
		{"big endian", be, len(be), BigEndian, "hi"},
		{"bom wins over declared order", bomLE, len(bomLE), BigEndian, "hi"},
		{"scan to NUL pair", termLE, -1, LittleEndian, "hi"},
		{"odd byte dropped", append(le, 0x68), 5, LittleEndian, "hi"},
	}
	for _, c := range cases {
		got, err := DecodeUTF16(c.buf, c.n, c.order)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", c.name, err)
		}
		if got != c.want {
			t.Fatalf("%s: DecodeUTF16 = %q; want %q", c.name, got, c.want)
		}
	}
}
