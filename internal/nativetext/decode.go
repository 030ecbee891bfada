// Package nativetext decodes the raw text buffers handed back by the
// native library. The engine returns either UTF-8 or UTF-16 bytes together
// with a length that may be -1, meaning "scan forward to the terminator".
// The decode contract is:
//
//   - a nil/empty buffer or length 0 yields the empty string
//   - length -1 scans to the first NUL (or NUL pair for UTF-16) and
//     decodes what precedes it
//   - any other length decodes exactly that many bytes
//
// UTF-16 decoding goes through golang.org/x/text so byte order marks and
// both endiannesses are handled uniformly.
package nativetext

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// DecodeText decodes n bytes of UTF-8 from buf according to the contract
// above. The bytes are taken as-is; invalid UTF-8 sequences pass through
// unmodified, matching what the engine itself does.
func DecodeText(buf []byte, n int) string {
	if len(buf) == 0 || n == 0 {
		return ""
	}
	if n < 0 {
		if i := bytes.IndexByte(buf, 0); i >= 0 {
			buf = buf[:i]
		}
		return string(buf)
	}
	if n > len(buf) {
		n = len(buf)
	}
	return string(buf[:n])
}

// ByteOrder selects the endianness of a UTF-16 buffer when no byte order
// mark is present. A BOM in the buffer always wins.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// DecodeUTF16 decodes n bytes of UTF-16 from buf. Length -1 scans for the
// first aligned NUL code unit; other lengths are rounded down to a whole
// number of code units. Decoding failures (which x/text reports only for
// internal errors, not for unpaired surrogates — those become U+FFFD) are
// returned to the caller.
func DecodeUTF16(buf []byte, n int, order ByteOrder) (string, error) {
	if len(buf) == 0 || n == 0 {
		return "", nil
	}
	if n < 0 {
		n = terminatedLen(buf)
	}
	if n > len(buf) {
		n = len(buf)
	}
	n &^= 1 // whole code units only

	endian := unicode.LittleEndian
	if order == BigEndian {
		endian = unicode.BigEndian
	}
	dec := unicode.UTF16(endian, unicode.UseBOM).NewDecoder()
	out, err := dec.Bytes(buf[:n])
	if err != nil {
		return "", fmt.Errorf("nativetext: decode utf-16: %w", err)
	}
	return string(out), nil
}

// terminatedLen finds the byte length of a UTF-16 buffer up to the first
// aligned zero code unit, or the full (even) length if none exists.
func terminatedLen(buf []byte) int {
	for i := 0; i+1 < len(buf); i += 2 {
		if buf[i] == 0 && buf[i+1] == 0 {
			return i
		}
	}
	return len(buf)
}
