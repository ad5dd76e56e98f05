package wad

import (
	"bytes"
)

// WAD eight-character string type. Null-terminated for short strings.
type String8 [8]byte

// String converts String8 to string without validation
func (s String8) String() string {
	return string(s[:s.len()])
}

// Decode returns the name up to the first null byte. Every byte before it must be 7-bit ASCII.
func (s String8) Decode() (string, error) {
	return s.decode(-1)
}

func (s String8) decode(index int) (string, error) {
	n := s.len()
	for _, b := range s[:n] {
		if b >= 0x80 {
			raw := make([]byte, len(s))
			copy(raw, s[:])
			return "", &InvalidLumpNameError{Reason: ReasonNonASCII, Bytes: raw, Index: index}
		}
	}
	return string(s[:n]), nil
}

func (s String8) len() int {
	i := bytes.IndexByte(s[:], 0)
	if i == -1 {
		i = len(s)
	}
	return i
}
