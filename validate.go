package mdhtml

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// InputError is returned by ValidateInput. Err is ErrInvalidUTF8 or
// ErrBinaryInput and Offset is the byte offset of the first offending byte.
type InputError struct {
	Offset int
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v at byte %d", e.Err, e.Offset)
}

func (e *InputError) Unwrap() error { return e.Err }

// ValidateInput rejects input that is not valid UTF-8 or that looks binary: a
// NUL byte anywhere, or at least maxControlPct percent control bytes once the
// input is minBinarySample bytes long. Tabs, line breaks, vertical tabs, form
// feeds and carriage returns are not control bytes here. The returned error is
// an *InputError matching the sentinels with errors.Is.
func ValidateInput(src []byte) error {
	control, firstControl := 0, -1
	for i := 0; i < len(src); {
		b := src[i]
		if b >= utf8.RuneSelf {
			r, size := utf8.DecodeRune(src[i:])
			if r == utf8.RuneError && size == 1 {
				return &InputError{Offset: i, Err: ErrInvalidUTF8}
			}
			i += size
			continue
		}
		if b == 0x00 {
			return &InputError{Offset: i, Err: ErrBinaryInput}
		}
		if isControlByte(b) {
			if firstControl < 0 {
				firstControl = i
			}
			control++
		}
		i++
	}
	if len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return &InputError{Offset: firstControl, Err: ErrBinaryInput}
	}
	return nil
}

func isControlByte(b byte) bool {
	if b < 0x09 {
		return true
	}
	if b > 0x0D && b < 0x20 {
		return true
	}
	return b == 0x7F
}
