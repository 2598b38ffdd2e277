package param

import (
	"fmt"
	"io"
)

// String is SCPI character string program data. On the wire it is enclosed
// in double quotes, with embedded double quotes escaped by doubling.
//
// Content is restricted to 7-bit ASCII; control characters other than
// whitespace are rejected with ErrInvalidStringChar rather than substituted.
//
// Reference: IEEE 488.2: 7.7.5
type String string

// Validate checks that every character of the string is within the
// permitted ASCII set. It returns ErrInvalidStringChar otherwise.
func (s String) Validate() error {
	for i := 0; i < len(s); i++ {
		if !isAllowedChar(s[i]) {
			return fmt.Errorf("%w: 0x%02X at offset %d", ErrInvalidStringChar, s[i], i)
		}
	}

	return nil
}

// Encode writes the quoted, escaped form of the string to w.
//
// Writes are issued per run of plain characters, so a disallowed character
// found mid-string aborts with a partial prefix already in w.
func (s String) Encode(w io.Writer) error {
	if err := writeByte(w, '"'); err != nil {
		return err
	}

	start := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '"':
			// flush up to and including the quote, then double it
			if err := writeString(w, string(s[start:i+1])); err != nil {
				return err
			}
			if err := writeByte(w, '"'); err != nil {
				return err
			}
			start = i + 1
		case !isAllowedChar(ch):
			return fmt.Errorf("%w: 0x%02X at offset %d", ErrInvalidStringChar, ch, i)
		}
	}

	if start < len(s) {
		if err := writeString(w, string(s[start:])); err != nil {
			return err
		}
	}

	return writeByte(w, '"')
}
