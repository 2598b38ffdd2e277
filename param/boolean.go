package param

import "io"

// Bool is SCPI boolean program data, written as a single ASCII "1" or "0".
//
// Reference: SCPI 1999.0: 7.3
type Bool bool

// Encode writes "1" for true and "0" for false to w.
func (b Bool) Encode(w io.Writer) error {
	if b {
		return writeByte(w, '1')
	}

	return writeByte(w, '0')
}
