package param

import "io"

// Parameter is implemented by any value that can be encoded as SCPI program
// data.
//
// The interface is open: external types may implement it to define
// instrument-specific parameter encodings beyond the built-in kinds.
type Parameter interface {
	// Encode writes the wire representation of the parameter to w.
	//
	// On a grammar violation the encoder aborts immediately and returns one
	// of the package sentinel errors; w may then hold a truncated prefix
	// that the caller must treat as invalid. Errors returned by w itself
	// are passed through unchanged.
	Encode(w io.Writer) error
}

// isAllowedChar reports whether b may appear in SCPI character data:
// 7-bit ASCII, excluding control characters other than whitespace.
func isAllowedChar(b byte) bool {
	if b >= 0x20 && b < 0x7f {
		return true
	}
	switch b {
	case '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func writeByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
