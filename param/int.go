package param

import (
	"io"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Int is signed integer program data, written in canonical decimal form:
// an optional leading "-", no leading zeros, no "+", no grouping separators.
type Int int64

// Uint is unsigned integer program data, written in canonical decimal form.
type Uint uint64

// I converts a value of any signed integer width to an Int parameter.
func I[T constraints.Signed](v T) Int {
	return Int(v)
}

// U converts a value of any unsigned integer width to a Uint parameter.
func U[T constraints.Unsigned](v T) Uint {
	return Uint(v)
}

// Encode writes the canonical decimal form of the value to w.
func (v Int) Encode(w io.Writer) error {
	var buf [20]byte
	_, err := w.Write(strconv.AppendInt(buf[:0], int64(v), 10))

	return err
}

// Encode writes the canonical decimal form of the value to w.
func (v Uint) Encode(w io.Writer) error {
	var buf [20]byte
	_, err := w.Write(strconv.AppendUint(buf[:0], uint64(v), 10))

	return err
}
