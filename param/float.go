package param

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
)

// MaxFloatMagnitude is the largest finite magnitude representable as SCPI
// decimal numeric program data.
//
// Reference: SCPI 1999.0: 7.2
const MaxFloatMagnitude = 9.9e37

// Float32 is 32-bit decimal numeric program data. Finite values are written
// in scientific notation with the shortest mantissa that round-trips to the
// same float32; NaN and the infinities are written as the NAN, INF and NINF
// literals.
//
// Reference: SCPI 1999.0: 7.2.1.4, 7.2.1.5
type Float32 float32

// Float64 is 64-bit decimal numeric program data. See Float32 for the wire
// forms; the mantissa round-trips at float64 precision.
type Float64 float64

// Validate checks that a finite value is within the decimal numeric program
// data range. It returns ErrNumericOutOfRange otherwise.
//
// The comparison happens at float32 precision, where the range maximum
// rounds to 9.900000302E37; that rounded value is the f32 boundary.
func (v Float32) Validate() error {
	if (v > MaxFloatMagnitude || v < -MaxFloatMagnitude) && !math.IsInf(float64(v), 0) {
		return fmt.Errorf("%w: %v", ErrNumericOutOfRange, float32(v))
	}

	return nil
}

// Validate checks that a finite value is within the decimal numeric program
// data range. It returns ErrNumericOutOfRange otherwise.
func (v Float64) Validate() error {
	if (v > MaxFloatMagnitude || v < -MaxFloatMagnitude) && !math.IsInf(float64(v), 0) {
		return fmt.Errorf("%w: %v", ErrNumericOutOfRange, float64(v))
	}

	return nil
}

// Encode writes the wire form of the value to w.
func (v Float32) Encode(w io.Writer) error {
	if lit, ok := specialFloat(float64(v)); ok {
		return writeString(w, lit)
	}

	if err := v.Validate(); err != nil {
		return err
	}

	return writeFloat(w, float64(v), 32)
}

// Encode writes the wire form of the value to w.
func (v Float64) Encode(w io.Writer) error {
	if lit, ok := specialFloat(float64(v)); ok {
		return writeString(w, lit)
	}

	if err := v.Validate(); err != nil {
		return err
	}

	return writeFloat(w, float64(v), 64)
}

// specialFloat returns the literal for NaN and the infinities.
//
// Reference: SCPI 1999.0: 7.2.1.4, 7.2.1.5
func specialFloat(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NAN", true
	case math.IsInf(v, 1):
		return "INF", true
	case math.IsInf(v, -1):
		return "NINF", true
	default:
		return "", false
	}
}

func writeFloat(w io.Writer, v float64, bitSize int) error {
	var buf [32]byte
	out := strconv.AppendFloat(buf[:0], v, 'E', -1, bitSize)
	_, err := w.Write(trimExponent(out))

	return err
}

// trimExponent rewrites strconv's exponent form (E+05, E-07) into the SCPI
// decimal numeric form: no plus sign, no leading zeros (E5, E-7).
// The rewrite happens in place; b must not be retained.
func trimExponent(b []byte) []byte {
	e := bytes.LastIndexByte(b, 'E')
	exp := b[e+1:]
	out := b[:e+1]

	if exp[0] == '-' {
		out = append(out, '-')
		exp = exp[1:]
	} else if exp[0] == '+' {
		exp = exp[1:]
	}

	for len(exp) > 1 && exp[0] == '0' {
		exp = exp[1:]
	}

	return append(out, exp...)
}
