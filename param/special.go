package param

import (
	"fmt"
	"io"
)

// DefaultValue is the special parameter that lets the instrument select a
// numeric value, written as the DEF literal.
//
// Reference: SCPI 1999.0: 7.2.1.1 - DEFault
type DefaultValue struct{}

// Default is the shared DefaultValue sentinel.
var Default DefaultValue

// Encode writes "DEF" to w.
func (DefaultValue) Encode(w io.Writer) error {
	return writeString(w, "DEF")
}

// Limit is the special parameter that refers to a numeric limit value.
//
// Reference: SCPI 1999.0: 7.2.1.2 - MINimum|MAXimum
type Limit int

const (
	// Min refers to the instrument's minimum for the parameter.
	Min Limit = iota
	// Max refers to the instrument's maximum for the parameter.
	Max
)

// Encode writes "MIN" or "MAX" to w.
func (l Limit) Encode(w io.Writer) error {
	switch l {
	case Min:
		return writeString(w, "MIN")
	case Max:
		return writeString(w, "MAX")
	default:
		return fmt.Errorf("invalid limit value: %d", l)
	}
}

// Step is the special parameter that refers to a relative numeric step.
//
// Reference: SCPI 1999.0: 7.2.1.3 - UP|DOWN
type Step int

const (
	// Up steps the parameter up by the instrument's step amount.
	Up Step = iota
	// Down steps the parameter down by the instrument's step amount.
	Down
)

// Encode writes "UP" or "DOWN" to w.
func (s Step) Encode(w io.Writer) error {
	switch s {
	case Up:
		return writeString(w, "UP")
	case Down:
		return writeString(w, "DOWN")
	default:
		return fmt.Errorf("invalid step value: %d", s)
	}
}
