package param

import (
	"fmt"
	"io"
)

// List is an ordered multi-parameter argument list, written as its elements
// in order, joined by single commas with no trailing comma. Elements may be
// any Parameter, including nested lists.
type List []Parameter

// NewList creates a List from the given parameters in order.
func NewList(params ...Parameter) List {
	return List(params)
}

// Pair creates a two-element argument list.
func Pair(a, b Parameter) List {
	return List{a, b}
}

// Triple creates a three-element argument list.
func Triple(a, b, c Parameter) List {
	return List{a, b, c}
}

// Quad creates a four-element argument list.
func Quad(a, b, c, d Parameter) List {
	return List{a, b, c, d}
}

// Encode writes each element in order to w, with a comma before every
// element except the first. The first element error aborts the remaining
// elements; sink errors pass through unchanged.
func (l List) Encode(w io.Writer) error {
	for i, p := range l {
		if i > 0 {
			if err := writeByte(w, ','); err != nil {
				return err
			}
		}

		if p == nil {
			return fmt.Errorf("nil parameter at element %d", i)
		}

		if err := p.Encode(w); err != nil {
			return err
		}
	}

	return nil
}
