package param

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Validator is implemented by parameters whose encoding can fail for reasons
// other than sink errors.
type Validator interface {
	Validate() error
}

// Validate checks a parameter tree without writing to any sink.
//
// Encode reports only the first violation and may leave a truncated prefix
// in the sink. Validate visits the whole tree up front and aggregates every
// violation, annotated with its element index, so callers can reject a bad
// argument list before touching the transport.
//
// Parameters that implement Validator are checked; anything else is assumed
// valid.
func Validate(p Parameter) error {
	switch v := p.(type) {
	case nil:
		return errors.New("nil parameter")
	case List:
		var result *multierror.Error
		for i, elem := range v {
			if err := Validate(elem); err != nil {
				result = multierror.Append(result, fmt.Errorf("element %d: %w", i, err))
			}
		}

		return result.ErrorOrNil()
	case Validator:
		return v.Validate()
	default:
		return nil
	}
}
