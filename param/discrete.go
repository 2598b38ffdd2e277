package param

import (
	"fmt"
	"io"

	"github.com/puzpuzpuz/xsync/v3"
)

// Discrete is a fixed protocol mnemonic, such as a named mode or a channel
// keyword. It is written to the wire verbatim, with no delimiters.
//
// Reference: IEEE 488.2
type Discrete string

// mnemonicOK caches mnemonics that already passed validation. Mnemonics are
// protocol constants encoded over and over, so the cache stays small and
// each distinct mnemonic is scanned once. Failures are not cached: an
// invalid mnemonic is not a reused protocol constant.
var mnemonicOK = xsync.NewMapOf[string, struct{}]()

// Validate checks that the mnemonic consists solely of printable ASCII or
// whitespace characters. It returns ErrInvalidMnemonic otherwise.
func (d Discrete) Validate() error {
	if _, ok := mnemonicOK.Load(string(d)); ok {
		return nil
	}

	for i := 0; i < len(d); i++ {
		if !isAllowedChar(d[i]) {
			return fmt.Errorf("%w: mnemonic %q, offset %d", ErrInvalidMnemonic, string(d), i)
		}
	}

	mnemonicOK.Store(string(d), struct{}{})

	return nil
}

// Encode writes the mnemonic bytes to w, unmodified.
func (d Discrete) Encode(w io.Writer) error {
	if err := d.Validate(); err != nil {
		return err
	}

	return writeString(w, string(d))
}
