package param

import (
	"fmt"
	"io"
	"strconv"
)

// MaxBlockLen is the largest block byte length whose decimal representation
// fits the single-digit count field of the arbitrary-block header.
const MaxBlockLen = 999_999_999

// Block is SCPI definite-length arbitrary-block program data. On the wire it
// is written as "#", one digit giving the width of the length field, the
// decimal byte length, then the raw bytes verbatim.
//
// Reference: IEEE 488.2: 7.7.6
type Block []byte

// Validate checks that the block length fits a 9-digit length field.
// It returns ErrBlockTooLarge otherwise.
func (b Block) Validate() error {
	if len(b) > MaxBlockLen {
		return fmt.Errorf("%w: %d bytes", ErrBlockTooLarge, len(b))
	}

	return nil
}

// Encode writes the block header and the raw bytes to w.
func (b Block) Encode(w io.Writer) error {
	hdr, err := appendBlockHeader(make([]byte, 0, 11), len(b))
	if err != nil {
		return err
	}

	if _, err := w.Write(hdr); err != nil {
		return err
	}

	_, err = w.Write(b)

	return err
}

// appendBlockHeader appends the "#<digits><length>" header for a block of
// n bytes to dst. It fails with ErrBlockTooLarge when the decimal form of n
// needs more than 9 digits.
func appendBlockHeader(dst []byte, n int) ([]byte, error) {
	if n > MaxBlockLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrBlockTooLarge, n)
	}

	dst = append(dst, '#', 0)
	mark := len(dst)
	dst = strconv.AppendInt(dst, int64(n), 10)
	dst[mark-1] = '0' + byte(len(dst)-mark)

	return dst, nil
}
