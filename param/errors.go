package param

import "errors"

var (
	// ErrInvalidMnemonic indicates that a Discrete mnemonic contains a
	// non-ASCII character or a control character other than whitespace.
	ErrInvalidMnemonic = errors.New("mnemonic contains non-ASCII or control characters")

	// ErrInvalidStringChar indicates that string content contains a character
	// outside the permitted ASCII set. Disallowed characters are rejected,
	// never substituted with a placeholder.
	ErrInvalidStringChar = errors.New("string contains character outside the permitted ASCII set")

	// ErrBlockTooLarge indicates that a block's byte length needs more than
	// 9 decimal digits, which the single-digit count field of the
	// arbitrary-block header cannot express.
	ErrBlockTooLarge = errors.New("block length exceeds 9 decimal digits")

	// ErrNumericOutOfRange indicates that a finite float magnitude exceeds
	// the decimal numeric program data range of +/- 9.9E37.
	// SCPI 1999.0: 7.2
	ErrNumericOutOfRange = errors.New("value outside decimal numeric program data range")
)
