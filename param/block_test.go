package param

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlock_Encode(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		desc     string
		input    Block
		expected []byte
	}{
		{desc: "empty block", input: Block{}, expected: []byte("#10")},
		{desc: "nil block", input: nil, expected: []byte("#10")},
		{desc: "3 bytes", input: Block{0x11, 0x22, 0x33}, expected: []byte("#13\x11\x22\x33")},
		{desc: "single zero byte", input: Block{0x00}, expected: []byte("#11\x00")},
		{
			desc:     "10 bytes needs a 2-digit length",
			input:    Block("0123456789"),
			expected: []byte("#2100123456789"),
		},
		{
			desc:     "non-ASCII payload passes through verbatim",
			input:    Block{0xff, 0x00, 0x80},
			expected: []byte("#13\xff\x00\x80"),
		},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.desc)

		var buf bytes.Buffer
		err := test.input.Encode(&buf)
		require.NoError(err)
		require.Equal(test.expected, buf.Bytes())
	}
}

func TestBlockHeader_DigitCount(t *testing.T) {
	require := require.New(t)

	// The digit-count byte must equal the decimal digit count of the length,
	// and the length field must read back as the length itself.
	lengths := []int{0, 1, 9, 10, 42, 99, 100, 999, 1000, 123456, 99_999_999, 100_000_000, MaxBlockLen}

	for _, n := range lengths {
		hdr, err := appendBlockHeader(nil, n)
		require.NoError(err)

		require.Equal(byte('#'), hdr[0])

		digits := int(hdr[1] - '0')
		require.Equal(len(strconv.Itoa(n)), digits)

		field, err := strconv.Atoi(string(hdr[2:]))
		require.NoError(err)
		require.Equal(n, field)
		require.Len(hdr, 2+digits)
	}
}

func TestBlockHeader_TooLarge(t *testing.T) {
	require := require.New(t)

	// 10-digit lengths cannot be expressed by the single-digit count field
	hdr, err := appendBlockHeader(nil, MaxBlockLen+1)
	require.ErrorIs(err, ErrBlockTooLarge)
	require.Nil(hdr)

	hdr, err = appendBlockHeader(nil, 1_000_000_000)
	require.ErrorIs(err, ErrBlockTooLarge)
	require.Nil(hdr)
}
