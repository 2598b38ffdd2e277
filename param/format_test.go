package param

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	require := require.New(t)

	out, err := Format(Triple(D("SENS"), F8(0.5), Min))
	require.NoError(err)
	require.Equal("SENS,5E-1,MIN", out)

	out, err = Format(String("foo"))
	require.NoError(err)
	require.Equal(`"foo"`, out)

	// no partial prefix escapes on error
	out, err = Format(Pair(Bool(true), Float64(1e38)))
	require.ErrorIs(err, ErrNumericOutOfRange)
	require.Empty(out)
}

func TestAppendFormat(t *testing.T) {
	require := require.New(t)

	dst := []byte("FREQ ")
	dst, err := AppendFormat(dst, Pair(Float64(1.5), Max))
	require.NoError(err)
	require.Equal("FREQ 1.5E0,MAX", string(dst))

	// dst is returned unmodified on error
	dst, err = AppendFormat(dst, Discrete("B\x02AD"))
	require.ErrorIs(err, ErrInvalidMnemonic)
	require.Equal("FREQ 1.5E0,MAX", string(dst))
}

func TestFormat_PooledBufferReuse(t *testing.T) {
	require := require.New(t)

	// repeated formats must not leak state between calls
	for i := 0; i < 100; i++ {
		out, err := Format(Block{0xAA, 0xBB})
		require.NoError(err)
		require.Equal("#12\xAA\xBB", out)
	}
}
