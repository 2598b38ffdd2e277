package param

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestValidate_Scalars(t *testing.T) {
	require := require.New(t)

	require.NoError(Validate(Discrete("VOLT")))
	require.NoError(Validate(String("hello")))
	require.NoError(Validate(Block{1, 2, 3}))
	require.NoError(Validate(Bool(true)))
	require.NoError(Validate(Int(-1)))
	require.NoError(Validate(Float64(9.9e37)))
	require.NoError(Validate(Float32(9.9e37)))
	require.NoError(Validate(Default))

	require.ErrorIs(Validate(Discrete("VO\x00LT")), ErrInvalidMnemonic)
	require.ErrorIs(Validate(String("héllo")), ErrInvalidStringChar)
	require.ErrorIs(Validate(Float64(1e38)), ErrNumericOutOfRange)
	require.ErrorIs(Validate(Float32(1e38)), ErrNumericOutOfRange)
}

func TestValidate_ListAggregatesAllViolations(t *testing.T) {
	require := require.New(t)

	list := Quad(
		Discrete("BA\x01D"),
		Float64(1e38),
		String("温度"),
		Bool(true),
	)

	err := Validate(list)
	require.Error(err)

	// every violation is reported, not just the first
	require.ErrorIs(err, ErrInvalidMnemonic)
	require.ErrorIs(err, ErrNumericOutOfRange)
	require.ErrorIs(err, ErrInvalidStringChar)

	var merr *multierror.Error
	require.ErrorAs(err, &merr)
	require.Len(merr.Errors, 3)

	require.ErrorContains(merr.Errors[0], "element 0")
	require.ErrorContains(merr.Errors[1], "element 1")
	require.ErrorContains(merr.Errors[2], "element 2")
}

func TestValidate_NestedList(t *testing.T) {
	require := require.New(t)

	inner := Pair(Float64(-1e38), Discrete("FREQ"))
	outer := Pair(Bool(false), inner)

	err := Validate(outer)
	require.ErrorIs(err, ErrNumericOutOfRange)
	require.ErrorContains(err, "element 1")

	require.NoError(Validate(Pair(Bool(false), Pair(Float64(1), Discrete("FREQ")))))
}

func TestValidate_Nil(t *testing.T) {
	require := require.New(t)

	require.Error(Validate(nil))

	err := Validate(List{Bool(true), nil})
	require.ErrorContains(err, "element 1")
	require.ErrorContains(err, "nil parameter")
}
