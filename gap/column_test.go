package gap_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nagap/gap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValue_NAvsNaN verifies that NaN from arithmetic is a present value.
func TestValue_NAvsNaN(t *testing.T) {
	assert.True(t, gap.NA().IsNA(), "NA() must be missing")
	assert.True(t, gap.Value{}.IsNA(), "zero Value must be missing")
	assert.False(t, gap.Num(math.NaN()).IsNA(), "NaN is a number, not NA")

	v, ok := gap.Num(2.5).Float()
	assert.True(t, ok)
	assert.Equal(t, 2.5, v)

	assert.Equal(t, "NA", gap.NA().String())
	assert.Equal(t, "2.5", gap.Num(2.5).String())
}

// TestNewColumn_Bitmap checks the parallel validity bitmap constructor.
func TestNewColumn_Bitmap(t *testing.T) {
	c, err := gap.NewColumn([]float64{1, 0, 3}, []bool{true, false, true})
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 1, c.CountNA())
	assert.True(t, c[1].IsNA(), "valid=false marks NA")

	// nil bitmap: everything present
	c, err = gap.NewColumn([]float64{1, 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, c.CountNA())

	_, err = gap.NewColumn([]float64{1, 2}, []bool{true})
	assert.ErrorIs(t, err, gap.ErrLengthMismatch)
}

// TestColumnFromPtrs treats nil pointers as NA.
func TestColumnFromPtrs(t *testing.T) {
	one := 1.0
	c := gap.ColumnFromPtrs([]*float64{&one, nil, &one})
	assert.Equal(t, gap.Column{gap.Num(1), gap.NA(), gap.Num(1)}, c)
}

// TestColumn_At returns ErrIndexOutOfRange instead of panicking.
func TestColumn_At(t *testing.T) {
	c := gap.Column{gap.Num(4), gap.NA()}

	v, err := c.At(0)
	require.NoError(t, err)
	assert.Equal(t, gap.Num(4), v)

	_, err = c.At(-1)
	assert.ErrorIs(t, err, gap.ErrIndexOutOfRange)
	_, err = c.At(2)
	assert.ErrorIs(t, err, gap.ErrIndexOutOfRange)
}
