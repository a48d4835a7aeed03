package gap

import (
	"fmt"
	"strconv"
)

// Value is a nullable float64 cell.
// The zero Value is NA; use Num to build a present value.
type Value struct {
	v     float64
	valid bool
}

// Num returns a present value. NaN stays a present value.
func Num(v float64) Value { return Value{v: v, valid: true} }

// NA returns a missing value.
func NA() Value { return Value{} }

// IsNA reports whether the cell is missing.
func (x Value) IsNA() bool { return !x.valid }

// Float returns the stored number and whether it is present.
func (x Value) Float() (float64, bool) { return x.v, x.valid }

// String renders NA as "NA" and numbers in their shortest form.
func (x Value) String() string {
	if !x.valid {
		return "NA"
	}

	return strconv.FormatFloat(x.v, 'g', -1, 64)
}

// Column is an ordered, read-only sequence of nullable cells.
type Column []Value

// NewColumn builds a Column from values and a parallel validity bitmap.
// valid[i] == false marks values[i] as NA. A nil bitmap marks every value present.
//
// Returns ErrLengthMismatch when a non-nil bitmap differs in length.
func NewColumn(values []float64, valid []bool) (Column, error) {
	if valid != nil && len(valid) != len(values) {
		return nil, fmt.Errorf("%w: values=%d valid=%d", ErrLengthMismatch, len(values), len(valid))
	}
	c := make(Column, len(values))
	for i, v := range values {
		if valid == nil || valid[i] {
			c[i] = Num(v)
		}
	}

	return c, nil
}

// ColumnFromPtrs builds a Column where a nil pointer is NA.
func ColumnFromPtrs(ptrs []*float64) Column {
	c := make(Column, len(ptrs))
	for i, p := range ptrs {
		if p != nil {
			c[i] = Num(*p)
		}
	}

	return c
}

// Len returns the number of cells.
func (c Column) Len() int { return len(c) }

// At returns the cell at 0-based index i, or ErrIndexOutOfRange.
func (c Column) At(i int) (Value, error) {
	if i < 0 || i >= len(c) {
		return Value{}, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(c))
	}

	return c[i], nil
}

// CountNA returns the number of missing cells.
func (c Column) CountNA() int {
	n := 0
	for _, x := range c {
		if !x.valid {
			n++
		}
	}

	return n
}
