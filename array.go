package tensorfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DType names the element type of an [Array].
type DType string

const (
	Float64 DType = "float64"
	Float32 DType = "float32"
	Int64   DType = "int64"
	Int32   DType = "int32"
	Int16   DType = "int16"
	Int8    DType = "int8"
	Uint8   DType = "uint8"
	Bool    DType = "bool"
)

var dtypes = []DType{Float64, Float32, Int64, Int32, Int16, Int8, Uint8, Bool}

// String returns the dtype name.
func (d DType) String() string { return string(d) }

// Valid reports whether d is one of the supported dtypes.
func (d DType) Valid() bool {
	for _, v := range dtypes {
		if v == d {
			return true
		}
	}
	return false
}

// IsFloat reports whether d is a floating point dtype.
func (d DType) IsFloat() bool { return d == Float64 || d == Float32 }

// IsInteger reports whether d is a signed or unsigned integer dtype.
func (d DType) IsInteger() bool {
	switch d {
	case Int64, Int32, Int16, Int8, Uint8:
		return true
	default:
		return false
	}
}

// Shape holds the extent of each array dimension, outermost first.
type Shape []int

// NDim returns the number of dimensions.
func (s Shape) NDim() int { return len(s) }

// NumElements returns the total number of elements. A rank-0 shape holds
// one element.
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Equal reports whether two shapes are identical.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

// String renders the shape as a tuple: "()", "(20,)", "(4, 4)".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (s Shape) strides() []int {
	st := make([]int, len(s))
	acc := 1
	for i := len(s) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= s[i]
	}
	return st
}

// Array is an immutable, row-major N-dimensional numeric array.
type Array struct {
	dtype DType
	shape Shape
	data  []float64
}

// New creates an array of the given dtype and shape from row-major data.
// Values are coerced to the dtype: float32 values are rounded through
// float32, integers are truncated, and bools become 0 or 1.
func New(dtype DType, shape Shape, data []float64) (*Array, error) {
	if !dtype.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDType, dtype)
	}
	for _, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("%w: negative extent in %v", ErrInvalidShape, []int(shape))
		}
	}
	if n := shape.NumElements(); n != len(data) {
		return nil, fmt.Errorf("%w: shape %s needs %d elements, got %d", ErrShapeMismatch, shape, n, len(data))
	}
	vals := make([]float64, len(data))
	for i, v := range data {
		vals[i] = coerce(dtype, v)
	}
	return &Array{dtype: dtype, shape: shape.Clone(), data: vals}, nil
}

func coerce(dtype DType, v float64) float64 {
	switch {
	case dtype == Float32:
		return float64(float32(v))
	case dtype == Bool:
		if v != 0 {
			return 1
		}
		return 0
	case dtype.IsInteger():
		return math.Trunc(v)
	default:
		return v
	}
}

// Zeros returns a zero-filled array.
func Zeros(dtype DType, shape ...int) (*Array, error) {
	return New(dtype, Shape(shape), make([]float64, Shape(shape).NumElements()))
}

// Scalar returns a rank-0 array holding v.
func Scalar(dtype DType, v float64) (*Array, error) {
	return New(dtype, Shape{}, []float64{v})
}

// Linspace returns n evenly spaced float64 values over [start, stop],
// endpoint included.
func Linspace(start, stop float64, n int) *Array {
	if n < 0 {
		n = 0
	}
	data := make([]float64, n)
	if n == 1 {
		data[0] = start
	} else if n > 1 {
		step := (stop - start) / float64(n-1)
		for i := range data {
			data[i] = start + float64(i)*step
		}
		data[n-1] = stop
	}
	return &Array{dtype: Float64, shape: Shape{n}, data: data}
}

// Reshape returns a view of the same values under a new shape.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	s := Shape(shape)
	for _, d := range s {
		if d < 0 {
			return nil, fmt.Errorf("%w: negative extent in %v", ErrInvalidShape, shape)
		}
	}
	if s.NumElements() != len(a.data) {
		return nil, fmt.Errorf("%w: cannot reshape %s into %s", ErrShapeMismatch, a.shape, s)
	}
	return &Array{dtype: a.dtype, shape: s.Clone(), data: a.data}, nil
}

// DType returns the element type.
func (a *Array) DType() DType { return a.dtype }

// Shape returns a copy of the array's shape.
func (a *Array) Shape() Shape { return a.shape.Clone() }

// NDim returns the rank.
func (a *Array) NDim() int { return len(a.shape) }

// Size returns the total element count.
func (a *Array) Size() int { return len(a.data) }

// At returns the element at coord. It panics if coord is out of range,
// like a slice index.
func (a *Array) At(coord ...int) float64 {
	if len(coord) != len(a.shape) {
		panic(fmt.Sprintf("tensorfmt: At got %d indices for rank %d", len(coord), len(a.shape)))
	}
	off := 0
	for i, st := range a.shape.strides() {
		if coord[i] < 0 || coord[i] >= a.shape[i] {
			panic(fmt.Sprintf("tensorfmt: index %v out of range for shape %s", coord, a.shape))
		}
		off += coord[i] * st
	}
	return a.data[off]
}
