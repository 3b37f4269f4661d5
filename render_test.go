package tensorfmt_test

import (
	"math"
	"testing"

	"github.com/bjaus/tensorfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, a *tensorfmt.Array, mod func(*tensorfmt.PrintOptions)) string {
	t.Helper()
	o := tensorfmt.DefaultPrintOptions()
	if mod != nil {
		mod(&o)
	}
	s, err := tensorfmt.LegacyRenderer{}.Render(a, o)
	require.NoError(t, err)
	return s
}

func mustNew(t *testing.T, d tensorfmt.DType, shape tensorfmt.Shape, data ...float64) *tensorfmt.Array {
	t.Helper()
	a, err := tensorfmt.New(d, shape, data)
	require.NoError(t, err)
	return a
}

func TestRenderFloats(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a    *tensorfmt.Array
		want string
	}{
		{"mixed sign", mustNew(t, tensorfmt.Float64, tensorfmt.Shape{2}, -1.5, 2.25), "array([-1.5 ,  2.25])"},
		{"scientific small", mustNew(t, tensorfmt.Float64, tensorfmt.Shape{2}, 1e-5, 1), "array([  1.00000000e-05,   1.00000000e+00])"},
		{"scientific spread", mustNew(t, tensorfmt.Float64, tensorfmt.Shape{2}, 1, 5000), "array([  1.00000000e+00,   5.00000000e+03])"},
		{"nan", mustNew(t, tensorfmt.Float64, tensorfmt.Shape{2}, math.NaN(), 1.5), "array([ nan,  1.5])"},
		{"inf", mustNew(t, tensorfmt.Float64, tensorfmt.Shape{2}, math.Inf(-1), 1), "array([-inf,   1.])"},
		{"float32", mustNew(t, tensorfmt.Float32, tensorfmt.Shape{2}, 0.5, 1), "array([ 0.5,  1. ], dtype=float32)"},
		{"large integral", mustNew(t, tensorfmt.Float64, tensorfmt.Shape{2}, 10, 250), "array([  10.,  250.])"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, render(t, tt.a, nil))
		})
	}
}

func TestRenderPrecision(t *testing.T) {
	t.Parallel()
	a := mustNew(t, tensorfmt.Float64, tensorfmt.Shape{3}, 1.0/3, 2.0/3, 1)
	got := render(t, a, func(o *tensorfmt.PrintOptions) { o.Precision = 3 })
	assert.Equal(t, "array([ 0.333,  0.667,  1.   ])", got)
}

func TestRenderScalars(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		dtype tensorfmt.DType
		v     float64
		want  string
	}{
		{"integral float", tensorfmt.Float64, 3, "array(3.0)"},
		{"tiny float", tensorfmt.Float64, 1.5e-5, "array(1.5e-05)"},
		{"float32", tensorfmt.Float32, 0.1, "array(0.10000000149011612, dtype=float32)"},
		{"int64", tensorfmt.Int64, -7, "array(-7)"},
		{"uint8", tensorfmt.Uint8, 7, "array(7, dtype=uint8)"},
		{"bool", tensorfmt.Bool, 1, "array(True)"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, err := tensorfmt.Scalar(tt.dtype, tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, render(t, a, nil))
		})
	}
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()
	a := zeros(t, 2, 0)
	assert.Equal(t, "array([], shape=(2, 0), dtype=float64)", render(t, a, nil))
}

func TestRenderSummarized1D(t *testing.T) {
	t.Parallel()
	a, err := tensorfmt.New(tensorfmt.Int64, tensorfmt.Shape{10}, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	got := render(t, a, func(o *tensorfmt.PrintOptions) {
		o.Threshold = 5
		o.EdgeItems = 2
	})
	assert.Equal(t, "array([0, 1, ..., 8, 9])", got)
}

func TestRenderSummarized4D(t *testing.T) {
	t.Parallel()
	a := zeros(t, 3, 1, 1, 1)
	got := render(t, a, func(o *tensorfmt.PrintOptions) {
		o.Threshold = 1
		o.EdgeItems = 1
	})
	assert.Equal(t, "array([[[[ 0.]]],\n\n\n       ..., \n       [[[ 0.]]]])", got)
}

func TestRenderRejectsInvalidOptions(t *testing.T) {
	t.Parallel()
	_, err := tensorfmt.LegacyRenderer{}.Render(zeros(t, 2), tensorfmt.PrintOptions{Precision: -1, EdgeItems: 1, LineWidth: 10})
	assert.ErrorIs(t, err, tensorfmt.ErrInvalidOptions)
}
