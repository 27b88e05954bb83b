package satmath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/laserkit/beam/internal/satmath"
)

func TestBounds(t *testing.T) {
	lo16, hi16 := satmath.Bounds[int16]()
	assert.Equal(t, int16(math.MinInt16), lo16)
	assert.Equal(t, int16(math.MaxInt16), hi16)

	lo32, hi32 := satmath.Bounds[int32]()
	assert.Equal(t, int32(math.MinInt32), lo32)
	assert.Equal(t, int32(math.MaxInt32), hi32)

	ulo16, uhi16 := satmath.Bounds[uint16]()
	assert.Equal(t, uint16(0), ulo16)
	assert.Equal(t, uint16(math.MaxUint16), uhi16)

	ulo32, uhi32 := satmath.Bounds[uint32]()
	assert.Equal(t, uint32(0), ulo32)
	assert.Equal(t, uint32(math.MaxUint32), uhi32)

	lo64, hi64 := satmath.Bounds[int64]()
	assert.Equal(t, int64(math.MinInt64), lo64)
	assert.Equal(t, int64(math.MaxInt64), hi64)

	assert.True(t, satmath.Signed[int8]())
	assert.False(t, satmath.Signed[uint8]())
}

func TestAdd(t *testing.T) {
	assert.Equal(t, uint16(300), satmath.Add[uint16](100, 200))
	assert.Equal(t, uint16(math.MaxUint16), satmath.Add[uint16](65000, 1000))
	assert.Equal(t, int16(math.MaxInt16), satmath.Add[int16](32000, 1000))
	assert.Equal(t, int16(math.MinInt16), satmath.Add[int16](-32000, -1000))
	assert.Equal(t, int16(-50), satmath.Add[int16](50, -100))
	assert.Equal(t, int32(math.MaxInt32), satmath.Add[int32](math.MaxInt32, 1))
	assert.Equal(t, uint32(math.MaxUint32), satmath.Add[uint32](math.MaxUint32, math.MaxUint32))
}

func TestSub(t *testing.T) {
	assert.Equal(t, uint16(0), satmath.Sub[uint16](5, 10))
	assert.Equal(t, uint32(0), satmath.Sub[uint32](0, math.MaxUint32))
	assert.Equal(t, uint16(5), satmath.Sub[uint16](10, 5))
	assert.Equal(t, int16(32100), satmath.Sub[int16](100, -32000))
	assert.Equal(t, int16(-32100), satmath.Sub[int16](-100, 32000))
	assert.Equal(t, int16(math.MaxInt16), satmath.Sub[int16](100, -32700))
	assert.Equal(t, int16(math.MinInt16), satmath.Sub[int16](-100, 32700))
	assert.Equal(t, int16(200), satmath.Sub[int16](100, -100))
	assert.Equal(t, int32(math.MaxInt32), satmath.Sub[int32](math.MaxInt32, math.MinInt32))
	assert.Equal(t, int32(math.MinInt32), satmath.Sub[int32](math.MinInt32, 1))
}

func TestFromFloat32(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		i16  int16
		u16  uint16
	}{
		{name: "truncates positive", in: 127.9, i16: 127, u16: 127},
		{name: "truncates negative toward zero", in: -127.9, i16: -127, u16: 0},
		{name: "saturates high", in: 1e9, i16: math.MaxInt16, u16: math.MaxUint16},
		{name: "saturates low", in: -1e9, i16: math.MinInt16, u16: 0},
		{name: "positive infinity", in: float32(math.Inf(1)), i16: math.MaxInt16, u16: math.MaxUint16},
		{name: "negative infinity", in: float32(math.Inf(-1)), i16: math.MinInt16, u16: 0},
		{name: "nan", in: float32(math.NaN()), i16: 0, u16: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.i16, satmath.FromFloat32[int16](tt.in))
			assert.Equal(t, tt.u16, satmath.FromFloat32[uint16](tt.in))
		})
	}

	// 2^32 is the nearest float32 to MaxUint32.
	assert.Equal(t, uint32(math.MaxUint32), satmath.FromFloat32[uint32](satmath.ToFloat32[uint32](math.MaxUint32)))
	assert.Equal(t, int32(math.MaxInt32), satmath.FromFloat32[int32](satmath.ToFloat32[int32](math.MaxInt32)))
	assert.Equal(t, int32(math.MinInt32), satmath.FromFloat32[int32](satmath.ToFloat32[int32](math.MinInt32)))
}
