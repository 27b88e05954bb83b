package scale_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laserkit/beam/scale"
)

func TestScaleSpotCheck(t *testing.T) {
	u := scale.New[uint16, uint16](0, 100, 0, 255)
	assert.Equal(t, uint16(0), u.Scale(0))
	assert.Equal(t, uint16(127), u.Scale(50))
	assert.Equal(t, uint16(255), u.Scale(100))

	s := scale.New[uint16, int16](0, 100, -100, 100)
	assert.Equal(t, int16(-100), s.Scale(0))
	assert.Equal(t, int16(0), s.Scale(50))
	assert.Equal(t, int16(100), s.Scale(100))

	w := scale.New[int16, uint16](0, 10, 0, 1000)
	assert.Equal(t, uint16(0), w.Scale(0))
	assert.Equal(t, uint16(200), w.Scale(2))
	assert.Equal(t, uint16(500), w.Scale(5))
	assert.Equal(t, uint16(900), w.Scale(9))
	assert.Equal(t, uint16(1000), w.Scale(10))
}

func TestScaleGalvoSweep(t *testing.T) {
	s := scale.New[uint16, int16](0, 100, -10_000, 10_000)
	want := map[uint16]int16{
		0:   -10_000,
		10:  -8_000,
		50:  0,
		90:  8_000,
		100: 10_000,
	}
	for in, out := range want {
		assert.Equal(t, out, s.Scale(in), "scale(%d)", in)
	}
}

func assertBoundaries[S, D scale.Integer](t *testing.T, s scale.Scaler[S, D]) {
	t.Helper()
	assert.Equal(t, s.MinDest, s.Scale(s.MinSrc), "scale(min)")
	assert.Equal(t, s.MaxDest, s.Scale(s.MaxSrc), "scale(max)")
}

func TestScaleBoundaryExactness(t *testing.T) {
	t.Run("u16", func(t *testing.T) {
		assertBoundaries(t, scale.New[uint16, uint16](10, 1000, 100, 60000))
		assertBoundaries(t, scale.New[uint16, uint32](10, 1000, 100, 4_000_000))
		assertBoundaries(t, scale.New[uint16, int16](10, 1000, -10000, 10000))
		assertBoundaries(t, scale.New[uint16, int32](10, 1000, -2_000_000, 2_000_000))
	})
	t.Run("u32", func(t *testing.T) {
		assertBoundaries(t, scale.New[uint32, uint16](10, 100000, 100, 60000))
		assertBoundaries(t, scale.New[uint32, uint32](10, 100000, 100, 4_000_000))
		assertBoundaries(t, scale.New[uint32, int16](10, 100000, -10000, 10000))
		assertBoundaries(t, scale.New[uint32, int32](10, 100000, -2_000_000, 2_000_000))
	})
	t.Run("i16", func(t *testing.T) {
		assertBoundaries(t, scale.New[int16, uint16](-1000, 1000, 100, 60000))
		assertBoundaries(t, scale.New[int16, uint32](-1000, 1000, 100, 4_000_000))
		assertBoundaries(t, scale.New[int16, int16](-1000, 1000, -10000, 10000))
		assertBoundaries(t, scale.New[int16, int32](-1000, 1000, -2_000_000, 2_000_000))
	})
	t.Run("i32", func(t *testing.T) {
		assertBoundaries(t, scale.New[int32, uint16](-100000, 100000, 100, 60000))
		assertBoundaries(t, scale.New[int32, uint32](-100000, 100000, 100, 4_000_000))
		assertBoundaries(t, scale.New[int32, int16](-100000, 100000, -10000, 10000))
		assertBoundaries(t, scale.New[int32, int32](-100000, 100000, -2_000_000, 2_000_000))
	})
	t.Run("full unsigned ranges", func(t *testing.T) {
		assertBoundaries(t, scale.New[uint16, uint16](0, math.MaxUint16, 0, math.MaxUint16))
		assertBoundaries(t, scale.New[uint32, uint16](0, math.MaxUint32, 0, math.MaxUint16))
		assertBoundaries(t, scale.New[uint16, uint32](0, math.MaxUint16, 0, math.MaxUint32))
	})
}

func TestScaleMonotonic(t *testing.T) {
	s := scale.New[uint16, int16](0, 1000, -10_000, 10_000)
	prev := s.Scale(0)
	for v := uint16(1); v <= 1000; v++ {
		got := s.Scale(v)
		require.GreaterOrEqual(t, got, prev, "scale(%d) < scale(%d)", v, v-1)
		prev = got
	}

	wide := scale.New[int32, uint32](-1_000_000, 1_000_000, 0, 3_000_000_000)
	prevWide := wide.Scale(-1_000_000)
	for v := int32(-1_000_000); v <= 1_000_000; v += 997 {
		got := wide.Scale(v)
		require.GreaterOrEqual(t, got, prevWide, "scale(%d)", v)
		prevWide = got
	}

	unsigned := scale.New[int16, uint16](-1000, 1000, 0, 60000)
	prevUnsigned := unsigned.Scale(-1000)
	for v := int16(-999); v <= 1000; v++ {
		got := unsigned.Scale(v)
		require.GreaterOrEqual(t, got, prevUnsigned, "scale(%d)", v)
		prevUnsigned = got
	}

	narrow := scale.New[int32, int16](-100_000, 100_000, -10_000, 10_000)
	prevNarrow := narrow.Scale(-100_000)
	for v := int32(-100_000); v <= 100_000; v += 7 {
		got := narrow.Scale(v)
		require.GreaterOrEqual(t, got, prevNarrow, "scale(%d)", v)
		prevNarrow = got
	}

	unsignedNarrow := scale.New[uint32, int16](0, 4_000_000_000, -10_000, 10_000)
	prevUnsignedNarrow := unsignedNarrow.Scale(0)
	for v := uint32(0); v <= 4_000_000_000-1_000_003; v += 1_000_003 {
		got := unsignedNarrow.Scale(v)
		require.GreaterOrEqual(t, got, prevUnsignedNarrow, "scale(%d)", v)
		prevUnsignedNarrow = got
	}
}

func TestScaleSaturation(t *testing.T) {
	t.Run("below unsigned source min clamps to dest min", func(t *testing.T) {
		s := scale.New[uint16, int16](100, 200, -500, 500)
		assert.Equal(t, int16(-500), s.Scale(0))
		assert.Equal(t, int16(-500), s.Scale(99))
	})
	t.Run("above source max overshoots then saturates", func(t *testing.T) {
		s := scale.New[uint16, uint16](0, 10, 0, 60000)
		assert.Equal(t, uint16(math.MaxUint16), s.Scale(math.MaxUint16))
	})
	t.Run("signed source span saturates", func(t *testing.T) {
		s := scale.New[int16, int16](math.MinInt16, math.MaxInt16, -100, 100)
		assert.Equal(t, int16(-100), s.Scale(math.MinInt16))
		got := s.Scale(math.MaxInt16)
		assert.GreaterOrEqual(t, got, int16(-100))
		assert.LessOrEqual(t, got, int16(math.MaxInt16))
	})
	t.Run("dest span wider than type saturates", func(t *testing.T) {
		s := scale.New[uint16, int16](0, math.MaxUint16, math.MinInt16, math.MaxInt16)
		assert.Equal(t, int16(math.MinInt16), s.Scale(0))
		// MaxInt16 - MinInt16 saturates to MaxInt16, so the top of the
		// range lands at -1 rather than MaxInt16.
		assert.Equal(t, int16(-1), s.Scale(math.MaxUint16))
	})
	t.Run("extreme 32-bit inputs stay in range", func(t *testing.T) {
		s := scale.New[int32, int32](math.MinInt32, math.MaxInt32, math.MinInt32, math.MaxInt32)
		for _, v := range []int32{math.MinInt32, -1, 0, 1, math.MaxInt32} {
			assert.NotPanics(t, func() { s.Scale(v) })
		}
	})
}

func TestScaleDegenerateRanges(t *testing.T) {
	t.Run("zero width source", func(t *testing.T) {
		s := scale.New[uint16, int16](50, 50, -100, 100)
		// 0/0 is NaN which converts to zero.
		assert.Equal(t, int16(-100), s.Scale(50))
		// x/0 is +Inf which saturates before MinDest is added back.
		assert.Equal(t, int16(math.MaxInt16-100), s.Scale(60))
	})
	t.Run("inverted source", func(t *testing.T) {
		s := scale.New[uint16, uint16](100, 0, 0, 255)
		assert.NotPanics(t, func() {
			for v := uint16(0); v <= 200; v++ {
				s.Scale(v)
			}
		})
	})
	t.Run("inverted dest", func(t *testing.T) {
		s := scale.New[uint16, uint16](0, 100, 255, 0)
		assert.Equal(t, uint16(255), s.Scale(0))
		assert.Equal(t, uint16(255), s.Scale(100))
	})
	t.Run("zero value", func(t *testing.T) {
		var s scale.Scaler[int32, uint16]
		assert.NotPanics(t, func() { s.Scale(42) })
	})
}
