package testing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/laserkit/beam/point"
)

// PointTolerance is the coordinate tolerance used by point assertions.
const PointTolerance = 1e-5

// AssertPointNear checks p's coordinates against x and y within PointTolerance.
func AssertPointNear(t *testing.T, x, y float32, p point.PipelinePoint) bool {
	t.Helper()
	okX := assert.InDelta(t, x, p.X, PointTolerance, "x of %s", p)
	okY := assert.InDelta(t, y, p.Y, PointTolerance, "y of %s", p)
	return okX && okY
}

// UnitPoint returns the lit point (1, 1) most rotation cases start from.
func UnitPoint() point.PipelinePoint {
	return point.XYBinary(1, 1, true)
}
