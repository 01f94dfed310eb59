package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateRoundTrip(t *testing.T) {
	vectors := []Vec2{{-1, 0}, {0, 0.66}, {3.5, -2.25}, {0.1, 0.9}}
	angles := []float64{0.01, 0.5, math.Pi / 3, -2.7, 10}

	for _, v := range vectors {
		for _, a := range angles {
			r := v.Rotate(a)
			assert.InDelta(t, v.Len(), r.Len(), 1e-12, "magnitude of %v by %f", v, a)
			back := r.Rotate(-a)
			assert.True(t, back.ApproxEqual(v, 1e-12), "round trip %v by %f gave %v", v, a, back)
		}
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	r := New(1, 0).Rotate(math.Pi / 2)
	assert.True(t, r.ApproxEqual(New(0, 1), 1e-12), "got %v", r)
}

func TestArithmetic(t *testing.T) {
	a, b := New(1, 2), New(3, -1)
	assert.Equal(t, New(4, 1), a.Add(b))
	assert.Equal(t, New(-2, 3), a.Sub(b))
	assert.Equal(t, New(2, 4), a.Scale(2))
	assert.Equal(t, 1.0, a.Dot(b))

	x, y := New(-0.5, 2.9).Floor()
	assert.Equal(t, -1, x)
	assert.Equal(t, 2, y)
}
