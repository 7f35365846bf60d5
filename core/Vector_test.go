package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorNormalize(t *testing.T) {
	v := Vector{3, -4}.Normalize()

	assert.InDelta(t, 0.6, v.X, 1e-12)
	assert.InDelta(t, -0.8, v.Y, 1e-12)
	assert.InDelta(t, 1.0, v.Length(), 1e-12)

	assert.Equal(t, Vector{}, Vector{}.Normalize(), "Zero vector should stay zero")
}
