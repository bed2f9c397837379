package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionTranslate(t *testing.T) {
	p := NewPosition(3, 4)
	moved := p.Translate(-1, 2)

	assert.Equal(t, Position{X: 2, Y: 6}, moved)
	assert.Equal(t, Position{X: 3, Y: 4}, p, "original must not change")
}

func TestPositionManhattanDistance(t *testing.T) {
	a := NewPosition(0, 0)
	b := NewPosition(3, -4)

	assert.Equal(t, int32(7), a.ManhattanDistance(b))
	assert.Equal(t, int32(7), b.ManhattanDistance(a))
	assert.Equal(t, int32(0), a.ManhattanDistance(a))
}

func TestPositionIsNeighbor(t *testing.T) {
	center := NewPosition(5, 5)

	for dx := int32(-1); dx <= 1; dx++ {
		for dy := int32(-1); dy <= 1; dy++ {
			n := center.Translate(dx, dy)
			if dx == 0 && dy == 0 {
				assert.False(t, center.IsNeighbor(n), "a tile is not its own neighbor")
				continue
			}
			assert.True(t, center.IsNeighbor(n), "(%d,%d) should be adjacent", n.X, n.Y)
		}
	}

	assert.False(t, center.IsNeighbor(NewPosition(7, 5)))
	assert.False(t, center.IsNeighbor(NewPosition(5, 3)))
}
