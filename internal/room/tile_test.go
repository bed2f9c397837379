package room

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vleezy/habgo/internal/model"
)

func TestTileOccupancy(t *testing.T) {
	tile := NewTile(2, 3, TileStateOpen, 0)

	assert.False(t, tile.IsOccupied())
	assert.Equal(t, uint32(0), tile.ActorID())
	assert.True(t, tile.CanWalkOn())

	tile.SetOccupied(true, 77)
	assert.True(t, tile.IsOccupied())
	assert.Equal(t, uint32(77), tile.ActorID())
	assert.False(t, tile.CanWalkOn())

	tile.SetOccupied(false, 77)
	assert.False(t, tile.IsOccupied())
	assert.Equal(t, uint32(0), tile.ActorID(), "freeing a tile clears the actor id")
	assert.True(t, tile.CanWalkOn())
}

func TestTileItems(t *testing.T) {
	tile := NewTile(0, 0, TileStateOpen, 0)

	assert.Nil(t, tile.Item())
	assert.False(t, tile.ContainsSolidObject())

	rug := model.NewItem(1, "rug", 0, false)
	tile.AddItem(rug)
	assert.Same(t, rug, tile.Item())
	assert.False(t, tile.ContainsSolidObject())
	assert.True(t, tile.CanWalkOn(), "non-solid items stay walkable")

	sofa := model.NewItem(2, "sofa", 1, true)
	tile.AddItem(sofa)
	assert.Same(t, sofa, tile.Item(), "adding replaces the previous item")
	assert.True(t, tile.ContainsSolidObject())
	assert.False(t, tile.CanWalkOn())

	tile.AddItem(nil)
	assert.Nil(t, tile.Item())
	assert.True(t, tile.CanWalkOn())
}

func TestTileClosedState(t *testing.T) {
	tile := NewTile(1, 1, TileStateClosed, 0)

	assert.False(t, tile.CanWalkOn())
	tile.SetOccupied(false, 0)
	assert.False(t, tile.CanWalkOn(), "closed tiles never open dynamically")
}

func TestTilePositionAndHeight(t *testing.T) {
	tile := NewTile(4, 6, TileStateOpen, 3)

	assert.Equal(t, model.NewPosition(4, 6), tile.Position())
	assert.Equal(t, int16(3), tile.Height())
}
