package room

import (
	"sync"

	"github.com/vleezy/habgo/internal/model"
)

// Tile states.
const (
	TileStateOpen   int16 = 0
	TileStateClosed int16 = 1
)

// Tile holds the dynamic state of one grid cell: occupancy and an optional
// item. Each tile carries its own lock and the lock is held only for a
// single field read or update; the grid never takes a global lock, so two
// actors can legally step onto adjacent tiles in the same instant.
type Tile struct {
	x, y int32

	mu       sync.Mutex
	state    int16
	height   int16
	occupied bool
	actorID  uint32 // 0 = no actor on the tile
	item     *model.Item
}

// NewTile creates a tile at (x, y) with the given static state and height.
func NewTile(x, y int32, state, height int16) *Tile {
	return &Tile{x: x, y: y, state: state, height: height}
}

// Position returns the tile's coordinates within its grid.
func (t *Tile) Position() model.Position {
	return model.NewPosition(t.x, t.y)
}

// State returns the tile's static open/closed state.
func (t *Tile) State() int16 {
	return t.state
}

// Height returns the tile's floor height.
func (t *Tile) Height() int16 {
	return t.height
}

// SetOccupied marks the tile as occupied (or free) by the given actor.
// actorID is ignored when occupied is false.
func (t *Tile) SetOccupied(occupied bool, actorID uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.occupied = occupied
	if occupied {
		t.actorID = actorID
	} else {
		t.actorID = 0
	}
}

// IsOccupied reports whether an actor is standing on the tile.
func (t *Tile) IsOccupied() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.occupied
}

// ActorID returns the ID of the actor on the tile (0 = none).
// The actor itself lives in the room's registry; tiles never own it.
func (t *Tile) ActorID() uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.actorID
}

// AddItem attaches an item to the tile, replacing any previous one.
// Pass nil to clear the tile.
func (t *Tile) AddItem(item *model.Item) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.item = item
}

// Item returns the item on the tile (nil = none).
func (t *Tile) Item() *model.Item {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.item
}

// ContainsSolidObject reports whether the tile holds an item that blocks it.
func (t *Tile) ContainsSolidObject() bool {
	item := t.Item()
	return item != nil && item.IsSolid()
}

// CanWalkOn reports whether an actor may stand on the tile right now:
// statically open, not occupied, and free of solid objects.
func (t *Tile) CanWalkOn() bool {
	if t.state != TileStateOpen {
		return false
	}
	if t.IsOccupied() {
		return false
	}
	return !t.ContainsSolidObject()
}
