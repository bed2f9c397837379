package model

import "sync"

// Item represents a furniture piece placed inside a room.
// Tiles hold a non-owning reference; the room repository owns persistence.
type Item struct {
	id     uint32
	sprite string

	mu       sync.RWMutex
	position Position
	rotation int16
	height   int16
	solid    bool
}

// NewItem creates an item with the given identity and sprite.
func NewItem(id uint32, sprite string, height int16, solid bool) *Item {
	return &Item{id: id, sprite: sprite, height: height, solid: solid}
}

// ID returns the item's immutable identifier.
func (i *Item) ID() uint32 {
	return i.id
}

// Sprite returns the item's sprite name.
func (i *Item) Sprite() string {
	return i.sprite
}

// Position returns the tile position the item is placed on.
func (i *Item) Position() Position {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.position
}

// SetPosition updates the tile position the item is placed on.
func (i *Item) SetPosition(pos Position) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.position = pos
}

// Rotation returns the item's rotation (0-7).
func (i *Item) Rotation() int16 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.rotation
}

// SetRotation updates the item's rotation.
func (i *Item) SetRotation(rotation int16) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.rotation = rotation
}

// Height returns the item's stack height.
func (i *Item) Height() int16 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.height
}

// IsSolid reports whether the item blocks the tile it stands on.
func (i *Item) IsSolid() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.solid
}

// SetSolid updates whether the item blocks its tile.
func (i *Item) SetSolid(solid bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.solid = solid
}
