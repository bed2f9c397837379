package room

import (
	"github.com/vleezy/habgo/internal/model"
)

// Grid is a room's full tile layout: the static heightmap from the room
// model plus a matrix of independently locked tiles for dynamic state.
// Owned by its room for the room's lifetime and read-shared by any number
// of concurrent pathfinder calls. Reads may race with occupancy writers;
// callers get eventual, not linearizable, consistency across tiles.
type Grid struct {
	floorPlan *model.RoomModel
	tiles     [][]*Tile // [y][x], matching heightmap rows
}

// NewGrid builds a grid from a validated room model.
func NewGrid(floorPlan *model.RoomModel) *Grid {
	tiles := make([][]*Tile, floorPlan.Depth())
	for y := range tiles {
		tiles[y] = make([]*Tile, floorPlan.Width())
		for x := range tiles[y] {
			pos := model.NewPosition(int32(x), int32(y))
			state := TileStateClosed
			if floorPlan.OpenAt(pos) {
				state = TileStateOpen
			}
			tiles[y][x] = NewTile(int32(x), int32(y), state, floorPlan.HeightAt(pos))
		}
	}
	return &Grid{floorPlan: floorPlan, tiles: tiles}
}

// Width returns the number of tiles along X.
func (g *Grid) Width() int32 {
	return g.floorPlan.Width()
}

// Depth returns the number of tiles along Y.
func (g *Grid) Depth() int32 {
	return g.floorPlan.Depth()
}

// Door returns the entry tile of the room model.
func (g *Grid) Door() model.Position {
	return g.floorPlan.Door()
}

// InBounds reports whether pos addresses a tile of this grid.
func (g *Grid) InBounds(pos model.Position) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < g.Width() && pos.Y < g.Depth()
}

// TileAt returns the tile at pos, or nil when pos is out of bounds.
func (g *Grid) TileAt(pos model.Position) *Tile {
	if !g.InBounds(pos) {
		return nil
	}
	return g.tiles[pos.Y][pos.X]
}

// IsWalkable reports whether an actor may step onto pos right now.
// Out-of-bounds positions are never walkable.
func (g *Grid) IsWalkable(pos model.Position) bool {
	tile := g.TileAt(pos)
	return tile != nil && tile.CanWalkOn()
}

// CanWalkOn is an alias for IsWalkable kept for the room subsystem.
func (g *Grid) CanWalkOn(pos model.Position) bool {
	return g.IsWalkable(pos)
}

// SetOccupied updates the occupancy of the tile at pos under its own lock.
// No ordering guarantee relative to writes on other tiles. Out-of-bounds
// positions are ignored.
func (g *Grid) SetOccupied(pos model.Position, occupied bool, actorID uint32) {
	if tile := g.TileAt(pos); tile != nil {
		tile.SetOccupied(occupied, actorID)
	}
}

// AddItem attaches an item to the tile at pos. Out of bounds is a no-op.
func (g *Grid) AddItem(pos model.Position, item *model.Item) {
	if tile := g.TileAt(pos); tile != nil {
		tile.AddItem(item)
	}
}

// ItemAt returns the item on the tile at pos (nil = none or out of bounds).
func (g *Grid) ItemAt(pos model.Position) *model.Item {
	tile := g.TileAt(pos)
	if tile == nil {
		return nil
	}
	return tile.Item()
}

// ContainsSolidObject reports whether the tile at pos holds a solid item.
func (g *Grid) ContainsSolidObject(pos model.Position) bool {
	tile := g.TileAt(pos)
	return tile != nil && tile.ContainsSolidObject()
}

// TileHeight returns the floor height at pos (0 when out of bounds).
func (g *Grid) TileHeight(pos model.Position) int16 {
	tile := g.TileAt(pos)
	if tile == nil {
		return 0
	}
	return tile.Height()
}
