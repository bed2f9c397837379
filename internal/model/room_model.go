package model

import (
	"fmt"
	"strings"
)

// RoomModel is a named floor plan: a rectangular heightmap plus the door
// tile every entering actor is seated on.
//
// Heightmap format: one row per line, one character per tile.
// Digits '0'-'9' mark an open tile at that height, 'x' (or 'X') marks a
// tile that can never be walked on. Rows index Y, columns index X.
type RoomModel struct {
	name string
	door Position
	rows []string
}

// ParseRoomModel validates a heightmap string and builds a RoomModel.
func ParseRoomModel(name, heightmap string, door Position) (*RoomModel, error) {
	heightmap = strings.ReplaceAll(heightmap, "\r\n", "\n")
	heightmap = strings.ReplaceAll(heightmap, "\r", "\n")

	var rows []string
	for _, row := range strings.Split(heightmap, "\n") {
		row = strings.TrimSpace(row)
		if row == "" {
			continue
		}
		rows = append(rows, strings.ToLower(row))
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("room model %q: empty heightmap", name)
	}

	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("room model %q: row %d has %d tiles, want %d", name, y, len(row), width)
		}
		for x, c := range row {
			if c != 'x' && (c < '0' || c > '9') {
				return nil, fmt.Errorf("room model %q: bad tile %q at (%d,%d)", name, c, x, y)
			}
		}
	}

	m := &RoomModel{name: name, door: door, rows: rows}
	if !m.inBounds(door) {
		return nil, fmt.Errorf("room model %q: door (%d,%d) out of bounds", name, door.X, door.Y)
	}
	if !m.OpenAt(door) {
		return nil, fmt.Errorf("room model %q: door (%d,%d) is on a closed tile", name, door.X, door.Y)
	}
	return m, nil
}

// Name returns the model's name.
func (m *RoomModel) Name() string {
	return m.name
}

// Heightmap returns the normalized heightmap, one row per line.
func (m *RoomModel) Heightmap() string {
	return strings.Join(m.rows, "\n")
}

// Door returns the tile entering actors are seated on.
func (m *RoomModel) Door() Position {
	return m.door
}

// Width returns the number of tiles along X.
func (m *RoomModel) Width() int32 {
	return int32(len(m.rows[0]))
}

// Depth returns the number of tiles along Y.
func (m *RoomModel) Depth() int32 {
	return int32(len(m.rows))
}

// OpenAt reports whether the static layout allows standing on pos.
// Out-of-bounds positions are closed.
func (m *RoomModel) OpenAt(pos Position) bool {
	if !m.inBounds(pos) {
		return false
	}
	return m.rows[pos.Y][pos.X] != 'x'
}

// HeightAt returns the floor height at pos (0 for closed tiles).
func (m *RoomModel) HeightAt(pos Position) int16 {
	if !m.OpenAt(pos) {
		return 0
	}
	return int16(m.rows[pos.Y][pos.X] - '0')
}

func (m *RoomModel) inBounds(pos Position) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < m.Width() && pos.Y < m.Depth()
}
