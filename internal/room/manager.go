package room

import (
	"fmt"
	"sync"

	"github.com/vleezy/habgo/internal/game/pathfind"
	"github.com/vleezy/habgo/internal/model"
)

// Manager owns all loaded rooms, keyed by room ID.
type Manager struct {
	models map[string]*model.RoomModel
	engine *pathfind.Engine
	rooms  sync.Map // map[uint32]*Room
}

// NewManager creates a manager serving rooms built from the given floor
// plans. All rooms share one pathfind engine (it is stateless per call).
func NewManager(models map[string]*model.RoomModel, engine *pathfind.Engine) *Manager {
	if engine == nil {
		engine = pathfind.New()
	}
	return &Manager{models: models, engine: engine}
}

// CreateRoom builds a room from its metadata and registers it.
func (m *Manager) CreateRoom(info *model.RoomInfo) (*Room, error) {
	floorPlan, ok := m.models[info.ModelName]
	if !ok {
		return nil, fmt.Errorf("room %d: unknown room model %q", info.ID, info.ModelName)
	}

	r := New(info, floorPlan, m.engine)
	m.rooms.Store(info.ID, r)
	return r, nil
}

// GetRoom returns the room with the given ID.
func (m *Manager) GetRoom(id uint32) (*Room, bool) {
	value, ok := m.rooms.Load(id)
	if !ok {
		return nil, false
	}
	return value.(*Room), true
}

// RemoveRoom unregisters the room with the given ID.
func (m *Manager) RemoveRoom(id uint32) {
	m.rooms.Delete(id)
}

// ForEachRoom iterates over all rooms. If fn returns false, iteration stops.
func (m *Manager) ForEachRoom(fn func(*Room) bool) {
	m.rooms.Range(func(_, value any) bool {
		return fn(value.(*Room))
	})
}

// Count returns the number of loaded rooms (O(N)).
func (m *Manager) Count() int {
	count := 0
	m.rooms.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}
