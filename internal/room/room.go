package room

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/vleezy/habgo/internal/game/pathfind"
	"github.com/vleezy/habgo/internal/model"
)

var (
	// ErrRoomFull is returned when a room is at its occupancy limit.
	ErrRoomFull = errors.New("room is full")
	// ErrActorNotInRoom is returned when moving an actor the room does not host.
	ErrActorNotInRoom = errors.New("actor is not in this room")
)

// Room couples room metadata with its live grid and resident actors.
type Room struct {
	info   *model.RoomInfo
	grid   *Grid
	actors *ActorRegistry
	engine *pathfind.Engine
}

// New builds a room from its metadata and floor plan.
func New(info *model.RoomInfo, floorPlan *model.RoomModel, engine *pathfind.Engine) *Room {
	if engine == nil {
		engine = pathfind.New()
	}
	return &Room{
		info:   info,
		grid:   NewGrid(floorPlan),
		actors: NewActorRegistry(),
		engine: engine,
	}
}

// ID returns the room's identifier.
func (r *Room) ID() uint32 {
	return r.info.ID
}

// Name returns the room's display name.
func (r *Room) Name() string {
	return r.info.Name
}

// OwnerName returns the name of the room's owner.
func (r *Room) OwnerName() string {
	return r.info.OwnerName
}

// Info returns the room's metadata row.
func (r *Room) Info() *model.RoomInfo {
	return r.info
}

// Grid returns the room's tile layout.
func (r *Room) Grid() *Grid {
	return r.grid
}

// Actors returns the room's actor registry.
func (r *Room) Actors() *ActorRegistry {
	return r.actors
}

// CheckPassword reports whether password grants entry.
// Rooms without a password hash accept everyone.
func (r *Room) CheckPassword(password string) bool {
	if r.info.PasswordHash == "" {
		return true
	}
	return bcrypt.CompareHashAndPassword([]byte(r.info.PasswordHash), []byte(password)) == nil
}

// HashPassword hashes a room password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing room password: %w", err)
	}
	return string(hash), nil
}

// AddActor seats an actor on the door tile and registers it.
// Returns ErrRoomFull when the room is at capacity.
func (r *Room) AddActor(actor *model.Actor) error {
	if r.info.MaxOccupancy > 0 && int32(r.actors.Count()) >= r.info.MaxOccupancy {
		return ErrRoomFull
	}

	door := r.grid.Door()
	r.actors.Add(actor)
	actor.SetRoomID(r.info.ID)
	actor.SetPosition(door)
	r.grid.SetOccupied(door, true, actor.ID())
	return nil
}

// RemoveActor frees the actor's tile and unregisters it.
func (r *Room) RemoveActor(id uint32) {
	actor, ok := r.actors.Get(id)
	if !ok {
		return
	}

	pos := actor.Position()
	if tile := r.grid.TileAt(pos); tile != nil && tile.ActorID() == id {
		tile.SetOccupied(false, 0)
	}
	actor.SetRoomID(0)
	r.actors.Remove(id)
}

// MoveActor routes an actor from its current tile to dest. On success the
// actor's occupancy moves to dest and the full path is returned so the
// movement subsystem can step along it. An unreachable destination returns
// a nil path and no error.
func (r *Room) MoveActor(id uint32, dest model.Position) ([]model.Position, error) {
	actor, ok := r.actors.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: actor %d", ErrActorNotInRoom, id)
	}

	from := actor.Position()
	path, err := r.engine.CalculatePath(r.grid, from, dest)
	if err != nil {
		return nil, fmt.Errorf("routing actor %d: %w", id, err)
	}
	if path == nil {
		return nil, nil
	}

	r.grid.SetOccupied(from, false, 0)
	r.grid.SetOccupied(dest, true, id)
	actor.SetPosition(dest)
	return path, nil
}
