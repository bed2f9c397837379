package model

import "sync"

// Actor represents a user or bot standing inside a room.
// Plain data holder: room logic owns all movement decisions, tiles store
// only the actor ID, never a reference.
type Actor struct {
	id uint32

	mu       sync.RWMutex
	name     string
	figure   string
	motto    string
	roomID   uint32
	position Position
}

// NewActor creates an actor with the given identity.
func NewActor(id uint32, name string) *Actor {
	return &Actor{id: id, name: name}
}

// ID returns the actor's immutable identifier.
func (a *Actor) ID() uint32 {
	return a.id
}

// Name returns the actor's display name.
func (a *Actor) Name() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.name
}

// SetName updates the actor's display name.
func (a *Actor) SetName(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.name = name
}

// Figure returns the actor's avatar figure string.
func (a *Actor) Figure() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.figure
}

// SetFigure updates the actor's avatar figure string.
func (a *Actor) SetFigure(figure string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.figure = figure
}

// Motto returns the actor's motto.
func (a *Actor) Motto() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.motto
}

// SetMotto updates the actor's motto.
func (a *Actor) SetMotto(motto string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.motto = motto
}

// RoomID returns the ID of the room the actor is in (0 = none).
func (a *Actor) RoomID() uint32 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.roomID
}

// SetRoomID updates the ID of the room the actor is in.
func (a *Actor) SetRoomID(roomID uint32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.roomID = roomID
}

// Position returns the actor's current tile position.
func (a *Actor) Position() Position {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.position
}

// SetPosition updates the actor's current tile position.
func (a *Actor) SetPosition(pos Position) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.position = pos
}
