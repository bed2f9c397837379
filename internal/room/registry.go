package room

import (
	"sync"

	"github.com/vleezy/habgo/internal/model"
)

// ActorRegistry resolves actor IDs to actors. Tiles and packets carry only
// IDs; this registry is the single place an ID becomes a live actor.
type ActorRegistry struct {
	actors sync.Map // map[uint32]*model.Actor
}

// NewActorRegistry creates an empty registry.
func NewActorRegistry() *ActorRegistry {
	return &ActorRegistry{}
}

// Add registers an actor (concurrent-safe).
func (r *ActorRegistry) Add(actor *model.Actor) {
	r.actors.Store(actor.ID(), actor)
}

// Remove unregisters the actor with the given ID.
func (r *ActorRegistry) Remove(id uint32) {
	r.actors.Delete(id)
}

// Get returns the actor with the given ID.
func (r *ActorRegistry) Get(id uint32) (*model.Actor, bool) {
	value, ok := r.actors.Load(id)
	if !ok {
		return nil, false
	}
	return value.(*model.Actor), true
}

// ForEach iterates over all registered actors.
// If fn returns false, iteration stops.
func (r *ActorRegistry) ForEach(fn func(*model.Actor) bool) {
	r.actors.Range(func(_, value any) bool {
		return fn(value.(*model.Actor))
	})
}

// Count returns the number of registered actors (O(N)).
func (r *ActorRegistry) Count() int {
	count := 0
	r.actors.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}
