package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vleezy/habgo/internal/game/pathfind"
	"github.com/vleezy/habgo/internal/model"
)

func newTestRoom(t *testing.T, maxOccupancy int32) *Room {
	t.Helper()
	floorPlan := testModel(t, "00000\n00000\n00000\n00000\n00000", model.NewPosition(2, 0))
	info := &model.RoomInfo{
		ID:           1,
		Name:         "lobby",
		OwnerName:    "admin",
		ModelName:    "test",
		MaxOccupancy: maxOccupancy,
		Enabled:      true,
	}
	return New(info, floorPlan, nil)
}

func TestRoomAddActorSeatsAtDoor(t *testing.T) {
	r := newTestRoom(t, 10)
	actor := model.NewActor(42, "bob")

	require.NoError(t, r.AddActor(actor))

	door := r.Grid().Door()
	assert.Equal(t, door, actor.Position())
	assert.Equal(t, r.ID(), actor.RoomID())
	assert.Equal(t, uint32(42), r.Grid().TileAt(door).ActorID())

	got, ok := r.Actors().Get(42)
	require.True(t, ok)
	assert.Same(t, actor, got)
}

func TestRoomCapacity(t *testing.T) {
	r := newTestRoom(t, 1)

	require.NoError(t, r.AddActor(model.NewActor(1, "first")))
	err := r.AddActor(model.NewActor(2, "second"))
	assert.ErrorIs(t, err, ErrRoomFull)

	r.RemoveActor(1)
	assert.NoError(t, r.AddActor(model.NewActor(2, "second")))
}

func TestRoomRemoveActorFreesTile(t *testing.T) {
	r := newTestRoom(t, 10)
	actor := model.NewActor(7, "eve")
	require.NoError(t, r.AddActor(actor))

	door := r.Grid().Door()
	require.True(t, r.Grid().TileAt(door).IsOccupied())

	r.RemoveActor(7)
	assert.False(t, r.Grid().TileAt(door).IsOccupied())
	assert.Equal(t, uint32(0), actor.RoomID())
	_, ok := r.Actors().Get(7)
	assert.False(t, ok)

	// Removing an unknown actor is a no-op.
	r.RemoveActor(999)
}

func TestRoomMoveActor(t *testing.T) {
	r := newTestRoom(t, 10)
	actor := model.NewActor(3, "walker")
	require.NoError(t, r.AddActor(actor))

	from := actor.Position()
	dest := model.NewPosition(4, 4)
	path, err := r.MoveActor(3, dest)
	require.NoError(t, err)
	require.NotNil(t, path)

	assert.Equal(t, from, path[0])
	assert.Equal(t, dest, path[len(path)-1])
	assert.Equal(t, dest, actor.Position())
	assert.False(t, r.Grid().TileAt(from).IsOccupied(), "old tile freed")
	assert.Equal(t, uint32(3), r.Grid().TileAt(dest).ActorID())
}

func TestRoomMoveActorBlockedDestination(t *testing.T) {
	r := newTestRoom(t, 10)
	walker := model.NewActor(1, "walker")
	blocker := model.NewActor(2, "blocker")
	require.NoError(t, r.AddActor(walker))

	dest := model.NewPosition(4, 4)
	r.Grid().SetOccupied(dest, true, blocker.ID())

	from := walker.Position()
	path, err := r.MoveActor(1, dest)
	require.NoError(t, err, "unreachable destination is not an error")
	assert.Nil(t, path)
	assert.Equal(t, from, walker.Position(), "actor stays put")
	assert.True(t, r.Grid().TileAt(from).IsOccupied())
}

func TestRoomMoveActorErrors(t *testing.T) {
	r := newTestRoom(t, 10)

	_, err := r.MoveActor(404, model.NewPosition(1, 1))
	assert.ErrorIs(t, err, ErrActorNotInRoom)

	actor := model.NewActor(1, "walker")
	require.NoError(t, r.AddActor(actor))
	_, err = r.MoveActor(1, model.NewPosition(50, 50))
	assert.ErrorIs(t, err, pathfind.ErrOutOfBounds)
}

func TestRoomPassword(t *testing.T) {
	r := newTestRoom(t, 10)
	assert.True(t, r.CheckPassword(""), "rooms without password accept everyone")
	assert.True(t, r.CheckPassword("anything"))

	hash, err := HashPassword("secret")
	require.NoError(t, err)
	r.Info().PasswordHash = hash

	assert.True(t, r.CheckPassword("secret"))
	assert.False(t, r.CheckPassword("wrong"))
	assert.False(t, r.CheckPassword(""))
}

func TestManagerCreateAndLookup(t *testing.T) {
	floorPlan := testModel(t, "000\n000", model.NewPosition(0, 0))
	m := NewManager(map[string]*model.RoomModel{"model_a": floorPlan}, nil)

	_, err := m.CreateRoom(&model.RoomInfo{ID: 1, ModelName: "missing"})
	assert.Error(t, err)

	created, err := m.CreateRoom(&model.RoomInfo{ID: 1, Name: "lobby", ModelName: "model_a"})
	require.NoError(t, err)

	got, ok := m.GetRoom(1)
	require.True(t, ok)
	assert.Same(t, created, got)
	assert.Equal(t, 1, m.Count())

	names := map[uint32]string{}
	m.ForEachRoom(func(r *Room) bool {
		names[r.ID()] = r.Name()
		return true
	})
	assert.Equal(t, map[uint32]string{1: "lobby"}, names)

	m.RemoveRoom(1)
	_, ok = m.GetRoom(1)
	assert.False(t, ok)
	assert.Equal(t, 0, m.Count())
}
