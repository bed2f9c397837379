package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vleezy/habgo/internal/model"
)

// RoomRepository loads and stores rooms, floor plans and placed items.
type RoomRepository struct {
	pool *pgxpool.Pool
}

// NewRoomRepository creates a repository over the given pool.
func NewRoomRepository(pool *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{pool: pool}
}

// LoadRoomModels returns all floor plans keyed by model name.
// Invalid heightmaps fail the load; a bad row in the table is a deploy
// problem, not something to skip silently.
func (r *RoomRepository) LoadRoomModels(ctx context.Context) (map[string]*model.RoomModel, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name, heightmap, door_x, door_y FROM room_models`)
	if err != nil {
		return nil, fmt.Errorf("querying room models: %w", err)
	}
	defer rows.Close()

	models := make(map[string]*model.RoomModel)
	for rows.Next() {
		var (
			name, heightmap string
			doorX, doorY    int32
		)
		if err := rows.Scan(&name, &heightmap, &doorX, &doorY); err != nil {
			return nil, fmt.Errorf("scanning room model: %w", err)
		}
		m, err := model.ParseRoomModel(name, heightmap, model.NewPosition(doorX, doorY))
		if err != nil {
			return nil, fmt.Errorf("parsing room model %q: %w", name, err)
		}
		models[name] = m
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating room models: %w", err)
	}
	return models, nil
}

// LoadRooms returns all enabled rooms.
func (r *RoomRepository) LoadRooms(ctx context.Context) ([]*model.RoomInfo, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, owner_name, model_name, password_hash,
		        max_occupancy, super_users, enabled
		 FROM rooms WHERE enabled ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying rooms: %w", err)
	}
	defer rows.Close()

	var infos []*model.RoomInfo
	for rows.Next() {
		var info model.RoomInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.Description, &info.OwnerName,
			&info.ModelName, &info.PasswordHash, &info.MaxOccupancy,
			&info.SuperUsers, &info.Enabled); err != nil {
			return nil, fmt.Errorf("scanning room: %w", err)
		}
		infos = append(infos, &info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rooms: %w", err)
	}
	return infos, nil
}

// GetRoom returns one room by ID.
// Returns nil, nil if the room does not exist.
func (r *RoomRepository) GetRoom(ctx context.Context, id uint32) (*model.RoomInfo, error) {
	var info model.RoomInfo
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description, owner_name, model_name, password_hash,
		        max_occupancy, super_users, enabled
		 FROM rooms WHERE id = $1`, id,
	).Scan(&info.ID, &info.Name, &info.Description, &info.OwnerName,
		&info.ModelName, &info.PasswordHash, &info.MaxOccupancy,
		&info.SuperUsers, &info.Enabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying room %d: %w", id, err)
	}
	return &info, nil
}

// CreateRoom inserts a new room and fills in its assigned ID.
func (r *RoomRepository) CreateRoom(ctx context.Context, info *model.RoomInfo) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO rooms (name, description, owner_name, model_name,
		                    password_hash, max_occupancy, super_users, enabled)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		info.Name, info.Description, info.OwnerName, info.ModelName,
		info.PasswordHash, info.MaxOccupancy, info.SuperUsers, info.Enabled,
	).Scan(&info.ID)
	if err != nil {
		return fmt.Errorf("creating room %q: %w", info.Name, err)
	}
	return nil
}

// LoadRoomItems returns the items placed in a room.
func (r *RoomRepository) LoadRoomItems(ctx context.Context, roomID uint32) ([]*model.Item, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, sprite, x, y, rotation, height, solid
		 FROM room_items WHERE room_id = $1 ORDER BY id`, roomID)
	if err != nil {
		return nil, fmt.Errorf("querying items for room %d: %w", roomID, err)
	}
	defer rows.Close()

	var items []*model.Item
	for rows.Next() {
		var (
			id               uint32
			sprite           string
			x, y             int32
			rotation, height int16
			solid            bool
		)
		if err := rows.Scan(&id, &sprite, &x, &y, &rotation, &height, &solid); err != nil {
			return nil, fmt.Errorf("scanning item for room %d: %w", roomID, err)
		}
		item := model.NewItem(id, sprite, height, solid)
		item.SetPosition(model.NewPosition(x, y))
		item.SetRotation(rotation)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items for room %d: %w", roomID, err)
	}
	return items, nil
}

// PlaceItem inserts an item into a room and returns its assigned ID.
func (r *RoomRepository) PlaceItem(ctx context.Context, roomID uint32, item *model.Item) (uint32, error) {
	pos := item.Position()
	var id uint32
	err := r.pool.QueryRow(ctx,
		`INSERT INTO room_items (room_id, sprite, x, y, rotation, height, solid)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		roomID, item.Sprite(), pos.X, pos.Y, item.Rotation(), item.Height(), item.IsSolid(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("placing item in room %d: %w", roomID, err)
	}
	return id, nil
}

// SeedRoomModels inserts floor plans that are not in the table yet.
// Used at startup to make the built-in models available to room rows.
func (r *RoomRepository) SeedRoomModels(ctx context.Context, models map[string]*model.RoomModel) error {
	for name, m := range models {
		door := m.Door()
		_, err := r.pool.Exec(ctx,
			`INSERT INTO room_models (name, heightmap, door_x, door_y)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (name) DO NOTHING`,
			name, m.Heightmap(), door.X, door.Y)
		if err != nil {
			return fmt.Errorf("seeding room model %q: %w", name, err)
		}
	}
	return nil
}
