package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vleezy/habgo/internal/config"
	"github.com/vleezy/habgo/internal/data"
	"github.com/vleezy/habgo/internal/db"
	"github.com/vleezy/habgo/internal/game/pathfind"
	"github.com/vleezy/habgo/internal/model"
	"github.com/vleezy/habgo/internal/room"
)

const ConfigPath = "config/roomserver.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("HABGO_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadRoomServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("habgo room server starting",
		"log_level", cfg.LogLevel,
		"bind", cfg.BindAddress,
		"port", cfg.Port)

	models, err := data.Models()
	if err != nil {
		return fmt.Errorf("loading built-in room models: %w", err)
	}

	var rooms []*model.RoomInfo
	var repo *db.RoomRepository

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		slog.Warn("database unavailable, serving built-in rooms only", "err", err)
	} else {
		defer database.Close()
		slog.Info("database connected")

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied")

		repo = db.NewRoomRepository(database.Pool())
		if err := repo.SeedRoomModels(ctx, models); err != nil {
			return fmt.Errorf("seeding room models: %w", err)
		}

		dbModels, err := repo.LoadRoomModels(ctx)
		if err != nil {
			return fmt.Errorf("loading room models: %w", err)
		}
		for name, m := range dbModels {
			models[name] = m
		}

		rooms, err = repo.LoadRooms(ctx)
		if err != nil {
			return fmt.Errorf("loading rooms: %w", err)
		}
	}

	engine := pathfind.NewWithMaxIterations(cfg.Pathfinder.MaxIterations)
	manager := room.NewManager(models, engine)

	for _, info := range rooms {
		r, err := manager.CreateRoom(info)
		if err != nil {
			slog.Warn("skipping room", "room_id", info.ID, "err", err)
			continue
		}
		items, err := repo.LoadRoomItems(ctx, info.ID)
		if err != nil {
			return fmt.Errorf("loading items for room %d: %w", info.ID, err)
		}
		for _, item := range items {
			r.Grid().AddItem(item.Position(), item)
		}
	}

	if manager.Count() == 0 {
		seedDefaultRooms(manager, cfg.RoomMaxOccupancy, models)
	}
	slog.Info("rooms loaded", "count", manager.Count(), "models", len(models))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return reportOccupancy(ctx, manager)
	})
	return g.Wait()
}

// seedDefaultRooms creates one public room per floor plan so the server is
// usable before anything exists in the database.
func seedDefaultRooms(manager *room.Manager, maxOccupancy int32, models map[string]*model.RoomModel) {
	id := uint32(1)
	for name := range models {
		_, err := manager.CreateRoom(&model.RoomInfo{
			ID:           id,
			Name:         fmt.Sprintf("Public Space %d", id),
			OwnerName:    "habgo",
			ModelName:    name,
			MaxOccupancy: maxOccupancy,
			Enabled:      true,
		})
		if err != nil {
			slog.Warn("seeding default room", "model", name, "err", err)
			continue
		}
		id++
	}
}

// reportOccupancy periodically logs room occupancy until shutdown.
func reportOccupancy(ctx context.Context, manager *room.Manager) error {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			actors := 0
			manager.ForEachRoom(func(r *room.Room) bool {
				actors += r.Actors().Count()
				return true
			})
			slog.Debug("occupancy", "rooms", manager.Count(), "actors", actors)
		}
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
