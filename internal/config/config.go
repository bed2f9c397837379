package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RoomServer holds all configuration for the room server.
type RoomServer struct {
	// Network (consumed by the listener subsystem)
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port"`

	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Database
	Database DatabaseConfig `yaml:"database"`

	// Pathfinder
	Pathfinder PathfinderConfig `yaml:"pathfinder"`

	// Room defaults
	RoomMaxOccupancy int32 `yaml:"room_max_occupancy"`
}

// PathfinderConfig tunes the A* engine.
type PathfinderConfig struct {
	// MaxIterations caps node expansions per search (0 = engine default).
	MaxIterations int `yaml:"max_iterations"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultRoomServer returns RoomServer config with sensible defaults.
func DefaultRoomServer() RoomServer {
	return RoomServer{
		BindAddress:      "0.0.0.0",
		Port:             37120,
		LogLevel:         "info",
		RoomMaxOccupancy: 25,
		Pathfinder: PathfinderConfig{
			MaxIterations: 7000,
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "habgo",
			Password: "habgo",
			DBName:   "habgo",
			SSLMode:  "disable",
		},
	}
}

// LoadRoomServer loads room server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadRoomServer(path string) (RoomServer, error) {
	cfg := DefaultRoomServer()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
