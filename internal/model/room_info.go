package model

// RoomInfo holds room metadata as loaded from the rooms table.
// Plain data row; the room package wraps it together with a live grid.
type RoomInfo struct {
	ID           uint32
	Name         string
	Description  string
	OwnerName    string
	ModelName    string
	PasswordHash string // bcrypt hash, empty = no password
	MaxOccupancy int32
	SuperUsers   bool
	Enabled      bool
}
