package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoomModel(t *testing.T) {
	m, err := ParseRoomModel("model_a", "xxxx\nx000\nx012", NewPosition(1, 1))
	require.NoError(t, err)

	assert.Equal(t, "model_a", m.Name())
	assert.Equal(t, int32(4), m.Width())
	assert.Equal(t, int32(3), m.Depth())
	assert.Equal(t, NewPosition(1, 1), m.Door())

	assert.False(t, m.OpenAt(NewPosition(0, 0)))
	assert.True(t, m.OpenAt(NewPosition(1, 1)))
	assert.True(t, m.OpenAt(NewPosition(3, 2)))

	assert.Equal(t, int16(0), m.HeightAt(NewPosition(1, 2)))
	assert.Equal(t, int16(1), m.HeightAt(NewPosition(2, 2)))
	assert.Equal(t, int16(2), m.HeightAt(NewPosition(3, 2)))
}

func TestParseRoomModelWindowsLineEndings(t *testing.T) {
	m, err := ParseRoomModel("crlf", "00\r\n00\r\n", NewPosition(0, 0))
	require.NoError(t, err)
	assert.Equal(t, int32(2), m.Width())
	assert.Equal(t, int32(2), m.Depth())
}

func TestParseRoomModelUppercaseBlocked(t *testing.T) {
	m, err := ParseRoomModel("upper", "X0\n00", NewPosition(1, 0))
	require.NoError(t, err)
	assert.False(t, m.OpenAt(NewPosition(0, 0)))
}

func TestParseRoomModelErrors(t *testing.T) {
	tests := []struct {
		name      string
		heightmap string
		door      Position
	}{
		{"empty", "", NewPosition(0, 0)},
		{"ragged rows", "000\n00", NewPosition(0, 0)},
		{"bad tile char", "0?0\n000", NewPosition(0, 0)},
		{"door out of bounds", "00\n00", NewPosition(5, 0)},
		{"door on closed tile", "x0\n00", NewPosition(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRoomModel(tt.name, tt.heightmap, tt.door)
			assert.Error(t, err)
		})
	}
}

func TestRoomModelOutOfBoundsQueries(t *testing.T) {
	m, err := ParseRoomModel("oob", "00\n00", NewPosition(0, 0))
	require.NoError(t, err)

	assert.False(t, m.OpenAt(NewPosition(-1, 0)))
	assert.False(t, m.OpenAt(NewPosition(0, -1)))
	assert.False(t, m.OpenAt(NewPosition(2, 0)))
	assert.False(t, m.OpenAt(NewPosition(0, 2)))
	assert.Equal(t, int16(0), m.HeightAt(NewPosition(9, 9)))
}
