// Package data ships the built-in room floor plans. The database can add
// or override models; these guarantee the server always has something to
// build rooms from.
package data

import (
	"fmt"

	"github.com/vleezy/habgo/internal/model"
)

type builtinModel struct {
	name      string
	heightmap string
	doorX     int32
	doorY     int32
}

var builtinModels = []builtinModel{
	{
		name: "model_a",
		heightmap: "xxxxxxxxxxxx\n" +
			"xxxx00000000\n" +
			"xxxx00000000\n" +
			"x00000000000\n" +
			"x00000000000\n" +
			"x00000000000\n" +
			"x00000000000\n" +
			"x00000000000\n" +
			"x00000000000\n" +
			"xxxxxxxxxxxx",
		doorX: 3, doorY: 5,
	},
	{
		name: "model_b",
		heightmap: "xxxxxxxxxx\n" +
			"x000000000\n" +
			"0000000000\n" +
			"x000000000\n" +
			"x000000000\n" +
			"x000000000\n" +
			"xxxxxxxxxx",
		doorX: 0, doorY: 2,
	},
	{
		name: "model_c",
		heightmap: "xxxxxxx\n" +
			"x111111\n" +
			"x111111\n" +
			"x000000\n" +
			"x000000\n" +
			"0000000\n" +
			"x000000\n" +
			"xxxxxxx",
		doorX: 0, doorY: 5,
	},
}

// Models parses and returns all built-in room models keyed by name.
func Models() (map[string]*model.RoomModel, error) {
	models := make(map[string]*model.RoomModel, len(builtinModels))
	for _, b := range builtinModels {
		m, err := model.ParseRoomModel(b.name, b.heightmap, model.NewPosition(b.doorX, b.doorY))
		if err != nil {
			return nil, fmt.Errorf("loading built-in model %q: %w", b.name, err)
		}
		models[b.name] = m
	}
	return models, nil
}
