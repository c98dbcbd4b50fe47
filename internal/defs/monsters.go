// internal/defs/monsters.go
package defs

import "go-endless-runner/internal/component"

// MonsterDefinition holds all the static data for one monster type.
type MonsterDefinition struct {
	ID     string                `json:"id"`
	Name   string                `json:"name"`
	Kind   component.MonsterKind `json:"kind"`
	Width  float64               `json:"width"`
	Height float64               `json:"height"`
	Weight int                   `json:"weight"` // relative spawn weight
	Sprite string                `json:"sprite"`
}

// MonsterDefs is the library of monster definitions, keyed by ID.
var MonsterDefs map[string]MonsterDefinition

// SpawnEntry is one row of the weighted spawn table.
type SpawnEntry struct {
	MonsterID string
	Weight    int
}

// SpawnTable derives the weighted spawn table from the loaded library.
// Order is deterministic so a seeded run always picks the same stream.
var SpawnTable []SpawnEntry
