// internal/defs/levels.go
package defs

// LevelDefinition holds the static parameters of one level. The ten
// instances are loaded once from levels.json and never mutated.
type LevelDefinition struct {
	ID           int     `json:"id"`
	MonsterCount int     `json:"monster_count"`
	Speed        float64 `json:"speed"`
}

// LevelDefs is the ordered library of level definitions.
var LevelDefs []LevelDefinition
