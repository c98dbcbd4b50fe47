// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"

	"go-endless-runner/internal/component"
)

// LoadLevelDefinitions reads the level configuration file and populates
// LevelDefs. Levels must be non-empty and strictly increasing in
// difficulty (monster count and speed).
func LoadLevelDefinitions(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read level definitions file: %w", err)
	}

	var levelDefs []LevelDefinition
	if err := json.Unmarshal(data, &levelDefs); err != nil {
		return fmt.Errorf("failed to unmarshal level definitions: %w", err)
	}
	if len(levelDefs) == 0 {
		return fmt.Errorf("level definitions file %s is empty", path)
	}

	for i, def := range levelDefs {
		if def.MonsterCount <= 0 {
			return fmt.Errorf("level %d has non-positive monster count %d", i, def.MonsterCount)
		}
		if def.Speed <= 0 {
			return fmt.Errorf("level %d has non-positive speed %g", i, def.Speed)
		}
		if i > 0 {
			prev := levelDefs[i-1]
			if def.MonsterCount <= prev.MonsterCount || def.Speed <= prev.Speed {
				return fmt.Errorf("level %d does not increase difficulty over level %d", i, i-1)
			}
		}
	}

	LevelDefs = levelDefs
	return nil
}

// LoadMonsterDefinitions reads the monster configuration file and
// populates MonsterDefs and the derived SpawnTable.
func LoadMonsterDefinitions(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read monster definitions file: %w", err)
	}

	var monsterDefs []MonsterDefinition
	if err := json.Unmarshal(data, &monsterDefs); err != nil {
		return fmt.Errorf("failed to unmarshal monster definitions: %w", err)
	}
	if len(monsterDefs) == 0 {
		return fmt.Errorf("monster definitions file %s is empty", path)
	}

	defs := make(map[string]MonsterDefinition)
	for _, def := range monsterDefs {
		switch def.Kind {
		case component.KindBeast, component.KindGhost:
		default:
			return fmt.Errorf("monster %q has unknown kind %q", def.ID, def.Kind)
		}
		if def.Width <= 0 || def.Height <= 0 {
			return fmt.Errorf("monster %q has non-positive size", def.ID)
		}
		if _, dup := defs[def.ID]; dup {
			return fmt.Errorf("duplicate monster ID %q", def.ID)
		}
		defs[def.ID] = def
	}

	MonsterDefs = defs
	SpawnTable = buildSpawnTable(defs)
	return nil
}

func buildSpawnTable(defs map[string]MonsterDefinition) []SpawnEntry {
	table := make([]SpawnEntry, 0, len(defs))
	for id, def := range defs {
		weight := def.Weight
		if weight <= 0 {
			weight = 1
		}
		table = append(table, SpawnEntry{MonsterID: id, Weight: weight})
	}
	sort.Slice(table, func(i, j int) bool {
		return table[i].MonsterID < table[j].MonsterID
	})
	return table
}
