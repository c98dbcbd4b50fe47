package defs

import (
	"testing"
	"testing/fstest"

	"go-endless-runner/internal/component"
)

const validLevels = `[
  {"id": 0, "monster_count": 5, "speed": 140},
  {"id": 1, "monster_count": 7, "speed": 160},
  {"id": 2, "monster_count": 9, "speed": 180}
]`

const validMonsters = `[
  {"id": "MONSTER_BEAST", "name": "Beast", "kind": "beast", "width": 56, "height": 64, "weight": 3, "sprite": "beast"},
  {"id": "MONSTER_GHOST", "name": "Ghost", "kind": "ghost", "width": 52, "height": 60, "weight": 2, "sprite": "ghost"}
]`

func fsWith(t *testing.T, path, content string) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		path: &fstest.MapFile{Data: []byte(content)},
	}
}

func TestLoadLevelDefinitions(t *testing.T) {
	fsys := fsWith(t, "data/levels.json", validLevels)
	if err := LoadLevelDefinitions(fsys, "data/levels.json"); err != nil {
		t.Fatalf("failed to load levels: %v", err)
	}
	if len(LevelDefs) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(LevelDefs))
	}
	if LevelDefs[1].MonsterCount != 7 || LevelDefs[1].Speed != 160 {
		t.Errorf("level 1 loaded wrong: %+v", LevelDefs[1])
	}
}

func TestLoadLevelDefinitionsRejectsBadInput(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"empty list", `[]`},
		{"malformed json", `{not json`},
		{"zero count", `[{"id":0,"monster_count":0,"speed":100}]`},
		{"zero speed", `[{"id":0,"monster_count":5,"speed":0}]`},
		{"count not increasing", `[
			{"id":0,"monster_count":5,"speed":100},
			{"id":1,"monster_count":5,"speed":120}
		]`},
		{"speed not increasing", `[
			{"id":0,"monster_count":5,"speed":100},
			{"id":1,"monster_count":7,"speed":100}
		]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fsys := fsWith(t, "data/levels.json", tc.content)
			if err := LoadLevelDefinitions(fsys, "data/levels.json"); err == nil {
				t.Errorf("expected error for %s", tc.name)
			}
		})
	}
}

func TestLoadLevelDefinitionsMissingFile(t *testing.T) {
	if err := LoadLevelDefinitions(fstest.MapFS{}, "data/levels.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMonsterDefinitions(t *testing.T) {
	fsys := fsWith(t, "data/monsters.json", validMonsters)
	if err := LoadMonsterDefinitions(fsys, "data/monsters.json"); err != nil {
		t.Fatalf("failed to load monsters: %v", err)
	}
	if len(MonsterDefs) != 2 {
		t.Fatalf("expected 2 monster definitions, got %d", len(MonsterDefs))
	}
	beast := MonsterDefs["MONSTER_BEAST"]
	if beast.Kind != component.KindBeast {
		t.Errorf("expected beast kind, got %s", beast.Kind)
	}
}

func TestLoadMonsterDefinitionsRejectsUnknownKind(t *testing.T) {
	fsys := fsWith(t, "data/monsters.json",
		`[{"id":"X","kind":"dragon","width":10,"height":10}]`)
	if err := LoadMonsterDefinitions(fsys, "data/monsters.json"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestLoadMonsterDefinitionsRejectsDuplicates(t *testing.T) {
	fsys := fsWith(t, "data/monsters.json", `[
		{"id":"X","kind":"beast","width":10,"height":10},
		{"id":"X","kind":"ghost","width":10,"height":10}
	]`)
	if err := LoadMonsterDefinitions(fsys, "data/monsters.json"); err == nil {
		t.Error("expected error for duplicate IDs")
	}
}

func TestSpawnTableDerivedSortedWithWeights(t *testing.T) {
	fsys := fsWith(t, "data/monsters.json", validMonsters)
	if err := LoadMonsterDefinitions(fsys, "data/monsters.json"); err != nil {
		t.Fatalf("failed to load monsters: %v", err)
	}
	if len(SpawnTable) != 2 {
		t.Fatalf("expected 2 spawn entries, got %d", len(SpawnTable))
	}
	if SpawnTable[0].MonsterID != "MONSTER_BEAST" || SpawnTable[1].MonsterID != "MONSTER_GHOST" {
		t.Errorf("expected deterministic ID order, got %+v", SpawnTable)
	}
	if SpawnTable[0].Weight != 3 || SpawnTable[1].Weight != 2 {
		t.Errorf("expected weights carried over, got %+v", SpawnTable)
	}
}

func TestSpawnTableDefaultsZeroWeight(t *testing.T) {
	fsys := fsWith(t, "data/monsters.json",
		`[{"id":"X","kind":"beast","width":10,"height":10}]`)
	if err := LoadMonsterDefinitions(fsys, "data/monsters.json"); err != nil {
		t.Fatalf("failed to load monsters: %v", err)
	}
	if SpawnTable[0].Weight != 1 {
		t.Errorf("expected omitted weight to default to 1, got %d", SpawnTable[0].Weight)
	}
}
