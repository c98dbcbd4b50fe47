package component

// Monster is a hostile entity advancing toward the hero.
type Monster struct {
	DefID          string // ID from monsters.json
	Kind           MonsterKind
	RequiredWeapon Weapon // derived from Kind at spawn time
	Width          float64
	Height         float64
}
