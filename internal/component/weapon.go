package component

// Weapon is one of the two power-ups the hero can carry.
type Weapon string

const (
	WeaponSword Weapon = "sword"
	WeaponWand  Weapon = "wand"
)

// MonsterKind determines which weapon defeats a monster.
type MonsterKind string

const (
	KindBeast MonsterKind = "beast"
	KindGhost MonsterKind = "ghost"
)

// CounterWeapon returns the weapon that defeats the given kind.
func CounterWeapon(kind MonsterKind) Weapon {
	if kind == KindGhost {
		return WeaponWand
	}
	return WeaponSword
}
