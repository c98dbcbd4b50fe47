package component

// Hero is the player entity. There is exactly one per session.
type Hero struct {
	Width  float64
	Height float64
	Weapon Weapon
}

// HitboxLeft and HitboxRight return the horizontal extent of the hero's
// collision box, narrowed to the given factors of the sprite width.
func (h *Hero) HitboxLeft(x, leftFactor float64) float64 {
	return x + h.Width*leftFactor
}

func (h *Hero) HitboxRight(x, rightFactor float64) float64 {
	return x + h.Width*rightFactor
}
