// internal/ui/choice_panel.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-endless-runner/internal/component"
	"go-endless-runner/internal/config"
)

// ChoicePanel is the overlay shown while the simulation is blocked on a
// power-up choice. The two boxes are visuals only; input goes by screen
// half, so clicking anywhere on a side picks that side.
type ChoicePanel struct {
	face font.Face
}

func NewChoicePanel(face font.Face) *ChoicePanel {
	return &ChoicePanel{face: face}
}

func (p *ChoicePanel) Draw(screen *ebiten.Image, sess *component.Session) {
	vector.DrawFilledRect(screen, 0, 0, float32(sess.ViewW), float32(sess.ViewH), config.OverlayColor, false)

	cx := int(sess.ViewW / 2)
	DrawCenteredText(screen, p.face, "Choose your power-up", cx, int(sess.ViewH*0.25), config.TextColor)

	boxY := sess.ViewH/2 - config.ChoiceBoxH/2
	leftX := sess.ViewW/2 - config.ChoiceBoxGap/2 - config.ChoiceBoxW
	rightX := sess.ViewW/2 + config.ChoiceBoxGap/2
	p.drawOption(screen, leftX, boxY, sess.LeftOption)
	p.drawOption(screen, rightX, boxY, sess.RightOption)

	DrawCenteredText(screen, p.face, "click a side, or press A / D", cx, int(sess.ViewH*0.8), config.TextColor)
}

func (p *ChoicePanel) drawOption(screen *ebiten.Image, x, y float64, weapon component.Weapon) {
	vector.DrawFilledRect(screen, float32(x), float32(y), config.ChoiceBoxW, config.ChoiceBoxH, config.ChoiceBoxColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), config.ChoiceBoxW, config.ChoiceBoxH, config.UIBorderWidth, weaponColor(weapon), false)

	cx := int(x + config.ChoiceBoxW/2)
	DrawCenteredText(screen, p.face, weaponTitle(weapon), cx, int(y+config.ChoiceBoxH*0.45), weaponColor(weapon))
	DrawCenteredText(screen, p.face, weaponHint(weapon), cx, int(y+config.ChoiceBoxH*0.75), config.TextColor)
}

func weaponColor(w component.Weapon) color.RGBA {
	if w == component.WeaponWand {
		return config.WandColor
	}
	return config.SwordColor
}

func weaponTitle(w component.Weapon) string {
	if w == component.WeaponWand {
		return "Wand"
	}
	return "Sword"
}

func weaponHint(w component.Weapon) string {
	if w == component.WeaponWand {
		return "banishes ghosts"
	}
	return "slays beasts"
}
