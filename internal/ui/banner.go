// internal/ui/banner.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-endless-runner/internal/component"
	"go-endless-runner/internal/config"
)

// Banner is the paused overlay shown at the end of a level and on game
// over, waiting for player input.
type Banner struct {
	face font.Face
}

func NewBanner(face font.Face) *Banner {
	return &Banner{face: face}
}

func (b *Banner) Draw(screen *ebiten.Image, sess *component.Session) {
	vector.DrawFilledRect(screen, 0, 0, float32(sess.ViewW), float32(sess.ViewH), config.OverlayColor, false)

	x := float32(sess.ViewW/2 - config.BannerWidth/2)
	y := float32(sess.ViewH/2 - config.BannerHeight/2)
	vector.DrawFilledRect(screen, x, y, config.BannerWidth, config.BannerHeight, config.ChoiceBoxColor, false)
	vector.StrokeRect(screen, x, y, config.BannerWidth, config.BannerHeight, config.UIBorderWidth, config.UIBorderColor, false)

	title := fmt.Sprintf("Level %d cleared!", sess.Level+1)
	hint := "click or press Space to continue"
	if sess.Phase == component.PhaseGameOver {
		title = "Game over"
		hint = "click or press Space to restart"
	}

	cx := int(sess.ViewW / 2)
	DrawCenteredText(screen, b.face, title, cx, int(sess.ViewH/2)-10, config.TextColor)
	DrawCenteredText(screen, b.face, hint, cx, int(sess.ViewH/2)+30, config.TextColor)
}
