// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-endless-runner/internal/component"
	"go-endless-runner/internal/config"
	"go-endless-runner/internal/defs"
)

// HUD draws the level counter and the remaining-monster count.
type HUD struct {
	face font.Face
}

func NewHUD(face font.Face) *HUD {
	return &HUD{face: face}
}

func (h *HUD) Draw(screen *ebiten.Image, sess *component.Session) {
	level := fmt.Sprintf("Level %d/%d", sess.Level+1, len(defs.LevelDefs))
	text.Draw(screen, level, h.face, config.HUDTextX, config.HUDTextY, config.TextColor)

	remaining := sess.MonstersToSpawn - sess.MonstersDefeated
	text.Draw(screen, fmt.Sprintf("Monsters left: %d", remaining), h.face, config.HUDTextX, config.HUDTextY+22, config.TextColor)
}
