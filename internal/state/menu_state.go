// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"go-endless-runner/internal/assets"
	"go-endless-runner/internal/config"
	"go-endless-runner/internal/ui"
)

// MenuState is the intro screen. Any click or Space/Enter starts a run.
type MenuState struct {
	sm     *StateMachine
	images *assets.ImageManager
	face   font.Face
	viewW  int
	viewH  int
}

func NewMenuState(sm *StateMachine, images *assets.ImageManager, face font.Face) *MenuState {
	return &MenuState{
		sm:     sm,
		images: images,
		face:   face,
		viewW:  config.ScreenWidth,
		viewH:  config.ScreenHeight,
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewPlayState(m.sm, m.images, m.face, 0))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx := m.viewW / 2
	if img, ok := m.images.Image("title"); ok {
		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
		targetW := float64(m.viewW) / 3
		scale := targetW / float64(iw)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(float64(cx)-targetW/2, float64(m.viewH)/3-float64(ih)*scale)
		screen.DrawImage(img, op)
	} else {
		ui.DrawCenteredText(screen, m.face, "RUNNER", cx, m.viewH/3, config.TextColor)
	}
	ui.DrawCenteredText(screen, m.face, "Pick the right power-up. Beasts fear the sword, ghosts the wand.", cx, m.viewH/2, config.TextColor)
	ui.DrawCenteredText(screen, m.face, "click or press Space to start", cx, m.viewH*2/3, config.TextColor)
}

func (m *MenuState) Layout(outsideWidth, outsideHeight int) {
	m.viewW = outsideWidth
	m.viewH = outsideHeight
}

func (m *MenuState) Exit() {}
