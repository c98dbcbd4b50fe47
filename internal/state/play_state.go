// internal/state/play_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"go-endless-runner/internal/app"
	"go-endless-runner/internal/assets"
	"go-endless-runner/internal/component"
	"go-endless-runner/internal/system"
	"go-endless-runner/internal/ui"
)

// PlayState runs one session: it feeds input to the game, advances the
// simulation once per frame and draws the world plus the HUD and the
// phase overlays.
type PlayState struct {
	sm           *StateMachine
	game         *app.Game
	renderSystem *system.RenderSystem
	hearts       *ui.HeartsIndicator
	hud          *ui.HUD
	choicePanel  *ui.ChoicePanel
	banner       *ui.Banner
}

func NewPlayState(sm *StateMachine, images *assets.ImageManager, face font.Face, seed int64) *PlayState {
	game := app.NewGame(seed)
	return &PlayState{
		sm:           sm,
		game:         game,
		renderSystem: system.NewRenderSystem(game.ECS, images),
		hearts:       ui.NewHeartsIndicator(),
		hud:          ui.NewHUD(face),
		choicePanel:  ui.NewChoicePanel(face),
		banner:       ui.NewBanner(face),
	}
}

func (p *PlayState) Enter() {}

func (p *PlayState) Update(deltaTime float64) {
	p.handleInput()
	p.game.Update(deltaTime)
}

// handleInput maps pointer and keyboard input onto the current phase.
// The last event before the frame wins; there is no queuing.
func (p *PlayState) handleInput() {
	sess := p.game.Session()

	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	confirm := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	switch sess.Phase {
	case component.PhaseChoice:
		if clicked {
			x, _ := ebiten.CursorPosition()
			p.game.Choose(float64(x) < sess.ViewW/2)
			return
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
			p.game.Choose(true)
		} else if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
			p.game.Choose(false)
		}
	case component.PhaseLevelEnd:
		if clicked || confirm {
			p.game.AdvanceLevel()
		}
	case component.PhaseGameOver:
		if clicked || confirm {
			p.game.Restart()
		}
	}
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	sess := p.game.Session()
	p.renderSystem.Draw(screen)
	p.hearts.Draw(screen, sess.Hearts)
	p.hud.Draw(screen, sess)

	switch sess.Phase {
	case component.PhaseChoice:
		p.choicePanel.Draw(screen, sess)
	case component.PhaseLevelEnd, component.PhaseGameOver:
		p.banner.Draw(screen, sess)
	}
}

func (p *PlayState) Layout(outsideWidth, outsideHeight int) {
	p.game.Resize(float64(outsideWidth), float64(outsideHeight))
}

func (p *PlayState) Exit() {}
