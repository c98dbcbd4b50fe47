// internal/system/render.go
package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-endless-runner/internal/assets"
	"go-endless-runner/internal/component"
	"go-endless-runner/internal/config"
	"go-endless-runner/internal/entity"
)

// RenderSystem draws the world: scrolling background, ground strip,
// monsters and the hero. It is a pure function of the session state and
// never mutates it. Overlays and HUD are drawn by the ui package on top.
type RenderSystem struct {
	ecs    *entity.ECS
	images *assets.ImageManager
}

func NewRenderSystem(ecs *entity.ECS, images *assets.ImageManager) *RenderSystem {
	return &RenderSystem{
		ecs:    ecs,
		images: images,
	}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	sess := s.ecs.Session
	s.drawBackground(screen, sess)
	s.drawGround(screen, sess)
	s.drawMonsters(screen)
	s.drawHero(screen, sess)
}

// drawBackground draws two copies of the background so the wrap at the
// tile width is seamless.
func (s *RenderSystem) drawBackground(screen *ebiten.Image, sess *component.Session) {
	screen.Fill(config.BackgroundColor)
	img, ok := s.images.Image("background")
	if !ok {
		return
	}
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	for _, x := range []float64{-sess.ScrollOffset, -sess.ScrollOffset + sess.ViewW} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(sess.ViewW/float64(iw), sess.ViewH/float64(ih))
		op.GeoM.Translate(x, 0)
		screen.DrawImage(img, op)
	}
}

func (s *RenderSystem) drawGround(screen *ebiten.Image, sess *component.Session) {
	y := sess.ViewH - config.GroundHeight
	img, ok := s.images.Image("ground")
	if !ok {
		vector.DrawFilledRect(screen, 0, float32(y), float32(sess.ViewW), float32(config.GroundHeight), config.GroundColor, false)
		return
	}
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sess.ViewW/float64(iw), config.GroundHeight/float64(ih))
	op.GeoM.Translate(0, y)
	screen.DrawImage(img, op)
}

func (s *RenderSystem) drawMonsters(screen *ebiten.Image) {
	for id, mon := range s.ecs.Monsters {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		name := ""
		if sprite, ok := s.ecs.Sprites[id]; ok {
			name = sprite.Name
		}
		fallback := config.BeastColor
		if mon.Kind == component.KindGhost {
			fallback = config.GhostColor
		}
		s.drawEntity(screen, name, pos.X, pos.Y, mon.Width, mon.Height, fallback)
	}
}

func (s *RenderSystem) drawHero(screen *ebiten.Image, sess *component.Session) {
	for id, hero := range s.ecs.Heroes {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		flashing := sess.FlashTimer > 0
		img, ok := s.images.Image("hero")
		if !ok {
			clr := color.Color(config.HeroColor)
			if flashing {
				clr = config.FlashColor
			}
			vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), float32(hero.Width), float32(hero.Height), clr, false)
			continue
		}
		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(hero.Width/float64(iw), hero.Height/float64(ih))
		op.GeoM.Translate(pos.X, pos.Y)
		if flashing {
			op.ColorScale.Scale(1, 0.35, 0.35, 1)
		}
		screen.DrawImage(img, op)
	}
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, sprite string, x, y, w, h float64, fallback color.Color) {
	img, ok := s.images.Image(sprite)
	if !ok {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), fallback, false)
		return
	}
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(iw), h/float64(ih))
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}
