// internal/ui/hearts.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-endless-runner/internal/config"
)

// HeartsIndicator draws the row of remaining hearts in the top-left
// corner. Hearts are vector shapes, not sprites: two circles and a
// triangle tip.
type HeartsIndicator struct {
	X, Y    float32
	Size    float32
	Spacing float32
	fillImg *ebiten.Image
}

func NewHeartsIndicator() *HeartsIndicator {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &HeartsIndicator{
		X:       config.HeartOffsetX,
		Y:       config.HeartOffsetY,
		Size:    config.HeartSize,
		Spacing: config.HeartSpacing,
		fillImg: fillImg,
	}
}

func (h *HeartsIndicator) Draw(screen *ebiten.Image, hearts int) {
	for i := 0; i < config.MaxHearts; i++ {
		clr := config.HeartEmptyColor
		if i < hearts {
			clr = config.HeartColor
		}
		h.drawHeart(screen, h.X+float32(i)*h.Spacing, h.Y, clr)
	}
}

func (h *HeartsIndicator) drawHeart(screen *ebiten.Image, x, y float32, clr color.RGBA) {
	s := h.Size
	r := s * 0.27
	vector.DrawFilledCircle(screen, x+s*0.27, y+s*0.3, r, clr, true)
	vector.DrawFilledCircle(screen, x+s*0.73, y+s*0.3, r, clr, true)

	var p vector.Path
	p.MoveTo(x+s*0.02, y+s*0.42)
	p.LineTo(x+s*0.98, y+s*0.42)
	p.LineTo(x+s*0.5, y+s)
	p.Close()

	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	screen.DrawTriangles(vs, is, h.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
