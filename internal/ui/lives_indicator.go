// internal/ui/lives_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	LivesCircleRadius  = 7.0
	LivesCircleSpacing = 4.0
)

// LivesIndicator рисует жизни игрока рядом кружков.
type LivesIndicator struct {
	X, Y float32
	Max  int
}

func NewLivesIndicator(x, y float32, maxLives int) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y, Max: maxLives}
}

func (i *LivesIndicator) Draw(screen *ebiten.Image, face font.Face, lives int) {
	n := i.Max
	if lives > n {
		n = lives
	}
	step := float32(LivesCircleRadius*2 + LivesCircleSpacing)
	for j := 0; j < n; j++ {
		cx := i.X + LivesCircleRadius + float32(j)*step
		clr := color.RGBA{0, 0, 0, 255}
		if j < lives {
			clr = color.RGBA{220, 40, 40, 255}
		}
		vector.DrawFilledCircle(screen, cx, i.Y, LivesCircleRadius, clr, true)
		vector.StrokeCircle(screen, cx, i.Y, LivesCircleRadius, 1, color.White, true)
	}
	label := strconv.Itoa(lives) + "/" + strconv.Itoa(i.Max)
	text.Draw(screen, label, face, int(i.X+float32(n)*step)+4, int(i.Y)+4, color.White)
}
