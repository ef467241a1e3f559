// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton показывает паузу или play в зависимости от фазы.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	s := b.Size * float32(scale)

	if b.IsPaused {
		// Треугольник (play)
		var path vector.Path
		path.MoveTo(b.X-s, b.Y-s*1.2)
		path.LineTo(b.X-s, b.Y+s*1.2)
		path.LineTo(b.X+s, b.Y)
		path.Close()
		fillPath(screen, &path, b.PlayColor)
		return
	}

	// Два прямоугольника (pause)
	width := s * 0.6
	height := s * 2.0
	spacing := s * 0.4
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, false)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, false)
}

func (b *PauseButton) IsClicked(x, y int) bool {
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*1.5
}

func (b *PauseButton) SetPaused(paused bool) {
	if paused != b.IsPaused {
		b.LastClickTime = time.Now()
	}
	b.IsPaused = paused
}
