// internal/ui/speed_button.go
package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Множители скорости симуляции по состояниям кнопки
var speedMultipliers = []int{1, 2, 4}

// SpeedButton переключает скорость x1 → x2 → x4.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Multiplier() int {
	return speedMultipliers[b.CurrentState%len(speedMultipliers)]
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	clr := color.Color(color.White)
	if len(b.StateColors) > 0 {
		clr = b.StateColors[b.CurrentState%len(b.StateColors)]
	}

	// Два треугольника "перемотки"
	height := size * 1.2
	width := size
	offset := width * 0.8
	for _, dx := range []float32{0, offset} {
		var path vector.Path
		path.MoveTo(b.X-width+dx, b.Y-height/2)
		path.LineTo(b.X+dx, b.Y)
		path.LineTo(b.X-width+dx, b.Y+height/2)
		path.Close()
		fillPath(screen, &path, clr)
	}
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	// Форма сложная, проверяем попадание в круг
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(speedMultipliers)
	b.LastClickTime = time.Now()
}

// fillPath заливает замкнутый контур одним цветом.
func fillPath(screen *ebiten.Image, path *vector.Path, clr color.Color) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, bl, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(bl) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, whiteImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

var whitePixel *ebiten.Image

func whiteImage() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}
