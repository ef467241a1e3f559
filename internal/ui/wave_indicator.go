package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y         int
	Color        color.RGBA
	LastColor    color.RGBA
	OutlineColor color.RGBA
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        color.RGBA{70, 130, 180, 255},
		LastColor:    color.RGBA{220, 60, 60, 255},
		OutlineColor: color.RGBA{255, 255, 255, 255},
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// waveLabel - "III / V"
func waveLabel(number, target int) string {
	if number <= 0 {
		return ""
	}
	if target <= 0 {
		return toRoman(number)
	}
	return fmt.Sprintf("%s / %s", toRoman(number), toRoman(target))
}

// Draw отрисовывает индикатор на экране. Последняя волна уровня красная.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, number, target int) {
	label := waveLabel(number, target)
	if label == "" {
		return
	}
	textColor := i.Color
	if number == target {
		textColor = i.LastColor
	}

	bounds := text.BoundString(face, label)
	x := i.X - bounds.Dx()/2

	// Обводка
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, face, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, face, x, i.Y, textColor)
}
