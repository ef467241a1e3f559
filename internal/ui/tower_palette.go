package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/Pipe0105/TD-Modelamiento/internal/app"
)

const (
	paletteButtonHeight = 36
	paletteButtonGap    = 6
)

// TowerPalette - список типов башен в боковой панели.
type TowerPalette struct {
	X, Y  int
	Width int
}

func NewTowerPalette(x, y, width int) *TowerPalette {
	return &TowerPalette{X: x, Y: y, Width: width}
}

// buttons раскладывает кнопки по каталогу текущего уровня.
func (p *TowerPalette) buttons(snap *app.Snapshot) []*Button {
	out := make([]*Button, 0, len(snap.TowerTypes))
	for i, t := range snap.TowerTypes {
		top := p.Y + 20 + i*(paletteButtonHeight+paletteButtonGap)
		b := NewButton(image.Rect(p.X, top, p.X+p.Width, top+paletteButtonHeight),
			fmt.Sprintf("%d. %s  $%d", i+1, t.Name, t.Cost))
		b.Disabled = t.Cost > snap.Economy.Money
		if t.ID == snap.SelectedType {
			b.BgColor = color.RGBA{40, 110, 60, 255}
			b.HoverColor = color.RGBA{60, 140, 80, 255}
		}
		out = append(out, b)
	}
	return out
}

// Bottom returns the y just below the last button.
func (p *TowerPalette) Bottom(snap *app.Snapshot) int {
	return p.Y + 20 + len(snap.TowerTypes)*(paletteButtonHeight+paletteButtonGap)
}

// HandleClick возвращает ID выбранного типа.
func (p *TowerPalette) HandleClick(x, y int, snap *app.Snapshot) (string, bool) {
	for i, b := range p.buttons(snap) {
		if b.Contains(x, y) {
			return snap.TowerTypes[i].ID, true
		}
	}
	return "", false
}

func (p *TowerPalette) Draw(screen *ebiten.Image, face font.Face, snap *app.Snapshot, cursorX, cursorY int) {
	text.Draw(screen, "Towers", face, p.X, p.Y+12, color.White)
	for _, b := range p.buttons(snap) {
		b.Draw(screen, face, cursorX, cursorY)
	}
}
