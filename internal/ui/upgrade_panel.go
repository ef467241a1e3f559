// internal/ui/upgrade_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/Pipe0105/TD-Modelamiento/internal/app"
	"github.com/Pipe0105/TD-Modelamiento/internal/defs"
	"github.com/Pipe0105/TD-Modelamiento/internal/types"
)

const (
	upgradePanelHeight = 260
	animationSpeed     = 20.0
	lineHeight         = 18
	upgradeButtonH     = 36
)

// UpgradePanel показывает выбранную башню и кнопки улучшений.
// Панель выезжает снизу, когда башня выбрана.
type UpgradePanel struct {
	X, Y     int
	Width    int
	target   types.EntityID
	currentY float64
	hiddenY  float64
}

func NewUpgradePanel(x, y, width, hiddenY int) *UpgradePanel {
	return &UpgradePanel{
		X:        x,
		Y:        y,
		Width:    width,
		currentY: float64(hiddenY),
		hiddenY:  float64(hiddenY),
	}
}

// Update двигает анимацию к нужной позиции.
func (p *UpgradePanel) Update(selected types.EntityID) {
	if selected != 0 {
		p.target = selected
	}
	targetY := p.hiddenY
	if selected != 0 {
		targetY = float64(p.Y)
	}
	diff := targetY - p.currentY
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentY = targetY
	case diff > 0:
		p.currentY += animationSpeed
	default:
		p.currentY -= animationSpeed
	}
	if p.currentY >= p.hiddenY {
		p.target = 0
	}
}

func (p *UpgradePanel) buttons(top int, snap *app.Snapshot) []*Button {
	out := make([]*Button, 0, len(snap.Upgrades))
	y := top + 5*lineHeight + 10
	for i, u := range snap.Upgrades {
		label := fmt.Sprintf("%s  Lv%d", u.Stat, u.Level)
		if u.MaxLevel > 0 {
			label = fmt.Sprintf("%s  Lv%d/%d", u.Stat, u.Level, u.MaxLevel)
		}
		maxed := u.MaxLevel > 0 && u.Level >= u.MaxLevel
		if maxed {
			label += "  MAX"
		} else {
			label += fmt.Sprintf("  $%d", u.Cost)
		}
		btnTop := y + i*(upgradeButtonH+paletteButtonGap)
		b := NewButton(image.Rect(p.X+10, btnTop, p.X+p.Width-10, btnTop+upgradeButtonH), label)
		b.Disabled = maxed || u.Cost > snap.Economy.Money
		out = append(out, b)
	}
	return out
}

// HandleClick возвращает стат, если клик пришёлся на кнопку улучшения.
// Клики считаются по конечной позиции панели.
func (p *UpgradePanel) HandleClick(x, y int, snap *app.Snapshot) (defs.UpgradeStat, bool) {
	if snap.Selected == 0 {
		return "", false
	}
	for i, b := range p.buttons(p.Y, snap) {
		if b.Contains(x, y) {
			return defs.UpgradeStat(snap.Upgrades[i].Stat), true
		}
	}
	return "", false
}

func (p *UpgradePanel) Draw(screen *ebiten.Image, face font.Face, snap *app.Snapshot, cursorX, cursorY int) {
	if p.target == 0 || p.currentY >= p.hiddenY {
		return
	}
	top := int(p.currentY)
	vector.DrawFilledRect(screen, float32(p.X), float32(top), float32(p.Width), upgradePanelHeight, color.RGBA{25, 35, 45, 230}, false)
	vector.StrokeRect(screen, float32(p.X), float32(top), float32(p.Width), upgradePanelHeight, 2, color.RGBA{70, 130, 180, 255}, false)

	var tower *app.TowerView
	for i := range snap.Towers {
		if snap.Towers[i].ID == p.target {
			tower = &snap.Towers[i]
			break
		}
	}
	if tower == nil {
		return
	}

	x, y := p.X+10, top+lineHeight
	lines := []string{
		fmt.Sprintf("Tower #%d (%s)", tower.ID, tower.Type),
		fmt.Sprintf("Damage: %d", tower.Damage),
		fmt.Sprintf("Fire Rate: %.2f/s", tower.FireRate),
		fmt.Sprintf("Range: %.0f", tower.Range),
	}
	for _, l := range lines {
		text.Draw(screen, l, face, x, y, color.White)
		y += lineHeight
	}
	if snap.Selected == p.target {
		for _, b := range p.buttons(top, snap) {
			b.Draw(screen, face, cursorX, cursorY)
		}
	}
}
