package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/Pipe0105/TD-Modelamiento/internal/config"
	"github.com/Pipe0105/TD-Modelamiento/internal/defs"
	"github.com/Pipe0105/TD-Modelamiento/internal/state"
)

// ActionKind - что пользователь запросил кликом по UI.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionStart
	ActionPause
	ActionResume
	ActionRestart
	ActionNextLevel
	ActionMenu
	ActionSpeed
	ActionSelectType
	ActionUpgrade
)

type Action struct {
	Kind   ActionKind
	Level  int
	TypeID string
	Stat   defs.UpgradeStat
}

// HUD собирает все элементы интерфейса: верхнюю панель, боковую панель и оверлеи.
type HUD struct {
	face     font.Face
	pause    *PauseButton
	speed    *SpeedButton
	wave     *WaveIndicator
	lives    *LivesIndicator
	palette  *TowerPalette
	upgrades *UpgradePanel
	overlay  *Overlay
}

func NewHUD() *HUD {
	panelX := config.ScreenWidth - config.SidePanelWidth + 10
	panelW := config.SidePanelWidth - 20
	midY := float32(config.HUDHeight) / 2
	return &HUD{
		face:     basicfont.Face7x13,
		pause:    NewPauseButton(config.ScreenWidth-40, midY, 10, color.RGBA{220, 220, 220, 255}, color.RGBA{100, 220, 100, 255}),
		speed:    NewSpeedButton(config.ScreenWidth-90, midY, 10, config.SpeedButtonColors),
		wave:     NewWaveIndicator(config.ScreenWidth/2, int(midY)+5),
		lives:    NewLivesIndicator(220, midY, config.DefaultStartingLives),
		palette:  NewTowerPalette(panelX, config.HUDHeight+10, panelW),
		upgrades: NewUpgradePanel(panelX, config.HUDHeight+200, panelW, config.ScreenHeight),
		overlay:  NewOverlay(config.ScreenWidth/2, config.ScreenHeight/2),
	}
}

func (h *HUD) SpeedMultiplier() int { return h.speed.Multiplier() }

// Update продвигает анимации. Вызывается каждый кадр.
func (h *HUD) Update(snap state.Snapshot) {
	h.pause.SetPaused(snap.Phase == state.PhasePaused)
	selected := snap.Game != nil && snap.Game.Selected != 0
	if selected {
		h.upgrades.Update(snap.Game.Selected)
	} else {
		h.upgrades.Update(0)
	}
}

// HandleClick разбирает клик по UI. false означает, что клик ушёл мимо UI
// и должен попасть на карту.
func (h *HUD) HandleClick(x, y int, snap state.Snapshot) (Action, bool) {
	if snap.Phase == state.PhasePlaying || snap.Phase == state.PhasePaused {
		if h.pause.IsClicked(x, y) {
			if snap.Phase == state.PhasePaused {
				return Action{Kind: ActionResume}, true
			}
			return Action{Kind: ActionPause}, true
		}
		if h.speed.IsClicked(x, y) {
			h.speed.ToggleState()
			return Action{Kind: ActionSpeed}, true
		}
	}
	if a, ok := h.overlay.HandleClick(x, y, snap); ok {
		return a, true
	}
	if h.overlay.Visible(snap) || snap.Game == nil {
		// Под оверлеем карта не кликается
		return Action{}, true
	}

	if id, ok := h.palette.HandleClick(x, y, snap.Game); ok {
		return Action{Kind: ActionSelectType, TypeID: id}, true
	}
	if stat, ok := h.upgrades.HandleClick(x, y, snap.Game); ok {
		return Action{Kind: ActionUpgrade, Stat: stat}, true
	}
	if x >= config.ScreenWidth-config.SidePanelWidth || y < config.HUDHeight {
		return Action{}, true
	}
	return Action{}, false
}

func summaryLine(snap state.Snapshot) string {
	g := snap.Game
	return fmt.Sprintf("%s: wave %d/%d, kills %d, escapes %d, $%d",
		g.Level, g.Wave.Number, g.Wave.Target, g.Economy.Kills, g.Economy.Escapes, g.Economy.Money)
}

func (h *HUD) Draw(screen *ebiten.Image, snap state.Snapshot) {
	cx, cy := ebiten.CursorPosition()

	if g := snap.Game; g != nil {
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.HUDHeight, config.PanelColor, false)
		vector.DrawFilledRect(screen, config.ScreenWidth-config.SidePanelWidth, config.HUDHeight,
			config.SidePanelWidth, config.ScreenHeight-config.HUDHeight, config.PanelColor, false)

		text.Draw(screen, fmt.Sprintf("$ %d", g.Economy.Money), h.face, 12, config.HUDHeight/2+5, config.TextLightColor)
		text.Draw(screen, fmt.Sprintf("Kills %d", g.Economy.Kills), h.face, 100, config.HUDHeight/2+5, config.TextLightColor)
		h.lives.Draw(screen, h.face, g.Economy.Lives)
		h.wave.Draw(screen, h.face, g.Wave.Number, g.Wave.Target)

		m := g.Metrics
		metrics := fmt.Sprintf("lambda=%.2f mu=%.2f c=%d rho=%.3f L=%d", m.Lambda, m.Mu, m.Servers, m.Utilization, m.InSystem)
		text.Draw(screen, metrics, h.face, config.ScreenWidth/2+90, config.HUDHeight/2+5, config.TextLightColor)

		text.Draw(screen, fmt.Sprintf("x%d", h.speed.Multiplier()), h.face, config.ScreenWidth-130, config.HUDHeight/2+5, config.TextLightColor)
		h.speed.Draw(screen)
		h.pause.Draw(screen)

		h.palette.Draw(screen, h.face, g, cx, cy)
		h.upgrades.Draw(screen, h.face, g, cx, cy)
	}
	h.overlay.Draw(screen, h.face, snap, cx, cy)
}
