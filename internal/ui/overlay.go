package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/Pipe0105/TD-Modelamiento/internal/state"
)

const (
	overlayButtonW   = 320
	overlayButtonH   = 44
	overlayButtonGap = 10
)

type overlayButton struct {
	*Button
	action Action
}

// Overlay - экран меню, паузы и итогов уровня поверх карты.
type Overlay struct {
	CenterX, CenterY int
}

func NewOverlay(centerX, centerY int) *Overlay {
	return &Overlay{CenterX: centerX, CenterY: centerY}
}

func overlayTitle(snap state.Snapshot) string {
	switch snap.Phase {
	case state.PhaseMenu:
		return "Tower Defense"
	case state.PhasePaused:
		return "Paused"
	case state.PhaseGameOver:
		return "Game Over"
	case state.PhaseLevelComplete:
		return "Level Complete"
	case state.PhaseVictory:
		return "Victory!"
	}
	return ""
}

func (o *Overlay) buttons(snap state.Snapshot) []overlayButton {
	var specs []struct {
		label  string
		action Action
	}
	add := func(label string, a Action) {
		specs = append(specs, struct {
			label  string
			action Action
		}{label, a})
	}

	switch snap.Phase {
	case state.PhaseMenu:
		for i, name := range snap.LevelNames {
			add(name, Action{Kind: ActionStart, Level: i})
		}
	case state.PhasePaused:
		add("Resume", Action{Kind: ActionResume})
	case state.PhaseGameOver:
		add("Retry", Action{Kind: ActionRestart})
		add("Menu", Action{Kind: ActionMenu})
	case state.PhaseLevelComplete:
		add("Next level", Action{Kind: ActionNextLevel})
		add("Replay", Action{Kind: ActionRestart})
		add("Menu", Action{Kind: ActionMenu})
	case state.PhaseVictory:
		add("Play again", Action{Kind: ActionRestart})
		add("Menu", Action{Kind: ActionMenu})
	}

	out := make([]overlayButton, len(specs))
	left := o.CenterX - overlayButtonW/2
	for i, s := range specs {
		top := o.CenterY + i*(overlayButtonH+overlayButtonGap)
		out[i] = overlayButton{
			Button: NewButton(image.Rect(left, top, left+overlayButtonW, top+overlayButtonH), s.label),
			action: s.action,
		}
	}
	return out
}

// Visible reports whether the phase shows an overlay.
func (o *Overlay) Visible(snap state.Snapshot) bool {
	return snap.Phase != state.PhasePlaying
}

func (o *Overlay) HandleClick(x, y int, snap state.Snapshot) (Action, bool) {
	if !o.Visible(snap) {
		return Action{}, false
	}
	for _, b := range o.buttons(snap) {
		if b.Contains(x, y) {
			return b.action, true
		}
	}
	return Action{}, false
}

func (o *Overlay) Draw(screen *ebiten.Image, face font.Face, snap state.Snapshot, cursorX, cursorY int) {
	if !o.Visible(snap) {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 150}, false)

	title := overlayTitle(snap)
	b := text.BoundString(face, title)
	text.Draw(screen, title, face, o.CenterX-b.Dx()/2, o.CenterY-60, color.White)

	if snap.Game != nil && snap.Phase != state.PhasePaused {
		summary := summaryLine(snap)
		sb := text.BoundString(face, summary)
		text.Draw(screen, summary, face, o.CenterX-sb.Dx()/2, o.CenterY-30, color.RGBA{200, 200, 200, 255})
	}
	for _, btn := range o.buttons(snap) {
		btn.Draw(screen, face, cursorX, cursorY)
	}
}
