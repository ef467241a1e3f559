package main

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/Pipe0105/TD-Modelamiento/internal/app"
	"github.com/Pipe0105/TD-Modelamiento/internal/state"
	"github.com/Pipe0105/TD-Modelamiento/pkg/tilemap"
	"github.com/Pipe0105/TD-Modelamiento/pkg/utils"
)

const (
	cellsPerTile = 2 // клетка карты - две колонки терминала
	headerRows   = 2
)

var (
	groundStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(20, 70, 20))
	pathStyle   = tcell.StyleDefault.Background(tcell.NewRGBColor(110, 70, 35))
	spotStyle   = tcell.StyleDefault.Background(tcell.NewRGBColor(90, 90, 90))
	startStyle  = tcell.StyleDefault.Background(tcell.NewRGBColor(60, 160, 60))
	endStyle    = tcell.StyleDefault.Background(tcell.NewRGBColor(170, 50, 50))
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// view рисует снимки в сетку символов.
type view struct {
	screen tcell.Screen
}

func tileStyle(code tilemap.Tile) tcell.Style {
	switch code {
	case tilemap.PathTile, tilemap.AltPath:
		return pathStyle
	case tilemap.BuildSpot:
		return spotStyle
	case tilemap.Start:
		return startStyle
	case tilemap.End:
		return endStyle
	}
	return groundStyle
}

// cellOf переводит пиксели карты в клетку экрана.
func cellOf(x, y, tileSize float64) (int, int) {
	if tileSize <= 0 {
		return 0, headerRows
	}
	col := int(x / tileSize * cellsPerTile)
	row := int(y/tileSize) + headerRows
	return col, row
}

// worldOf - центр клетки экрана в пикселях карты.
func worldOf(col, row int, tileSize float64) (float64, float64) {
	x := (float64(col) + 0.5) / cellsPerTile * tileSize
	y := (float64(row-headerRows) + 0.5) * tileSize
	return x, y
}

func (v *view) puts(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

// put пишет руну поверх фона клетки.
func (v *view) put(x, y int, r rune, fg tcell.Color) {
	w, h := v.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	_, _, style, _ := v.screen.GetContent(x, y)
	v.screen.SetContent(x, y, r, nil, style.Foreground(fg).Bold(true))
}

func (v *view) draw(snap state.Snapshot, status string) {
	v.screen.Clear()
	_, h := v.screen.Size()

	if g := snap.Game; g != nil {
		v.drawGame(g)
		v.puts(0, 0, header(snap), textStyle)
		m := g.Metrics
		v.puts(0, 1, fmt.Sprintf("lambda=%.2f mu=%.2f c=%d rho=%.3f L=%d  type=%s",
			m.Lambda, m.Mu, m.Servers, m.Utilization, m.InSystem, g.SelectedType), dimStyle)
	} else {
		v.puts(0, 0, "TOWER DEFENSE", textStyle)
		for i, name := range snap.LevelNames {
			marker := "  "
			if i == snap.LevelIndex {
				marker = "> "
			}
			v.puts(2, 2+i, fmt.Sprintf("%s%d. %s", marker, i+1, name), textStyle)
		}
	}

	if msg := phaseMessage(snap.Phase); msg != "" {
		v.puts(0, h-2, msg, textStyle.Bold(true))
	}
	v.puts(0, h-1, status, dimStyle)
	v.screen.Show()
}

func header(snap state.Snapshot) string {
	g := snap.Game
	return fmt.Sprintf("%s | %s | wave %d/%d (%d/%d) | $%d | lives %d | kills %d",
		g.Level, snap.Phase, g.Wave.Number, g.Wave.Target, g.Wave.Spawned, g.Wave.Quota,
		g.Economy.Money, g.Economy.Lives, g.Economy.Kills)
}

func phaseMessage(p state.Phase) string {
	switch p {
	case state.PhaseMenu:
		return "space: start   1-9: choose level   q: quit"
	case state.PhasePaused:
		return "PAUSED  space: resume"
	case state.PhaseGameOver:
		return "GAME OVER  r: retry   m: menu"
	case state.PhaseLevelComplete:
		return "LEVEL COMPLETE  n: next level   r: replay   m: menu"
	case state.PhaseVictory:
		return "VICTORY  r: play again   m: menu"
	}
	return "click: build/select   1-9: tower type   d/f/g: upgrade   p: pause"
}

func (v *view) drawGame(g *app.Snapshot) {
	for y, row := range g.Tiles {
		for x, code := range row {
			style := tileStyle(tilemap.Tile(code))
			for c := 0; c < cellsPerTile; c++ {
				v.screen.SetContent(x*cellsPerTile+c, y+headerRows, ' ', nil, style)
			}
		}
	}

	w, h := v.screen.Size()
	clampCell := func(x, y float64) (int, int) {
		col, row := cellOf(x, y, g.TileSize)
		return utils.Clamp(col, 0, w-1), utils.Clamp(row, headerRows, h-1)
	}

	for _, t := range g.Towers {
		col, row := clampCell(t.X, t.Y)
		r := 'T'
		if t.Type != "" {
			r = unicode.ToUpper([]rune(t.Type)[0])
		}
		fg := tcell.NewRGBColor(int32(t.Color.R), int32(t.Color.G), int32(t.Color.B))
		if t.ID == g.Selected {
			fg = tcell.ColorYellow
		}
		v.put(col, row, r, fg)
	}
	for _, e := range g.Enemies {
		col, row := clampCell(e.X, e.Y)
		r := 'e'
		if e.Ratio > 0.5 {
			r = 'E'
		}
		fg := tcell.ColorRed
		if e.Ratio > 0.66 {
			fg = tcell.ColorLime
		} else if e.Ratio > 0.33 {
			fg = tcell.ColorYellow
		}
		v.put(col, row, r, fg)
	}
	for _, p := range g.Projectiles {
		col, row := clampCell(p.X, p.Y)
		v.put(col, row, '*', tcell.ColorWhite)
	}
}
