// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Pipe0105/TD-Modelamiento/internal/assets"
	"github.com/Pipe0105/TD-Modelamiento/internal/audio"
	"github.com/Pipe0105/TD-Modelamiento/internal/config"
	"github.com/Pipe0105/TD-Modelamiento/internal/defs"
	"github.com/Pipe0105/TD-Modelamiento/internal/interfaces"
	"github.com/Pipe0105/TD-Modelamiento/internal/state"
	"github.com/Pipe0105/TD-Modelamiento/internal/ui"
	"github.com/Pipe0105/TD-Modelamiento/pkg/render"
)

type AppGame struct {
	session        *state.Session
	renderer       *render.Renderer
	hud            *ui.HUD
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	snap := a.session.Snapshot()
	a.hud.Update(snap)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.handleClick(snap)
	}
	a.handleKeys()

	// Ускорение - несколько шагов с тем же dt, чтобы не терять попадания
	for i := 0; i < a.hud.SpeedMultiplier(); i++ {
		a.session.Update(deltaTime)
	}
	return nil
}

func (a *AppGame) handleClick(snap state.Snapshot) {
	cx, cy := ebiten.CursorPosition()
	action, consumed := a.hud.HandleClick(cx, cy, snap)
	if !consumed {
		wx, wy := a.renderer.ScreenToWorld(cx, cy)
		a.session.HandleClick(wx, wy)
		return
	}

	var towers interfaces.TowerController
	if g := a.session.Game(); g != nil {
		towers = g
	}
	err := ui.Apply(action, a.session, towers)
	if err != nil {
		log.Printf("ui action %d: %v", action.Kind, err)
	}
}

func (a *AppGame) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if a.session.Phase() == state.PhasePaused {
			_ = a.session.Resume()
		} else {
			_ = a.session.Pause()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		_ = a.session.BackToMenu()
	}
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	snap := a.session.Snapshot()
	a.renderer.Draw(screen, snap.Game)
	a.renderer.DrawLevelTitle(screen, snap.Game)
	a.hud.Draw(screen, snap)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	spritesDir := flag.String("sprites", "assets/sprites", "directory with <name>.png sprites")
	flag.Parse()

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("invalid settings: %v", err)
	}
	levels, err := defs.LoadLevels(settings.LevelsFile)
	if err != nil {
		log.Fatalf("failed to load levels: %v", err)
	}

	session := state.NewSession(levels, settings.Seed)
	if err := session.SetStartLevel(settings.StartLevel); err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("session seed %d", session.Seed())

	if settings.Audio {
		sounds := audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer sounds.Cleanup()
			session.Subscribe(sounds, audio.CueEvents...)
		}
	}

	app := &AppGame{
		session:        session,
		renderer:       render.NewRenderer(render.DefaultMapColors(), assets.NewSpriteCache(*spritesDir), 0, config.HUDHeight),
		hud:            ui.NewHUD(),
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tower Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
