// cmd/td-term/main.go
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/Pipe0105/TD-Modelamiento/internal/audio"
	"github.com/Pipe0105/TD-Modelamiento/internal/config"
	"github.com/Pipe0105/TD-Modelamiento/internal/defs"
	"github.com/Pipe0105/TD-Modelamiento/internal/event"
	"github.com/Pipe0105/TD-Modelamiento/internal/state"
)

func main() {
	connect := flag.String("connect", "", "spectate a td-server at this websocket URL (\"env\" uses TD_SERVER_URL)")
	logFile := flag.String("log", "td-term.log", "log file; the terminal is taken by the game")
	flag.Parse()

	if f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("invalid settings: %v", err)
	}

	var sounds *audio.SoundManager
	if settings.Audio {
		sounds = audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer sounds.Cleanup()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	v := &view{screen: screen}

	if *connect != "" {
		url := *connect
		if url == "env" {
			url = settings.ServerURL
		}
		var listener event.Listener
		if sounds != nil {
			listener = sounds
		}
		watcher, err := dialSpectator(url, v, listener)
		if err != nil {
			screen.Fini()
			log.Fatalf("%v", err)
		}
		watcher.run(screen)
		return
	}

	levels, err := defs.LoadLevels(settings.LevelsFile)
	if err != nil {
		screen.Fini()
		log.Fatalf("failed to load levels: %v", err)
	}
	session := state.NewSession(levels, settings.Seed)
	if err := session.SetStartLevel(settings.StartLevel); err != nil {
		screen.Fini()
		log.Fatalf("%v", err)
	}
	if sounds != nil {
		session.Subscribe(sounds, audio.CueEvents...)
	}
	session.OnRunEnd(logRunEnd)
	log.Printf("session seed %d", session.Seed())

	game := &localGame{session: session, view: v}
	game.run(screen, settings.TickRate)
}
