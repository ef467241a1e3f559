// cmd/td-server/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Pipe0105/TD-Modelamiento/internal/config"
	"github.com/Pipe0105/TD-Modelamiento/internal/defs"
	"github.com/Pipe0105/TD-Modelamiento/internal/persistence"
	"github.com/Pipe0105/TD-Modelamiento/internal/server"
	"github.com/Pipe0105/TD-Modelamiento/internal/state"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("invalid settings: %v", err)
	}
	levels, err := defs.LoadLevels(settings.LevelsFile)
	if err != nil {
		log.Fatalf("failed to load levels: %v", err)
	}

	store, err := persistence.Open(settings)
	if err != nil {
		log.Fatalf("failed to open run store: %v", err)
	}
	defer store.Close()

	session := state.NewSession(levels, settings.Seed)
	if err := session.SetStartLevel(settings.StartLevel); err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("session seed %d, %d levels, tick rate %d", session.Seed(), len(levels), settings.TickRate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := server.NewHub()
	runner := server.NewRunner(session, settings.TickRate, hub, store)
	go hub.Start(ctx)
	go runner.Run(ctx)

	srv := server.New(runner, hub, store, levels)
	go func() {
		<-ctx.Done()
		log.Println("shutting down")
		if err := srv.Shutdown(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := srv.Listen(":" + settings.Port); err != nil {
		log.Printf("server stopped: %v", err)
	}
}
