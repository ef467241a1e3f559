package persistence

import (
	"context"
	"fmt"
	"log"

	"github.com/Pipe0105/TD-Modelamiento/internal/config"
	"github.com/Pipe0105/TD-Modelamiento/internal/state"
)

// Storage defines the interface for run-record persistence
type Storage interface {
	SaveRun(ctx context.Context, rec state.RunRecord) error
	// RecentRuns returns up to limit records, newest first.
	RecentRuns(ctx context.Context, limit int) ([]state.RunRecord, error)
	Close() error
}

// Open picks a backend by settings.DBType.
func Open(settings config.Settings) (Storage, error) {
	switch settings.DBType {
	case "", "json":
		log.Printf("using JSON run store at %s", settings.DBFile)
		return NewJSONStore(settings.DBFile)
	case "postgres":
		if settings.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for DB_TYPE=postgres")
		}
		return NewPostgresStore(settings.DatabaseURL)
	case "mysql":
		return NewMySQLStore(settings.MySQL.DSN())
	}
	return nil, fmt.Errorf("unknown DB_TYPE %q", settings.DBType)
}
