package persistence

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Pipe0105/TD-Modelamiento/internal/state"
)

// runRow - строка таблицы runs для gorm.
type runRow struct {
	ID         string `gorm:"primaryKey;size:36"`
	Level      string `gorm:"size:128"`
	LevelIndex int
	Wave       int
	Outcome    string `gorm:"size:32"`
	Money      int
	Lives      int
	Kills      int
	Escapes    int
	Duration   float64
	Seed       int64
	EndedAt    time.Time `gorm:"index"`
}

func (runRow) TableName() string { return "runs" }

func toRow(r state.RunRecord) runRow {
	return runRow{
		ID: r.ID, Level: r.Level, LevelIndex: r.LevelIndex, Wave: r.Wave, Outcome: r.Outcome,
		Money: r.Money, Lives: r.Lives, Kills: r.Kills, Escapes: r.Escapes,
		Duration: r.Duration, Seed: r.Seed, EndedAt: r.EndedAt,
	}
}

func (r runRow) record() state.RunRecord {
	return state.RunRecord{
		ID: r.ID, Level: r.Level, LevelIndex: r.LevelIndex, Wave: r.Wave, Outcome: r.Outcome,
		Money: r.Money, Lives: r.Lives, Kills: r.Kills, Escapes: r.Escapes,
		Duration: r.Duration, Seed: r.Seed, EndedAt: r.EndedAt,
	}
}

// MySQLStore handles run persistence using MySQL through gorm
type MySQLStore struct {
	db *gorm.DB
}

// NewMySQLStore connects and migrates the runs table.
func NewMySQLStore(dsn string) (*MySQLStore, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}
	if err := db.AutoMigrate(&runRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate runs table: %w", err)
	}
	log.Println("connected to MySQL run store")
	return &MySQLStore{db: db}, nil
}

func (ms *MySQLStore) SaveRun(ctx context.Context, rec state.RunRecord) error {
	row := toRow(rec)
	if err := ms.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to save run %s: %w", rec.ID, err)
	}
	return nil
}

func (ms *MySQLStore) RecentRuns(ctx context.Context, limit int) ([]state.RunRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []runRow
	if err := ms.db.WithContext(ctx).Order("ended_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	runs := make([]state.RunRecord, len(rows))
	for i, r := range rows {
		runs[i] = r.record()
	}
	return runs, nil
}

func (ms *MySQLStore) Close() error {
	sqlDB, err := ms.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
