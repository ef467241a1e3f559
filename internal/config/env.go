package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings - параметры запуска из окружения (.env подхватывается автоматически).
type Settings struct {
	Seed        int64
	LevelsFile  string
	StartLevel  int
	TickRate    int
	Port        string
	DBType      string // json | postgres | mysql
	DBFile      string
	DatabaseURL string
	MySQL       MySQLSettings
	ServerURL   string
	Audio       bool
}

type MySQLSettings struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// DSN собирает строку подключения для gorm mysql драйвера.
func (m MySQLSettings) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		m.User, m.Password, m.Host, m.Port, m.Database)
}

// LoadSettings читает .env (если есть) и переменные окружения.
func LoadSettings(files ...string) (Settings, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("no .env file found, using process environment")
	}

	s := Settings{
		LevelsFile:  os.Getenv("TD_LEVELS_FILE"),
		Port:        getEnv("PORT", "8080"),
		DBType:      getEnv("DB_TYPE", "json"),
		DBFile:      getEnv("DB_FILE", "runs.json"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		ServerURL:   getEnv("TD_SERVER_URL", "ws://localhost:8080/ws/state"),
		MySQL: MySQLSettings{
			Host:     getEnv("MYSQL_HOST", "127.0.0.1"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			User:     getEnv("MYSQL_USER", "root"),
			Password: os.Getenv("MYSQL_PASSWORD"),
			Database: getEnv("MYSQL_DATABASE", "tower_defense"),
		},
	}

	var err error
	if s.Seed, err = parseInt64("TD_SEED", 0); err != nil {
		return s, err
	}
	start, err := parseInt64("TD_START_LEVEL", 0)
	if err != nil {
		return s, err
	}
	s.StartLevel = int(start)
	tick, err := parseInt64("TD_TICK_RATE", DefaultTickRate)
	if err != nil {
		return s, err
	}
	if tick <= 0 {
		return s, fmt.Errorf("TD_TICK_RATE must be positive, got %d", tick)
	}
	s.TickRate = int(tick)
	if s.Audio, err = parseBool("TD_AUDIO", true); err != nil {
		return s, err
	}
	return s, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func parseInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func parseBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
