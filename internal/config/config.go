package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Load Переменные из .env. Файл необязателен: без него работают файловое и sqlite хранилища.
// Уже заданные переменные окружения не перезаписываются
func Load(path string) error {
	if path == "" {
		return nil
	}

	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

type WheelConfig interface {
	Capacity() int
	SettleDelay() time.Duration
	FullTurns() int
}

type StorageConfig interface {
	Driver() string
	Key() string
	FilePath() string
	SQLitePath() string
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type LoggerConfig interface {
	Level() string
}
