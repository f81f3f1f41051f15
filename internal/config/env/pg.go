package env

import (
	"fmt"
	"os"
	"spin_wheel/internal/config"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	dsnName = "PG_DSN"
)

type pgConfig struct {
	dsn string
}

// NewPGConfig DSN базы для драйвера postgres.
// Разбирается сразу, чтобы ошибка в строке подключения была видна до открытия пула
func NewPGConfig() (config.PGConfig, error) {
	dsn := strings.TrimSpace(os.Getenv(dsnName))
	if len(dsn) == 0 {
		return nil, fmt.Errorf("%s is required for the postgres storage driver", dsnName)
	}

	if _, err := pgxpool.ParseConfig(dsn); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", dsnName, err)
	}

	return &pgConfig{
		dsn: dsn,
	}, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}
