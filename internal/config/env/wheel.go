package env

import (
	"errors"
	"fmt"
	"os"
	"spin_wheel/internal/config"
	"spin_wheel/internal/model"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	StorageDriverFile     = "file"
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"

	defaultStorageKey = "spinWheelSections"
	defaultFilePath   = "./data/wheel.json"
	defaultSQLitePath = "./data/wheel.db"
)

// yamlFile Структура config.yaml
type yamlFile struct {
	Wheel struct {
		Capacity    int    `yaml:"capacity"`
		SettleDelay string `yaml:"settle_delay"`
		FullTurns   int    `yaml:"full_turns"`
	} `yaml:"wheel"`
	Storage struct {
		Driver     string `yaml:"driver"`
		Key        string `yaml:"key"`
		FilePath   string `yaml:"file_path"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"storage"`
}

type wheelConfig struct {
	capacity    int
	settleDelay time.Duration
	fullTurns   int
}

type storageConfig struct {
	driver     string
	key        string
	filePath   string
	sqlitePath string
}

// readYAML Читает config.yaml. Отсутствующий файл означает настройки по умолчанию
func readYAML(path string) (*yamlFile, error) {
	var f yamlFile

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &f, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &f, nil
}

// NewWheelConfigFromYAML Настройки колеса из секции wheel
func NewWheelConfigFromYAML(path string) (config.WheelConfig, error) {
	f, err := readYAML(path)
	if err != nil {
		return nil, err
	}

	cfg := &wheelConfig{
		capacity:    model.DefaultCapacity,
		settleDelay: model.DefaultSettleDelay,
		fullTurns:   model.DefaultFullTurns,
	}

	if f.Wheel.Capacity < 0 {
		return nil, fmt.Errorf("wheel.capacity must be positive, got %d", f.Wheel.Capacity)
	}
	if f.Wheel.Capacity > 0 {
		cfg.capacity = f.Wheel.Capacity
	}

	if f.Wheel.SettleDelay != "" {
		d, err := time.ParseDuration(f.Wheel.SettleDelay)
		if err != nil {
			return nil, fmt.Errorf("invalid wheel.settle_delay: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("wheel.settle_delay must be positive")
		}
		cfg.settleDelay = d
	}

	if f.Wheel.FullTurns < 0 {
		return nil, fmt.Errorf("wheel.full_turns must not be negative")
	}
	if f.Wheel.FullTurns > 0 {
		cfg.fullTurns = f.Wheel.FullTurns
	}

	return cfg, nil
}

// NewStorageConfigFromYAML Настройки хранилища из секции storage
func NewStorageConfigFromYAML(path string) (config.StorageConfig, error) {
	f, err := readYAML(path)
	if err != nil {
		return nil, err
	}

	cfg := &storageConfig{
		driver:     StorageDriverFile,
		key:        defaultStorageKey,
		filePath:   defaultFilePath,
		sqlitePath: defaultSQLitePath,
	}

	switch f.Storage.Driver {
	case "":
	case StorageDriverFile, StorageDriverSQLite, StorageDriverPostgres:
		cfg.driver = f.Storage.Driver
	default:
		return nil, fmt.Errorf("unknown storage.driver %q", f.Storage.Driver)
	}

	if f.Storage.Key != "" {
		cfg.key = f.Storage.Key
	}
	if f.Storage.FilePath != "" {
		cfg.filePath = f.Storage.FilePath
	}
	if f.Storage.SQLitePath != "" {
		cfg.sqlitePath = f.Storage.SQLitePath
	}

	return cfg, nil
}

func (c *wheelConfig) Capacity() int {
	return c.capacity
}

func (c *wheelConfig) SettleDelay() time.Duration {
	return c.settleDelay
}

func (c *wheelConfig) FullTurns() int {
	return c.fullTurns
}

func (c *storageConfig) Driver() string {
	return c.driver
}

func (c *storageConfig) Key() string {
	return c.key
}

func (c *storageConfig) FilePath() string {
	return c.filePath
}

func (c *storageConfig) SQLitePath() string {
	return c.sqlitePath
}
