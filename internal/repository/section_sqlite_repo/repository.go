package section_sqlite_repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"spin_wheel/internal/model"
	"spin_wheel/internal/repository"
	repoModel "spin_wheel/internal/repository/model"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

const (
	table      = "wheel_storage"
	colKey     = "slot_key"
	colPayload = "payload"
	colUpdated = "updated_at"
)

const schema = `CREATE TABLE IF NOT EXISTS ` + table + ` (
	` + colKey + ` TEXT PRIMARY KEY,
	` + colPayload + ` TEXT NOT NULL,
	` + colUpdated + ` TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

type repo struct {
	db       *sql.DB
	key      string
	capacity int
}

// Open Открыть файл SQLite и создать таблицу слотов
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Один писатель, одна схема
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy_timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return db, nil
}

// NewSectionSQLiteRepository Слот секций в таблице SQLite. Значение - тот же JSON массив, что и в файле
func NewSectionSQLiteRepository(db *sql.DB, key string, capacity int) repository.SectionRepository {
	return &repo{
		db:       db,
		key:      key,
		capacity: capacity,
	}
}

// Load - получение секций по ключу слота.
// Возвращает capacity пустых секций, если записи нет
func (r *repo) Load(ctx context.Context) ([]model.Section, error) {
	query := sq.Select(colPayload).
		From(table).
		Where(sq.Eq{colKey: r.key})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var payload string
	err = r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.NewSections(r.capacity), nil
		}
		return nil, fmt.Errorf("%w: select slot %q: %w", model.ErrPersistence, r.key, err)
	}

	return repoModel.Decode([]byte(payload), r.capacity)
}

// Save - запись секций в слот (вставка или обновление)
func (r *repo) Save(ctx context.Context, sections []model.Section) error {
	data, err := repoModel.Encode(sections)
	if err != nil {
		return err
	}

	query := sq.Insert(table).
		Columns(colKey, colPayload).
		Values(r.key, string(data)).
		Suffix("ON CONFLICT (" + colKey + ") DO UPDATE SET " +
			colPayload + " = excluded." + colPayload + ", " +
			colUpdated + " = CURRENT_TIMESTAMP")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("%w: upsert slot %q: %w", model.ErrPersistence, r.key, err)
	}
	return nil
}
