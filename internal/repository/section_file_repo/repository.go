package section_file_repo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"spin_wheel/internal/model"
	"spin_wheel/internal/repository"
	repoModel "spin_wheel/internal/repository/model"
)

type repo struct {
	path     string
	capacity int
}

// NewSectionFileRepository Хранилище секций в JSON файле
func NewSectionFileRepository(path string, capacity int) repository.SectionRepository {
	return &repo{
		path:     path,
		capacity: capacity,
	}
}

// Load - чтение секций из файла.
// Если файла нет, возвращает capacity пустых секций
func (r *repo) Load(ctx context.Context) ([]model.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewSections(r.capacity), nil
		}
		return nil, fmt.Errorf("%w: read %s: %w", model.ErrPersistence, r.path, err)
	}

	return repoModel.Decode(data, r.capacity)
}

// Save - перезапись файла целиком.
// Пишем во временный файл и переименовываем, чтобы не оставить обрезанный JSON
func (r *repo) Save(ctx context.Context, sections []model.Section) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := repoModel.Encode(sections)
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %w", model.ErrPersistence, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", model.ErrPersistence, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %w", model.ErrPersistence, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %w", model.ErrPersistence, tmpName, err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace %s: %w", model.ErrPersistence, r.path, err)
	}
	return nil
}
