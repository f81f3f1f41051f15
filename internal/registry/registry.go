package registry

import (
	"context"
	"errors"
	"fmt"
	"spin_wheel/internal/model"
	"spin_wheel/internal/repository"
	"strings"
)

// Registry Упорядоченный набор секций колеса. Позиция секции и есть ее идентификатор.
// Не потокобезопасен: владелец (сервис колеса) сам сериализует вызовы
type Registry struct {
	store    repository.SectionRepository
	capacity int
	sections []model.Section
}

// New Реестр из capacity пустых секций. Сохраненное состояние подтягивается через Load
func New(store repository.SectionRepository, capacity int) *Registry {
	return &Registry{
		store:    store,
		capacity: capacity,
		sections: model.NewSections(capacity),
	}
}

// Load Чтение секций из хранилища.
// При ошибке реестр остается с пустыми секциями по умолчанию, ошибка возвращается вызывающему
func (r *Registry) Load(ctx context.Context) error {
	sections, err := r.store.Load(ctx)
	if err != nil {
		r.sections = model.NewSections(r.capacity)
		return err
	}
	r.sections = sections
	return nil
}

// Capacity Исходная емкость колеса
func (r *Registry) Capacity() int {
	return r.capacity
}

// Len Текущее количество секций
func (r *Registry) Len() int {
	return len(r.sections)
}

// Get Секция по индексу
func (r *Registry) Get(index int) (model.Section, error) {
	if err := r.checkIndex(index); err != nil {
		return model.Section{}, err
	}
	return r.sections[index], nil
}

// Sections Копия всех секций
func (r *Registry) Sections() []model.Section {
	return model.CloneSections(r.sections)
}

// FilledCount Количество заполненных секций
func (r *Registry) FilledCount() int {
	return model.CountFilled(r.sections)
}

// SetStatements Сохранить три утверждения секции.
// Каждое обрезается по краям; пустое после обрезки - ErrValidation без изменений
func (r *Registry) SetStatements(ctx context.Context, index int, statements model.Statements) error {
	if err := r.checkIndex(index); err != nil {
		return err
	}

	var trimmed model.Statements
	for i, s := range statements {
		trimmed[i] = strings.TrimSpace(s)
		if trimmed[i] == "" {
			return fmt.Errorf("%w: statement %d is empty", model.ErrValidation, i+1)
		}
	}

	r.sections[index].Statements = trimmed
	return r.persist(ctx)
}

// FindNextEmpty Первая пустая секция по порядку.
// Если пустых нет (или секций нет вовсе) - 0
func (r *Registry) FindNextEmpty() int {
	for i, s := range r.sections {
		if !s.Filled() {
			return i
		}
	}
	return 0
}

// Remove Удалить секцию, последующие сдвигаются на одну позицию влево
func (r *Registry) Remove(ctx context.Context, index int) error {
	if err := r.checkIndex(index); err != nil {
		return err
	}

	r.sections = append(r.sections[:index], r.sections[index+1:]...)
	return r.persist(ctx)
}

// ResetAll Вернуть capacity пустых секций
func (r *Registry) ResetAll(ctx context.Context) error {
	r.sections = model.NewSections(r.capacity)
	return r.persist(ctx)
}

// persist Синхронная запись в хранилище.
// Состояние в памяти остается главным даже если запись не удалась
func (r *Registry) persist(ctx context.Context) error {
	err := r.store.Save(ctx, model.CloneSections(r.sections))
	if err == nil || errors.Is(err, model.ErrPersistence) {
		return err
	}
	return fmt.Errorf("%w: %w", model.ErrPersistence, err)
}

func (r *Registry) checkIndex(index int) error {
	if index < 0 || index >= len(r.sections) {
		return fmt.Errorf("%w: %d not in [0, %d)", model.ErrOutOfRange, index, len(r.sections))
	}
	return nil
}
