package wheel

import (
	"context"
	"errors"
	"spin_wheel/internal/model"

	"go.uber.org/zap"
)

// EnterEdit Режим редактирования с первой секции. От состояния спина не зависит
func (s *serv) EnterEdit(ctx context.Context) (*model.EditTarget, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.current = 0
	section, err := s.registry.Get(s.current)
	if err != nil {
		return nil, err
	}

	return &model.EditTarget{
		Index:   s.current,
		Section: section,
	}, nil
}

// Save Сохранить утверждения в текущую секцию и перейти к следующей пустой
func (s *serv) Save(ctx context.Context, statements model.Statements) (*model.SaveResult, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	saved := s.current
	err := s.registry.SetStatements(ctx, saved, statements)
	if err != nil && !errors.Is(err, model.ErrPersistence) {
		return nil, err
	}
	if err != nil {
		s.logger.Error("section not persisted", zap.Int("index", saved), zap.Error(err))
	}

	s.current = s.registry.FindNextEmpty()

	s.logger.Debug("section saved", zap.Int("index", saved), zap.Int("next", s.current))

	return &model.SaveResult{
		SavedIndex:     saved,
		CurrentSection: s.current,
		Filled:         s.registry.FilledCount(),
	}, err
}

// Section Секция по индексу
func (s *serv) Section(ctx context.Context, index int) (model.Section, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.registry.Get(index)
}
