package wheel

import (
	"context"
	"errors"
	"spin_wheel/internal/model"

	"go.uber.org/zap"
)

// Remove Удалить выбранную секцию и вернуться в ожидание.
// Ошибка записи в хранилище не отменяет удаление: состояние в памяти главное
func (s *serv) Remove(ctx context.Context) (*model.RemoveResult, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.state != model.SpinRevealed {
		return nil, model.ErrInvalidState
	}

	removed := s.selected
	err := s.registry.Remove(ctx, removed)
	if err != nil && !errors.Is(err, model.ErrPersistence) {
		return nil, err
	}
	if err != nil {
		s.logger.Error("sections not persisted after remove", zap.Int("index", removed), zap.Error(err))
	}

	// Указатель редактирования сдвигаем вслед за секциями
	if s.current >= removed {
		s.current = max(0, s.current-1)
	}

	s.rotation = 0
	s.statsRepo.RecordRemove()
	s.toIdle()

	res := &model.RemoveResult{
		RemovedIndex:  removed,
		Length:        s.registry.Len(),
		PoolExhausted: s.registry.Len() == 0,
	}
	if !res.PoolExhausted {
		current := s.current
		res.CurrentSection = &current
	}

	s.logger.Info("section removed", zap.Int("index", removed), zap.Int("length", res.Length))
	if res.PoolExhausted {
		s.logger.Warn("all sections removed")
	}

	return res, err
}
