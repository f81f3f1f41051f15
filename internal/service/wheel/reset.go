package wheel

import (
	"context"
	"errors"
	"spin_wheel/internal/model"

	"go.uber.org/zap"
)

// Reset Полный сброс колеса. Необратим, поэтому требует подтверждения
func (s *serv) Reset(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return model.ErrConfirmationRequired
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.state == model.SpinSpinning {
		return model.ErrSpinInProgress
	}

	err := s.registry.ResetAll(ctx)
	if err != nil && !errors.Is(err, model.ErrPersistence) {
		return err
	}
	if err != nil {
		s.logger.Error("sections not persisted after reset", zap.Error(err))
	}

	s.current = 0
	s.rotation = 0
	s.statsRepo.RecordReset()
	s.toIdle()

	s.logger.Info("wheel reset", zap.Int("capacity", s.registry.Capacity()))
	return err
}
