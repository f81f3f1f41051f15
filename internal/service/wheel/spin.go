package wheel

import (
	"context"
	"math"
	"spin_wheel/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Spin выполняет спин.
// Разрешен только из ожидания и при наличии заполненных секций, иначе запрос молча игнорируется
func (s *serv) Spin(ctx context.Context) (*model.SpinResult, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.state != model.SpinIdle {
		s.logger.Debug("spin ignored", zap.String("state", string(s.state)))
		return nil, nil
	}

	// Пул пересобираем на каждый спин
	pool := s.engine.BuildPool(s.registry.Sections())
	if len(pool) == 0 {
		s.logger.Debug("spin ignored: no filled sections")
		return nil, nil
	}

	index, err := s.engine.Choose(pool)
	if err != nil {
		return nil, err
	}

	spinID := uuid.NewString()
	s.state = model.SpinSpinning
	s.selected = index
	s.spinID = spinID
	s.rotation = targetRotation(index, s.registry.Len(), s.fullTurns)
	s.statsRepo.RecordSpin(index, s.now())

	// Результат откроется по таймеру, привязанному к этому спину
	s.pending = s.scheduler.AfterFunc(s.settleDelay, func() {
		s.reveal(spinID)
	})

	s.logger.Info("spin started",
		zap.String("spin_id", spinID),
		zap.Int("index", index),
		zap.Int("pool", len(pool)),
		zap.Duration("settle_delay", s.settleDelay),
	)

	return &model.SpinResult{
		SpinID:      spinID,
		Index:       index,
		RotationRad: s.rotation,
		SettleDelay: s.settleDelay,
	}, nil
}

// reveal Остановка колеса. Таймер от чужого спина игнорируется
func (s *serv) reveal(spinID string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.state != model.SpinSpinning || s.spinID != spinID {
		s.logger.Debug("stale reveal ignored", zap.String("spin_id", spinID))
		return
	}

	s.state = model.SpinRevealed
	s.pending = nil
	s.logger.Info("section revealed", zap.String("spin_id", spinID), zap.Int("index", s.selected))
}

// Revealed Выбранная секция с утверждениями. Только после остановки колеса
func (s *serv) Revealed(ctx context.Context) (*model.Reveal, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.state != model.SpinRevealed {
		return nil, model.ErrInvalidState
	}

	section, err := s.registry.Get(s.selected)
	if err != nil {
		return nil, err
	}

	return &model.Reveal{
		SpinID:     s.spinID,
		Index:      s.selected,
		Statements: section.Statements,
	}, nil
}

// Keep Оставить выбранную секцию без изменений
func (s *serv) Keep(ctx context.Context) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.state != model.SpinRevealed {
		return model.ErrInvalidState
	}

	s.logger.Info("section kept", zap.Int("index", s.selected))
	s.statsRepo.RecordKeep()
	s.toIdle()
	return nil
}

// targetRotation Угол поворота: полные обороты плюс середина выбранного сектора
func targetRotation(index, length, fullTurns int) float64 {
	if length == 0 {
		return 0
	}
	slice := 2 * math.Pi / float64(length)
	return 2*math.Pi*float64(fullTurns) + float64(index)*slice + slice/2
}
