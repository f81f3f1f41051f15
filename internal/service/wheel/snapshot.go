package wheel

import (
	"context"
	"spin_wheel/internal/model"
)

// Snapshot Снимок состояния для отрисовки. Отрисовка только читает, ничего не меняет
func (s *serv) Snapshot(ctx context.Context) model.Snapshot {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	snap := model.Snapshot{
		Sections:    s.registry.Sections(),
		Length:      s.registry.Len(),
		Filled:      s.registry.FilledCount(),
		SpinState:   s.state,
		SpinID:      s.spinID,
		RotationRad: s.rotation,
	}

	if snap.Length > 0 {
		current := s.current
		snap.CurrentSection = &current
	}
	if s.state != model.SpinIdle {
		selected := s.selected
		snap.SelectedIndex = &selected
	}
	return snap
}

// Progress Сколько секций заполнено и можно ли крутить
func (s *serv) Progress(ctx context.Context) model.Progress {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	filled := s.registry.FilledCount()
	total := s.registry.Len()

	var percent float64
	if total > 0 {
		percent = float64(filled) / float64(total) * 100
	}

	return model.Progress{
		Filled:      filled,
		Total:       total,
		Percent:     percent,
		SpinEnabled: filled > 0 && s.state == model.SpinIdle,
	}
}

// Stats Статистика спинов
func (s *serv) Stats(ctx context.Context) model.WheelStats {
	return s.statsRepo.Stats()
}
