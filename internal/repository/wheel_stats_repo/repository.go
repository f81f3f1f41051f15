package wheel_stats_repo

import (
	"maps"
	"spin_wheel/internal/model"
	"sync"
	"time"
)

// StateRepo Реализация репозитория для хранения статистики колеса
type StateRepo struct {
	mtx   sync.RWMutex
	state model.WheelStats
}

// NewWheelStatsRepository Конструктор для создания нового репозитория с пустой статистикой
func NewWheelStatsRepository() *StateRepo {
	return &StateRepo{
		state: model.WheelStats{
			Selections: make(map[int]int),
		},
	}
}

// Stats Получение текущей статистики.
// Возвращает копию, карту выборов тоже копируем
func (r *StateRepo) Stats() model.WheelStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	out := r.state
	out.Selections = maps.Clone(r.state.Selections)
	return out
}

// RecordSpin Учет спина и выбранного индекса
func (r *StateRepo) RecordSpin(index int, at time.Time) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	r.state.Selections[index]++
	r.state.LastSpinAt = at
}

// RecordKeep Выбранная секция оставлена
func (r *StateRepo) RecordKeep() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.state.Kept++
}

// RecordRemove Выбранная секция удалена
func (r *StateRepo) RecordRemove() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.state.Removed++
}

// RecordReset Полный сброс колеса. Счетчики выборов по индексам теряют смысл и обнуляются
func (r *StateRepo) RecordReset() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.state.Resets++
	r.state.Selections = make(map[int]int)
}
