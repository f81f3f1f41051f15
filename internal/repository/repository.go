package repository

import (
	"context"
	"spin_wheel/internal/model"
	"time"
)

// SectionRepository Долговременное хранилище последовательности секций
type SectionRepository interface {
	// Load возвращает сохраненную последовательность или capacity пустых секций, если слота нет
	Load(ctx context.Context) ([]model.Section, error)
	// Save перезаписывает слот целиком
	Save(ctx context.Context, sections []model.Section) error
}

// WheelStatsRepository Статистика спинов в памяти процесса
type WheelStatsRepository interface {
	Stats() model.WheelStats
	RecordSpin(index int, at time.Time)
	RecordKeep()
	RecordRemove()
	RecordReset()
}
