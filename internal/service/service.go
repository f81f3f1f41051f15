package service

import (
	"context"
	"spin_wheel/internal/model"
)

type WheelService interface {
	// Spin запускает колесо. nil результат без ошибки - запрос проигнорирован
	Spin(ctx context.Context) (*model.SpinResult, error)
	Revealed(ctx context.Context) (*model.Reveal, error)
	Keep(ctx context.Context) error
	Remove(ctx context.Context) (*model.RemoveResult, error)

	EnterEdit(ctx context.Context) (*model.EditTarget, error)
	Save(ctx context.Context, statements model.Statements) (*model.SaveResult, error)
	Reset(ctx context.Context, confirmed bool) error

	Section(ctx context.Context, index int) (model.Section, error)
	Snapshot(ctx context.Context) model.Snapshot
	Progress(ctx context.Context) model.Progress
	Stats(ctx context.Context) model.WheelStats

	Close() error
}
