package wheel

import (
	"spin_wheel/internal/model"
	"spin_wheel/internal/registry"
	"spin_wheel/internal/repository"
	"spin_wheel/internal/repository/wheel_stats_repo"
	"spin_wheel/internal/selection"
	"spin_wheel/internal/service"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Deps Зависимости сервиса колеса
type Deps struct {
	Registry  *registry.Registry
	Engine    *selection.Engine
	StatsRepo repository.WheelStatsRepository
	Scheduler Scheduler
	Logger    *zap.Logger

	SettleDelay time.Duration
	FullTurns   int
	Now         func() time.Time
}

type serv struct {
	// Все операции и открытие результата по таймеру идут под одним мьютексом
	mtx sync.Mutex

	registry    *registry.Registry
	engine      *selection.Engine
	statsRepo   repository.WheelStatsRepository
	scheduler   Scheduler
	logger      *zap.Logger
	settleDelay time.Duration
	fullTurns   int
	now         func() time.Time

	state    model.SpinState
	selected int
	spinID   string
	rotation float64
	pending  Timer

	// Указатель редактируемой секции
	current int
}

// NewWheelService Создать колесо поверх реестра секций
func NewWheelService(deps Deps) service.WheelService {
	s := &serv{
		registry:    deps.Registry,
		engine:      deps.Engine,
		statsRepo:   deps.StatsRepo,
		scheduler:   deps.Scheduler,
		logger:      deps.Logger,
		settleDelay: deps.SettleDelay,
		fullTurns:   deps.FullTurns,
		now:         deps.Now,
		state:       model.SpinIdle,
	}

	if s.engine == nil {
		s.engine = selection.NewEngine(nil)
	}
	if s.statsRepo == nil {
		s.statsRepo = wheel_stats_repo.NewWheelStatsRepository()
	}
	if s.scheduler == nil {
		s.scheduler = DefaultScheduler()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.settleDelay == 0 {
		s.settleDelay = model.DefaultSettleDelay
	}
	if s.fullTurns == 0 {
		s.fullTurns = model.DefaultFullTurns
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Close Останавливает ожидающий таймер. Вызывается при остановке приложения
func (s *serv) Close() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	return nil
}

// toIdle Возврат в ожидание, выбор сбрасывается
func (s *serv) toIdle() {
	s.state = model.SpinIdle
	s.selected = 0
	s.spinID = ""
	s.pending = nil
}
