package model

import "time"

// SpinState Состояние колеса
type SpinState string

const (
	// DefaultSettleDelay Время вращения до открытия результата
	DefaultSettleDelay = 4 * time.Second
	// DefaultFullTurns Полных оборотов до остановки на секторе
	DefaultFullTurns = 5
)

const (
	SpinIdle     SpinState = "idle"
	SpinSpinning SpinState = "spinning"
	SpinRevealed SpinState = "revealed"
)

// SpinResult Результат запуска колеса. Индекс известен до начала анимации
type SpinResult struct {
	SpinID      string
	Index       int
	RotationRad float64
	SettleDelay time.Duration
}

// Reveal Открытая секция после остановки колеса
type Reveal struct {
	SpinID     string
	Index      int
	Statements Statements
}

// RemoveResult Результат удаления выбранной секции
type RemoveResult struct {
	RemovedIndex   int
	Length         int
	CurrentSection *int // nil, если секций не осталось
	PoolExhausted  bool
}

// EditTarget Секция, открытая для редактирования
type EditTarget struct {
	Index   int
	Section Section
}

// SaveResult Результат сохранения секции
type SaveResult struct {
	SavedIndex     int
	CurrentSection int
	Filled         int
}

// Snapshot Снимок состояния для отрисовки
type Snapshot struct {
	Sections       []Section
	Length         int
	Filled         int
	CurrentSection *int
	SelectedIndex  *int
	SpinState      SpinState
	SpinID         string
	RotationRad    float64
}

// Progress Прогресс заполнения колеса
type Progress struct {
	Filled      int
	Total       int
	Percent     float64
	SpinEnabled bool
}

// WheelStats Статистика спинов
type WheelStats struct {
	TotalSpins int
	Kept       int
	Removed    int
	Resets     int
	Selections map[int]int
	LastSpinAt time.Time
}
