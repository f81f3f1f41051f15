package wheel

type Section struct {
	Statements []string `json:"statements"` // Ровно 3 утверждения
	Filled     bool     `json:"filled"`
}

type SnapshotResponse struct {
	Sections       []Section `json:"sections"`
	Length         int       `json:"length"`
	Filled         int       `json:"filled"`
	CurrentSection *int      `json:"current_section"` // null, если секций нет
	SelectedIndex  *int      `json:"selected_index"`  // null в состоянии idle
	SpinState      string    `json:"spin_state"`      // idle | spinning | revealed
	SpinID         string    `json:"spin_id,omitempty"`
	RotationRad    float64   `json:"rotation_rad"`
}

type ProgressResponse struct {
	Filled      int     `json:"filled"`
	Total       int     `json:"total"`
	Percent     float64 `json:"percent"`
	SpinEnabled bool    `json:"spin_enabled"`
}

type StatsResponse struct {
	TotalSpins int            `json:"total_spins"`
	Kept       int            `json:"kept"`
	Removed    int            `json:"removed"`
	Resets     int            `json:"resets"`
	Selections map[string]int `json:"selections"` // Индекс секции -> сколько раз выпала
	LastSpinAt *string        `json:"last_spin_at"`
}

type SpinResponse struct {
	Accepted      bool    `json:"accepted"` // false, если спин проигнорирован
	SpinID        string  `json:"spin_id,omitempty"`
	Index         int     `json:"index"`
	RotationRad   float64 `json:"rotation_rad"`
	SettleDelayMs int64   `json:"settle_delay_ms"`
}

type RevealResponse struct {
	SpinID     string   `json:"spin_id"`
	Index      int      `json:"index"`
	Statements []string `json:"statements"`
}

type RemoveResponse struct {
	RemovedIndex   int    `json:"removed_index"`
	Length         int    `json:"length"`
	CurrentSection *int   `json:"current_section"` // null, если секций не осталось
	PoolExhausted  bool   `json:"pool_exhausted"`
	Warning        string `json:"warning,omitempty"`
}

type EditResponse struct {
	Index   int     `json:"index"`
	Section Section `json:"section"`
}

type SaveRequest struct {
	Statements []string `json:"statements"`
}

type SaveResponse struct {
	SavedIndex     int    `json:"saved_index"`
	CurrentSection int    `json:"current_section"`
	Filled         int    `json:"filled"`
	Warning        string `json:"warning,omitempty"`
}

type ResetRequest struct {
	Confirm bool `json:"confirm"`
}

type ResetResponse struct {
	Reset   bool   `json:"reset"`
	Warning string `json:"warning,omitempty"`
}
