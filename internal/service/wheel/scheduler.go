package wheel

import "time"

// Timer Отложенный вызов, который можно остановить
type Timer interface {
	Stop() bool
}

// Scheduler Планировщик отложенных вызовов.
// f не должна вызываться синхронно внутри AfterFunc
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type timeScheduler struct{}

func (timeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// DefaultScheduler Планировщик на time.AfterFunc
func DefaultScheduler() Scheduler {
	return timeScheduler{}
}
