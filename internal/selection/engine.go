package selection

import (
	"math/rand/v2"
	"spin_wheel/internal/model"
)

// RNG Источник случайности. Подменяется в тестах
type RNG interface {
	// IntN возвращает случайное число в [0, n)
	IntN(n int) int
}

// stdRNG math/rand/v2 с автоматическим сидом
type stdRNG struct{}

func (stdRNG) IntN(n int) int { return rand.IntN(n) }

// DefaultRNG Источник по умолчанию
func DefaultRNG() RNG {
	return stdRNG{}
}

// Engine Равновероятный выбор среди заполненных секций
type Engine struct {
	rng RNG
}

func NewEngine(rng RNG) *Engine {
	if rng == nil {
		rng = DefaultRNG()
	}
	return &Engine{rng: rng}
}

// BuildPool Индексы заполненных секций по возрастанию
func (e *Engine) BuildPool(sections []model.Section) []int {
	pool := make([]int, 0, len(sections))
	for i, s := range sections {
		if s.Filled() {
			pool = append(pool, i)
		}
	}
	return pool
}

// Choose Случайный элемент пула. Возвращает индекс в реестре, а не позицию в пуле
func (e *Engine) Choose(pool []int) (int, error) {
	if len(pool) == 0 {
		return 0, model.ErrEmptyPool
	}
	return pool[e.rng.IntN(len(pool))], nil
}
