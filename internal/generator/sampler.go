package generator

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

const weightTolerance = 1e-6

// Categorical - дискретное распределение над фиксированным словарём
type Categorical[T any] struct {
	Values  []T
	Weights []float64
}

// Validate проверяет, что веса неотрицательны, их сумма равна 1
// и на каждое значение приходится ровно один вес.
func (c Categorical[T]) Validate() error {
	if len(c.Values) == 0 {
		return fmt.Errorf("%w: empty value set", ErrInvalidDistribution)
	}
	if len(c.Values) != len(c.Weights) {
		return fmt.Errorf("%w: %d values but %d weights", ErrInvalidDistribution, len(c.Values), len(c.Weights))
	}
	var sum float64
	for _, w := range c.Weights {
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: negative weight %v", ErrInvalidDistribution, w)
		}
		sum += w
	}
	if math.Abs(sum-1) > weightTolerance {
		return fmt.Errorf("%w: weights sum to %v", ErrInvalidDistribution, sum)
	}
	return nil
}

// Draw возвращает одно значение
func (c Categorical[T]) Draw(rng *rand.Rand) T {
	u := rng.Float64()
	var acc float64
	last := 0
	for i, w := range c.Weights {
		if w == 0 {
			continue
		}
		acc += w
		last = i
		if u < acc {
			return c.Values[i]
		}
	}
	// накопленная сумма может оказаться чуть меньше 1
	return c.Values[last]
}

// Sample возвращает n независимых значений
func (c Categorical[T]) Sample(rng *rand.Rand, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = c.Draw(rng)
	}
	return out
}

// drawDate - равномерная дата из [start, end] включительно, с точностью до дня
func drawDate(rng *rand.Rand, start, end time.Time) time.Time {
	days := int(end.Sub(start).Hours()/24) + 1
	return start.AddDate(0, 0, rng.Intn(days))
}

// uniform - равномерное значение из [r.Min, r.Max)
func uniform(rng *rand.Rand, r Range) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// choose выбирает k элементов pool без возвращения.
// Исходный срез не изменяется.
func choose(rng *rand.Rand, pool []int, k int) []int {
	if k <= 0 {
		return nil
	}
	if k > len(pool) {
		k = len(pool)
	}
	buf := make([]int, len(pool))
	copy(buf, pool)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(buf)-i)
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf[:k]
}
