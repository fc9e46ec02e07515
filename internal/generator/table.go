package generator

import (
	"sort"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
)

// Table - набор инцидентов, который проходит через стадии конвейера.
// Стадия получает таблицу и возвращает новую, не изменяя входную.
type Table []models.Incident

// Clone возвращает независимую копию таблицы
func (t Table) Clone() Table {
	out := make(Table, len(t))
	copy(out, t)
	return out
}

// Indices возвращает индексы строк, удовлетворяющих предикату
func (t Table) Indices(pred func(models.Incident) bool) []int {
	var idx []int
	for i, inc := range t {
		if pred(inc) {
			idx = append(idx, i)
		}
	}
	return idx
}

// CarrierIndices - индексы строк перевозчика
func (t Table) CarrierIndices(c models.Carrier) []int {
	return t.Indices(func(inc models.Incident) bool { return inc.Carrier == c })
}

// CountCarrier - количество строк перевозчика
func (t Table) CountCarrier(c models.Carrier) int {
	return len(t.CarrierIndices(c))
}

// TotalCost - сумма стоимости
func (t Table) TotalCost() int64 {
	var sum int64
	for _, inc := range t {
		sum += inc.Cost
	}
	return sum
}

// pick собирает новую таблицу из строк по индексам, сохраняя порядок
func (t Table) pick(idx []int) Table {
	sorted := make([]int, len(idx))
	copy(sorted, idx)
	sort.Ints(sorted)
	out := make(Table, 0, len(sorted))
	for _, i := range sorted {
		out = append(out, t[i])
	}
	return out
}

// pinned - строки исторических событий не переназначаются и не отбрасываются
func pinned(inc models.Incident) bool {
	return inc.Event != models.EventNone
}
