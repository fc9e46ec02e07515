package report

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"time"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
)

// Filter - выбор пользователя на панели.
// Пустой список означает «все значения»; диапазон дат применяется,
// только если заданы обе границы.
type Filter struct {
	From      *time.Time        `json:"from,omitempty"`
	To        *time.Time        `json:"to,omitempty"`
	Carriers  []models.Carrier  `json:"carriers,omitempty"`
	RiskTypes []models.RiskType `json:"risk_types,omitempty"`
	Modals    []models.Modal    `json:"modals,omitempty"`
	Regions   []models.Region   `json:"regions,omitempty"`
}

func contains[T comparable](set []T, v T) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Match сообщает, проходит ли инцидент фильтр
func (f Filter) Match(inc models.Incident) bool {
	if f.From != nil && f.To != nil {
		day := truncateDay(inc.Date)
		if day.Before(truncateDay(*f.From)) || day.After(truncateDay(*f.To)) {
			return false
		}
	}
	return contains(f.Carriers, inc.Carrier) &&
		contains(f.RiskTypes, inc.RiskType) &&
		contains(f.Modals, inc.Modal) &&
		contains(f.Regions, inc.Region)
}

// Apply возвращает инциденты, прошедшие фильтр, в исходном порядке
func (f Filter) Apply(incidents []models.Incident) []models.Incident {
	out := make([]models.Incident, 0, len(incidents))
	for _, inc := range incidents {
		if f.Match(inc) {
			out = append(out, inc)
		}
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CacheKey - устойчивый ключ фильтра; порядок значений в списках не важен
func (f Filter) CacheKey() string {
	norm := Filter{
		Carriers:  sortedCopy(f.Carriers),
		RiskTypes: sortedCopy(f.RiskTypes),
		Modals:    sortedCopy(f.Modals),
		Regions:   sortedCopy(f.Regions),
	}
	if f.From != nil && f.To != nil {
		from, to := truncateDay(*f.From), truncateDay(*f.To)
		norm.From, norm.To = &from, &to
	}
	raw, _ := json.Marshal(norm)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

func sortedCopy[T ~string](in []T) []T {
	if len(in) == 0 {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
