package generator

import (
	"errors"
	"testing"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRescale(t *testing.T) {
	table := Table{{Cost: 1}, {Cost: 1}, {Cost: 2}}

	out, err := Rescale(table, 100)

	require.NoError(t, err)
	assert.Equal(t, []int64{25, 25, 50}, []int64{out[0].Cost, out[1].Cost, out[2].Cost})
	// Входная таблица не изменяется
	assert.Equal(t, int64(1), table[0].Cost)
}

func TestRescale_TruncationDrift(t *testing.T) {
	table := Table{{Cost: 3}, {Cost: 3}, {Cost: 3}}

	out, err := Rescale(table, 100)

	require.NoError(t, err)
	assert.Equal(t, int64(99), out.TotalCost())
}

func TestRescale_Degenerate(t *testing.T) {
	_, err := Rescale(Table{{Cost: 0}, {Cost: 0}}, 100)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDegenerateCost))
}

func TestSynthesizeCosts(t *testing.T) {
	g := newTestGenerator(t, nil)
	table := g.sampleRows(g.params.NumIncidents)

	out, err := g.synthesizeCosts(table)

	require.NoError(t, err)
	require.Len(t, out, len(table))
	assert.InDelta(t, float64(g.params.TotalCostTarget), float64(out.TotalCost()), float64(len(out)))

	var high, low, highSum, lowSum float64
	for _, inc := range out {
		assert.Greater(t, inc.Cost, int64(0))
		switch inc.Criticality {
		case models.CriticalityHigh:
			high++
			highSum += float64(inc.Cost)
		case models.CriticalityLow:
			low++
			lowSum += float64(inc.Cost)
		}
	}
	// Критичные инциденты в среднем дороже
	assert.Greater(t, highSum/high, lowSum/low)
}
