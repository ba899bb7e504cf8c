package ranking

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibejam-co/jam-sub001/internal/models"
)

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func row(id string, revenue float64, ageHours int) models.AppRow {
	return models.AppRow{
		ID:             id,
		Name:           id,
		MonthlyRevenue: revenue,
		CreatedAt:      base.Add(-time.Duration(ageHours) * time.Hour),
	}
}

func ids(apps []models.App) []string {
	out := make([]string, 0, len(apps))
	for _, a := range apps {
		out = append(out, a.ID)
	}
	return out
}

func TestAssembleEmpty(t *testing.T) {
	apps := Assemble(nil, nil)
	require.NotNil(t, apps)
	assert.Empty(t, apps)
}

func TestAssembleSortsByRevenueThenRecency(t *testing.T) {
	rows := []models.AppRow{
		row("low", 100, 1),
		row("tie-old", 500, 48),
		row("high", 900, 5),
		row("tie-new", 500, 2),
	}

	apps := Assemble(rows, nil)

	assert.Equal(t, []string{"high", "tie-new", "tie-old", "low"}, ids(apps))
	assert.Equal(t, "01", apps[0].Rank)
	assert.Equal(t, "04", apps[3].Rank)
}

func TestAssembleKeepsStoredRank(t *testing.T) {
	pinned := "99"
	rows := []models.AppRow{row("a", 10, 0), row("b", 20, 0)}
	rows[0].Rank = &pinned

	apps := Assemble(rows, nil)

	assert.Equal(t, "b", apps[0].ID)
	assert.Equal(t, "01", apps[0].Rank)
	assert.Equal(t, "99", apps[1].Rank)
}

func TestAssembleDeduplicatesByID(t *testing.T) {
	rows := []models.AppRow{row("a", 10, 0), row("b", 5, 0), row("a", 10, 0)}

	apps := Assemble(rows, nil)

	assert.Equal(t, []string{"a", "b"}, ids(apps))
}

func TestAssembleAttachesHistory(t *testing.T) {
	rows := []models.AppRow{row("a", 10, 0), row("b", 20, 0)}
	revenue := []models.RevenuePointRow{
		{AppID: "a", Date: "Feb", Revenue: 2, SortOrder: 1},
		{AppID: "a", Date: "Jan", Revenue: 1, SortOrder: 0},
	}

	apps := Assemble(rows, revenue)

	require.Equal(t, "a", apps[1].ID)
	assert.Equal(t, []models.RevenuePoint{{Date: "Jan", Revenue: 1}, {Date: "Feb", Revenue: 2}}, apps[1].RevenueHistory)
	assert.Equal(t, []models.RevenuePoint{{Date: "Month 1", Revenue: 0}}, apps[0].RevenueHistory)
}

func TestFormatRank(t *testing.T) {
	assert.Equal(t, "01", FormatRank(0))
	assert.Equal(t, "10", FormatRank(9))
	assert.Equal(t, "99", FormatRank(98))
	assert.Equal(t, "100", FormatRank(99))
}

func TestAssembleOrderingProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rows := make([]models.AppRow, 0, 150)
	for i := 0; i < 150; i++ {
		rows = append(rows, row(fmt.Sprintf("app-%03d", i), float64(rng.Intn(10)*100), rng.Intn(1000)))
	}

	apps := Assemble(rows, nil)
	require.Len(t, apps, 150)

	for i := 1; i < len(apps); i++ {
		prev, cur := apps[i-1], apps[i]
		require.GreaterOrEqual(t, prev.MonthlyRevenue, cur.MonthlyRevenue)
		if prev.MonthlyRevenue == cur.MonthlyRevenue {
			require.False(t, cur.CreatedAt.After(prev.CreatedAt), "later app %s must precede %s", cur.ID, prev.ID)
		}
	}
	for i, a := range apps {
		assert.Equal(t, fmt.Sprintf("%02d", i+1), a.Rank)
	}
}
