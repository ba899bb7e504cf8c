// Package ranking orders directory entries and assigns display ranks.
package ranking

import (
	"fmt"
	"sort"

	"github.com/vibejam-co/jam-sub001/internal/models"
	"github.com/vibejam-co/jam-sub001/internal/transform"
)

// FormatRank pads a 0-based position to two digits. Positions past 98 are
// not widened further, so the 100th entry renders as "100".
func FormatRank(position int) string {
	return fmt.Sprintf("%02d", position+1)
}

// Assemble de-duplicates rows by id (first occurrence wins), sorts them by
// monthly revenue descending then creation time descending, attaches
// revenue history and fills in ranks that were not stored. No rows yields
// an empty, non-nil slice.
func Assemble(rows []models.AppRow, revenueRows []models.RevenuePointRow) []models.App {
	ordered := dedupe(rows)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.MonthlyRevenue != b.MonthlyRevenue {
			return a.MonthlyRevenue > b.MonthlyRevenue
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	apps := transform.AppsFromRows(ordered, revenueRows)
	for i := range apps {
		if apps[i].Rank == "" {
			apps[i].Rank = FormatRank(i)
		}
	}
	return apps
}

func dedupe(rows []models.AppRow) []models.AppRow {
	seen := make(map[string]struct{}, len(rows))
	out := make([]models.AppRow, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.ID]; ok {
			continue
		}
		seen[row.ID] = struct{}{}
		out = append(out, row)
	}
	return out
}
