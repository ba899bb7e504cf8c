// Package transform maps between the flat rows stored in the database and
// the nested models returned to callers. Every function here is pure.
package transform

import (
	"sort"

	"gorm.io/datatypes"

	"github.com/vibejam-co/jam-sub001/internal/models"
)

// DefaultRevenuePoint stands in for an app that has no revenue history.
var DefaultRevenuePoint = models.RevenuePoint{Date: "Month 1", Revenue: 0}

// GroupRevenue buckets revenue rows by app id, each bucket ordered by
// SortOrder ascending. Input order and date labels never affect the result.
func GroupRevenue(rows []models.RevenuePointRow) map[string][]models.RevenuePoint {
	buckets := make(map[string][]models.RevenuePointRow)
	for _, r := range rows {
		buckets[r.AppID] = append(buckets[r.AppID], r)
	}

	grouped := make(map[string][]models.RevenuePoint, len(buckets))
	for appID, bucket := range buckets {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].SortOrder < bucket[j].SortOrder
		})
		points := make([]models.RevenuePoint, 0, len(bucket))
		for _, r := range bucket {
			points = append(points, models.RevenuePoint{Date: r.Date, Revenue: r.Revenue})
		}
		grouped[appID] = points
	}
	return grouped
}

// AppsFromRows builds the nested apps in the order the rows were given.
func AppsFromRows(rows []models.AppRow, revenueRows []models.RevenuePointRow) []models.App {
	history := GroupRevenue(revenueRows)

	apps := make([]models.App, 0, len(rows))
	for _, row := range rows {
		apps = append(apps, AppFromRow(row, history[row.ID]))
	}
	return apps
}

// AppFromRow projects one row. An empty history becomes the single default point.
func AppFromRow(row models.AppRow, history []models.RevenuePoint) models.App {
	if len(history) == 0 {
		history = []models.RevenuePoint{DefaultRevenuePoint}
	}

	app := models.App{
		ID:              row.ID,
		Name:            row.Name,
		Pitch:           row.Pitch,
		Icon:            row.Icon,
		AccentColor:     row.AccentColor,
		Category:        row.Category,
		Tags:            stringsOrEmpty(row.Tags),
		TechStack:       stringsOrEmpty(row.TechStack),
		Pricing:         row.Pricing,
		Problem:         row.Problem,
		Solution:        row.Solution,
		MonthlyRevenue:  row.MonthlyRevenue,
		LifetimeRevenue: row.LifetimeRevenue,
		ActiveUsers:     row.ActiveUsers,
		BuildStreak:     row.BuildStreak,
		Growth:          row.Growth,
		Verified:        row.Verified,
		IsForSale:       row.IsForSale,
		AskingPrice:     row.AskingPrice,
		ProfitMargin:    row.ProfitMargin,
		IsAnonymous:     row.IsAnonymous,
		Founder: models.Founder{
			Name:   row.FounderName,
			Handle: row.FounderHandle,
			Avatar: row.FounderAvatar,
			Email:  nonEmpty(row.FounderEmail),
		},
		RevenueHistory: history,
		CreatedAt:      row.CreatedAt,
	}

	if row.Rank != nil {
		app.Rank = *row.Rank
	}
	if tier := nonEmpty(row.BoostTier); tier != nil {
		bt := models.BoostTier(*tier)
		app.BoostTier = &bt
	}

	return app
}

// AppRowFromInput flattens a candidate for insertion. The id is left empty
// so the row hook can generate it.
func AppRowFromInput(in models.AppInput) models.AppRow {
	row := models.AppRow{
		Name:            in.Name,
		Pitch:           in.Pitch,
		Icon:            in.Icon,
		AccentColor:     in.AccentColor,
		Category:        in.Category,
		Tags:            datatypes.JSONSlice[string](stringsOrEmpty(in.Tags)),
		TechStack:       datatypes.JSONSlice[string](stringsOrEmpty(in.TechStack)),
		Pricing:         in.Pricing,
		Problem:         in.Problem,
		Solution:        in.Solution,
		MonthlyRevenue:  in.MonthlyRevenue,
		LifetimeRevenue: in.LifetimeRevenue,
		ActiveUsers:     in.ActiveUsers,
		BuildStreak:     in.BuildStreak,
		Growth:          in.Growth,
		Verified:        in.Verified,
		IsForSale:       in.IsForSale,
		AskingPrice:     in.AskingPrice,
		ProfitMargin:    in.ProfitMargin,
		IsAnonymous:     in.IsAnonymous,
		FounderName:     in.Founder.Name,
		FounderHandle:   in.Founder.Handle,
		FounderAvatar:   in.Founder.Avatar,
		FounderEmail:    nonEmpty(in.Founder.Email),
	}

	if in.Rank != "" {
		rank := in.Rank
		row.Rank = &rank
	}
	if in.BoostTier != nil && *in.BoostTier != "" {
		tier := string(*in.BoostTier)
		row.BoostTier = &tier
	}

	return row
}

// RevenueRowsFromHistory assigns SortOrder by position. An empty history
// yields the single default point.
func RevenueRowsFromHistory(appID string, history []models.RevenuePoint) []models.RevenuePointRow {
	if len(history) == 0 {
		history = []models.RevenuePoint{DefaultRevenuePoint}
	}

	rows := make([]models.RevenuePointRow, 0, len(history))
	for i, p := range history {
		rows = append(rows, models.RevenuePointRow{
			AppID:     appID,
			Date:      p.Date,
			Revenue:   p.Revenue,
			SortOrder: i,
		})
	}
	return rows
}

func NotificationFromRow(row models.NotificationRow) models.Notification {
	return models.Notification{
		ID:        row.ID,
		Title:     row.Title,
		Message:   row.Message,
		Type:      models.NotificationType(row.Type),
		Timestamp: row.Timestamp,
		IsRead:    row.IsRead,
		AppID:     nonEmpty(row.AppID),
	}
}

func NotificationsFromRows(rows []models.NotificationRow) []models.Notification {
	out := make([]models.Notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, NotificationFromRow(row))
	}
	return out
}

func NotificationRowFrom(n models.Notification) models.NotificationRow {
	return models.NotificationRow{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Timestamp: n.Timestamp,
		IsRead:    n.IsRead,
		AppID:     nonEmpty(n.AppID),
	}
}

func CanvasClaimRowFrom(c models.CanvasClaim) models.CanvasClaimRow {
	links := make(datatypes.JSONMap, len(c.Links))
	for k, v := range c.Links {
		links[k] = v
	}
	return models.CanvasClaimRow{
		ClaimedName:     c.ClaimedName,
		DisplayName:     c.DisplayName,
		Bio:             c.Bio,
		AvatarURL:       c.AvatarURL,
		SelectedTheme:   c.SelectedTheme,
		SelectedSignals: datatypes.JSONSlice[string](stringsOrEmpty(c.SelectedSignals)),
		Links:           links,
	}
}

func stringsOrEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
