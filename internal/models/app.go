package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BoostTier string

const (
	BoostTierFree  BoostTier = "Free"
	BoostTierPro   BoostTier = "Pro"
	BoostTierElite BoostTier = "Elite"
	BoostTierNone  BoostTier = "none"
)

// AppRow is the persisted shape of a directory entry. Founder fields are
// flattened and revenue history lives in revenue_points.
type AppRow struct {
	ID              string                      `gorm:"primaryKey;size:36" json:"id"`
	Rank            *string                     `gorm:"size:8" json:"rank"`
	Name            string                      `gorm:"size:120;not null" json:"name"`
	Pitch           string                      `gorm:"type:text;not null" json:"pitch"`
	Icon            string                      `gorm:"size:255" json:"icon"`
	AccentColor     string                      `gorm:"size:32" json:"accent_color"`
	Category        string                      `gorm:"size:64;not null;index" json:"category"`
	Tags            datatypes.JSONSlice[string] `gorm:"type:json" json:"tags"`
	TechStack       datatypes.JSONSlice[string] `gorm:"type:json" json:"tech_stack"`
	Pricing         string                      `gorm:"size:120" json:"pricing"`
	Problem         string                      `gorm:"type:text" json:"problem"`
	Solution        string                      `gorm:"type:text" json:"solution"`
	MonthlyRevenue  float64                     `gorm:"not null;index:idx_apps_ranking,priority:1" json:"monthly_revenue"`
	LifetimeRevenue float64                     `gorm:"not null" json:"lifetime_revenue"`
	ActiveUsers     int64                       `gorm:"not null" json:"active_users"`
	BuildStreak     int                         `gorm:"not null" json:"build_streak"`
	Growth          float64                     `gorm:"not null" json:"growth"`
	Verified        bool                        `gorm:"not null" json:"verified"`
	IsForSale       bool                        `gorm:"not null" json:"is_for_sale"`
	AskingPrice     *float64                    `json:"asking_price"`
	ProfitMargin    *float64                    `json:"profit_margin"`
	IsAnonymous     *bool                       `json:"is_anonymous"`
	BoostTier       *string                     `gorm:"size:16" json:"boost_tier"`
	FounderName     string                      `gorm:"size:120" json:"founder_name"`
	FounderHandle   string                      `gorm:"size:120" json:"founder_handle"`
	FounderAvatar   string                      `gorm:"size:255" json:"founder_avatar"`
	FounderEmail    *string                     `gorm:"size:255" json:"founder_email"`
	CreatedAt       time.Time                   `gorm:"autoCreateTime;index:idx_apps_ranking,priority:2" json:"created_at"`
}

func (AppRow) TableName() string {
	return "apps"
}

func (r *AppRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type Founder struct {
	Name   string  `json:"name"`
	Handle string  `json:"handle"`
	Avatar string  `json:"avatar"`
	Email  *string `json:"email,omitempty"`
}

// App is a directory entry as exposed to consumers.
type App struct {
	ID              string         `json:"id"`
	Rank            string         `json:"rank"`
	Name            string         `json:"name"`
	Pitch           string         `json:"pitch"`
	Icon            string         `json:"icon"`
	AccentColor     string         `json:"accentColor"`
	Category        string         `json:"category"`
	Tags            []string       `json:"tags"`
	TechStack       []string       `json:"techStack"`
	Pricing         string         `json:"pricing"`
	Problem         string         `json:"problem"`
	Solution        string         `json:"solution"`
	MonthlyRevenue  float64        `json:"monthlyRevenue"`
	LifetimeRevenue float64        `json:"lifetimeRevenue"`
	ActiveUsers     int64          `json:"activeUsers"`
	BuildStreak     int            `json:"buildStreak"`
	Growth          float64        `json:"growth"`
	Verified        bool           `json:"verified"`
	IsForSale       bool           `json:"isForSale"`
	AskingPrice     *float64       `json:"askingPrice,omitempty"`
	ProfitMargin    *float64       `json:"profitMargin,omitempty"`
	IsAnonymous     *bool          `json:"isAnonymous,omitempty"`
	BoostTier       *BoostTier     `json:"boostTier,omitempty"`
	Founder         Founder        `json:"founder"`
	RevenueHistory  []RevenuePoint `json:"revenueHistory"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// AppInput is a publish candidate as submitted by a creator.
type AppInput struct {
	Rank            string         `json:"rank,omitempty"`
	Name            string         `json:"name"`
	Pitch           string         `json:"pitch"`
	Icon            string         `json:"icon"`
	AccentColor     string         `json:"accentColor"`
	Category        string         `json:"category"`
	Tags            []string       `json:"tags"`
	TechStack       []string       `json:"techStack"`
	Pricing         string         `json:"pricing"`
	Problem         string         `json:"problem"`
	Solution        string         `json:"solution"`
	MonthlyRevenue  float64        `json:"monthlyRevenue"`
	LifetimeRevenue float64        `json:"lifetimeRevenue"`
	ActiveUsers     int64          `json:"activeUsers"`
	BuildStreak     int            `json:"buildStreak"`
	Growth          float64        `json:"growth"`
	Verified        bool           `json:"verified"`
	IsForSale       bool           `json:"isForSale"`
	AskingPrice     *float64       `json:"askingPrice,omitempty"`
	ProfitMargin    *float64       `json:"profitMargin,omitempty"`
	IsAnonymous     *bool          `json:"isAnonymous,omitempty"`
	BoostTier       *BoostTier     `json:"boostTier,omitempty"`
	Founder         Founder        `json:"founder"`
	RevenueHistory  []RevenuePoint `json:"revenueHistory"`
}
