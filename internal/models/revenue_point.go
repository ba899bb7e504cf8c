package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RevenuePointRow is one period of an app's revenue history. SortOrder is the
// position in the submitted sequence and is the only ordering key.
type RevenuePointRow struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	AppID     string    `gorm:"size:36;not null;index:idx_app_sort" json:"app_id"`
	Date      string    `gorm:"size:32;not null" json:"date"`
	Revenue   float64   `gorm:"not null" json:"revenue"`
	SortOrder int       `gorm:"not null;index:idx_app_sort" json:"sort_order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (RevenuePointRow) TableName() string {
	return "revenue_points"
}

func (r *RevenuePointRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}
