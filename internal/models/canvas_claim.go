package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CanvasClaimRow struct {
	ID              string                      `gorm:"primaryKey;size:36" json:"id"`
	ClaimedName     string                      `gorm:"size:120;not null;index" json:"claimed_name"`
	DisplayName     string                      `gorm:"size:120;not null" json:"display_name"`
	Bio             string                      `gorm:"type:text" json:"bio"`
	AvatarURL       string                      `gorm:"size:255" json:"avatar_url"`
	SelectedTheme   string                      `gorm:"size:64;not null" json:"selected_theme"`
	SelectedSignals datatypes.JSONSlice[string] `gorm:"type:json" json:"selected_signals"`
	Links           datatypes.JSONMap           `gorm:"type:json" json:"links"`
	CreatedAt       time.Time                   `gorm:"autoCreateTime" json:"created_at"`
}

func (CanvasClaimRow) TableName() string {
	return "canvas_claims"
}

func (r *CanvasClaimRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type CanvasClaim struct {
	ClaimedName     string            `json:"claimedName"`
	DisplayName     string            `json:"displayName"`
	Bio             string            `json:"bio"`
	AvatarURL       string            `json:"avatarUrl"`
	SelectedTheme   string            `json:"selectedTheme"`
	SelectedSignals []string          `json:"selectedSignals"`
	Links           map[string]string `json:"links"`
}
