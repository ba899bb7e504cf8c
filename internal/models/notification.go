package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationTypeUpdate NotificationType = "update"
)

type NotificationRow struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Title     string    `gorm:"size:120;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Type      string    `gorm:"size:32;not null" json:"type"`
	Timestamp string    `gorm:"size:32;not null" json:"timestamp"`
	IsRead    bool      `gorm:"not null" json:"is_read"`
	AppID     *string   `gorm:"size:36;index" json:"app_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (NotificationRow) TableName() string {
	return "notifications"
}

func (r *NotificationRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Notification.AppID is a lookup key into the apps table, not an ownership link.
type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Timestamp string           `json:"timestamp"`
	IsRead    bool             `json:"isRead"`
	AppID     *string          `json:"appId,omitempty"`
}
