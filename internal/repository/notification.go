package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vibejam-co/jam-sub001/internal/models"
)

// MaxRecentNotifications caps every notification read.
const MaxRecentNotifications = 25

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, row *models.NotificationRow) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// GetRecent 按创建时间倒序获取最近的通知，最多 MaxRecentNotifications 条
func (r *NotificationRepository) GetRecent(ctx context.Context, limit int) ([]models.NotificationRow, error) {
	if limit <= 0 || limit > MaxRecentNotifications {
		limit = MaxRecentNotifications
	}

	var rows []models.NotificationRow
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
