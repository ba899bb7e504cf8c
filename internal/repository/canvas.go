package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vibejam-co/jam-sub001/internal/models"
)

type CanvasRepository struct {
	db *gorm.DB
}

func NewCanvasRepository(db *gorm.DB) *CanvasRepository {
	return &CanvasRepository{db: db}
}

// Create 保存一次画布认领；同名重复认领不在此处拦截
func (r *CanvasRepository) Create(ctx context.Context, row *models.CanvasClaimRow) error {
	return r.db.WithContext(ctx).Create(row).Error
}
