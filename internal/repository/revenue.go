package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vibejam-co/jam-sub001/internal/models"
)

type RevenueRepository struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

// CreateBatch 批量插入收入点，一条 INSERT 语句
func (r *RevenueRepository) CreateBatch(ctx context.Context, rows []models.RevenuePointRow) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

// ListAll 获取所有收入点，分组与排序交给 transform.GroupRevenue
func (r *RevenueRepository) ListAll(ctx context.Context) ([]models.RevenuePointRow, error) {
	var rows []models.RevenuePointRow
	err := r.db.WithContext(ctx).
		Order("app_id ASC").
		Order("sort_order ASC").
		Find(&rows).Error
	return rows, err
}
