package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vibejam-co/jam-sub001/internal/models"
)

type AppRepository struct {
	db *gorm.DB
}

func NewAppRepository(db *gorm.DB) *AppRepository {
	return &AppRepository{db: db}
}

// Create 插入应用记录，ID 由 BeforeCreate 钩子生成并回填到 row
func (r *AppRepository) Create(ctx context.Context, row *models.AppRow) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// List 获取全部应用，按月收入降序、创建时间降序
// 最终排名仍由 ranking.Assemble 决定，这里的排序只是让数据库走索引
func (r *AppRepository) List(ctx context.Context) ([]models.AppRow, error) {
	var rows []models.AppRow
	err := r.db.WithContext(ctx).
		Order("monthly_revenue DESC").
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}
