package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vibejam-co/jam-sub001/internal/models"
)

// Writer is the set of inserts a publish performs.
type Writer interface {
	CreateApp(ctx context.Context, row *models.AppRow) error
	CreateRevenuePoints(ctx context.Context, rows []models.RevenuePointRow) error
	CreateNotification(ctx context.Context, row *models.NotificationRow) error
}

// PublishStore issues publish inserts against one connection or transaction.
type PublishStore struct {
	db *gorm.DB
}

func NewPublishStore(db *gorm.DB) *PublishStore {
	return &PublishStore{db: db}
}

func (s *PublishStore) CreateApp(ctx context.Context, row *models.AppRow) error {
	return NewAppRepository(s.db).Create(ctx, row)
}

func (s *PublishStore) CreateRevenuePoints(ctx context.Context, rows []models.RevenuePointRow) error {
	return NewRevenueRepository(s.db).CreateBatch(ctx, rows)
}

func (s *PublishStore) CreateNotification(ctx context.Context, row *models.NotificationRow) error {
	return NewNotificationRepository(s.db).Create(ctx, row)
}

// InTransaction runs fn against a Writer bound to a single transaction;
// any error from fn rolls back every insert it made.
func (s *PublishStore) InTransaction(ctx context.Context, fn func(w Writer) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PublishStore{db: tx})
	})
}
