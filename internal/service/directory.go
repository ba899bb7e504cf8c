package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/vibejam-co/jam-sub001/internal/config"
	"github.com/vibejam-co/jam-sub001/internal/models"
	"github.com/vibejam-co/jam-sub001/internal/ranking"
	"github.com/vibejam-co/jam-sub001/internal/repository"
	"github.com/vibejam-co/jam-sub001/internal/transform"
	"github.com/vibejam-co/jam-sub001/pkg/errors"
	"github.com/vibejam-co/jam-sub001/pkg/logger"
	"github.com/vibejam-co/jam-sub001/pkg/metrics"
)

const (
	TitleAssetListed  = "New Asset Listed"
	TitleJamPublished = "New Jam Published"

	// TimestampJustNow is stored verbatim; notifications carry a label, not a clock value.
	TimestampJustNow = "Just now"
)

type AppReader interface {
	List(ctx context.Context) ([]models.AppRow, error)
}

type RevenueReader interface {
	ListAll(ctx context.Context) ([]models.RevenuePointRow, error)
}

type NotificationReader interface {
	GetRecent(ctx context.Context, limit int) ([]models.NotificationRow, error)
}

type PublishStore interface {
	repository.Writer
	InTransaction(ctx context.Context, fn func(w repository.Writer) error) error
}

type DirectoryService struct {
	apps              AppReader
	revenue           RevenueReader
	notifications     NotificationReader
	store             PublishStore
	atomicPublish     bool
	notificationLimit int
}

func NewDirectoryService(
	apps AppReader,
	revenue RevenueReader,
	notifications NotificationReader,
	store PublishStore,
	cfg *config.DirectoryConfig,
) *DirectoryService {
	limit := cfg.NotificationLimit
	if limit <= 0 || limit > repository.MaxRecentNotifications {
		limit = repository.MaxRecentNotifications
	}
	return &DirectoryService{
		apps:              apps,
		revenue:           revenue,
		notifications:     notifications,
		store:             store,
		atomicPublish:     cfg.AtomicPublish,
		notificationLimit: limit,
	}
}

// LoadApps 读取全部应用和收入点，返回排好序的目录
// 反映读取时刻的存储状态，发布过程中可能看到缺少历史或通知的应用
func (s *DirectoryService) LoadApps(ctx context.Context) ([]models.App, error) {
	rows, err := s.apps.List(ctx)
	if err != nil {
		return nil, errors.Storage(errors.ErrAppLoad, "failed to load apps", err)
	}

	revenueRows, err := s.revenue.ListAll(ctx)
	if err != nil {
		return nil, errors.Storage(errors.ErrAppLoad, "failed to load revenue history", err)
	}

	return ranking.Assemble(rows, revenueRows), nil
}

// Publish 按顺序写入应用、收入历史、通知，成功后返回刷新后的完整目录
// 默认不使用事务：第二步或第三步失败时，已写入的应用保留，错误原样上抛
func (s *DirectoryService) Publish(ctx context.Context, in models.AppInput) ([]models.App, error) {
	if err := ValidateAppInput(in); err != nil {
		metrics.RecordPublish("rejected")
		return nil, err
	}

	var err error
	if s.atomicPublish {
		err = s.store.InTransaction(ctx, func(w repository.Writer) error {
			return s.write(ctx, w, in)
		})
	} else {
		err = s.write(ctx, s.store, in)
	}
	if err != nil {
		metrics.RecordPublish("failed")
		return nil, err
	}

	metrics.RecordPublish("success")
	return s.LoadApps(ctx)
}

func (s *DirectoryService) write(ctx context.Context, w repository.Writer, in models.AppInput) error {
	row := transform.AppRowFromInput(in)
	if err := w.CreateApp(ctx, &row); err != nil {
		metrics.RecordPublishStepFailure("app")
		logger.WithFields(map[string]interface{}{
			"name": in.Name,
			"step": "app",
		}).Error("Failed to create app: ", err)
		return errors.Storage(errors.ErrAppInsert, "failed to create app", err)
	}

	revenueRows := transform.RevenueRowsFromHistory(row.ID, in.RevenueHistory)
	if err := w.CreateRevenuePoints(ctx, revenueRows); err != nil {
		s.logPartial(row.ID, "revenue", err)
		return errors.Storage(errors.ErrRevenueInsert, "failed to create revenue history", err)
	}

	notification := transform.NotificationRowFrom(NewPublishNotification(row.ID, in.Name, in.IsForSale))
	if err := w.CreateNotification(ctx, &notification); err != nil {
		s.logPartial(row.ID, "notification", err)
		return errors.Storage(errors.ErrNotificationInsert, "failed to create notification", err)
	}

	logger.WithFields(map[string]interface{}{
		"app_id":       row.ID,
		"name":         in.Name,
		"revenue_rows": len(revenueRows),
		"is_for_sale":  in.IsForSale,
		"atomic":       s.atomicPublish,
	}).Info("App published")

	return nil
}

func (s *DirectoryService) logPartial(appID, step string, err error) {
	metrics.RecordPublishStepFailure(step)

	entry := logger.WithFields(map[string]interface{}{
		"app_id": appID,
		"step":   step,
		"atomic": s.atomicPublish,
	})
	if s.atomicPublish {
		entry.Error("Publish step failed, transaction rolled back: ", err)
		return
	}
	entry.Error("Publish step failed, app left partially written: ", err)
}

// ListNotifications 获取最近的通知，limit 超出上限时截断
func (s *DirectoryService) ListNotifications(ctx context.Context, limit int) ([]models.Notification, error) {
	if limit <= 0 || limit > s.notificationLimit {
		limit = s.notificationLimit
	}

	rows, err := s.notifications.GetRecent(ctx, limit)
	if err != nil {
		return nil, errors.Storage(errors.ErrNotificationLoad, "failed to load notifications", err)
	}
	return transform.NotificationsFromRows(rows), nil
}

// NewPublishNotification builds the notification that announces a new app.
func NewPublishNotification(appID, name string, isForSale bool) models.Notification {
	title := TitleJamPublished
	if isForSale {
		title = TitleAssetListed
	}

	var ref *string
	if appID != "" {
		ref = &appID
	}

	return models.Notification{
		Title:     title,
		Message:   fmt.Sprintf("%s is now live on VibeJam.", name),
		Type:      models.NotificationTypeUpdate,
		Timestamp: TimestampJustNow,
		IsRead:    false,
		AppID:     ref,
	}
}

// ValidateAppInput rejects a candidate missing name, pitch or category.
func ValidateAppInput(in models.AppInput) error {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Pitch) == "" {
		missing = append(missing, "pitch")
	}
	if strings.TrimSpace(in.Category) == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return errors.Validation("missing required fields: " + strings.Join(missing, ", "))
	}
	return nil
}
