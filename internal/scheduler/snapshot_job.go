package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vibejam-co/jam-sub001/internal/models"
	"github.com/vibejam-co/jam-sub001/pkg/logger"
)

const DefaultSnapshotCron = "0 0 * * * *"

type DirectoryLoader interface {
	LoadApps(ctx context.Context) ([]models.App, error)
}

// Snapshot is a leaderboard digest of one directory read.
type Snapshot struct {
	Count      int
	TopApp     string
	TopRevenue float64
	TakenAt    time.Time
}

// SnapshotScheduler periodically assembles the directory and logs a digest.
// It only reads.
type SnapshotScheduler struct {
	cron      *cron.Cron
	directory DirectoryLoader
	cronExpr  string
}

func NewSnapshotScheduler(directory DirectoryLoader, cronExpr string) *SnapshotScheduler {
	if cronExpr == "" {
		cronExpr = DefaultSnapshotCron
	}
	return &SnapshotScheduler{
		cron:      cron.New(cron.WithSeconds()),
		directory: directory,
		cronExpr:  cronExpr,
	}
}

func (s *SnapshotScheduler) Start() error {
	_, err := s.cron.AddFunc(s.cronExpr, s.run)
	if err != nil {
		return err
	}

	s.cron.Start()
	logger.WithFields(map[string]interface{}{
		"cron": s.cronExpr,
	}).Info("Directory snapshot scheduler started")
	return nil
}

func (s *SnapshotScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Directory snapshot scheduler stopped")
}

func (s *SnapshotScheduler) run() {
	if _, err := s.TakeSnapshot(context.Background()); err != nil {
		logger.Error("Failed to take directory snapshot: ", err)
	}
}

// TakeSnapshot 读取当前目录并输出排行榜摘要
func (s *SnapshotScheduler) TakeSnapshot(ctx context.Context) (Snapshot, error) {
	apps, err := s.directory.LoadApps(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{Count: len(apps), TakenAt: time.Now()}
	if len(apps) > 0 {
		snap.TopApp = apps[0].Name
		snap.TopRevenue = apps[0].MonthlyRevenue
	}

	logger.WithFields(map[string]interface{}{
		"count":       snap.Count,
		"top_app":     snap.TopApp,
		"top_revenue": snap.TopRevenue,
	}).Info("Directory snapshot")

	return snap, nil
}
