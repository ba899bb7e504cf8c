// Package database owns the process-wide storage handle. The connection is
// opened on first use and released by Close.
package database

import (
	"context"
	"sync"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vibejam-co/jam-sub001/internal/config"
	"github.com/vibejam-co/jam-sub001/internal/models"
	apperrors "github.com/vibejam-co/jam-sub001/pkg/errors"
	"github.com/vibejam-co/jam-sub001/pkg/logger"
)

// Opener opens a gorm connection for a config. Tests swap it for sqlmock.
type Opener func(cfg config.DatabaseConfig) (*gorm.DB, error)

type Handle struct {
	cfg    config.DatabaseConfig
	open   Opener
	once   sync.Once
	mu     sync.Mutex
	db     *gorm.DB
	err    error
	closed bool
}

func New(cfg config.DatabaseConfig) *Handle {
	return NewWithOpener(cfg, Open)
}

func NewWithOpener(cfg config.DatabaseConfig, open Opener) *Handle {
	return &Handle{cfg: cfg, open: open}
}

// DB returns the shared connection, opening it on the first call. A failed
// open is remembered; the handle does not retry.
func (h *Handle) DB(ctx context.Context) (*gorm.DB, error) {
	h.once.Do(func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if h.closed {
			h.err = apperrors.Configuration("database handle already closed", nil)
			return
		}

		db, err := h.open(h.cfg)
		if err != nil {
			h.err = apperrors.Configuration("failed to connect to database", err)
			return
		}

		if h.cfg.AutoMigrate {
			if err := Migrate(db.WithContext(ctx)); err != nil {
				h.err = apperrors.Storage(apperrors.ErrDatabaseConnect, "failed to migrate schema", err)
				closeConn(db)
				return
			}
		}

		logger.WithFields(map[string]interface{}{
			"driver": h.cfg.Driver,
			"host":   h.cfg.Host,
			"dbname": h.cfg.DBName,
		}).Info("Database connection opened")

		h.db = db
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.db, h.err
}

// Close releases the connection if it was opened. Later DB calls fail.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	if h.db == nil {
		return nil
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	h.db = nil
	h.err = apperrors.Configuration("database handle already closed", nil)
	return sqlDB.Close()
}

func closeConn(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Failed to close database after migration error: ", err)
	}
}

// Open dials the configured driver and applies pool settings.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.DSN())
	default:
		dialector = postgres.Open(cfg.DSN())
	}

	db, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.AppRow{},
		&models.RevenuePointRow{},
		&models.NotificationRow{},
		&models.CanvasClaimRow{},
	)
}
