package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vibejam-co/jam-sub001/internal/config"
	"github.com/vibejam-co/jam-sub001/internal/database"
	"github.com/vibejam-co/jam-sub001/internal/handler"
	"github.com/vibejam-co/jam-sub001/internal/repository"
	"github.com/vibejam-co/jam-sub001/internal/scheduler"
	"github.com/vibejam-co/jam-sub001/internal/service"
	"github.com/vibejam-co/jam-sub001/pkg/logger"
)

func main() {
	// .env 文件可选，不存在时直接使用环境变量
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output); err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handle := database.New(cfg.Database)
	db, err := handle.DB(ctx)
	if err != nil {
		logger.Fatal("Failed to connect to database:", err)
	}
	defer func() {
		if err := handle.Close(); err != nil {
			logger.Error("Failed to close database:", err)
		}
	}()

	appRepo := repository.NewAppRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	canvasRepo := repository.NewCanvasRepository(db)
	publishStore := repository.NewPublishStore(db)

	directorySvc := service.NewDirectoryService(appRepo, revenueRepo, notificationRepo, publishStore, &cfg.Directory)
	canvasSvc := service.NewCanvasService(canvasRepo)
	catalogSvc := service.NewCatalogService()

	if cfg.Scheduler.Enabled {
		snapshotScheduler := scheduler.NewSnapshotScheduler(directorySvc, cfg.Scheduler.SnapshotCron)
		if err := snapshotScheduler.Start(); err != nil {
			logger.Fatal("Failed to start scheduler:", err)
		}
		defer snapshotScheduler.Stop()
	}

	router := handler.NewRouter(
		handler.NewDirectoryHandler(directorySvc),
		handler.NewCanvasHandler(canvasSvc),
		handler.NewCatalogHandler(catalogSvc),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("Server starting on port ", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error:", err)
	}

	logger.Info("Server stopped")
}
