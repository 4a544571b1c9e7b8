package main

import (
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/LumiereBeauty/salon-scheduler/internal/calendar"
	"github.com/LumiereBeauty/salon-scheduler/internal/config"
	"github.com/LumiereBeauty/salon-scheduler/internal/db"
	"github.com/LumiereBeauty/salon-scheduler/internal/infra/repository"
	"github.com/LumiereBeauty/salon-scheduler/internal/linksign"
	"github.com/LumiereBeauty/salon-scheduler/internal/logging"
	"github.com/LumiereBeauty/salon-scheduler/internal/notify"
	"github.com/LumiereBeauty/salon-scheduler/internal/worker"
)

func main() {
	logging.Init()
	logger := logging.L()
	defer logger.Sync()

	cfg := config.Load()
	gormDB := db.NewDB(cfg)
	repo := repository.NewBookingGormRepository(gormDB)

	var cal calendar.Calendar = calendar.Disabled{}
	if cfg.CalendarCredentialsPath != "" {
		cal = calendar.NewGoogleCalendar(cfg.CalendarCredentialsPath, cfg.CalendarID, logger)
	}

	signer := linksign.New(
		cfg.JWTSecret,
		time.Duration(cfg.ActionLinkTTLHours)*time.Hour,
	)

	mailer := notify.NewLogMailer(logger)

	h := worker.NewHandlers(
		repo,
		mailer,
		cal,
		signer,
		logger,
		cfg.AdminEmail,
		cfg.BaseURL,
		cfg.MailFromName,
	)

	srv, mux := worker.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	}, h)

	logger.Info("starting booking worker", zap.String("redis", cfg.RedisAddr))
	if err := srv.Run(mux); err != nil {
		logger.Fatal("worker stopped", zap.Error(err))
	}
}
