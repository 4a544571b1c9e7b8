package main

import (
	"go.uber.org/zap"

	"github.com/LumiereBeauty/salon-scheduler/internal/config"
	"github.com/LumiereBeauty/salon-scheduler/internal/db"
	"github.com/LumiereBeauty/salon-scheduler/internal/logging"
	"github.com/LumiereBeauty/salon-scheduler/internal/routes"
)

func main() {
	logging.Init()
	logger := logging.L()
	defer logger.Sync()

	cfg := config.Load()
	gormDB := db.NewDB(cfg)

	r := routes.SetupRouter(cfg, gormDB, logger)

	logger.Info("starting booking api", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
