package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	httpadp "perfectbank-backend/internal/adapter/http"
	appmw "perfectbank-backend/internal/adapter/middleware"
	"perfectbank-backend/internal/adapter/repository/gormdb"
	"perfectbank-backend/internal/config"
	"perfectbank-backend/internal/infrastructure/cache"
	"perfectbank-backend/internal/infrastructure/db"
	"perfectbank-backend/internal/logger"
	authuc "perfectbank-backend/internal/usecase/auth"
	loanuc "perfectbank-backend/internal/usecase/loan"
	smsuc "perfectbank-backend/internal/usecase/sms"
	useruc "perfectbank-backend/internal/usecase/user"
	"perfectbank-backend/pkg/smsgateway"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	logger.Setup(cfg.LogFile)

	gdb, err := db.Open(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("database open failed")
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}
	if cfg.SeedDemoData {
		if err := db.Seed(gdb); err != nil {
			logrus.WithError(err).Fatal("seeding failed")
		}
	}

	users := gormdb.NewUserRepository(gdb)
	loans := gormdb.NewLoanRepository(gdb)
	repayments := gormdb.NewRepaymentRepository(gdb)
	smsLogs := gormdb.NewSmsLogRepository(gdb)
	tx := gormdb.NewGormUoW(gdb)
	gateway := smsgateway.NewSimulated()

	h := httpadp.Handlers{
		Base:  httpadp.NewHandler(),
		Auth:  httpadp.NewAuthHandler(authuc.NewUsecase(users)),
		Loans: httpadp.NewLoanHandler(loanuc.NewUsecase(users, loans, repayments, tx)),
		Sms:   httpadp.NewSmsHandler(smsuc.NewUsecase(users, loans, smsLogs, gateway)),
		Admin: httpadp.NewAdminHandler(useruc.NewUsecase(users)),
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	if cfg.SimLatencyMs > 0 {
		e.Use(appmw.SimulatedLatency(time.Duration(cfg.SimLatencyMs) * time.Millisecond))
	}
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			logrus.WithError(err).Fatal("redis open failed")
		}
		e.Use(appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}

	httpadp.RegisterRoutes(e, h)

	addr := ":" + cfg.AppPort
	logrus.WithField("addr", addr).Info("listening")
	if err := e.Start(addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
