package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/platemate/deliverycore/internal/adapter/audit"
	"github.com/platemate/deliverycore/internal/adapter/auth"
	"github.com/platemate/deliverycore/internal/adapter/cache"
	"github.com/platemate/deliverycore/internal/adapter/client/push"
	"github.com/platemate/deliverycore/internal/adapter/config"
	"github.com/platemate/deliverycore/internal/adapter/handler/http"
	"github.com/platemate/deliverycore/internal/adapter/logger"
	"github.com/platemate/deliverycore/internal/adapter/storage"
	"github.com/platemate/deliverycore/internal/adapter/storage/repository"
	"github.com/platemate/deliverycore/internal/core/port"
	"github.com/platemate/deliverycore/internal/core/service"
)

const serviceName = "deliverycore"

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}

	if conf.Auth.TokenKey == "" {
		log.Warn("no token key configured, externally issued tokens will not verify")
	}
	tokenService, err := auth.New(conf.Auth)
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	blacklist := cache.NewTokenBlacklist(conf.Redis.Addr, serviceName)

	notifier, err := push.NewClient(conf.Push, log)
	if err != nil {
		log.Error("push client creating error", zap.Error(err))
		return
	}
	notifier.StartWorkers(ctx, conf.Push.Workers)

	var auditTrail port.AuditTrail = audit.NopTrail{}
	if len(conf.Kafka.Brokers) > 0 {
		recorder, err := audit.NewRecorder(conf.Kafka, log)
		if err != nil {
			log.Error("audit recorder creating error", zap.Error(err))
			return
		}
		recorder.Start(ctx)
		defer func() { _ = recorder.Close() }()
		auditTrail = recorder
	}

	svc, err := service.NewService(repo, notifier, auditTrail, log)
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	orderHandler, err := http.NewOrderHandler(svc, log)
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	partnerHandler, err := http.NewPartnerHandler(svc, log)
	if err != nil {
		log.Error("partner handler creating error", zap.Error(err))
		return
	}
	walletHandler, err := http.NewWalletHandler(svc, log)
	if err != nil {
		log.Error("wallet handler creating error", zap.Error(err))
		return
	}

	router, err := http.NewRouter(conf.HTTP, tokenService, blacklist, log,
		orderHandler, partnerHandler, walletHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	log.Info("starting http server", zap.String("address", conf.HTTP.HostString))
	if err := router.Serve(conf.HTTP.HostString); err != nil {
		log.Error("http server error", zap.Error(err))
	}
}
