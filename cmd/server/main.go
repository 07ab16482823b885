package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"traza/config"
	"traza/database"
	"traza/pkg/clock"
	"traza/pkg/dashboard"
	"traza/pkg/logger"
	"traza/pkg/metrics"
	"traza/router"

	// Lot
	lotCtrlImp "traza/pkg/lot/controllerImp"
	lotRepoImp "traza/pkg/lot/repositoryImp"
	lotSvcImp "traza/pkg/lot/serviceImp"

	// Process
	processCtrlImp "traza/pkg/process/controllerImp"
	processRepoImp "traza/pkg/process/repositoryImp"
	processSvcImp "traza/pkg/process/serviceImp"

	// Quality control
	qualityCtrlImp "traza/pkg/quality/controllerImp"
	qualityRepoImp "traza/pkg/quality/repositoryImp"
	qualitySvcImp "traza/pkg/quality/serviceImp"

	// Transport + delivery
	transportCtrlImp "traza/pkg/transport/controllerImp"
	transportRepoImp "traza/pkg/transport/repositoryImp"
	transportSvcImp "traza/pkg/transport/serviceImp"

	// Health
	healthCtrlImp "traza/pkg/health/controllerImp"
)

func main() {
	// 1) Config + logger
	cfg := config.Load()
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("config loaded", "port", cfg.Port, "db_driver", cfg.DBDriver, "log_mode", cfg.LogMode)

	// 2) DB + automigrate
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("open database", "err", err)
	}

	// 3) Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// 4) Repos
	lRepo := lotRepoImp.New(db)
	pRepo := processRepoImp.New(db)
	qRepo := qualityRepoImp.New(db)
	tRepo := transportRepoImp.New(db)

	// 5) Services
	clk := clock.System()
	lSvc := lotSvcImp.NewLotService(lRepo, pRepo, qRepo, tRepo, log, m)
	pSvc := processSvcImp.NewProcessService(pRepo, lRepo, log, m)
	qSvc := qualitySvcImp.NewQualityService(qRepo, pRepo, clk, log, m)
	tSvc := transportSvcImp.NewTransportService(tRepo, lRepo, pRepo, clk, log, m)

	// 6) Router
	e := echo.New()
	e.HideBanner = true
	router.New(
		e,
		log,
		lotCtrlImp.New(lSvc),
		processCtrlImp.New(pSvc),
		qualityCtrlImp.New(qSvc),
		transportCtrlImp.New(tSvc),
		dashboard.New(lSvc, cfg.DashboardLimit),
		healthCtrlImp.NewHealthCtrl(db, clk),
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	)

	// 7) Start, stop on SIGINT/SIGTERM
	go func() {
		log.Info("listening", "addr", ":"+cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("shutdown", "err", err)
	}
}
