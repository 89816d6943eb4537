package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"example.com/storeman/internal/config"
	"example.com/storeman/internal/infra/logger"
	"example.com/storeman/internal/infra/metrics"
	"example.com/storeman/internal/infra/restapi"
	productuc "example.com/storeman/internal/usecase/product"
	storeuc "example.com/storeman/internal/usecase/store"
)

// app holds the wired services shared by the commands.
type app struct {
	log      *zap.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	stores   *storeuc.Service
	products *productuc.Service
}

func newApp(cfg config.Config, serviceName string) (*app, error) {
	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Environment: cfg.Log.Env,
		ServiceName: serviceName,
	})
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	dispatcher := restapi.NewDispatcher(
		restapi.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		restapi.WithLogger(log),
		restapi.WithMetrics(m),
	)
	client := restapi.NewClient(cfg.API.BaseURL, dispatcher)
	storeRepo := restapi.NewStoreRepository(client)
	productRepo := restapi.NewProductRepository(client)

	return &app{
		log:      log,
		registry: reg,
		metrics:  m,
		stores:   storeuc.NewService(storeRepo, productRepo, log),
		products: productuc.NewService(productRepo),
	}, nil
}

func (a *app) close() {
	_ = a.log.Sync()
}
