package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rentdesk/internal/app/services"
	"rentdesk/internal/domain/pricing"
	"rentdesk/internal/domain/reservation"
	"rentdesk/internal/domain/unit"
	"rentdesk/internal/infra/broker/kafka"
	"rentdesk/internal/infra/config"
	"rentdesk/internal/infra/db/mongo"
	ginserver "rentdesk/internal/infra/http/gin"
	"rentdesk/internal/infra/obs"
	infrapricing "rentdesk/internal/infra/pricing"
	"rentdesk/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration invalid", "error", err)
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.Env)

	app, ready, cleanup, err := buildApplication(cfg, logger)
	if err != nil {
		logger.Error("application bootstrap failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{Ready: ready}, app)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "store_mode", cfg.StoreMode)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

func buildApplication(cfg config.Config, logger *slog.Logger) (ginserver.Handlers, func() error, func(), error) {
	var (
		reservations reservation.Repository
		prices       pricing.Repository
		units        unit.Repository
		quoter       services.Quoter
		ready        func() error
		cleanup      = func() {}
	)

	switch cfg.StoreMode {
	case "mongo":
		client, err := mongo.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return ginserver.Handlers{}, nil, nil, err
		}
		reservations = mongo.NewReservationRepository(client.DB)
		prices = mongo.NewPriceRepository(client.DB)
		units = mongo.NewUnitRepository(client.DB)
		quoter = &infrapricing.QuoteClient{
			Client:   &http.Client{Timeout: cfg.PricingTimeout},
			Endpoint: cfg.PricingQuoteURL,
			Logger:   logger,
		}
		ready = func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(pingCtx)
		}
	default:
		reservations = memory.NewReservationRepository()
		prices = memory.NewPriceRepository()
		units = memory.NewUnitRepository()
		quoter = memory.NewQuoteEngine()
		ready = func() error { return nil }
	}

	var publisher services.EventPublisher = services.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopicPrefix, nil)
		if err != nil {
			return ginserver.Handlers{}, nil, nil, err
		}
		publisher = producer
		cleanup = func() {
			if err := producer.Close(); err != nil {
				logger.Error("kafka producer close failed", "error", err)
			}
		}
	}

	calendarSvc := &services.CalendarService{
		Reservations: reservations,
		Prices:       prices,
		Events:       publisher,
		Logger:       logger,
	}
	reservationSvc := &services.ReservationService{
		Reservations: reservations,
		Units:        units,
		Events:       publisher,
		Logger:       logger,
	}
	pricingSvc := &services.PricingService{
		Prices: prices,
		Quotes: quoter,
		Events: publisher,
		Logger: logger,
	}
	unitSvc := &services.UnitService{Units: units}

	handlers := ginserver.Handlers{
		Calendar:    ginserver.CalendarHandler{Service: calendarSvc, FetchTimeout: cfg.FetchTimeout},
		Reservation: ginserver.ReservationHandler{Service: reservationSvc},
		Pricing:     ginserver.PricingHandler{Service: pricingSvc},
		Unit:        ginserver.UnitHandler{Service: unitSvc},
	}
	return handlers, ready, cleanup, nil
}
