package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/slot-booker/internal/audit"
	"github.com/BruksfildServices01/slot-booker/internal/cache"
	"github.com/BruksfildServices01/slot-booker/internal/config"
	dbpkg "github.com/BruksfildServices01/slot-booker/internal/db"
	"github.com/BruksfildServices01/slot-booker/internal/infra/repository"
	"github.com/BruksfildServices01/slot-booker/internal/infra/repository/memory"
	"github.com/BruksfildServices01/slot-booker/internal/logging"
	"github.com/BruksfildServices01/slot-booker/internal/middleware"
	"github.com/BruksfildServices01/slot-booker/internal/routes"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg)

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := routes.Deps{Config: cfg, Log: log}

	// ======================================================
	// STORE
	// ======================================================
	var sinks []audit.Sink
	switch cfg.StoreDriver {
	case config.DriverMemory:
		mem := memory.NewStore()
		deps.Store, deps.Clients = mem, mem
		log.Warn("using in-memory store, data is lost on restart")
	default:
		db, err := dbpkg.NewDB(cfg, log)
		if err != nil {
			log.WithError(err).Fatal("database setup failed")
		}
		deps.DB = db
		deps.Store = repository.NewReservationGormRepository(db)
		deps.Clients = repository.NewClientGormRepository(db)
		sinks = append(sinks, audit.New(db))
	}

	// ======================================================
	// AUDIT
	// ======================================================
	if len(cfg.KafkaBrokers) > 0 {
		k := audit.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer func() {
			if err := k.Close(); err != nil {
				log.WithError(err).Warn("kafka writer close failed")
			}
		}()
		sinks = append(sinks, k)
	}
	deps.Audit = audit.NewDispatcher(log, sinks...)

	// ======================================================
	// IDEMPOTENCY
	// ======================================================
	if cfg.RedisURL != "" {
		rdb, err := cache.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.WithError(err).Fatal("redis setup failed")
		}
		defer rdb.Close()
		deps.Idempotency = middleware.NewRedisIdempotencyStore(rdb, cfg.IdempotencyTTL)
	} else {
		deps.Idempotency = middleware.NewInMemoryIdempotencyStore(cfg.IdempotencyTTL)
	}

	// ======================================================
	// HTTP
	// ======================================================
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.Addr()).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	<-ctx.Done()
	shutdown(srv, deps.Audit, log)
}

func shutdown(srv *http.Server, dispatcher *audit.Dispatcher, log *logrus.Logger) {
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("http shutdown incomplete")
	}
	if err := dispatcher.Close(ctx); err != nil {
		log.WithError(err).Warn("audit queue not fully drained")
	}
}
