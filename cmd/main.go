package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vespasoft/taskhub/config"
	"github.com/vespasoft/taskhub/internal/container"
	"github.com/vespasoft/taskhub/internal/infrastructure/eventbus"
	"github.com/vespasoft/taskhub/internal/infrastructure/memory"
	"github.com/vespasoft/taskhub/internal/infrastructure/notify"
	"github.com/vespasoft/taskhub/internal/interface/middleware"
	"github.com/vespasoft/taskhub/internal/router"
	"github.com/vespasoft/taskhub/pkg/helpers"
	"github.com/vespasoft/taskhub/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	// Redis backs the rate-limiting middleware only; the middleware fails
	// open when it is unreachable.
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()

	// RabbitMQ is optional: without it, domain events are only logged.
	var rabbit *helpers.RabbitPublisher
	if cfg.NotificationsEnabled {
		var err error
		rabbit, err = helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQNotifyQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unavailable, events will only be logged")
			rabbit = nil
		}
	}
	defer rabbit.Close()

	// Event bus and its single subscriber. The subscriber must be running
	// before any request handler can publish, otherwise publishers block
	// once the buffer fills.
	bus := eventbus.New(cfg.BusCapacity, logger)
	notifier := notify.New(rabbit, logger)
	subscriberDone := make(chan struct{})
	go func() {
		bus.Subscribe(notifier.Handle)
		close(subscriberDone)
	}()

	// In-memory stores: all state is volatile and lost on restart.
	userStore := memory.NewUserStore(logger)
	projectStore := memory.NewProjectStore(logger)

	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetRedis(rdb)
	container.SetRabbitPub(rabbit)
	container.SetBus(bus)
	container.SetUserRepo(userStore)
	container.SetProjectRepo(projectStore)

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsCfg.AllowOrigins) > 0 {
		r.Use(cors.New(corsCfg))
	}
	if cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	reg := router.NewRegistry(r)
	deps := router.InitModules(reg)
	reg.RegisterAll()

	if cfg.SeedDemoData {
		seedDemoData(deps, logger)
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s", err)
		}
	}()

	// Graceful shutdown: stop accepting requests, then close the bus so the
	// subscriber drains whatever is still pending.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}

	bus.Close()
	select {
	case <-subscriberDone:
	case <-time.After(5 * time.Second):
		logger.Warn("subscriber did not drain in time")
	}
	logger.Info("server exited properly")
}

// seedDemoData creates a demo user and project through the regular services.
// The stores are in-process memory, so seeding happens at startup rather than
// in a separate binary.
func seedDemoData(deps router.Deps, logger *logrus.Logger) {
	ctx := context.Background()
	u, err := deps.UserService.CreateUser(ctx, "vespasoft", "vespasoft@gmail.com", "1m4*5Aa78@", "")
	if err != nil {
		logger.Infof("demo user not seeded: %v", err)
		return
	}
	p, err := deps.ProjectService.CreateProject(ctx, u.ID.String(), "Project 000001", "This is my favorite project", nil, nil)
	if err != nil {
		logger.Infof("demo project not seeded: %v", err)
		return
	}
	logger.Infof("seeded demo user %s with project %s", u.ID, p.ID)
}
