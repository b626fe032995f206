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

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"tenantguard-be/config"
	"tenantguard-be/controllers"
	"tenantguard-be/middlewares"
	"tenantguard-be/routes"
	"tenantguard-be/storage"
	"tenantguard-be/store"
	"tenantguard-be/utils"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	envErr := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := config.NewLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	if envErr != nil {
		logger.Warn("could not read .env file", "error", envErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := config.ConnectDB(ctx, cfg.MongoURI)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Error("mongo disconnect", "error", err)
		}
	}()
	logger.Info("MongoDB connection established", "database", cfg.MongoDatabase)

	st := store.NewMongoStore(client.Database(cfg.MongoDatabase))
	if err := st.EnsureIndexes(ctx); err != nil {
		return err
	}

	var limiter middlewares.Limiter
	rdb, err := config.ConnectRedis(ctx, cfg)
	switch {
	case err != nil:
		return err
	case rdb != nil:
		defer rdb.Close()
		limiter = middlewares.NewRedisLimiter(rdb, cfg.RateLimitPrefix)
		logger.Info("rate limiting backed by redis", "address", cfg.RedisAddress)
	default:
		limiter = middlewares.NewMemoryLimiter()
		logger.Info("rate limiting in process")
	}

	if err := utils.RegisterValidators(); err != nil {
		return err
	}
	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	uploader := storage.NewCloudinary(storage.CloudinaryConfig{
		CloudName: cfg.Cloudinary.CloudName,
		APIKey:    cfg.Cloudinary.APIKey,
		APISecret: cfg.Cloudinary.APISecret,
		Folder:    cfg.Cloudinary.Folder,
	}, nil)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := middlewares.NewMetrics(reg)
	if err != nil {
		return err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.NewRouter(routes.Deps{
		Controller:        controllers.New(st, tokens, uploader, logger),
		Tokens:            tokens,
		Limiter:           limiter,
		Metrics:           metrics,
		Logger:            logger,
		ReportDailyLimit:  cfg.ReportDailyLimit,
		InquiryDailyLimit: cfg.InquiryDailyLimit,
		AllowedOrigins:    cfg.AllowedOrigins,
		BodyLimitBytes:    cfg.BodyLimitBytes,
		TrustedProxies:    cfg.TrustedProxies,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
