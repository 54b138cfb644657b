package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"menu-app/config"
	"menu-app/database"
	routes "menu-app/internal/app/http"
	"menu-app/internal/app/metrics"
	"menu-app/internal/jobs"
	"menu-app/internal/platform/clock"
	"menu-app/internal/platform/logging"
	"menu-app/internal/platform/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	log := logging.Setup(config.Current.LogLevel, config.Current.LogFormat, os.Stdout)
	database.InitDB(config.DB_URL)

	limiter := ratelimit.New(config.Current.RateLimitRPS, config.Current.RateLimitBurst, config.Current.RateLimitIdleTTL)
	if limiter == nil {
		log.Warn("rate limiting disabled (RATE_LIMIT_RPS or RATE_LIMIT_BURST not positive)")
	}

	r := gin.New()
	if err := routes.TrustProxies(r, config.Current.TrustedProxies); err != nil {
		log.WithError(err).Fatal("invalid TRUSTED_PROXIES")
	}
	r.Use(logging.RequestLogger(log), metrics.Middleware(), gin.Recovery())

	// CORS before routes
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", logging.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, limiter, clock.System)

	scheduler, err := jobs.Start(config.Current.AccessSnapshotCron, &jobs.AccessSnapshot{
		DB:  database.DB,
		Now: clock.System,
		Log: log,
	})
	if err != nil {
		log.WithError(err).Fatal("invalid ACCESS_SNAPSHOT_CRON")
	}
	if limiter != nil {
		if _, err := scheduler.AddFunc("@every 1m", func() { limiter.Sweep(time.Now()) }); err != nil {
			log.WithError(err).Fatal("schedule limiter sweep")
		}
	}

	srv := &http.Server{
		Addr:              ":" + config.PORT,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("port", config.PORT).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	<-scheduler.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
