package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Cj170303/PPIA-Pro/config"
	"github.com/Cj170303/PPIA-Pro/internal/client"
	"github.com/Cj170303/PPIA-Pro/internal/handlers"
	"github.com/Cj170303/PPIA-Pro/internal/repository"
	"github.com/Cj170303/PPIA-Pro/internal/server"
	"github.com/Cj170303/PPIA-Pro/internal/service"
	"github.com/Cj170303/PPIA-Pro/internal/web"
	"github.com/Cj170303/PPIA-Pro/pkg/cache"
	"github.com/Cj170303/PPIA-Pro/pkg/logger"
	"github.com/Cj170303/PPIA-Pro/pkg/tracing"

	_ "github.com/Cj170303/PPIA-Pro/docs"

	"github.com/gin-gonic/gin"
)

// @title PPIA Pro web API
// @version 1.0
// @description JSON endpoints used by the PPIA Pro quiz pages
// @termsOfService http://swagger.io/terms/

// @host localhost:8080
// @BasePath /

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing, log)
	cancel()
	if err != nil {
		log.Fatal("failed to init tracing", "error", err)
	}

	var store service.SessionStore
	var ready handlers.ReadyCheck
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Warn("failed to connect to Redis, sessions kept in memory", "error", err)
		store = repository.NewMemoryStore(cfg.Session.TTL, cfg.Session.HandoffTTL)
	} else {
		log.Info("connected to Redis", "addr", cfg.Redis.Host+":"+cfg.Redis.Port)
		defer redisClient.Close()
		store = repository.NewSessionRepository(redisClient, cfg.Session.TTL, cfg.Session.HandoffTTL)
		ready = redisClient.Ping
	}

	quizAPI := client.NewQuizAPIClient(cfg.Backend)
	defer quizAPI.Close()

	authService := service.NewAuthService(quizAPI, store, cfg.Roster, log)
	dashboardService := service.NewDashboardService(quizAPI, store, log)
	quizService := service.NewQuizService(quizAPI, store, log)

	templates, err := web.Templates()
	if err != nil {
		log.Fatal("failed to parse templates", "error", err)
	}

	pages := handlers.NewPages(store, log)

	gin.SetMode(cfg.Server.Mode)
	router := server.NewRouter(server.RouterConfig{
		Templates:        templates,
		Logger:           log,
		Store:            store,
		Session:          cfg.Session,
		CORS:             cfg.CORS,
		ServiceName:      cfg.Tracing.ServiceName,
		Tracing:          cfg.Tracing.Enabled,
		AuthHandler:      handlers.NewAuthHandler(authService, pages, cfg.Session),
		DashboardHandler: handlers.NewDashboardHandler(dashboardService, pages),
		QuizHandler:      handlers.NewQuizHandler(quizService, pages),
		AppHandler:       handlers.NewAppHandler(dashboardService, pages),
		HealthHandler:    handlers.NewHealthHandler("ppia-web", ready),
	})

	addr := cfg.GetServerAddress()
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("PPIA web starting", "addr", addr, "backend", cfg.Backend.BaseURL)
	log.Info("Swagger doc available", "url", "http://"+addr+"/swagger/index.html")

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing shutdown failed", "error", err)
	}

	log.Info("PPIA web stopped")
}
