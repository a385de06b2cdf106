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

	"fabrika-platform/internal/audit"
	"fabrika-platform/internal/auth"
	"fabrika-platform/internal/config"
	"fabrika-platform/internal/customers"
	"fabrika-platform/internal/httpapi"
	"fabrika-platform/internal/httperr"
	"fabrika-platform/internal/suppliers"
	"fabrika-platform/internal/users"
	"fabrika-platform/internal/validate"
	"fabrika-platform/pkg/logger"
	"fabrika-platform/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// Root context that cancels on shutdown
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env)
	slog.SetDefault(log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens, err := auth.NewManager(cfg.Auth)
	if err != nil {
		log.Error("auth init failed", "err", err)
		os.Exit(1)
	}

	mongoClient, db, err := utils.OpenMongo(rootCtx, utils.MongoConfig{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Error("mongo init failed", "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := utils.CloseMongo(context.Background(), mongoClient, 10*time.Second); err != nil {
			log.Error("mongo shutdown failed", "err", err)
		}
	}()

	rdb, err := utils.OpenRedis(rootCtx, utils.RedisConfig{Addr: cfg.RedisAddr()})
	if err != nil {
		log.Error("redis init failed", "err", err)
		os.Exit(1)
	}
	defer rdb.Close()

	// Repositories (document store) and their uniqueness indexes.
	userRepo := users.NewMongoRepo(db)
	customerRepo := customers.NewMongoRepo(db)
	supplierRepo := suppliers.NewMongoRepo(db)
	auditRepo := audit.NewMongoRepo(db)
	{
		idxCtx, cancel := context.WithTimeout(rootCtx, 30*time.Second)
		defer cancel()
		for name, ensure := range map[string]func(context.Context) error{
			"users":     userRepo.EnsureIndexes,
			"customers": customerRepo.EnsureIndexes,
			"suppliers": supplierRepo.EnsureIndexes,
			"audit":     auditRepo.EnsureIndexes,
		} {
			if err := ensure(idxCtx); err != nil {
				log.Error("index creation failed", "collection", name, "err", err)
				os.Exit(1)
			}
		}
	}

	userSvc := users.NewService(userRepo, tokens)
	customerSvc := customers.NewService(customerRepo)
	supplierSvc := suppliers.NewService(supplierRepo)
	auditSvc := audit.NewService(auditRepo)

	cookies := auth.CookieWriter{
		Secure:     cfg.IsProduction(),
		AccessTTL:  tokens.AccessTTL(),
		RefreshTTL: tokens.RefreshTTL(),
	}
	session := auth.RequireSession(tokens, userSvc, cookies)

	h := httpapi.Handlers{
		Cookies:   cookies,
		Users:     userSvc,
		Customers: customerSvc,
		Suppliers: supplierSvc,
		Audit:     auditSvc,
		Validate:  validate.New(),
		Limiter: utils.FixedWindowLimiter{
			RDB:    rdb,
			Limit:  cfg.Auth.LoginRateLimit,
			Window: cfg.Auth.LoginRateWindow,
		},
	}

	// Gin router. Wrapper order: request logging outermost, then panic
	// recovery, then error translation around every route.
	r := gin.New()
	r.Use(logger.Middleware(log))
	r.Use(httperr.Recovery(cfg.IsProduction()))
	r.Use(httperr.Translate(cfg.IsProduction()))

	registerRoutes(r, h, session, auditSvc)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("api listening", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}

	_ = logger.ShutdownFlush(shutdownCtx, 2*time.Second)
}
