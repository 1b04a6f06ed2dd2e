package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/mylance/mylance-api/internal/application"
	appbrand "github.com/mylance/mylance-api/internal/application/brand"
	appcontent "github.com/mylance/mylance-api/internal/application/content"
	appexport "github.com/mylance/mylance-api/internal/application/export"
	appprofiles "github.com/mylance/mylance-api/internal/application/profiles"
	appstrategy "github.com/mylance/mylance-api/internal/application/strategy"
	"github.com/mylance/mylance-api/internal/config"
	dombrand "github.com/mylance/mylance-api/internal/domain/brand"
	domprofiles "github.com/mylance/mylance-api/internal/domain/profiles"
	domstrategy "github.com/mylance/mylance-api/internal/domain/strategy"
	aiclient "github.com/mylance/mylance-api/internal/infra/ai/openai"
	mysqldb "github.com/mylance/mylance-api/internal/infra/db/mysql"
	postgresdb "github.com/mylance/mylance-api/internal/infra/db/postgres"
	"github.com/mylance/mylance-api/internal/infra/httpserver"
	objstore "github.com/mylance/mylance-api/internal/infra/storage"
	"github.com/mylance/mylance-api/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	dsn, err := cfg.DSN()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	// connect database and pick the matching repositories
	var (
		db           *sql.DB
		profileRepo  domprofiles.Repository
		brandRepo    dombrand.Repository
		strategyRepo domstrategy.Repository
	)
	switch cfg.Database.Engine {
	case "mysql":
		db, err = mysqldb.Connect(ctx, dsn)
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		profileRepo = mysqldb.NewProfileRepository(db)
		brandRepo = mysqldb.NewBrandAnalysisRepository(db)
		strategyRepo = mysqldb.NewStrategyRepository(db)
	default:
		db, err = postgresdb.Connect(ctx, dsn)
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		profileRepo = postgresdb.NewProfileRepository(db)
		brandRepo = postgresdb.NewBrandAnalysisRepository(db)
		strategyRepo = postgresdb.NewStrategyRepository(db)
	}
	defer db.Close()

	clock := application.SystemClock{}

	// init AI client
	ai := aiclient.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)

	// init services
	profilesSvc := &appprofiles.Service{Repo: profileRepo, Clock: clock}
	brandSvc := &appbrand.Service{Repo: brandRepo, Clock: clock}
	strategySvc := &appstrategy.Service{Repo: strategyRepo, Clock: clock}
	contentSvc := &appcontent.Service{
		Profiles: profileRepo,
		Brand:    brandRepo,
		Global:   strategyRepo,
		AI:       ai,
		Clock:    clock,
	}

	// object storage is optional; exports stay disabled without it
	var exportSvc *appexport.Service
	if cfg.Minio.Endpoint != "" {
		store, err := objstore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			log.Fatalf("minio init error: %v", err)
		}
		exportSvc = &appexport.Service{
			Profiles: profileRepo,
			Brand:    brandRepo,
			Store:    store,
			Clock:    clock,
		}
	}

	// init router
	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.APIKeyAuth(cfg.Auth.APIKeys))
	mux.Use(middleware.RateLimitMiddleware(60, 1))

	mux.Mount("/", httpserver.NewRouter(httpserver.Deps{
		Profiles: profilesSvc,
		Brand:    brandSvc,
		Content:  contentSvc,
		Strategy: strategySvc,
		Export:   exportSvc,
		HealthCheckers: map[string]middleware.HealthChecker{
			"database": &middleware.DatabaseHealthChecker{DB: db},
		},
	}))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
