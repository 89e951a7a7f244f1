package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/adapter"
	"github.com/glboysagar1-prog/study-tracker-sub000/internal/crawl"
	"github.com/glboysagar1-prog/study-tracker-sub000/internal/metrics"
	"github.com/glboysagar1-prog/study-tracker-sub000/internal/orchestrator"
	"github.com/glboysagar1-prog/study-tracker-sub000/internal/store"
	"github.com/glboysagar1-prog/study-tracker-sub000/internal/studyguide"
	"github.com/glboysagar1-prog/study-tracker-sub000/pkg/cache"
	"github.com/glboysagar1-prog/study-tracker-sub000/pkg/config"
	"github.com/glboysagar1-prog/study-tracker-sub000/pkg/database"
	"github.com/glboysagar1-prog/study-tracker-sub000/pkg/logger"
	"github.com/glboysagar1-prog/study-tracker-sub000/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("database connection failed", "error", err)
	}
	defer db.Close()

	if err := store.EnsureSchema(ctx, db); err != nil {
		logr.Sugar().Fatalw("schema setup failed", "error", err)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, visited cache is in-memory only", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	guidesFS, err := storage.NewLocalStorage(cfg.Guides.OutputDir)
	if err != nil {
		logr.Sugar().Fatalw("guides storage setup failed", "error", err)
	}

	collector := metrics.New()
	if cfg.Metrics.Enabled {
		startDebugListener(cfg, collector, logr)
	}

	contentStore := store.New(db, collector, logr)
	summarizer := studyguide.NewSummarizer(cfg.AI, logr.Named("summarizer"))
	guides := studyguide.NewPipeline(summarizer, guidesFS, contentStore, logr.Named("guides"))

	deps := adapter.Deps{
		Store:   contentStore,
		Fetcher: crawl.NewFetcher(cfg.Crawl.RequestTimeout, cfg.Crawl.UserAgent),
		Visited: crawl.NewVisited(redisClient, cfg.Crawl.VisitedTTL, logr.Named("visited")),
		Crawl:   cfg.Crawl,
		Metrics: collector,
		Guides:  guides,
		Logger:  logr,
	}

	subjects := orchestrator.DefaultSubjects
	if known, err := contentStore.ListSubjects(ctx); err != nil {
		logr.Sugar().Warnw("could not list stored subjects, using the static registry only", "error", err)
	} else {
		subjects = orchestrator.MergeSubjects(subjects, known)
	}

	orch := orchestrator.New(deps, subjects, cfg.Crawl.SubjectDelay, collector, logr.Named("orchestrator"))

	logr.Sugar().Infow("ingestion run starting",
		"subjects", len(subjects),
		"env", cfg.Env)
	if err := orch.Run(ctx); err != nil {
		logr.Sugar().Fatalw("ingestion run aborted", "error", err)
	}
	logr.Sugar().Infow("ingestion run finished", "records", collector.WriteCounts())
}

// startDebugListener serves /health and /metrics for the duration of the run.
func startDebugListener(cfg *config.Config, collector *metrics.Collector, logr *zap.Logger) {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(collector.Handler()))

	addr := fmt.Sprintf(":%d", cfg.Metrics.Port)
	go func() {
		logr.Sugar().Infow("debug listener starting", "addr", addr)
		if err := r.Run(addr); err != nil {
			logr.Sugar().Errorw("debug listener failed", "error", err)
		}
	}()
}
