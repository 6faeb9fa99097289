package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/onabhani/SimpleDashboard/internal/auth"
	"github.com/onabhani/SimpleDashboard/internal/cache"
	"github.com/onabhani/SimpleDashboard/internal/config"
	"github.com/onabhani/SimpleDashboard/internal/dashboard"
	"github.com/onabhani/SimpleDashboard/internal/database"
	"github.com/onabhani/SimpleDashboard/internal/fetcher"
	"github.com/onabhani/SimpleDashboard/internal/handler"
	"github.com/onabhani/SimpleDashboard/internal/logger"
	"github.com/onabhani/SimpleDashboard/internal/menu"
	"github.com/onabhani/SimpleDashboard/internal/repository"
	"github.com/onabhani/SimpleDashboard/internal/search"
	"github.com/onabhani/SimpleDashboard/internal/settings"
	"github.com/onabhani/SimpleDashboard/internal/tiles"
	"github.com/onabhani/SimpleDashboard/pkg/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type application struct {
	DB         *pgxpool.Pool
	Redis      *redis.Client
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Handler    *handler.Handler
	limiter    *clientLimiter
}

func main() {
	ctx := context.Background()
	cfg := config.MustLoad()

	log, err := logger.NewLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infow("config loaded", "config", cfg.String())

	if err := database.Migrate(cfg.DB.DSN, log); err != nil {
		sugar.Fatal(err)
	}

	pool, err := database.Connect(ctx, cfg.DB)
	if err != nil {
		sugar.Fatal(err)
	}
	repo := repository.NewRepository(pool)

	var forms search.FormSource = repo
	rdb := cache.NewRedisClient(cfg.Redis)
	if rdb != nil {
		if err := cache.Ping(ctx, rdb); err != nil {
			sugar.Warnw("redis unavailable, forms cache disabled", "addr", cfg.Redis.Addr, "err", err)
			rdb.Close()
			rdb = nil
		} else {
			forms = cache.NewFormCache(repo, rdb, cfg.Redis.FormsTTL, log)
		}
	}

	var icons tiles.IconResolver
	if cfg.Fetch.ServiceIcons {
		icons = fetcher.NewFetcher(cfg.Fetch.Timeout, cfg.Fetch.UserAgent)
	}

	var sections []model.Section
	if cfg.Site.SectionsFile != "" {
		sections, err = menu.LoadSections(cfg.Site.SectionsFile)
		if err != nil {
			sugar.Fatal(err)
		}
	}

	sources := dashboard.DemoSources(dashboard.NewDemo(nil, nil))
	if cfg.Workflow.Enabled {
		sources.Flow = dashboard.NewStoreFlowTasks(repo, cfg.Site.AdminURL)
	}

	h := &handler.Handler{
		Logger:   log,
		Users:    repo,
		DB:       repo,
		Sessions: auth.NewSessionMaker(cfg.Session.Secret, cfg.Session.TTL),
		Search: search.NewSearcher(forms, repo, search.Options{
			AdminURL:        cfg.Site.AdminURL,
			FormConcurrency: cfg.Search.FormConcurrency,
			FormPageSize:    cfg.Search.FormPageSize,
		}),
		Dashboard: dashboard.NewService(sources),
		Menu:      menu.NewService(repo, cfg.Site.HomeURL, sections),
		Tiles:     tiles.NewService(repo, cfg.Site.HomeURL, icons, log),
		Settings:  settings.NewService(repo),
	}

	app := &application{
		DB:         pool,
		Redis:      rdb,
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Handler:    h,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
