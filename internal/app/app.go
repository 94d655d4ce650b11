package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/MrSnakeDoc/startpage/internal/config"
	"github.com/MrSnakeDoc/startpage/internal/domain"
	"github.com/MrSnakeDoc/startpage/internal/httpserver"
	"github.com/MrSnakeDoc/startpage/internal/httpserver/deps"
	"github.com/MrSnakeDoc/startpage/internal/httpserver/mw"
	"github.com/MrSnakeDoc/startpage/internal/httpserver/response"
	"github.com/MrSnakeDoc/startpage/internal/logger"
	"github.com/MrSnakeDoc/startpage/internal/redis"
	"github.com/MrSnakeDoc/startpage/internal/sources/homepage"
	"github.com/MrSnakeDoc/startpage/internal/store"
	"github.com/MrSnakeDoc/startpage/internal/store/filestore"
	redisstore "github.com/MrSnakeDoc/startpage/internal/store/redis"
	"github.com/MrSnakeDoc/startpage/internal/utils"
	"github.com/MrSnakeDoc/startpage/internal/version"
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	server  *httpserver.Server
	backend store.Backend
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Open storage early - fail fast if unavailable
	backend, err := openBackend(context.Background(), cfg, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to open %s storage: %v", cfg.Store, err)
		os.Exit(1)
	}

	tmpl := selectTemplate(cfg)
	loggerClient.Info("first-load template selected", logger.String("template", fmt.Sprintf("%T", tmpl)))

	d := deps.Deps{
		Logger:         loggerClient,
		Response:       response.New(loggerClient),
		StartTime:      time.Now(),
		Version:        version.Version,
		Commit:         version.Commit,
		BuildDate:      version.BuildDate,
		GoVersion:      version.GoVersion,
		AllowedHosts:   cfg.AllowedHosts,
		AllowedCIDRS:   cfg.AllowedCIDRS,
		TrustProxy:     cfg.TrustProxy,
		RequestTimeout: cfg.RequestTimeout,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		Backend:        backend,
		Bookmarks:      store.NewConfigStore(backend, tmpl, loggerClient),
		Notes:          store.NewNotesStore(backend),
		Todos:          store.NewTodoStore(backend),
		Capacities:     domain.Capacities{Top: cfg.TopCapacity, Bottom: cfg.BottomCapacity},
		StaticDir:      cfg.StaticDir,
		WriteLimit: mw.RateLimit(mw.RateLimitConfig{
			Burst:             cfg.WriteBurst,
			RefillPerIPPerMin: cfg.WriteRefillPerMin,
			MaxEntries:        4096,
			TrustProxy:        cfg.TrustProxy,
		}),
	}

	return &App{
		cfg:     cfg,
		logger:  loggerClient,
		server:  httpserver.New(cfg, loggerClient, d),
		backend: backend,
	}
}

// openBackend returns the document storage named by cfg.Store.
func openBackend(ctx context.Context, cfg *config.Config, log logger.Logger) (store.Backend, error) {
	switch cfg.Store {
	case config.StoreRedis:
		client, err := redis.Connect(ctx, redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, log)
		if err != nil {
			return nil, err
		}

		s := redisstore.NewStore(client)
		if names, err := s.Names(ctx); err != nil {
			log.Warn("failed to list stored documents", logger.Error(err))
		} else {
			log.Info("redis storage ready", logger.Strings("documents", names))
		}
		return s, nil

	default:
		s, err := filestore.New(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		log.Info("file storage ready", logger.String("dir", cfg.DataDir))
		return s, nil
	}
}

// selectTemplate picks what seeds the bookmarks document on first load:
// Homepage YAML files, a JSON document, or the embedded default.
func selectTemplate(cfg *config.Config) store.Template {
	ext := strings.ToLower(filepath.Ext(cfg.DefaultTemplate))
	isYAML := ext == ".yaml" || ext == ".yml"

	switch {
	case isYAML || cfg.HomepageServicesFile != "":
		t := homepage.Template{ServicesPath: cfg.HomepageServicesFile}
		if isYAML {
			t.BookmarksPath = cfg.DefaultTemplate
		}
		return t
	case cfg.DefaultTemplate != "":
		return store.FileTemplate{Path: cfg.DefaultTemplate}
	default:
		return store.EmbeddedTemplate{}
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting startpage v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("startpage %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		utils.CloseLogged(a.backend, a.logger, a.cfg.Store)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	utils.CloseLogged(a.backend, a.logger, a.cfg.Store)
	a.logger.Info("✅ startpage stopped cleanly")
	return nil
}
