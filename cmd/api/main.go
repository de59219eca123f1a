package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	server "realestate_chatbot/internal/adapters/http_server"
	"realestate_chatbot/internal/adapters/observability"
	redisad "realestate_chatbot/internal/adapters/redis"
	"realestate_chatbot/internal/app"
	"realestate_chatbot/internal/domain"
	"realestate_chatbot/internal/shared"
	"realestate_chatbot/internal/storage/jsonfile"
	mysqlrepo "realestate_chatbot/internal/storage/mysql"
)

type storage interface {
	domain.UserRepository
	domain.ChatHistoryRepository
}

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	table, err := shared.LoadPriceTable(cfg.PriceTableFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.PriceTableFile).Msg("price table invalid")
	}
	log.Info().Int("cities", len(table)).Msg("price table loaded")

	store, closeStore := openStorage(ctx, cfg)
	defer closeStore()

	// cache is optional; without redis every history read goes to storage
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(redisad.Options{
			Addr: cfg.RedisAddr, Password: cfg.RedisPass, DB: cfg.RedisDB, Prefix: cfg.RedisPrefix,
		})
		pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := rc.Ping(pctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, history cache disabled")
			_ = rc.Close()
		} else {
			defer rc.Close()
			cache = rc
			log.Info().Str("addr", cfg.RedisAddr).Msg("redis cache ok")
		}
		cancel()
	}

	engine := app.NewDefaultEngine(table)
	chat := app.NewChatService(engine, store, cache, cfg.CacheTTL)
	auth := app.NewAuthService(store, cfg.JWTSecret, cfg.AdminEmail)

	// http
	srv := server.New(cfg.RequestTimeout)
	reg := observability.InitRegistry()
	metricsSrv := observability.Serve(reg, cfg.MetricsAddr)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Chat:          chat,
		Auth:          auth,
		LoginLimiter:  server.NewIPLimiter(cfg.LoginRPS, cfg.LoginBurst),
		SecureCookies: cfg.Production(),
	})

	ln, err := listen(cfg.HTTPAddr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.HTTPAddr).Msg("listen failed")
	}
	httpSrv := &http.Server{Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", ln.Addr().String()).Str("storage", cfg.StorageDriver).Msg("API listening")
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if metricsSrv != nil {
			_ = metricsSrv.Shutdown(sctx)
		}
		return httpSrv.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("http server failed")
		return
	}
	log.Info().Msg("shutdown complete")
}

func openStorage(ctx context.Context, cfg shared.Config) (storage, func()) {
	switch cfg.StorageDriver {
	case shared.StorageMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.PingContext(ctx); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		return mysqlrepo.New(db), func() { _ = db.Close() }

	case shared.StorageFile, "":
		fs, err := jsonfile.Open(cfg.DataDir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("data dir unusable")
		}
		log.Info().Str("dir", fs.Dir()).Msg("using file-based storage")
		return fs, func() {}

	default:
		log.Fatal().Str("driver", cfg.StorageDriver).Msg("unknown STORAGE_DRIVER (want file or mysql)")
		return nil, nil
	}
}
