// Command api runs the postwise HTTP service.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/skriptor-labs/postwise/internal/auth"
	"github.com/skriptor-labs/postwise/internal/auth/password"
	"github.com/skriptor-labs/postwise/internal/auth/token"
	"github.com/skriptor-labs/postwise/internal/config"
	"github.com/skriptor-labs/postwise/internal/handler"
	"github.com/skriptor-labs/postwise/internal/logger"
	"github.com/skriptor-labs/postwise/internal/server"
	"github.com/skriptor-labs/postwise/internal/store"
	"github.com/skriptor-labs/postwise/internal/store/memory"
	"github.com/skriptor-labs/postwise/internal/store/sqlite"
	"github.com/skriptor-labs/postwise/internal/version"
)

const serviceName = "postwise"

func main() {
	configFile := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.NewDefault(serviceName).Fatal("Failed to load config", logger.Fields("error", err.Error()))
	}

	logger.Init(cfg.Logging, serviceName)
	log := logger.GetGlobalLogger()

	if err := run(cfg, log); err != nil {
		log.Fatal("Service failed", logger.Fields("error", err.Error()))
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	// The signing secret lives for the process lifetime. Without a pinned
	// secret, every restart invalidates outstanding tokens.
	secret := []byte(cfg.Auth.Secret)
	if len(secret) == 0 {
		var err error
		secret, err = token.NewRandomSecret()
		if err != nil {
			return err
		}
		log.Info("Generated ephemeral signing secret; tokens will not survive a restart")
	}

	tokens, err := token.NewService(&token.Config{
		Secret: secret,
		TTL:    cfg.Auth.TokenTTL,
	})
	if err != nil {
		return err
	}

	db, err := openStore(cfg.Store, log)
	if err != nil {
		return err
	}
	defer db.Close()

	hasher := password.NewBcryptHasher(password.WithCost(cfg.Auth.BcryptCost))
	gate := auth.NewGate(tokens, db.Users(), log, handler.PublicRoutes())
	h := handler.New(db.Users(), db.Posts(), hasher, tokens, store.NewIDGenerator(), log)

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()
	srv.GinEngine().Use(gate.Middleware())
	srv.RegisterHealth(serviceName, version.Short())
	h.RegisterRoutes(srv.GinEngine())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Starting postwise", logger.Fields("version", version.Short()))
	if err := srv.Start(); err != nil {
		return err
	}

	<-ctx.Done()
	return srv.Stop(context.Background())
}

func openStore(cfg config.StoreConfig, log *logger.Logger) (store.Store, error) {
	switch cfg.Driver {
	case "memory":
		log.Warn("Using in-memory store; data will not survive a restart")
		return memory.New(), nil
	default:
		log.Info("Opening sqlite store", logger.Fields("path", cfg.Path))
		return sqlite.Open(cfg.Path)
	}
}
