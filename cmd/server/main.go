package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rmaffei/partygames-go/internal/api"
	"github.com/rmaffei/partygames-go/internal/factory"
	redisstorage "github.com/rmaffei/partygames-go/internal/storage/redis"
)

type serverConfig struct {
	bind        string
	port        int
	storageType string
	redisURL    string
	verbose     bool
}

func (c *serverConfig) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.storageType == factory.StorageTypeRedis && c.redisURL == "" {
		return errors.New("--redis-url is required when --storage is redis")
	}
	return nil
}

func newCmd(cfg *serverConfig) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("PARTYGAMES")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "partygames-server",
		Short:         "REST backend for the party-game session app.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: PARTYGAMES_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: PARTYGAMES_PORT)")
	fs.StringVar(&cfg.storageType, "storage", factory.StorageTypeMemory, "storage backend: memory or redis (env: PARTYGAMES_STORAGE)")
	fs.StringVar(&cfg.redisURL, "redis-url", "", "redis connection URL (env: PARTYGAMES_REDIS_URL)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "enable debug logging (env: PARTYGAMES_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	return cmd
}

func run(ctx context.Context, cfg *serverConfig) error {
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.storageType,
	}
	if cfg.storageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.redisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		Catalog:           app.Catalog,
		RosterService:     app.RosterService,
		SessionController: app.SessionController,
		RecommendService:  app.RecommendService,
	})

	serverCfg := api.DefaultServerConfig()
	serverCfg.Host = cfg.bind
	serverCfg.Port = cfg.port
	server := api.NewServer(router, serverCfg, logger)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			return err
		}
	}

	logger.Info("server stopped")
	return nil
}

func main() {
	cfg := &serverConfig{}
	if err := newCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
