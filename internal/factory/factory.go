package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/rmaffei/partygames-go/internal/catalog"
	"github.com/rmaffei/partygames-go/internal/dependencies/clock"
	"github.com/rmaffei/partygames-go/internal/dependencies/random"
	"github.com/rmaffei/partygames-go/internal/services/recommend"
	"github.com/rmaffei/partygames-go/internal/services/roster"
	"github.com/rmaffei/partygames-go/internal/services/session"
	"github.com/rmaffei/partygames-go/internal/storage"
	"github.com/rmaffei/partygames-go/internal/storage/memory"
	redisstorage "github.com/rmaffei/partygames-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage
	Catalog *catalog.Catalog

	Clock  clock.Clock
	Random random.Random

	RosterService     *roster.Service
	SessionController *session.Controller
	RecommendService  *recommend.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Catalog overrides the built-in catalog (optional, for testing)
	Catalog *catalog.Catalog
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	return newWithDependencies(store, cat, clock.New(), random.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, cat *catalog.Catalog, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	rosterService := roster.New(store, clk, logger)
	sessionController := session.NewController(store, rosterService, cat, clk, rnd, logger)
	recommendService := recommend.New(cat)

	return &App{
		Storage:           store,
		Catalog:           cat,
		Clock:             clk,
		Random:            rnd,
		RosterService:     rosterService,
		SessionController: sessionController,
		RecommendService:  recommendService,
	}
}
