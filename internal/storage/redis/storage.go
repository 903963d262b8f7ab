package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rmaffei/partygames-go/internal/model"
	"github.com/rmaffei/partygames-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	exists, err := s.client.Exists(ctx, playerKey(player.ID)).Result()
	if err != nil {
		return err
	}

	// Pipeline the value write and the order-list append so a new player
	// is never visible without a position in the rotation
	pipe := s.client.Pipeline()
	pipe.Set(ctx, playerKey(player.ID), data, s.cfg.SessionTTL)
	if exists == 0 {
		pipe.RPush(ctx, playerOrderKey(), string(player.ID))
	}
	pipe.Expire(ctx, playerOrderKey(), s.cfg.SessionTTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	ids, err := s.client.LRange(ctx, playerOrderKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(ids))
	for _, id := range ids {
		player, err := s.GetPlayer(ctx, model.PlayerID(id))
		if err != nil {
			if errors.Is(err, model.ErrPlayerNotFound) {
				// Value expired ahead of the order list; skip
				continue
			}
			return nil, err
		}
		players = append(players, player)
	}
	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	exists, err := s.client.Exists(ctx, playerKey(id)).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return model.ErrPlayerNotFound
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, playerKey(id))
	pipe.LRem(ctx, playerOrderKey(), 0, string(id))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) DeleteAllPlayers(ctx context.Context) error {
	ids, err := s.client.LRange(ctx, playerOrderKey(), 0, -1).Result()
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	for _, id := range ids {
		pipe.Del(ctx, playerKey(model.PlayerID(id)))
	}
	pipe.Del(ctx, playerOrderKey())
	_, err = pipe.Exec(ctx)
	return err
}

// Settings operations

func (s *Storage) GetSettings(ctx context.Context) (model.GameSettings, error) {
	data, err := s.client.Get(ctx, settingsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.DefaultGameSettings(), nil
		}
		return model.GameSettings{}, err
	}

	var settings model.GameSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return model.GameSettings{}, err
	}
	return settings, nil
}

func (s *Storage) SaveSettings(ctx context.Context, settings model.GameSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, settingsKey(), data, s.cfg.SessionTTL).Err()
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(), data, s.cfg.SessionTTL).Err()
}

func (s *Storage) GetSession(ctx context.Context) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context) error {
	return s.client.Del(ctx, sessionKey()).Err()
}
