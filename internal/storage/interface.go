package storage

import (
	"context"

	"github.com/rmaffei/partygames-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations. ListPlayers preserves insertion order, which
	// drives turn rotation.
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error
	DeleteAllPlayers(ctx context.Context) error

	// Settings operations
	GetSettings(ctx context.Context) (model.GameSettings, error)
	SaveSettings(ctx context.Context, settings model.GameSettings) error

	// Session operations. At most one session exists at a time.
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context) (*model.Session, error)
	DeleteSession(ctx context.Context) error
}
