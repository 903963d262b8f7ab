package redis

import (
	"fmt"

	"github.com/rmaffei/partygames-go/internal/model"
)

// Key prefix for all session-related data
const keyPrefix = "partygames"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playerOrderKey returns the Redis key for the player insertion-order list
func playerOrderKey() string {
	return fmt.Sprintf("%s:idx:player_order", keyPrefix)
}

// settingsKey returns the Redis key for the game settings
func settingsKey() string {
	return fmt.Sprintf("%s:settings", keyPrefix)
}

// sessionKey returns the Redis key for the session record
func sessionKey() string {
	return fmt.Sprintf("%s:session", keyPrefix)
}
