package cli

import "os"

// Config holds CLI configuration
type Config struct {
	ServerURL string
	ClientID  string
	Output    string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("PARTYCTL_SERVER", "http://localhost:8080"),
		ClientID:  os.Getenv("PARTYCTL_CLIENT_ID"),
		Output:    "text",
	}
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
