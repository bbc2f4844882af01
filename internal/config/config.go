// /internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

type Config struct {
	DiscordToken    string `env:"DISCORD_TOKEN"`
	GeminiAPIKey    string `env:"GEMINI_API_KEY"`
	TargetChannelID string `env:"TARGET_CHANNEL_ID"`
	AIProvider      string `env:"AI_PROVIDER" envDefault:"gemini"`
	AIModel         string `env:"AI_MODEL" envDefault:"gemini-1.5-flash"`
	Timezone        string `env:"TIMEZONE" envDefault:"Asia/Tokyo"`
	StoragePath     string `env:"STORAGE_PATH" envDefault:"datastore.json"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatal("Failed to parse environment: ", err)
	}

	if cfg.DiscordToken == "" {
		log.Fatal("DISCORD_TOKEN is not set")
	}

	// TARGET_CHANNEL_ID may stay empty: the loop runs but never posts.
	if cfg.TargetChannelID == "" {
		log.Println("[WARN] TARGET_CHANNEL_ID is not set, posting is disabled")
	}

	return cfg
}

// Location resolves the configured time zone. All surfacing decisions are made
// in this zone. Falls back to UTC if the zone name is unknown.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("[WARN] Unknown timezone %q, using UTC: %v", c.Timezone, err)
		return time.UTC
	}
	return loc
}
