package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the service settings loaded from config.yaml. Secrets
// (JWT key, admin password hash) stay in the environment, see Load.
type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	DBPath     string `yaml:"db_path"`

	API struct {
		BaseURL  string `yaml:"base_url"`
		PageSize int    `yaml:"page_size"`
		Timeout  int    `yaml:"timeout_seconds"`
	} `yaml:"api"`

	// Minimum seconds between public dataset refreshes.
	RefreshCooldown int `yaml:"refresh_cooldown_seconds"`
}

func defaults() Config {
	var cfg Config
	cfg.ListenAddr = ":8080"
	cfg.DBPath = "./speedrun_dashboard.db"
	cfg.API.BaseURL = "https://www.speedrun.com/api/v1"
	cfg.API.PageSize = 200
	cfg.API.Timeout = 10
	cfg.RefreshCooldown = 7200
	return cfg
}

// Load reads .env (optional) and the YAML config at path. A missing config
// file is not an error, the defaults above apply.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("config.Load(): no .env file found, using process environment")
	}

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("config.Load(): %s not found, using defaults", path)
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// APITimeout returns the API request timeout as a duration.
func (c Config) APITimeout() time.Duration {
	return time.Duration(c.API.Timeout) * time.Second
}

// Cooldown returns the refresh cooldown as a duration.
func (c Config) Cooldown() time.Duration {
	return time.Duration(c.RefreshCooldown) * time.Second
}
