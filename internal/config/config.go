package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"powersuit-server/internal/util"
)

// Config provides configuration for the Power Suit server
type Config struct {
	loaded         bool
	Addr           string   `yaml:"addr" envconfig:"addr"`
	AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	Log            struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Game Game `yaml:"game"`
}

// Game holds the timings and limits used by every room
type Game struct {
	TurnTimeout       time.Duration `yaml:"turnTimeout" envconfig:"turn_timeout"`
	BidTimeout        time.Duration `yaml:"bidTimeout" envconfig:"bid_timeout"`
	StartDelay        time.Duration `yaml:"startDelay" envconfig:"start_delay"`
	TrickDisplayDelay time.Duration `yaml:"trickDisplayDelay" envconfig:"trick_display_delay"`
	RoundEndDelay     time.Duration `yaml:"roundEndDelay" envconfig:"round_end_delay"`
	NextRoundDelay    time.Duration `yaml:"nextRoundDelay" envconfig:"next_round_delay"`
	IdleRoomTimeout   time.Duration `yaml:"idleRoomTimeout" envconfig:"idle_room_timeout"`
	DealAttempts      int           `yaml:"dealAttempts" envconfig:"deal_attempts"`
	AutoBidMin        int           `yaml:"autoBidMin" envconfig:"auto_bid_min"`
	AutoBidMax        int           `yaml:"autoBidMax" envconfig:"auto_bid_max"`
}

var config Config

// DefaultGame returns the default game timings
func DefaultGame() Game {
	return Game{
		TurnTimeout:       30 * time.Second,
		BidTimeout:        60 * time.Second,
		StartDelay:        time.Second,
		TrickDisplayDelay: 2 * time.Second,
		RoundEndDelay:     3 * time.Second,
		NextRoundDelay:    10 * time.Second,
		IdleRoomTimeout:   10 * time.Minute,
		DealAttempts:      100,
		AutoBidMin:        1,
		AutoBidMax:        7,
	}
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		Addr:           ":3000",
		AllowedOrigins: []string{"*"},
		Game:           DefaultGame(),
	}
	cfg.Log.Level = "info"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values are layered: defaults, then the YAML file, then environment variables
func Load() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	cfg := DefaultConfig()

	configFile := util.Getenv("PS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := envconfig.Process("ps", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
