// Package config loads wordgrid settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/samdwyer/wordgrid/internal/game"
	"github.com/samdwyer/wordgrid/internal/words"
)

// Word source kinds.
const (
	SourceEmbedded = "embedded"
	SourceAPI      = "api"
)

// Config holds every setting the binary reads at startup.
type Config struct {
	LogLevel string `env:"WORDGRID_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"WORDGRID_LOG_FILE"  envDefault:"wordgrid.log"`

	WordSource    string        `env:"WORDGRID_WORD_SOURCE"     envDefault:"embedded"`
	AnswersFile   string        `env:"WORDGRID_ANSWERS_FILE"`
	AllowedFile   string        `env:"WORDGRID_ALLOWED_FILE"`
	RandomWordURL string        `env:"WORDGRID_RANDOM_WORD_URL" envDefault:"https://random-word-api.herokuapp.com/word"`
	DictionaryURL string        `env:"WORDGRID_DICTIONARY_URL"  envDefault:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	HTTPTimeout   time.Duration `env:"WORDGRID_HTTP_TIMEOUT"    envDefault:"5s"`
	RetryMaxTries uint          `env:"WORDGRID_RETRY_MAX_TRIES" envDefault:"5"`

	// Seed for answer selection. 0 picks a random seed.
	Seed int64 `env:"WORDGRID_SEED" envDefault:"0"`

	MaxRows        int           `env:"WORDGRID_MAX_ROWS"        envDefault:"6"`
	RejectRepeated bool          `env:"WORDGRID_REJECT_REPEATED" envDefault:"true"`
	AutoReset      time.Duration `env:"WORDGRID_AUTO_RESET"      envDefault:"2s"`
	Toast          time.Duration `env:"WORDGRID_TOAST"           envDefault:"1500ms"`

	Telemetry        bool   `env:"WORDGRID_TELEMETRY"         envDefault:"false"`
	HoneycombKey     string `env:"HONEYCOMB_WORDGRID_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_WORDGRID_DATASET" envDefault:"wordgrid"`
}

// Load reads an optional .env file and then the environment.
// A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	// Not fatal - variables may be set directly
	_ = godotenv.Load(files...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	switch c.WordSource {
	case SourceEmbedded, SourceAPI:
	default:
		return fmt.Errorf("config: unknown word source %q", c.WordSource)
	}
	if c.MaxRows < 1 {
		return fmt.Errorf("config: max rows must be positive, got %d", c.MaxRows)
	}
	if c.RetryMaxTries < 1 {
		return fmt.Errorf("config: retry max tries must be positive")
	}
	if c.AnswersFile != "" && c.AllowedFile == "" {
		return fmt.Errorf("config: WORDGRID_ANSWERS_FILE needs WORDGRID_ALLOWED_FILE")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Game returns the controller settings.
func (c Config) Game() game.Config {
	gc := game.Config{
		ToastDuration:  c.Toast,
		AutoResetDelay: c.AutoReset,
	}
	if c.RejectRepeated {
		gc.Rules = append(gc.Rules, game.RepeatedLetterRule)
	}
	return gc
}

// API returns the HTTP word source settings.
func (c Config) API() words.APIConfig {
	return words.APIConfig{
		RandomWordURL: c.RandomWordURL,
		DictionaryURL: c.DictionaryURL,
		MaxTries:      c.RetryMaxTries,
		Timeout:       c.HTTPTimeout,
	}
}

// Level returns the log level. Validate has already rejected bad names.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
