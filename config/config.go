package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/player"
)

type Config struct {
	PlayerName       string        `env:"UNO_PLAYER_NAME,default=Player"`
	Bots             int           `env:"UNO_BOTS,default=3"`
	Difficulty       string        `env:"UNO_DIFFICULTY,default=medium"`
	Rounds           int           `env:"UNO_ROUNDS,default=1"`
	AllowSkipStarter bool          `env:"UNO_ALLOW_SKIP_STARTER,default=false"`
	Delay            time.Duration `env:"UNO_DELAY,default=1s"`
	// Spectate replaces the human with a bot of each difficulty in turn.
	Spectate bool `env:"UNO_SPECTATE,default=false"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return cfg, fmt.Errorf("%w %v", consts.ErrorsConfigInvalid, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Bots < 1 || c.Bots > consts.MaxBots {
		return fmt.Errorf("%w UNO_BOTS must be between 1 and %d, got %d", consts.ErrorsConfigInvalid, consts.MaxBots, c.Bots)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("%w UNO_ROUNDS must be at least 1, got %d", consts.ErrorsConfigInvalid, c.Rounds)
	}
	if c.Delay < 0 {
		return fmt.Errorf("%w UNO_DELAY must not be negative, got %s", consts.ErrorsConfigInvalid, c.Delay)
	}
	if !c.Spectate && c.PlayerName == "" {
		return fmt.Errorf("%w UNO_PLAYER_NAME is empty", consts.ErrorsConfigInvalid)
	}
	if _, err := player.ParseDifficulty(c.Difficulty); err != nil {
		return fmt.Errorf("%w %v", consts.ErrorsConfigInvalid, err)
	}
	return nil
}

// BotDifficulty is the parsed UNO_DIFFICULTY. Call it on a validated Config.
func (c Config) BotDifficulty() player.Difficulty {
	difficulty, _ := player.ParseDifficulty(c.Difficulty)
	return difficulty
}

// Seats is the number of players at the table.
func (c Config) Seats() int {
	if c.Spectate {
		return c.Bots
	}
	return c.Bots + 1
}
