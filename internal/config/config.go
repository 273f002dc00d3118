package config

import (
	"flag"

	"github.com/pkg/errors"

	"github.com/diegok/solopong/internal/game"
)

// Default values for configuration
const (
	DefaultAISpeed = game.DefaultAISpeed
	DefaultSeed    = 0
)

// Config holds the application configuration
type Config struct {
	AISpeed    float64
	Seed       int64
	Muted      bool
	LogFile    string
	RecordFile string
	ReplayFile string
}

// Replaying reports whether the app should play back a trace instead of a match
func (c *Config) Replaying() bool {
	return c.ReplayFile != ""
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("solopong", flag.ContinueOnError)

	aiSpeed := fs.Float64("ai-speed", DefaultAISpeed, "AI paddle speed per tick (0 < v <= ball speed)")
	seed := fs.Int64("seed", DefaultSeed, "serve RNG seed (0 uses the clock)")
	mute := fs.Bool("mute", false, "start with sound off")
	logFile := fs.String("log", "", "write JSON logs to this file")
	record := fs.String("record", "", "record the match to this file")
	replay := fs.String("replay", "", "play back a recorded match")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected argument %q", fs.Arg(0))
	}

	// Validate: the AI must be able to move but not outrun the ball
	if *aiSpeed <= 0 || *aiSpeed > game.DefaultBallSpeed {
		return nil, errors.Errorf("ai-speed must be in (0, %g], got %g", game.DefaultBallSpeed, *aiSpeed)
	}

	// Validate: cannot record while replaying
	if *record != "" && *replay != "" {
		return nil, errors.New("cannot specify both --record and --replay")
	}

	cfg := &Config{
		AISpeed:    *aiSpeed,
		Seed:       *seed,
		Muted:      *mute,
		LogFile:    *logFile,
		RecordFile: *record,
		ReplayFile: *replay,
	}

	return cfg, nil
}
