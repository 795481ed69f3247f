// Package config loads game settings. Sources are applied in order, later
// ones winning: built-in defaults, a TOML file, a .env file and PINGPONG_*
// environment variables, then command-line flags.
//
// The playfield size is fixed and deliberately absent here.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const envPrefix = "PINGPONG_"

type Config struct {
	// Seed for the ball RNG. 0 picks a time-based seed.
	Seed   int64        `toml:"seed"`
	Audio  AudioConfig  `toml:"audio"`
	Window WindowConfig `toml:"window"`
	Log    LogConfig    `toml:"log"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // linear, 0-1
	// SoundDir holds waiting_to_start.wav, game_start.wav, ball_hit.wav and
	// score_sound.wav. Empty uses the built-in synthesised cues.
	SoundDir string `toml:"sound_dir"`
}

type WindowConfig struct {
	Title string  `toml:"title"`
	Scale float64 `toml:"scale"`
}

type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
	JSON  bool   `toml:"json"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Window: WindowConfig{
			Title: "Ping Pong",
			Scale: 1,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath is ~/.config/ping-pong/config.toml.
func DefaultPath() string {
	h, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(h, ".config", "ping-pong", "config.toml")
}

// Load builds the configuration for a binary called name from args
// (without the program name).
func Load(name string, args []string) (Config, error) {
	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	path := fset.String("config", DefaultPath(), "path to the TOML config file")
	envFile := fset.String("env", ".env", "path to an optional .env file")
	mute := fset.Bool("mute", false, "disable audio")
	volume := fset.Float64("volume", 0, "master volume 0-1")
	sounds := fset.String("sounds", "", "directory of WAV cue files")
	scale := fset.Float64("scale", 0, "window scale factor")
	logLevel := fset.String("log-level", "", "log level: debug, info, warn, error")
	logJSON := fset.Bool("log-json", false, "log as JSON")
	seed := fset.Int64("seed", 0, "ball RNG seed (0 = time based)")
	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}
	set := map[string]bool{}
	fset.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg := Default()
	if err := loadFile(&cfg, *path, set["config"]); err != nil {
		return Config{}, err
	}
	if err := godotenv.Load(*envFile); err != nil && (set["env"] || !errors.Is(err, fs.ErrNotExist)) {
		return Config{}, fmt.Errorf("load env file %s: %w", *envFile, err)
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}

	if set["mute"] {
		cfg.Audio.Enabled = !*mute
	}
	if set["volume"] {
		cfg.Audio.Volume = *volume
	}
	if set["sounds"] {
		cfg.Audio.SoundDir = *sounds
	}
	if set["scale"] {
		cfg.Window.Scale = *scale
	}
	if set["log-level"] {
		cfg.Log.Level = *logLevel
	}
	if set["log-json"] {
		cfg.Log.JSON = *logJSON
	}
	if set["seed"] {
		cfg.Seed = *seed
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadFile overlays the TOML file at path. A missing file is only an error
// when the path was asked for explicitly.
func loadFile(cfg *Config, path string, explicit bool) error {
	_, err := toml.DecodeFile(path, cfg)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return nil
	}
	return fmt.Errorf("read config %s: %w", path, err)
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(envPrefix + "AUDIO_ENABLED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sAUDIO_ENABLED: %w", envPrefix, err)
		}
		cfg.Audio.Enabled = b
	}
	if v, ok := lookup(envPrefix + "VOLUME"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sVOLUME: %w", envPrefix, err)
		}
		cfg.Audio.Volume = f
	}
	if v, ok := lookup(envPrefix + "SOUND_DIR"); ok {
		cfg.Audio.SoundDir = v
	}
	if v, ok := lookup(envPrefix + "SCALE"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sSCALE: %w", envPrefix, err)
		}
		cfg.Window.Scale = f
	}
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookup(envPrefix + "LOG_JSON"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sLOG_JSON: %w", envPrefix, err)
		}
		cfg.Log.JSON = b
	}
	if v, ok := lookup(envPrefix + "SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", envPrefix, err)
		}
		cfg.Seed = n
	}
	return nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %v outside [0,1]", c.Audio.Volume)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window scale must be positive, got %v", c.Window.Scale)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
