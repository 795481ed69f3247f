// Package app wires configuration, logging and audio into a Match. Both
// frontends start from here.
package app

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/Garsondee/Ping-Pong/internal/audio"
	"github.com/Garsondee/Ping-Pong/internal/config"
	"github.com/Garsondee/Ping-Pong/internal/game"
	"github.com/Garsondee/Ping-Pong/internal/logger"
)

// openPlayer opens the audio device; replaced in tests.
var openPlayer = func(bank *audio.Bank, volume float64) (game.Sounds, func(), error) {
	p, err := audio.NewPlayer(bank, volume)
	if err != nil {
		return nil, nil, err
	}
	return p, p.Close, nil
}

type App struct {
	Config config.Config
	Match  *game.Match
	Logger *slog.Logger

	closeAudio func()
}

// New loads the configuration for the named binary from args and builds a
// match ready to Step. Close must be called to release the audio device.
func New(name string, args []string) (*App, error) {
	cfg, err := config.Load(name, args)
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.Log.Level, cfg.Log.JSON)
	log := logger.With("component", name)

	a := &App{Config: cfg, Logger: log}

	sounds, err := a.openAudio()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("match ready", "seed", seed, "audio", cfg.Audio.Enabled, "sounds", cfg.Audio.SoundDir)

	a.Match = game.NewMatch(
		game.WithRand(rand.New(rand.NewSource(seed))), // #nosec G404 -- game only
		game.WithSounds(sounds),
		game.WithLogger(log),
	)
	return a, nil
}

// openAudio picks the cue player. With audio enabled, a missing device or
// sound directory is a startup error.
func (a *App) openAudio() (game.Sounds, error) {
	if !a.Config.Audio.Enabled {
		return audio.Nop{}, nil
	}

	bank := audio.NewSynthBank(audio.DefaultSampleRate)
	if dir := a.Config.Audio.SoundDir; dir != "" {
		b, err := audio.LoadBank(dir, audio.DefaultSampleRate)
		if err != nil {
			return nil, fmt.Errorf("load sounds: %w", err)
		}
		bank = b
	}

	sounds, closeAudio, err := openPlayer(bank, a.Config.Audio.Volume)
	if err != nil {
		return nil, fmt.Errorf("open audio: %w", err)
	}
	a.closeAudio = closeAudio
	return sounds, nil
}

// Close releases the audio device.
func (a *App) Close() {
	if a.closeAudio != nil {
		a.closeAudio()
		a.closeAudio = nil
	}
}
