package game

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Environment variable names.
const (
	EnvLevel       = "SPIDER_LEVEL"
	EnvMouseSens   = "SPIDER_MOUSE_SENS"
	EnvInvertY     = "SPIDER_INVERT_Y"
	EnvMusicVolume = "SPIDER_MUSIC_VOLUME"
	EnvSFXVolume   = "SPIDER_SFX_VOLUME"
	EnvDebug       = "SPIDER_DEBUG"
	EnvLogLevel    = "SPIDER_LOG_LEVEL"
)

// Settings are the user-tunable knobs, read from the environment.
// The envDefault tags must agree with DefaultSettings.
type Settings struct {
	LevelPath        string     `env:"SPIDER_LEVEL"`
	MouseSensitivity float64    `env:"SPIDER_MOUSE_SENS" envDefault:"0.3"` // degrees per pixel
	InvertY          bool       `env:"SPIDER_INVERT_Y" envDefault:"false"`
	MusicVolume      float64    `env:"SPIDER_MUSIC_VOLUME" envDefault:"0.1"`
	SFXVolume        float64    `env:"SPIDER_SFX_VOLUME" envDefault:"0.6"`
	Debug            bool       `env:"SPIDER_DEBUG" envDefault:"false"`
	LogLevel         slog.Level `env:"SPIDER_LOG_LEVEL" envDefault:"info"`
}

func DefaultSettings() Settings {
	return Settings{
		MouseSensitivity: MouseSensitivity,
		MusicVolume:      0.1,
		SFXVolume:        0.6,
		LogLevel:         slog.LevelInfo,
	}
}

// LoadSettingsFromEnv reads the process environment.
func LoadSettingsFromEnv() (Settings, error) {
	return LoadSettings(env.ToMap(os.Environ()))
}

// LoadSettings parses settings from environ alone; unset or empty variables
// keep their defaults.
func LoadSettings(environ map[string]string) (Settings, error) {
	if environ == nil {
		// A nil map would make env fall back to the process environment.
		environ = map[string]string{}
	}
	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Environment: environ}); err != nil {
		return s, fmt.Errorf("settings: %w", err)
	}
	s.LevelPath = strings.TrimSpace(s.LevelPath)

	ranges := []struct {
		key    string
		v      float64
		lo, hi float64
	}{
		{EnvMouseSens, s.MouseSensitivity, 0.01, 5},
		{EnvMusicVolume, s.MusicVolume, 0, 1},
		{EnvSFXVolume, s.SFXVolume, 0, 1},
	}
	for _, r := range ranges {
		if r.v < r.lo || r.v > r.hi {
			return s, fmt.Errorf("%s: %v outside [%v, %v]", r.key, r.v, r.lo, r.hi)
		}
	}
	return s, nil
}
