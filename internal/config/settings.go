// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings — настройки запуска, которые можно переопределить YAML-файлом.
type Settings struct {
	SoundEnabled bool    `yaml:"soundEnabled"`
	SoundVolume  float64 `yaml:"soundVolume"` // 0.0 ~ 1.0
	Seed         int64   `yaml:"seed"`        // 0 — сид от текущего времени
	StartGame    string  `yaml:"startGame"`   // menu | defense | shooter
}

// Значения StartGame.
const (
	StartMenu    = "menu"
	StartDefense = "defense"
	StartShooter = "shooter"
)

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled: true,
		SoundVolume:  0.6,
		Seed:         0,
		StartGame:    StartMenu,
	}
}

// LoadSettings читает настройки из path. Пустой путь или отсутствующий файл
// не являются ошибкой: возвращаются значения по умолчанию.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse settings YAML from %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return DefaultSettings(), fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return settings, nil
}

// Validate проверяет диапазоны значений.
func (s Settings) Validate() error {
	if s.SoundVolume < 0 || s.SoundVolume > 1 {
		return fmt.Errorf("soundVolume must be within [0, 1], got %v", s.SoundVolume)
	}
	switch s.StartGame {
	case StartMenu, StartDefense, StartShooter:
	default:
		return fmt.Errorf("startGame must be one of menu, defense, shooter, got %q", s.StartGame)
	}
	return nil
}
