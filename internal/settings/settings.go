// internal/settings/settings.go
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	keySound   = "sound_enabled"
	keyMusic   = "music_enabled"
	keySeed    = "seed"
	keyShowFPS = "show_fps"

	appDir   = "swarm-shooter"
	fileName = "settings.yaml"
)

// Settings — пользовательские настройки, хранящиеся в YAML
type Settings struct {
	SoundEnabled bool  `mapstructure:"sound_enabled"`
	MusicEnabled bool  `mapstructure:"music_enabled"`
	Seed         int64 `mapstructure:"seed"` // 0 means a time-based seed
	ShowFPS      bool  `mapstructure:"show_fps"`

	path string
}

// Defaults returns the settings used when no file exists.
func Defaults() Settings {
	return Settings{SoundEnabled: true, MusicEnabled: true}
}

// DefaultPath returns the settings file location in the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, appDir, fileName), nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	d := Defaults()
	v.SetDefault(keySound, d.SoundEnabled)
	v.SetDefault(keyMusic, d.MusicEnabled)
	v.SetDefault(keySeed, d.Seed)
	v.SetDefault(keyShowFPS, d.ShowFPS)
	return v
}

// Load reads settings from path. A missing file yields defaults without an
// error. An unreadable or malformed file yields defaults plus the error, so
// callers can log it and carry on.
func Load(path string) (*Settings, error) {
	s := Defaults()
	s.path = path

	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &s, nil
		}
		return &s, fmt.Errorf("read settings %s: %w", path, err)
	}

	if err := v.Unmarshal(&s); err != nil {
		d := Defaults()
		d.path = path
		return &d, fmt.Errorf("decode settings %s: %w", path, err)
	}
	return &s, nil
}

// Path returns the file the settings were loaded from and will be saved to.
func (s *Settings) Path() string {
	return s.path
}

// Save writes the settings back to their file, creating the directory.
func (s *Settings) Save() error {
	if s.path == "" {
		return errors.New("save settings: no path")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	v := newViper(s.path)
	v.Set(keySound, s.SoundEnabled)
	v.Set(keyMusic, s.MusicEnabled)
	v.Set(keySeed, s.Seed)
	v.Set(keyShowFPS, s.ShowFPS)

	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write settings %s: %w", s.path, err)
	}
	return nil
}

func (s *Settings) ToggleSound() {
	s.SoundEnabled = !s.SoundEnabled
}

func (s *Settings) ToggleMusic() {
	s.MusicEnabled = !s.MusicEnabled
}
