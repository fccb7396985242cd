package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Setting keys shared by flags, environment variables and config.yaml.
const (
	KeyProvider        = "provider"
	KeyDB              = "db"
	KeyData            = "data"
	KeyTheme           = "theme"
	KeyTab             = "tab"
	KeyLogFile         = "log-file"
	KeyCommitThreshold = "commit-threshold"
	KeyHintThreshold   = "hint-threshold"
	KeySettleDelay     = "settle-delay"
)

// Settings is the resolved runtime configuration.
type Settings struct {
	Provider        string
	DBPath          string
	DataFile        string
	Theme           string
	Tab             string
	LogFile         string
	CommitThreshold float64
	HintThreshold   float64
	SettleDelay     time.Duration
}

var envReplacer = strings.NewReplacer("-", "_")

// NewViper returns a viper instance bound to CONCIERGERIE_* environment
// variables with defaults rooted at dataDir.
func NewViper(dataDir string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()
	SetDefaults(v, dataDir)
	return v
}

// ReadConfigFile merges config.yaml from dir when it exists.
func ReadConfigFile(v *viper.Viper, dir string) error {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// SetDefaults registers defaults rooted at dataDir.
func SetDefaults(v *viper.Viper, dataDir string) {
	v.SetDefault(KeyProvider, ProviderMemory)
	v.SetDefault(KeyDB, filepath.Join(dataDir, DBFileName))
	v.SetDefault(KeyData, "")
	v.SetDefault(KeyTheme, "default")
	v.SetDefault(KeyTab, "home")
	v.SetDefault(KeyLogFile, filepath.Join(dataDir, LogFileName))
	v.SetDefault(KeyCommitThreshold, CommitThreshold)
	v.SetDefault(KeyHintThreshold, HintThreshold)
	v.SetDefault(KeySettleDelay, SettleDelay)
}

// FromViper reads every setting key out of v.
func FromViper(v *viper.Viper) Settings {
	return Settings{
		Provider:        strings.ToLower(strings.TrimSpace(v.GetString(KeyProvider))),
		DBPath:          v.GetString(KeyDB),
		DataFile:        v.GetString(KeyData),
		Theme:           v.GetString(KeyTheme),
		Tab:             v.GetString(KeyTab),
		LogFile:         v.GetString(KeyLogFile),
		CommitThreshold: v.GetFloat64(KeyCommitThreshold),
		HintThreshold:   v.GetFloat64(KeyHintThreshold),
		SettleDelay:     v.GetDuration(KeySettleDelay),
	}
}

func (s Settings) Validate() error {
	switch s.Provider {
	case ProviderMemory:
	case ProviderSQLite:
		if strings.TrimSpace(s.DBPath) == "" {
			return fmt.Errorf("%w: sqlite provider needs a database path", ErrInvalidSettings)
		}
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidSettings, s.Provider)
	}
	if s.CommitThreshold <= 0 {
		return fmt.Errorf("%w: commit threshold must be positive", ErrInvalidSettings)
	}
	if s.HintThreshold <= 0 || s.HintThreshold >= s.CommitThreshold {
		return fmt.Errorf("%w: hint threshold must be positive and below the commit threshold", ErrInvalidSettings)
	}
	if s.SettleDelay < 0 {
		return fmt.Errorf("%w: settle delay must not be negative", ErrInvalidSettings)
	}
	return nil
}
