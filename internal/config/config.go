// Package config loads hksl settings from defaults, an optional TOML file and
// HKSL_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/hksl/internal/domain"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "HKSL"

	configName = "config"
	configType = "toml"
	configDir  = ".config/hksl"
)

const (
	StoreTOML     = "toml"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Config struct {
	Slack   SlackConfig
	Game    GameConfig
	Auth    AuthConfig
	Store   StoreConfig
	Refresh RefreshConfig
	Log     LogConfig
	// File is the config file that was read, empty when none was found.
	File string
}

type SlackConfig struct {
	BotToken string
	AppToken string
	Debug    bool
}

type GameConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

type AuthConfig struct {
	UnknownUserPolicy domain.UnknownUserPolicy
}

type StoreConfig struct {
	Driver     string
	Path       string
	DSN        string
	SecretsDir string
}

type RefreshConfig struct {
	Interval     time.Duration
	ActiveWindow time.Duration
	Retention    time.Duration
	Concurrency  int
	PublishRate  float64
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration into v. An explicit path must exist; otherwise a
// missing config file is not an error.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, configDir)

	setDefaults(v, baseDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(baseDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Slack: SlackConfig{
			BotToken: v.GetString("slack.bot_token"),
			AppToken: v.GetString("slack.app_token"),
			Debug:    v.GetBool("slack.debug"),
		},
		Game: GameConfig{
			BaseURL:        v.GetString("game.base_url"),
			RequestTimeout: v.GetDuration("game.request_timeout"),
		},
		Auth: AuthConfig{
			UnknownUserPolicy: domain.UnknownUserPolicy(strings.ToLower(v.GetString("auth.unknown_user_policy"))),
		},
		Store: StoreConfig{
			Driver:     strings.ToLower(v.GetString("store.driver")),
			Path:       v.GetString("store.path"),
			DSN:        v.GetString("store.dsn"),
			SecretsDir: v.GetString("store.secrets_dir"),
		},
		Refresh: RefreshConfig{
			Interval:     v.GetDuration("refresh.interval"),
			ActiveWindow: v.GetDuration("refresh.active_window"),
			Retention:    v.GetDuration("refresh.retention"),
			Concurrency:  v.GetInt("refresh.concurrency"),
			PublishRate:  v.GetFloat64("refresh.publish_rate"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		File: v.ConfigFileUsed(),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, baseDir string) {
	v.SetDefault("slack.bot_token", "")
	v.SetDefault("slack.app_token", "")
	v.SetDefault("slack.debug", false)
	v.SetDefault("game.base_url", "https://misguided.enterprises/hkgi/")
	v.SetDefault("game.request_timeout", 10*time.Second)
	v.SetDefault("auth.unknown_user_policy", string(domain.UnknownUserSignup))
	v.SetDefault("store.driver", StoreTOML)
	v.SetDefault("store.path", filepath.Join(baseDir, "identities.toml"))
	v.SetDefault("store.dsn", filepath.Join(baseDir, "hksl.sqlite"))
	v.SetDefault("store.secrets_dir", filepath.Join(baseDir, "secrets"))
	v.SetDefault("refresh.interval", 5*time.Second)
	v.SetDefault("refresh.active_window", 5*time.Minute)
	v.SetDefault("refresh.retention", 30*time.Minute)
	v.SetDefault("refresh.concurrency", 4)
	v.SetDefault("refresh.publish_rate", 10.0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

func (c Config) validate() error {
	if !c.Auth.UnknownUserPolicy.Valid() {
		return fmt.Errorf("auth.unknown_user_policy must be %q or %q, got %q", domain.UnknownUserSignup, domain.UnknownUserReject, c.Auth.UnknownUserPolicy)
	}

	switch c.Store.Driver {
	case StoreTOML, StoreSQLite, StorePostgres:
	default:
		return fmt.Errorf("store.driver must be toml, sqlite or postgres, got %q", c.Store.Driver)
	}

	if c.Game.RequestTimeout <= 0 {
		return errors.New("game.request_timeout must be positive")
	}
	if c.Refresh.Interval <= 0 {
		return errors.New("refresh.interval must be positive")
	}
	if c.Refresh.ActiveWindow > c.Refresh.Retention {
		return errors.New("refresh.active_window must not exceed refresh.retention")
	}

	return nil
}

// RequireSlack reports missing Slack credentials, which only serving needs.
func (c Config) RequireSlack() error {
	var missing []string
	if c.Slack.BotToken == "" {
		missing = append(missing, "slack.bot_token (HKSL_SLACK_BOT_TOKEN)")
	}
	if c.Slack.AppToken == "" {
		missing = append(missing, "slack.app_token (HKSL_SLACK_APP_TOKEN)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing slack credentials: %s", strings.Join(missing, ", "))
	}
	if !strings.HasPrefix(c.Slack.AppToken, "xapp-") {
		return errors.New("slack.app_token must be an app-level token (xapp-...)")
	}

	return nil
}
