package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/hksl/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "https://misguided.enterprises/hkgi/", cfg.Game.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Game.RequestTimeout)
	assert.Equal(t, domain.UnknownUserSignup, cfg.Auth.UnknownUserPolicy)
	assert.Equal(t, StoreTOML, cfg.Store.Driver)
	assert.Equal(t, filepath.Join(home, ".config", "hksl", "identities.toml"), cfg.Store.Path)
	assert.Equal(t, filepath.Join(home, ".config", "hksl", "secrets"), cfg.Store.SecretsDir)
	assert.Equal(t, 5*time.Second, cfg.Refresh.Interval)
	assert.Equal(t, 5*time.Minute, cfg.Refresh.ActiveWindow)
	assert.Equal(t, 4, cfg.Refresh.Concurrency)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.File)
}

func TestLoadReadsDefaultConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "hksl")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	contents := `[auth]
unknown_user_policy = "reject"

[refresh]
interval = "2s"
concurrency = 8

[store]
driver = "sqlite"
dsn = "/tmp/hksl.db"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(contents), 0o644))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, domain.UnknownUserReject, cfg.Auth.UnknownUserPolicy)
	assert.Equal(t, 2*time.Second, cfg.Refresh.Interval)
	assert.Equal(t, 8, cfg.Refresh.Concurrency)
	assert.Equal(t, StoreSQLite, cfg.Store.Driver)
	assert.Equal(t, "/tmp/hksl.db", cfg.Store.DSN)
	assert.Equal(t, filepath.Join(dir, "config.toml"), cfg.File)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("HKSL_GAME_BASE_URL", "http://127.0.0.1:9999/")
	t.Setenv("HKSL_SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("HKSL_SLACK_APP_TOKEN", "xapp-test")

	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[game]\nbase_url = \"http://example.invalid/\"\n"), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9999/", cfg.Game.BaseURL)
	assert.Equal(t, "xoxb-test", cfg.Slack.BotToken)
	require.NoError(t, cfg.RequireSlack())
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.toml"))
	require.ErrorContains(t, err, "read config file")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]struct {
		env  string
		val  string
		want string
	}{
		"policy":  {env: "HKSL_AUTH_UNKNOWN_USER_POLICY", val: "maybe", want: "auth.unknown_user_policy"},
		"driver":  {env: "HKSL_STORE_DRIVER", val: "mongo", want: "store.driver"},
		"timeout": {env: "HKSL_GAME_REQUEST_TIMEOUT", val: "0s", want: "game.request_timeout"},
		"window":  {env: "HKSL_REFRESH_ACTIVE_WINDOW", val: "2h", want: "refresh.active_window"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			t.Setenv(tc.env, tc.val)

			_, err := Load(viper.New(), "")
			require.ErrorContains(t, err, tc.want)
		})
	}
}

func TestRequireSlack(t *testing.T) {
	err := Config{}.RequireSlack()
	require.ErrorContains(t, err, "HKSL_SLACK_BOT_TOKEN")
	require.ErrorContains(t, err, "HKSL_SLACK_APP_TOKEN")

	err = Config{Slack: SlackConfig{BotToken: "xoxb-1", AppToken: "xoxb-2"}}.RequireSlack()
	require.ErrorContains(t, err, "app-level token")
}
