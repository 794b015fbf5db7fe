package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"figmarelay/models"
)

var configKeys = []string{
	"DISCORD_WEBHOOK_URL",
	"FIGMA_API_TOKEN",
	"FIGMA_API_BASE_URL",
	"FIGMA_WEBHOOK_PASSCODE",
	"PROJECT_NAME",
	"REPLACE_WORDS",
	"PORT",
	"WEBHOOK_PATH",
	"REQUEST_TIMEOUT",
	"CORS_ALLOWED_ORIGINS",
	"ENVIRONMENT",
	"SERVER_LOGS_URL",
	"SLACK_ALERT_WEBHOOK_URL",
	"REPLY_IMAGE_URL",
	"THREAD_IMAGE_URL",
	"VERSION_IMAGE_URL",
}

// clearConfigEnv blanks every key for the duration of the test
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DISCORD_WEBHOOK_URL", "https://discord.com/api/webhooks/1/abc")
	t.Setenv("FIGMA_API_TOKEN", "figd_token")
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)
	setRequiredEnv(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/figma-event", cfg.WebhookPath)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "*", cfg.CORSAllowedOrigins)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Empty(t, cfg.ReplaceRules)

	assert.Equal(t, "https://discord.com/api/webhooks/1/abc", cfg.DiscordConfig.WebhookURL)
	assert.True(t, cfg.DiscordConfig.IsConfigured())
	assert.Equal(t, "figd_token", cfg.FigmaConfig.APIToken)
	assert.Equal(t, "https://api.figma.com/v1", cfg.FigmaConfig.APIBaseURL)
	assert.True(t, cfg.FigmaConfig.IsConfigured())
	assert.Empty(t, cfg.FigmaConfig.ProjectName)
	assert.Empty(t, cfg.FigmaConfig.WebhookPasscode)
	assert.False(t, cfg.SlackConfig.IsConfigured())
	assert.Equal(t, ImagesConfig{}, cfg.ImagesConfig)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearConfigEnv(t)
	setRequiredEnv(t)
	t.Setenv("PROJECT_NAME", "Website")
	t.Setenv("FIGMA_WEBHOOK_PASSCODE", "secret")
	t.Setenv("FIGMA_API_BASE_URL", "http://localhost:9000/v1")
	t.Setenv("REPLACE_WORDS", `[{"word":"foo","replacement":"bar"},{"word":"@x","replacement":"<@1>"}]`)
	t.Setenv("PORT", "9090")
	t.Setenv("WEBHOOK_PATH", "hooks/figma")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("SLACK_ALERT_WEBHOOK_URL", "https://hooks.slack.com/services/T/B/X")
	t.Setenv("THREAD_IMAGE_URL", "https://img.example.com/thread.gif")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/hooks/figma", cfg.WebhookPath)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "prod", cfg.Environment)
	assert.Equal(t, "Website", cfg.FigmaConfig.ProjectName)
	assert.Equal(t, "secret", cfg.FigmaConfig.WebhookPasscode)
	assert.Equal(t, "http://localhost:9000/v1", cfg.FigmaConfig.APIBaseURL)
	assert.True(t, cfg.SlackConfig.IsConfigured())
	assert.Equal(t, "https://img.example.com/thread.gif", cfg.ImagesConfig.ThreadURL)
	assert.Empty(t, cfg.ImagesConfig.ReplyURL)
	assert.Equal(t, []models.ReplaceRule{
		{Word: "foo", Replacement: "bar"},
		{Word: "@x", Replacement: "<@1>"},
	}, cfg.ReplaceRules)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		set     map[string]string
		wantErr string
	}{
		{
			name:    "missing discord webhook",
			set:     map[string]string{"FIGMA_API_TOKEN": "figd_token"},
			wantErr: "DISCORD_WEBHOOK_URL is not set",
		},
		{
			name:    "missing figma token",
			set:     map[string]string{"DISCORD_WEBHOOK_URL": "https://discord.com/api/webhooks/1/abc"},
			wantErr: "FIGMA_API_TOKEN is not set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for key, value := range tt.set {
				t.Setenv(key, value)
			}

			cfg, err := LoadConfig("")
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{name: "replace words not JSON", key: "REPLACE_WORDS", value: "foo=bar", wantErr: "REPLACE_WORDS"},
		{name: "replace words not a list", key: "REPLACE_WORDS", value: `{"word":"foo"}`, wantErr: "REPLACE_WORDS"},
		{name: "timeout not a duration", key: "REQUEST_TIMEOUT", value: "thirty", wantErr: "REQUEST_TIMEOUT"},
		{name: "timeout negative", key: "REQUEST_TIMEOUT", value: "-1s", wantErr: "REQUEST_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := LoadConfig("")
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearConfigEnv(t)
	// godotenv never overrides variables that exist, even when empty
	for _, key := range []string{"DISCORD_WEBHOOK_URL", "FIGMA_API_TOKEN", "PROJECT_NAME"} {
		require.NoError(t, os.Unsetenv(key))
	}

	envFile := filepath.Join(t.TempDir(), "relay.env")
	content := "DISCORD_WEBHOOK_URL=https://discord.com/api/webhooks/2/def\n" +
		"FIGMA_API_TOKEN=figd_from_file\n" +
		"PROJECT_NAME=Mobile App\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "https://discord.com/api/webhooks/2/def", cfg.DiscordConfig.WebhookURL)
	assert.Equal(t, "figd_from_file", cfg.FigmaConfig.APIToken)
	assert.Equal(t, "Mobile App", cfg.FigmaConfig.ProjectName)
}

func TestLoadConfig_MissingEnvFile(t *testing.T) {
	clearConfigEnv(t)
	setRequiredEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load env file")
}
