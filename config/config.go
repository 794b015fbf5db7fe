package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"figmarelay/models"
)

type DiscordConfig struct {
	WebhookURL string
}

// IsConfigured returns true if a Discord webhook to post notifications to is present
func (c DiscordConfig) IsConfigured() bool {
	return c.WebhookURL != ""
}

type FigmaConfig struct {
	APIToken        string
	APIBaseURL      string
	WebhookPasscode string // Optional, empty accepts any passcode
	ProjectName     string // Optional, empty accepts any file
}

// IsConfigured returns true if the Figma REST API can be called
func (c FigmaConfig) IsConfigured() bool {
	return c.APIToken != "" && c.APIBaseURL != ""
}

type SlackConfig struct {
	AlertWebhookURL string
}

// IsConfigured returns true if error alerts can be delivered to Slack
func (c SlackConfig) IsConfigured() bool {
	return c.AlertWebhookURL != ""
}

type ImagesConfig struct {
	ReplyURL   string
	ThreadURL  string
	VersionURL string
}

type AppConfig struct {
	Port               string // Optional with default "8080"
	WebhookPath        string // Optional with default "/figma-event"
	RequestTimeout     time.Duration
	CORSAllowedOrigins string // Optional with default "*"
	Environment        string
	ServerLogsURL      string
	ReplaceRules       []models.ReplaceRule

	DiscordConfig DiscordConfig
	FigmaConfig   FigmaConfig
	SlackConfig   SlackConfig
	ImagesConfig  ImagesConfig
}

// LoadConfig reads configuration from the environment. envFile names a dotenv file to load
// first; when empty the default .env is tried.
func LoadConfig(envFile string) (*AppConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ Could not load .env file, continuing with system env vars")
	}

	webhookURL, err := getEnvRequired("DISCORD_WEBHOOK_URL")
	if err != nil {
		return nil, err
	}

	apiToken, err := getEnvRequired("FIGMA_API_TOKEN")
	if err != nil {
		return nil, err
	}

	replaceRules, err := parseReplaceRules(os.Getenv("REPLACE_WORDS"))
	if err != nil {
		return nil, err
	}

	requestTimeout, err := time.ParseDuration(getEnvWithDefault("REQUEST_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("REQUEST_TIMEOUT is not a valid duration: %w", err)
	}
	if requestTimeout <= 0 {
		return nil, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", requestTimeout)
	}

	webhookPath := getEnvWithDefault("WEBHOOK_PATH", "/figma-event")
	if !strings.HasPrefix(webhookPath, "/") {
		webhookPath = "/" + webhookPath
	}

	config := &AppConfig{
		Port:               getEnvWithDefault("PORT", "8080"),
		WebhookPath:        webhookPath,
		RequestTimeout:     requestTimeout,
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "dev"),
		ServerLogsURL:      getEnvWithDefault("SERVER_LOGS_URL", ""),
		ReplaceRules:       replaceRules,

		DiscordConfig: DiscordConfig{
			WebhookURL: webhookURL,
		},

		FigmaConfig: FigmaConfig{
			APIToken:        apiToken,
			APIBaseURL:      getEnvWithDefault("FIGMA_API_BASE_URL", "https://api.figma.com/v1"),
			WebhookPasscode: os.Getenv("FIGMA_WEBHOOK_PASSCODE"),
			ProjectName:     os.Getenv("PROJECT_NAME"),
		},

		// Slack alerting (optional)
		SlackConfig: SlackConfig{
			AlertWebhookURL: os.Getenv("SLACK_ALERT_WEBHOOK_URL"),
		},

		// Empty values keep the built-in images
		ImagesConfig: ImagesConfig{
			ReplyURL:   os.Getenv("REPLY_IMAGE_URL"),
			ThreadURL:  os.Getenv("THREAD_IMAGE_URL"),
			VersionURL: os.Getenv("VERSION_IMAGE_URL"),
		},
	}

	if config.SlackConfig.IsConfigured() {
		log.Printf("✅ Slack error alerts configured")
	} else {
		log.Printf("⚠️ Slack error alerts not configured - failures will only be logged")
	}

	if config.FigmaConfig.ProjectName == "" {
		log.Printf("⚠️ PROJECT_NAME not set - comments from every file will be relayed")
	}

	log.Printf("✅ Loaded %d replacement rules", len(config.ReplaceRules))

	return config, nil
}

func parseReplaceRules(raw string) ([]models.ReplaceRule, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var rules []models.ReplaceRule
	if err := json.Unmarshal([]byte(raw), &rules); err != nil {
		return nil, fmt.Errorf("REPLACE_WORDS is not a valid JSON list of rules: %w", err)
	}
	return rules, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
