package discord

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"figmarelay/clients"
	"figmarelay/models"
)

// DiscordWebhookClient implements the clients.DiscordWebhookClient interface
type DiscordWebhookClient struct {
	// session is only used for its REST plumbing; webhooks need no bot token
	session    *discordgo.Session
	webhookURL string
}

// NewDiscordWebhookClient creates a client that posts to a single channel webhook URL
func NewDiscordWebhookClient(httpClient *http.Client, webhookURL string) (clients.DiscordWebhookClient, error) {
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Client = httpClient
	session.UserAgent = "figmarelay (https://github.com/bwmarrin/discordgo)"

	return &DiscordWebhookClient{
		session:    session,
		webhookURL: webhookURL,
	}, nil
}

// ExecuteWebhook posts the payload once. Rate limits and gateway errors are not retried.
func (c *DiscordWebhookClient) ExecuteWebhook(ctx context.Context, payload *models.DiscordWebhookPayload) error {
	_, err := c.session.Request(
		http.MethodPost,
		c.webhookURL,
		payload,
		discordgo.WithContext(ctx),
		discordgo.WithRestRetries(0),
		discordgo.WithRetryOnRatelimit(false),
	)
	if err != nil {
		return fmt.Errorf("failed to execute Discord webhook: %w", err)
	}
	return nil
}
