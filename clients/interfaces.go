package clients

import (
	"context"

	"figmarelay/models"
)

// FigmaClient reads comment data from the Figma REST API
type FigmaClient interface {
	ListComments(ctx context.Context, fileKey string) ([]models.FigmaComment, error)
}

// DiscordWebhookClient delivers embeds to a Discord channel webhook
type DiscordWebhookClient interface {
	ExecuteWebhook(ctx context.Context, payload *models.DiscordWebhookPayload) error
}
