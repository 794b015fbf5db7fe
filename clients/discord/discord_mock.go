package discord

import (
	"context"

	"github.com/stretchr/testify/mock"

	"figmarelay/models"
)

// MockDiscordWebhookClient implements the clients.DiscordWebhookClient interface for testing
type MockDiscordWebhookClient struct {
	mock.Mock
}

// ExecuteWebhook mocks posting a payload to the Discord webhook
func (m *MockDiscordWebhookClient) ExecuteWebhook(ctx context.Context, payload *models.DiscordWebhookPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
