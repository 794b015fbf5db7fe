package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"figmarelay/models"
)

// MockFigmaEventsUseCase implements the FigmaEventsUseCase interface for testing
type MockFigmaEventsUseCase struct {
	mock.Mock
}

func (m *MockFigmaEventsUseCase) HandleFileComment(ctx context.Context, event *models.FigmaEvent) models.NotificationResult {
	args := m.Called(ctx, event)
	return args.Get(0).(models.NotificationResult)
}

func (m *MockFigmaEventsUseCase) HandleVersionUpdate(ctx context.Context, event *models.FigmaEvent) models.NotificationResult {
	args := m.Called(ctx, event)
	return args.Get(0).(models.NotificationResult)
}
