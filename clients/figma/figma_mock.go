package figma

import (
	"context"

	"github.com/stretchr/testify/mock"

	"figmarelay/models"
)

// MockFigmaClient implements the clients.FigmaClient interface for testing
type MockFigmaClient struct {
	mock.Mock
}

// ListComments mocks fetching the comments of a file
func (m *MockFigmaClient) ListComments(ctx context.Context, fileKey string) ([]models.FigmaComment, error) {
	args := m.Called(ctx, fileKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FigmaComment), args.Error(1)
}
