package comments

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"
)

// MockCommentsService is a mock implementation of the CommentsService interface
type MockCommentsService struct {
	mock.Mock
}

func (m *MockCommentsService) ResolveNodeID(ctx context.Context, commentID, fileKey string) mo.Option[string] {
	args := m.Called(ctx, commentID, fileKey)
	return args.Get(0).(mo.Option[string])
}

func (m *MockCommentsService) ResolveParentMessage(ctx context.Context, parentID, fileKey string) mo.Option[string] {
	args := m.Called(ctx, parentID, fileKey)
	return args.Get(0).(mo.Option[string])
}
