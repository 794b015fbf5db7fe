package services

import (
	"context"

	"github.com/samber/mo"
)

// CommentsService resolves data about existing Figma comments.
// Lookups never fail: a missing comment and a failed remote call both come back as mo.None.
type CommentsService interface {
	ResolveNodeID(ctx context.Context, commentID, fileKey string) mo.Option[string]
	ResolveParentMessage(ctx context.Context, parentID, fileKey string) mo.Option[string]
}

// TextReplacer rewrites free-form comment text
type TextReplacer interface {
	Replace(text string) string
}
