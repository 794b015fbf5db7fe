package comments

import (
	"context"
	"log"

	"github.com/samber/mo"

	"figmarelay/clients"
	"figmarelay/core"
	"figmarelay/models"
)

type CommentsService struct {
	figmaClient clients.FigmaClient
}

func NewCommentsService(figmaClient clients.FigmaClient) *CommentsService {
	return &CommentsService{
		figmaClient: figmaClient,
	}
}

// ResolveNodeID returns the node a comment is pinned to.
// For replies callers must pass the parent comment ID since replies carry no anchor of their own.
func (s *CommentsService) ResolveNodeID(ctx context.Context, commentID, fileKey string) mo.Option[string] {
	maybeComment := s.findComment(ctx, commentID, fileKey)
	if !maybeComment.IsPresent() {
		return mo.None[string]()
	}

	comment := maybeComment.MustGet()
	if comment.ClientMeta == nil || comment.ClientMeta.NodeID == "" {
		log.Printf("⚠️ Comment %s in file %s is not pinned to a node", commentID, fileKey)
		return mo.None[string]()
	}

	return mo.Some(comment.ClientMeta.NodeID)
}

// ResolveParentMessage returns the raw text of the comment being replied to
func (s *CommentsService) ResolveParentMessage(ctx context.Context, parentID, fileKey string) mo.Option[string] {
	maybeComment := s.findComment(ctx, parentID, fileKey)
	if !maybeComment.IsPresent() {
		return mo.None[string]()
	}

	return mo.Some(maybeComment.MustGet().Message)
}

// findComment fetches the full comment list of a file and picks one comment by ID
func (s *CommentsService) findComment(ctx context.Context, commentID, fileKey string) mo.Option[models.FigmaComment] {
	if commentID == "" || fileKey == "" {
		log.Printf("⚠️ Skipping comment lookup with empty comment ID or file key (comment: %q, file: %q)", commentID, fileKey)
		return mo.None[models.FigmaComment]()
	}

	comments, err := s.figmaClient.ListComments(ctx, fileKey)
	if err != nil {
		if core.IsNotFoundError(err) {
			log.Printf("❌ Comments for file %s are not accessible: %v", fileKey, err)
		} else {
			log.Printf("❌ Failed to fetch comments for file %s: %v", fileKey, err)
		}
		return mo.None[models.FigmaComment]()
	}

	for _, comment := range comments {
		if comment.ID == commentID {
			return mo.Some(comment)
		}
	}

	log.Printf("⚠️ Comment %s not found in file %s (%d comments scanned)", commentID, fileKey, len(comments))
	return mo.None[models.FigmaComment]()
}
