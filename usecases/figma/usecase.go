package figma

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"
	"golang.org/x/sync/errgroup"

	"figmarelay/appctx"
	"figmarelay/clients"
	"figmarelay/models"
	"figmarelay/services"
	"figmarelay/services/textreplace"
)

// ErrorAlerter reports failures that are swallowed into a response status
type ErrorAlerter interface {
	AlertOnError(err error, alertContext string)
}

// EmbedImages are the illustrative images attached to each kind of notification
type EmbedImages struct {
	ReplyURL   string
	ThreadURL  string
	VersionURL string
}

type FigmaUseCase struct {
	commentsService services.CommentsService
	discordClient   clients.DiscordWebhookClient
	replacer        services.TextReplacer
	projectName     string
	images          EmbedImages
	alerter         ErrorAlerter
}

// NewFigmaUseCase wires the formatters. An empty projectName disables the file name filter,
// empty image URLs fall back to the defaults and alerter may be nil.
func NewFigmaUseCase(
	commentsService services.CommentsService,
	discordClient clients.DiscordWebhookClient,
	replacer services.TextReplacer,
	projectName string,
	images EmbedImages,
	alerter ErrorAlerter,
) *FigmaUseCase {
	if replacer == nil {
		replacer = textreplace.NewReplacer(nil)
	}

	return &FigmaUseCase{
		commentsService: commentsService,
		discordClient:   discordClient,
		replacer:        replacer,
		projectName:     projectName,
		images:          images.withDefaults(),
		alerter:         alerter,
	}
}

// HandleFileComment turns a FILE_COMMENT event into a Discord notification
func (u *FigmaUseCase) HandleFileComment(ctx context.Context, event *models.FigmaEvent) models.NotificationResult {
	requestID := appctx.GetRequestID(ctx)
	log.Printf("📋 [%s] Starting to process comment %s on file %s", requestID, event.CommentID, event.FileKey)

	if !u.matchesProject(event.FileName) {
		log.Printf("⚠️ [%s] Ignoring comment for unknown file %q", requestID, event.FileName)
		return models.UnknownFileName()
	}

	// Replies have no anchor of their own, so both lookups go through the parent
	anchorCommentID := event.CommentID
	if event.IsReply() {
		anchorCommentID = event.ParentID
	}

	var maybeParentMessage, maybeNodeID mo.Option[string]
	var lookups errgroup.Group
	if event.IsReply() {
		lookups.Go(func() error {
			maybeParentMessage = u.commentsService.ResolveParentMessage(ctx, event.ParentID, event.FileKey)
			return nil
		})
	}
	lookups.Go(func() error {
		maybeNodeID = u.commentsService.ResolveNodeID(ctx, anchorCommentID, event.FileKey)
		return nil
	})
	_ = lookups.Wait()

	if event.IsReply() && !maybeParentMessage.IsPresent() {
		log.Printf("⚠️ [%s] Parent comment %s not found, sending reply without quote", requestID, event.ParentID)
	}

	if !maybeNodeID.IsPresent() {
		log.Printf("❌ [%s] Node ID not found for comment %s on file %s", requestID, anchorCommentID, event.FileKey)
		return models.NodeNotFound()
	}

	body := u.buildCommentBody(event, maybeParentMessage)
	payload := &models.DiscordWebhookPayload{
		Embeds: []models.DiscordEmbed{u.buildCommentEmbed(event, maybeNodeID.MustGet(), anchorCommentID, body)},
	}

	return u.send(ctx, payload, fmt.Sprintf("comment %s on file %s", event.CommentID, event.FileKey))
}

// HandleVersionUpdate turns a FILE_VERSION_UPDATE event into a Discord notification
func (u *FigmaUseCase) HandleVersionUpdate(ctx context.Context, event *models.FigmaEvent) models.NotificationResult {
	requestID := appctx.GetRequestID(ctx)
	log.Printf("📋 [%s] Starting to process version %q on file %s", requestID, event.Label, event.FileKey)

	if !u.matchesProject(event.FileName) {
		log.Printf("⚠️ [%s] Ignoring version update for unknown file %q", requestID, event.FileName)
		return models.UnknownFileName()
	}

	payload := &models.DiscordWebhookPayload{
		Embeds: []models.DiscordEmbed{u.buildVersionEmbed(event)},
	}

	return u.send(ctx, payload, fmt.Sprintf("version %q on file %s", event.Label, event.FileKey))
}

func (u *FigmaUseCase) matchesProject(fileName string) bool {
	return u.projectName == "" || fileName == u.projectName
}

func (u *FigmaUseCase) send(ctx context.Context, payload *models.DiscordWebhookPayload, subject string) models.NotificationResult {
	requestID := appctx.GetRequestID(ctx)

	if err := u.discordClient.ExecuteWebhook(ctx, payload); err != nil {
		log.Printf("❌ [%s] Failed to send Discord notification for %s: %v", requestID, subject, err)
		if u.alerter != nil {
			u.alerter.AlertOnError(err, "Discord notification for "+subject)
		}
		return models.SendFailed()
	}

	log.Printf("✅ [%s] Discord notification sent for %s", requestID, subject)
	return models.NotificationSent()
}
