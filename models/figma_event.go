package models

import (
	"bytes"
	"encoding/json"
)

// Figma webhook event types handled by the relay
const (
	FigmaEventTypeFileComment       = "FILE_COMMENT"
	FigmaEventTypeFileVersionUpdate = "FILE_VERSION_UPDATE"
)

type FigmaUser struct {
	ID     string `json:"id,omitempty"`
	Handle string `json:"handle"`
	ImgURL string `json:"img_url"`
}

// FigmaEvent is the webhook payload posted by Figma. Which fields are populated depends on EventType.
type FigmaEvent struct {
	EventType   string    `json:"event_type"`
	Passcode    string    `json:"passcode,omitempty"`
	Timestamp   string    `json:"timestamp"`
	WebhookID   string    `json:"webhook_id,omitempty"`
	FileKey     string    `json:"file_key"`
	FileName    string    `json:"file_name"`
	TriggeredBy FigmaUser `json:"triggered_by"`

	// FILE_COMMENT
	Comment    CommentBody `json:"comment"`
	CommentID  string      `json:"comment_id,omitempty"`
	ParentID   string      `json:"parent_id,omitempty"`
	CreatedAt  string      `json:"created_at,omitempty"`
	ResolvedAt string      `json:"resolved_at,omitempty"`
	Mentions   []FigmaUser `json:"mentions,omitempty"`

	// FILE_VERSION_UPDATE
	VersionID   string `json:"version_id,omitempty"`
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
}

// IsReply reports whether the comment answers an existing thread
func (e *FigmaEvent) IsReply() bool {
	return e.ParentID != ""
}

// CommentFragment is one piece of a comment body: plain text or a user mention
type CommentFragment struct {
	Text    string `json:"text,omitempty"`
	Mention string `json:"mention,omitempty"`
}

// CommentBody holds either a single fragment or an ordered list of fragments,
// matching the two shapes Figma uses for the "comment" field.
type CommentBody struct {
	IsList    bool
	Fragments []CommentFragment
}

func (c *CommentBody) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*c = CommentBody{}
		return nil
	}

	if trimmed[0] == '[' {
		var fragments []CommentFragment
		if err := json.Unmarshal(trimmed, &fragments); err != nil {
			return err
		}
		*c = CommentBody{IsList: true, Fragments: fragments}
		return nil
	}

	var fragment CommentFragment
	if err := json.Unmarshal(trimmed, &fragment); err != nil {
		return err
	}
	*c = CommentBody{Fragments: []CommentFragment{fragment}}
	return nil
}

func (c CommentBody) MarshalJSON() ([]byte, error) {
	if c.IsList {
		if c.Fragments == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(c.Fragments)
	}
	if len(c.Fragments) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(c.Fragments[0])
}

// FigmaComment is a comment record returned by GET /files/{key}/comments
type FigmaComment struct {
	ID         string           `json:"id"`
	FileKey    string           `json:"file_key,omitempty"`
	ParentID   string           `json:"parent_id,omitempty"`
	Message    string           `json:"message"`
	ClientMeta *FigmaClientMeta `json:"client_meta"`
	CreatedAt  string           `json:"created_at,omitempty"`
	ResolvedAt string           `json:"resolved_at,omitempty"`
	User       *FigmaUser       `json:"user,omitempty"`
}

// FigmaClientMeta is the spatial anchor of a comment. NodeID is empty for comments pinned to the canvas.
type FigmaClientMeta struct {
	NodeID string `json:"node_id,omitempty"`
}

type FigmaCommentsResponse struct {
	Comments []FigmaComment `json:"comments"`
}
