package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentBody_UnmarshalJSON(t *testing.T) {
	t.Run("list of fragments", func(t *testing.T) {
		var body CommentBody
		err := json.Unmarshal([]byte(`[{"text":"Hi "},{"mention":"123"},{"text":"check this"}]`), &body)
		require.NoError(t, err)

		assert.True(t, body.IsList)
		assert.Equal(t, []CommentFragment{{Text: "Hi "}, {Mention: "123"}, {Text: "check this"}}, body.Fragments)
	})

	t.Run("single fragment", func(t *testing.T) {
		var body CommentBody
		err := json.Unmarshal([]byte(`{"text":"Please review"}`), &body)
		require.NoError(t, err)

		assert.False(t, body.IsList)
		assert.Equal(t, []CommentFragment{{Text: "Please review"}}, body.Fragments)
	})

	t.Run("null", func(t *testing.T) {
		var body CommentBody
		err := json.Unmarshal([]byte(`null`), &body)
		require.NoError(t, err)

		assert.False(t, body.IsList)
		assert.Empty(t, body.Fragments)
	})

	t.Run("invalid shape", func(t *testing.T) {
		var body CommentBody
		err := json.Unmarshal([]byte(`"just a string"`), &body)
		assert.Error(t, err)
	})
}

func TestFigmaEvent_Decode(t *testing.T) {
	payload := `{
		"event_type": "FILE_COMMENT",
		"file_key": "abc123",
		"file_name": "Landing",
		"comment": [{"text": "Nice"}],
		"comment_id": "77",
		"parent_id": "42",
		"resolved_at": "",
		"triggered_by": {"id": "u1", "handle": "jo", "img_url": "https://img/jo.png"},
		"timestamp": "2024-05-01T10:00:00Z"
	}`

	var event FigmaEvent
	require.NoError(t, json.Unmarshal([]byte(payload), &event))

	assert.Equal(t, FigmaEventTypeFileComment, event.EventType)
	assert.Equal(t, "abc123", event.FileKey)
	assert.Equal(t, "jo", event.TriggeredBy.Handle)
	assert.Equal(t, "https://img/jo.png", event.TriggeredBy.ImgURL)
	assert.True(t, event.IsReply())
	assert.True(t, event.Comment.IsList)
}

func TestFigmaEvent_IsReply(t *testing.T) {
	assert.False(t, (&FigmaEvent{}).IsReply())
	assert.True(t, (&FigmaEvent{ParentID: "42"}).IsReply())
}

func TestCommentBody_MarshalJSON_KeepsShape(t *testing.T) {
	single, err := json.Marshal(CommentBody{Fragments: []CommentFragment{{Text: "a"}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"a"}`, string(single))

	list, err := json.Marshal(CommentBody{IsList: true, Fragments: []CommentFragment{{Mention: "9"}}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"mention":"9"}]`, string(list))
}
