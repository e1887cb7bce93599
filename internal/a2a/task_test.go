package a2a

import (
	"testing"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerylCAtieno/a2ui-agent/internal/a2ui"
)

func TestBuildTask(t *testing.T) {
	msgs := a2ui.EncodeAt("title", "2026-01-01T00:00:00.000000Z")
	task := BuildTask(msgs)

	assert.Equal(t, KindTask, task.Kind)
	assert.Equal(t, StateCompleted, task.Status.State)
	assert.Empty(t, task.Artifacts)
	assert.Empty(t, task.History)

	_, err := time.Parse(time.RFC3339Nano, task.Status.Timestamp)
	require.NoError(t, err)

	require.NotNil(t, task.Status.Message)
	msg := task.Status.Message
	assert.Equal(t, KindMessage, msg.Kind)
	assert.Equal(t, RoleAgent, msg.Role)

	ids := []string{task.ID, task.ContextID, msg.MessageID}
	for _, id := range ids {
		_, err := uuid.Parse(id)
		require.NoError(t, err, id)
	}
	assert.NotEqual(t, task.ID, task.ContextID)
	assert.NotEqual(t, task.ID, msg.MessageID)

	require.Len(t, msg.Parts, len(msgs))
	for i, p := range msg.Parts {
		assert.Equal(t, PartKindData, p.Kind)
		assert.Equal(t, a2ui.MIMEType, p.MimeType)
		assert.Equal(t, msgs[i], p.Data)
	}
}

func TestBuildTaskFreshIDs(t *testing.T) {
	a := BuildTask(nil)
	b := BuildTask(nil)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.ContextID, b.ContextID)
	assert.NotEqual(t, a.Status.Message.MessageID, b.Status.Message.MessageID)
	assert.Empty(t, a.Status.Message.Parts)
}

func TestBuildTaskWireFormat(t *testing.T) {
	body, err := json.Marshal(BuildTask(a2ui.Encode("x")))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))

	assert.Equal(t, "task", got["kind"])
	assert.Equal(t, []any{}, got["artifacts"])
	assert.Equal(t, []any{}, got["history"])

	status := got["status"].(map[string]any)
	message := status["message"].(map[string]any)
	parts := message["parts"].([]any)
	require.Len(t, parts, 3)

	for i, kind := range []string{"surfaceUpdate", "dataModelUpdate", "beginRendering"} {
		part := parts[i].(map[string]any)
		assert.Equal(t, "data", part["kind"])
		assert.Equal(t, a2ui.MIMEType, part["mimeType"])
		data := part["data"].(map[string]any)
		assert.Len(t, data, 1)
		assert.Contains(t, data, kind)
	}
}
