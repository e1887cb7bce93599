package a2a

import (
	"github.com/go-json-experiment/json/jsontext"

	"github.com/BerylCAtieno/a2ui-agent/internal/a2ui"
	"github.com/BerylCAtieno/a2ui-agent/internal/stamp"
)

// BuildTask wraps msgs in a completed task. Every call mints new task,
// context and message ids; nothing is stored.
func BuildTask(msgs []a2ui.Message) Task {
	parts := make([]Part, 0, len(msgs))
	for _, m := range msgs {
		parts = append(parts, DataPart(a2ui.MIMEType, m))
	}

	return Task{
		Kind:      KindTask,
		ID:        stamp.NewID(),
		ContextID: stamp.NewID(),
		Status: TaskStatus{
			State:     StateCompleted,
			Timestamp: stamp.Now(),
			Message: &Message{
				Kind:      KindMessage,
				Role:      RoleAgent,
				MessageID: stamp.NewID(),
				Parts:     parts,
			},
		},
		Artifacts: []jsontext.Value{},
		History:   []Message{},
	}
}
