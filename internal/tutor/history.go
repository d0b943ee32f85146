package tutor

import (
	"github.com/mantasj/gidas/internal/llm"
	"github.com/mantasj/gidas/internal/store"
)

// expandHistory turns stored exchanges into alternating conversation
// turns: each exchange contributes its message as a user turn followed
// by its response as an assistant turn. Roles come from the stored
// fields, never from row position.
func expandHistory(exchanges []store.Exchange) []llm.Message {
	msgs := make([]llm.Message, 0, len(exchanges)*2)
	for _, e := range exchanges {
		msgs = append(msgs,
			llm.Message{Role: llm.RoleUser, Content: e.Message},
			llm.Message{Role: llm.RoleAssistant, Content: e.Response},
		)
	}
	return msgs
}
