// Package providers abstracts the conversational language model behind a
// request/response contract. The core never depends on a concrete vendor:
// adapters translate the shared Message/ToolDefinition shapes to each SDK.
package providers

import "context"

// Role values for conversation messages.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is one entry of the conversation transcript.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`

	// ToolCalls is set on assistant messages requesting command execution.
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
	// ToolCallID is set on tool messages carrying an execution result.
	ToolCallID string `json:"tool_call_id,omitempty"`
}

// ToolCall is a named command invocation produced by the model.
type ToolCall struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

// ToolDefinition describes a command the model may invoke. Parameters is a
// JSON schema object.
type ToolDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// LLMResponse is the model's reply: free text, tool calls, or both.
type LLMResponse struct {
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// LLMProvider is the port every model vendor adapter implements.
type LLMProvider interface {
	Chat(ctx context.Context, messages []Message, tools []ToolDefinition, model string) (*LLMResponse, error)
	DefaultModel() string
}
