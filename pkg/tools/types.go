// Package tools implements the command dispatcher: the closed set of named
// operations the conversational model may invoke against the domain store.
// Failures that the conversation should absorb (entity not found, unknown
// command) are Results with OK=false and a human-readable Portuguese
// message, never errors — the transcript is the error channel.
package tools

import (
	"context"

	"github.com/miroma-app/miroma/pkg/providers"
)

// Result is the structured outcome of a command. Message always carries the
// conversational status string; OK lets callers and tests branch without
// string inspection; Entity holds a created record when one exists.
type Result struct {
	OK      bool        `json:"ok"`
	Message string      `json:"message"`
	Entity  interface{} `json:"entity,omitempty"`
}

func ok(message string) Result   { return Result{OK: true, Message: message} }
func fail(message string) Result { return Result{OK: false, Message: message} }

func created(message string, e interface{}) Result {
	return Result{OK: true, Message: message, Entity: e}
}

// Tool is one dispatchable command. Parameters returns the JSON schema
// advertised to the model.
type Tool interface {
	Name() string
	Description() string
	Parameters() map[string]interface{}
	Execute(ctx context.Context, args map[string]interface{}) Result
}

// Definition converts a tool to the provider-facing schema.
func Definition(t Tool) providers.ToolDefinition {
	return providers.ToolDefinition{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters:  t.Parameters(),
	}
}
