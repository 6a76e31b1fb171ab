package tools

import (
	"context"

	"github.com/miroma-app/miroma/pkg/domain"
	"github.com/miroma-app/miroma/pkg/logger"
	"github.com/miroma-app/miroma/pkg/providers"
	"github.com/miroma-app/miroma/pkg/resolve"
	"github.com/miroma-app/miroma/pkg/store"
)

// CommandName enumerates the closed command set. Adding a command means
// adding a constant here and registering its tool in NewRegistry, so the
// set stays a compile-time-checked change.
type CommandName string

const (
	CmdAddEvent     CommandName = "addEvent"
	CmdUpdateEvent  CommandName = "updateEvent"
	CmdDeleteEvent  CommandName = "deleteEvent"
	CmdAddClient    CommandName = "addClient"
	CmdUpdateClient CommandName = "updateClient"
	CmdAddRevenue   CommandName = "addRevenue"
	CmdGetPacks     CommandName = "getPacks"
	CmdGetSchedule  CommandName = "getSchedule"
)

// AllCommands returns the command set in declaration order.
func AllCommands() []CommandName {
	return []CommandName{
		CmdAddEvent, CmdUpdateEvent, CmdDeleteEvent,
		CmdAddClient, CmdUpdateClient,
		CmdAddRevenue, CmdGetPacks, CmdGetSchedule,
	}
}

// Registry maps the closed command set to its handlers and dispatches
// invocations coming from the conversational agent.
type Registry struct {
	tools map[CommandName]Tool
	order []CommandName
}

// NewRegistry wires all eight commands against the given store and bus.
func NewRegistry(st *store.Store, bus domain.EventBus) *Registry {
	resolver := resolve.New(st)
	reg := &Registry{tools: make(map[CommandName]Tool)}

	for _, t := range []Tool{
		&AddEventTool{store: st, resolver: resolver, bus: bus},
		&UpdateEventTool{store: st, resolver: resolver, bus: bus},
		&DeleteEventTool{store: st, resolver: resolver, bus: bus},
		&AddClientTool{store: st, bus: bus},
		&UpdateClientTool{store: st, resolver: resolver, bus: bus},
		&AddRevenueTool{store: st, bus: bus},
		&GetPacksTool{},
		&GetScheduleTool{store: st},
	} {
		name := CommandName(t.Name())
		reg.tools[name] = t
		reg.order = append(reg.order, name)
	}
	return reg
}

// Dispatch executes a named command. Unknown names are absorbed as a
// conversational "not implemented" result, matching the contract that no
// command invocation is fatal.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]interface{}) Result {
	tool, known := r.tools[CommandName(name)]
	if !known {
		logger.WarnCF("tools", "Unknown command", map[string]interface{}{"name": name})
		return fail("Ferramenta não implementada ou desconhecida.")
	}

	logger.DebugCF("tools", "Executing command", map[string]interface{}{"name": name})
	result := tool.Execute(ctx, args)
	if !result.OK {
		logger.InfoCF("tools", "Command did not apply",
			map[string]interface{}{"name": name, "message": result.Message})
	}
	return result
}

// Definitions returns the provider-facing schemas in declaration order.
func (r *Registry) Definitions() []providers.ToolDefinition {
	defs := make([]providers.ToolDefinition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, Definition(r.tools[name]))
	}
	return defs
}
