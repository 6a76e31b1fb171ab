package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/miroma-app/miroma/pkg/store"
)

// ---------------------------------------------------------------------------
// getPacks
// ---------------------------------------------------------------------------

// GetPacksTool refers the user to the packs listing. The detailed listing
// is a presentation concern; the conversational answer is a referral.
type GetPacksTool struct{}

func (t *GetPacksTool) Name() string { return string(CmdGetPacks) }

func (t *GetPacksTool) Description() string {
	return "Lista os packs/serviços e preços atuais."
}

func (t *GetPacksTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (t *GetPacksTool) Execute(ctx context.Context, args map[string]interface{}) Result {
	return ok("Consulte a aba Packs para ver detalhes.")
}

// ---------------------------------------------------------------------------
// getSchedule
// ---------------------------------------------------------------------------

// GetScheduleTool reports the event count and a short preview of the next
// few entries, in insertion order.
type GetScheduleTool struct {
	store *store.Store
}

func (t *GetScheduleTool) Name() string { return string(CmdGetSchedule) }

func (t *GetScheduleTool) Description() string {
	return "Lê a agenda."
}

func (t *GetScheduleTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (t *GetScheduleTool) Execute(ctx context.Context, args map[string]interface{}) Result {
	events := t.store.Events()

	preview := make([]string, 0, 3)
	for i, e := range events {
		if i == 3 {
			break
		}
		preview = append(preview, fmt.Sprintf("%s (%s)", e.Title, e.Start.Format(time.RFC3339)))
	}
	return ok(fmt.Sprintf("Agenda atual tem %d eventos. Próximos eventos: %s",
		len(events), strings.Join(preview, ", ")))
}
