package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/miroma-app/miroma/pkg/domain"
	"github.com/miroma-app/miroma/pkg/domain/schedule"
	"github.com/miroma-app/miroma/pkg/store"
)

// AddRevenueTool records a manual revenue adjustment: a pseudo-event with
// the distinguished pack name, recognized 100% at its single date. Unlike
// addEvent it never triggers the booking notification.
type AddRevenueTool struct {
	store *store.Store
	bus   domain.EventBus
}

func (t *AddRevenueTool) Name() string { return string(CmdAddRevenue) }

func (t *AddRevenueTool) Description() string {
	return `Adiciona um faturamento/receita avulsa injustificada ou manual (Ex: "Recebi 500 euros hoje").`
}

func (t *AddRevenueTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"amount":      prop("number", "Valor em Euros"),
			"description": prop("string", `Motivo ou descrição curta (Ex: "Venda extra", "Ajuste")`),
			"date":        prop("string", "Data do recebimento ISO 8601 (Opcional, use hoje se não informado)"),
		},
		"required": []string{"amount"},
	}
}

func (t *AddRevenueTool) Execute(ctx context.Context, args map[string]interface{}) Result {
	amount, hasAmount := floatArg(args, "amount")
	if !hasAmount {
		return fail("Erro ao executar ação: valor em falta.")
	}

	date, hasDate, err := timeArg(args, "date")
	if err != nil {
		return fail("Erro ao executar ação: " + err.Error())
	}
	if !hasDate {
		date = time.Now()
	}

	title, hasTitle := stringArg(args, "description")
	if !hasTitle {
		title = "Receita Avulsa"
	}

	event := t.store.AddEvent(schedule.CalendarEvent{
		Title:       title,
		Start:       date,
		End:         date,
		BookingDate: date,
		Type:        schedule.TypeWork,
		PackName:    schedule.ManualAdjustmentPack,
		AgreedPrice: amount,
		Description: "Faturamento adicionado manualmente via AI.",
		IsDone:      true,
	})
	t.bus.Publish(domain.NewEvent(domain.EventRevenueAdjusted, event.ID, event))
	return created(fmt.Sprintf("Adicionado faturamento de €%v com sucesso.", amount), event)
}
