package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/miroma-app/miroma/pkg/domain"
	"github.com/miroma-app/miroma/pkg/domain/schedule"
	"github.com/miroma-app/miroma/pkg/resolve"
	"github.com/miroma-app/miroma/pkg/store"
)

// ---------------------------------------------------------------------------
// addEvent
// ---------------------------------------------------------------------------

// AddEventTool creates a calendar event, resolving or auto-creating the
// referenced client. This is the only command that triggers the booking
// notification (published as a schedule.event.created domain event).
type AddEventTool struct {
	store    *store.Store
	resolver *resolve.Resolver
	bus      domain.EventBus
}

func (t *AddEventTool) Name() string { return string(CmdAddEvent) }

func (t *AddEventTool) Description() string {
	return "Adiciona um novo evento, reunião ou encomenda. CRIA CLIENTE AUTOMATICAMENTE SE O NOME FOR FORNECIDO."
}

func (t *AddEventTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"title":         prop("string", "Título do evento"),
			"start":         prop("string", "Data/Hora início ISO 8601"),
			"end":           prop("string", "Data/Hora fim ISO 8601"),
			"type":          prop("string", `Tipo: "Trabalho", "Pessoal", "Encomenda" ou "Evento"`),
			"description":   prop("string", "Descrição detalhada"),
			"location":      prop("string", "Local (Endereço, Cidade, Link ou App de Reunião)"),
			"clientName":    prop("string", "Nome do cliente. SE FORNECIDO, O CLIENTE SERÁ CRIADO/VINCULADO AUTOMATICAMENTE."),
			"clientContact": prop("string", "Contato do cliente (se for um novo cliente)"),
			"clientNotes":   prop("string", "Notas sobre o cliente (se for um novo cliente)"),
			"packName":      prop("string", `SUBTAG / NOME DO SERVIÇO ESPECÍFICO (Ex: "Pack Gold", "Fotografia", "Vídeo").`),
			"price":         prop("number", "Valor TOTAL acordado em Euros. Use este campo se o usuário especificar um valor."),
		},
		"required": []string{"title", "start", "end", "type"},
	}
}

func (t *AddEventTool) Execute(ctx context.Context, args map[string]interface{}) Result {
	title, hasTitle := stringArg(args, "title")
	if !hasTitle {
		return fail("Erro ao executar ação: título do evento em falta.")
	}
	start, hasStart, err := timeArg(args, "start")
	if err != nil {
		return fail("Erro ao executar ação: " + err.Error())
	}
	if !hasStart {
		return fail("Erro ao executar ação: data de início em falta.")
	}
	end, hasEnd, err := timeArg(args, "end")
	if err != nil {
		return fail("Erro ao executar ação: " + err.Error())
	}
	if !hasEnd {
		end = start
	}

	typeLabel, _ := stringArg(args, "type")
	eventType := schedule.ParseEventType(typeLabel)

	// Client logic: find or create.
	var clientID domain.EntityID
	var newClientName string
	if clientName, hasClient := stringArg(args, "clientName"); hasClient {
		existing, err := t.resolver.FindClient(clientName)
		if err == nil {
			clientID = existing.ID
		} else {
			contact, _ := stringArg(args, "clientContact")
			notes, hasNotes := stringArg(args, "clientNotes")
			if !hasNotes {
				notes = "Criado automaticamente via agendamento"
			}
			createdClient := t.store.AddClient(schedule.Client{
				Name:    clientName,
				Contact: contact,
				Notes:   notes,
			})
			clientID = createdClient.ID
			newClientName = clientName
			t.bus.Publish(domain.NewEvent(domain.EventClientCreated, createdClient.ID, createdClient))
		}
	}

	description, _ := stringArg(args, "description")
	location, _ := stringArg(args, "location")
	packName, _ := stringArg(args, "packName")
	price, _ := floatArg(args, "price")
	bookingDate, hasBooking, err := timeArg(args, "bookingDate")
	if err != nil {
		return fail("Erro ao executar ação: " + err.Error())
	}
	if !hasBooking {
		bookingDate = time.Now()
	}

	event := t.store.AddEvent(schedule.CalendarEvent{
		Title:       title,
		Start:       start,
		End:         end,
		BookingDate: bookingDate,
		Type:        eventType,
		Description: description,
		Location:    location,
		ClientID:    clientID,
		PackName:    packName,
		AgreedPrice: price,
	})
	t.bus.Publish(domain.NewEvent(domain.EventScheduleCreated, event.ID, event))

	loc := event.Location
	if loc == "" {
		loc = "Não definido"
	}
	msg := fmt.Sprintf("Evento criado com sucesso: %s em %s. Local: %s. Valor: €%v.",
		event.Title, event.Start.Format(time.RFC3339), loc, event.AgreedPrice)
	if newClientName != "" {
		msg += fmt.Sprintf(" (Novo cliente %q foi cadastrado automaticamente).", newClientName)
	}
	return created(msg, event)
}

func prop(typ, description string) map[string]interface{} {
	return map[string]interface{}{"type": typ, "description": description}
}

// ---------------------------------------------------------------------------
// updateEvent
// ---------------------------------------------------------------------------

// UpdateEventTool edits an existing event or billing entry found by title
// fragment. The patch is assembled and validated in full before any
// mutation, so a bad argument can never leave a half-updated event.
type UpdateEventTool struct {
	store    *store.Store
	resolver *resolve.Resolver
	bus      domain.EventBus
}

func (t *UpdateEventTool) Name() string { return string(CmdUpdateEvent) }

func (t *UpdateEventTool) Description() string {
	return "Edita um evento, encomenda ou FATURAMENTO existente. Use newPrice para alterar valores."
}

func (t *UpdateEventTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"searchTitle":    prop("string", "O título do evento/faturamento original para buscar"),
			"newTitle":       prop("string", "Novo título (opcional)"),
			"newStart":       prop("string", "Nova data início ISO 8601 (opcional)"),
			"newEnd":         prop("string", "Nova data fim ISO 8601 (opcional)"),
			"newLocation":    prop("string", "Novo local (opcional)"),
			"newPrice":       prop("number", "Novo valor acordado (opcional). USE ISSO PARA CORRIGIR FATURAMENTO."),
			"newDescription": prop("string", "Nova descrição (opcional)"),
			"isDone":         prop("boolean", "Marcar como concluído/entregue (true/false)"),
		},
		"required": []string{"searchTitle"},
	}
}

func (t *UpdateEventTool) Execute(ctx context.Context, args map[string]interface{}) Result {
	search, hasSearch := stringArg(args, "searchTitle")
	if !hasSearch {
		return fail("Erro ao executar ação: título de busca em falta.")
	}

	target, err := t.resolver.FindEvent(search)
	if err != nil {
		return fail(fmt.Sprintf("Não encontrei nenhum evento ou faturamento com o título similar a %q.", search))
	}

	var patch schedule.EventPatch
	if title, has := stringArg(args, "newTitle"); has {
		patch.Title = &title
	}
	newStart, hasStart, err := timeArg(args, "newStart")
	if err != nil {
		return fail("Erro ao executar ação: " + err.Error())
	}
	if hasStart {
		patch.Start = &newStart
	}
	newEnd, hasEnd, err := timeArg(args, "newEnd")
	if err != nil {
		return fail("Erro ao executar ação: " + err.Error())
	}
	if hasEnd {
		patch.End = &newEnd
	}
	if location, has := stringArg(args, "newLocation"); has {
		patch.Location = &location
	}
	newPrice, hasPrice := floatArg(args, "newPrice")
	if hasPrice {
		patch.AgreedPrice = &newPrice
	}
	if description, has := stringArg(args, "newDescription"); has {
		patch.Description = &description
	}
	if done, has := boolArg(args, "isDone"); has {
		patch.IsDone = &done
	}

	t.store.UpdateEvent(target.ID, patch)
	t.bus.Publish(domain.NewEvent(domain.EventScheduleUpdated, target.ID, patch))

	msg := fmt.Sprintf("Item %q atualizado com sucesso.", target.Title)
	if hasPrice {
		msg += fmt.Sprintf(" Novo valor: €%v.", newPrice)
	}
	return ok(msg)
}

// ---------------------------------------------------------------------------
// deleteEvent
// ---------------------------------------------------------------------------

// DeleteEventTool removes an event or billing entry found by title fragment.
type DeleteEventTool struct {
	store    *store.Store
	resolver *resolve.Resolver
	bus      domain.EventBus
}

func (t *DeleteEventTool) Name() string { return string(CmdDeleteEvent) }

func (t *DeleteEventTool) Description() string {
	return "Remove/Deleta um evento, encomenda ou entrada de faturamento da agenda."
}

func (t *DeleteEventTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"searchTitle": prop("string", "Título do item a ser removido"),
		},
		"required": []string{"searchTitle"},
	}
}

func (t *DeleteEventTool) Execute(ctx context.Context, args map[string]interface{}) Result {
	search, hasSearch := stringArg(args, "searchTitle")
	if !hasSearch {
		return fail("Erro ao executar ação: título de busca em falta.")
	}

	target, err := t.resolver.FindEvent(search)
	if err != nil {
		return fail(fmt.Sprintf("Não encontrei nenhum item com o título similar a %q para remover.", search))
	}

	t.store.DeleteEvent(target.ID)
	t.bus.Publish(domain.NewEvent(domain.EventScheduleDeleted, target.ID, target))
	return ok(fmt.Sprintf("Item %q removido com sucesso da agenda e do faturamento.", target.Title))
}
