package tools

import (
	"context"
	"fmt"

	"github.com/miroma-app/miroma/pkg/domain"
	"github.com/miroma-app/miroma/pkg/domain/schedule"
	"github.com/miroma-app/miroma/pkg/resolve"
	"github.com/miroma-app/miroma/pkg/store"
)

// ---------------------------------------------------------------------------
// addClient
// ---------------------------------------------------------------------------

// AddClientTool creates a client record unconditionally. There is no dedup
// against existing clients: explicit registration always creates.
type AddClientTool struct {
	store *store.Store
	bus   domain.EventBus
}

func (t *AddClientTool) Name() string { return string(CmdAddClient) }

func (t *AddClientTool) Description() string {
	return "Adiciona um novo cliente (Ficha) explicitamente."
}

func (t *AddClientTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"name":    prop("string", "Nome do cliente"),
			"contact": prop("string", "Email/Telefone"),
			"notes":   prop("string", "Notas sobre o cliente"),
		},
		"required": []string{"name"},
	}
}

func (t *AddClientTool) Execute(ctx context.Context, args map[string]interface{}) Result {
	name, hasName := stringArg(args, "name")
	if !hasName {
		return fail("Erro ao executar ação: nome do cliente em falta.")
	}
	contact, _ := stringArg(args, "contact")
	notes, _ := stringArg(args, "notes")

	client := t.store.AddClient(schedule.Client{
		Name:    name,
		Contact: contact,
		Notes:   notes,
	})
	t.bus.Publish(domain.NewEvent(domain.EventClientCreated, client.ID, client))
	return created(fmt.Sprintf("Cliente cadastrado: %s.", client.Name), client)
}

// ---------------------------------------------------------------------------
// updateClient
// ---------------------------------------------------------------------------

// UpdateClientTool edits a client record found by name fragment.
type UpdateClientTool struct {
	store    *store.Store
	resolver *resolve.Resolver
	bus      domain.EventBus
}

func (t *UpdateClientTool) Name() string { return string(CmdUpdateClient) }

func (t *UpdateClientTool) Description() string {
	return "Edita as informações de um cliente existente. Busca pelo nome atual."
}

func (t *UpdateClientTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"searchName": prop("string", "Nome atual do cliente para buscar"),
			"newName":    prop("string", "Novo nome (opcional)"),
			"newContact": prop("string", "Novo contato (opcional)"),
			"newNotes":   prop("string", "Novas notas (opcional)"),
		},
		"required": []string{"searchName"},
	}
}

func (t *UpdateClientTool) Execute(ctx context.Context, args map[string]interface{}) Result {
	search, hasSearch := stringArg(args, "searchName")
	if !hasSearch {
		return fail("Erro ao executar ação: nome de busca em falta.")
	}

	target, err := t.resolver.FindClient(search)
	if err != nil {
		return fail(fmt.Sprintf("Não encontrei nenhum cliente com nome similar a %q.", search))
	}

	var patch schedule.ClientPatch
	if name, has := stringArg(args, "newName"); has {
		patch.Name = &name
	}
	if contact, has := stringArg(args, "newContact"); has {
		patch.Contact = &contact
	}
	if notes, has := stringArg(args, "newNotes"); has {
		patch.Notes = &notes
	}

	t.store.UpdateClient(target.ID, patch)
	t.bus.Publish(domain.NewEvent(domain.EventClientUpdated, target.ID, patch))
	return ok(fmt.Sprintf("Ficha do cliente %q atualizada.", target.Name))
}
