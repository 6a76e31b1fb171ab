// Package agent runs the conversational loop: user text goes to the
// language model together with the command schemas; every tool call the
// model returns is executed through the dispatcher, one at a time, and its
// result fed back until the model answers in plain text.
package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/miroma-app/miroma/pkg/logger"
	"github.com/miroma-app/miroma/pkg/providers"
	"github.com/miroma-app/miroma/pkg/tools"
)

// maxToolRounds caps the provider round-trips per user turn so a looping
// model cannot spin forever.
const maxToolRounds = 8

// ErrTooManyRounds is returned when a single user turn exceeds the tool
// round cap.
var ErrTooManyRounds = fmt.Errorf("agent: too many tool rounds in one turn")

// Agent holds the transcript and drives provider/dispatcher round-trips.
// It is not safe for concurrent use; the caller issues one turn at a time.
type Agent struct {
	provider providers.LLMProvider
	registry *tools.Registry
	model    string
	history  []providers.Message
}

// New creates an agent. An empty model selects the provider default.
func New(provider providers.LLMProvider, registry *tools.Registry, model string) *Agent {
	if model == "" {
		model = provider.DefaultModel()
	}
	return &Agent{
		provider: provider,
		registry: registry,
		model:    model,
	}
}

// Respond handles one user turn and returns the assistant's final text.
func (a *Agent) Respond(ctx context.Context, userText string) (string, error) {
	a.history = append(a.history, providers.Message{Role: providers.RoleUser, Content: userText})

	transcript := make([]providers.Message, 0, len(a.history)+1)
	transcript = append(transcript, providers.Message{
		Role:    providers.RoleSystem,
		Content: systemInstruction(time.Now()),
	})
	transcript = append(transcript, a.history...)

	for round := 0; round < maxToolRounds; round++ {
		resp, err := a.provider.Chat(ctx, transcript, a.registry.Definitions(), a.model)
		if err != nil {
			return "", err
		}

		if len(resp.ToolCalls) == 0 {
			a.history = append(a.history, providers.Message{
				Role:    providers.RoleAssistant,
				Content: resp.Content,
			})
			return resp.Content, nil
		}

		assistant := providers.Message{
			Role:      providers.RoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		}
		transcript = append(transcript, assistant)
		a.history = append(a.history, assistant)

		// Commands run strictly one at a time against the store.
		for _, call := range resp.ToolCalls {
			result := a.registry.Dispatch(ctx, call.Name, call.Arguments)
			logger.InfoCF("agent", "Tool executed", map[string]interface{}{
				"tool": call.Name,
				"ok":   result.OK,
			})
			toolMsg := providers.Message{
				Role:       providers.RoleTool,
				Content:    result.Message,
				ToolCallID: call.ID,
			}
			transcript = append(transcript, toolMsg)
			a.history = append(a.history, toolMsg)
		}
	}
	return "", ErrTooManyRounds
}

// Reset clears the transcript.
func (a *Agent) Reset() {
	a.history = nil
}

// systemInstruction is the assistant persona and the business rules the
// model must apply when choosing commands.
func systemInstruction(now time.Time) string {
	return fmt.Sprintf(`Você é MIROMA, uma assistente pessoal e comercial de IA.

FUNÇÕES PRINCIPAIS:
1. **Agenda & Encomendas**:
   - Ao criar eventos, se o 'clientName' for informado, o sistema criará a ficha do cliente automaticamente.
   - **PADRÃO CASAMENTO**: Se o usuário não especificar o tipo de evento (ex: "Batizado", "Reunião"), assuma que é um **CASAMENTO**.
   - **SUBTAGS**: Use o campo 'packName' para colocar o nome específico do serviço contratado (Ex: "Pack Gold", "Drone", "Consultoria").
   - Ao criar eventos, sempre tente preencher o campo 'location' se o usuário mencionar onde será.

2. **Financeiro Inteligente**:
   - A moeda oficial é EURO (€).
   - REGRAS DE FATURAMENTO:
     - **Encomendas**: 100%% do valor é considerado pago na data do pedido.
     - **Eventos e Trabalho**: 50%% na reserva (bookingDate) e 50%% no dia do evento.
     - **Faturamento Avulso**: Se o usuário disser que recebeu um valor sem contexto de evento ("Recebi 500 euros"), use a ferramenta 'addRevenue'.
   - **EDIÇÃO DE FATURAMENTO**:
     - Para alterar um valor errado, use 'updateEvent' com o parâmetro 'newPrice'.
     - Para remover um faturamento indevido, use 'deleteEvent'.

3. **Gestão de Clientes**:
   - Você pode criar ou **editar** fichas de clientes. Mantenha as notas atualizadas.

ESTILO:
- Responda de forma polida, profissional, mas calorosa.
- Use emojis moderados ✨.
- Assuma datas atuais baseadas em %s.`, now.Format(time.RFC3339))
}
