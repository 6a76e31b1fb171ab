// Command miroma runs the MIROMA assistant: an interactive terminal chat
// whose language model books events, manages clients and tracks revenue
// through the command dispatcher.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/chzyer/readline"

	"github.com/miroma-app/miroma/pkg/agent"
	"github.com/miroma-app/miroma/pkg/config"
	"github.com/miroma-app/miroma/pkg/digest"
	"github.com/miroma-app/miroma/pkg/domain/schedule"
	"github.com/miroma-app/miroma/pkg/infrastructure/eventbus"
	"github.com/miroma-app/miroma/pkg/infrastructure/persistence"
	"github.com/miroma-app/miroma/pkg/logger"
	"github.com/miroma-app/miroma/pkg/notify"
	"github.com/miroma-app/miroma/pkg/providers"
	"github.com/miroma-app/miroma/pkg/store"
	"github.com/miroma-app/miroma/pkg/tools"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger.SetLevel(logger.ParseLevel(cfg.LogLevel))

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	persist, err := openPersistence(cfg.Storage)
	if err != nil {
		return err
	}

	st := store.New(persist)
	seedNotification(st, cfg.Telegram)

	bus := eventbus.New()
	defer bus.Close()

	registry := tools.NewRegistry(st, bus)

	gateway := notify.NewTelegramGateway(st.Notification)
	notify.NewListener(gateway, st.Notification).Register(bus)

	go digest.New(st, gateway, cfg.Digest.Cron).Run(ctx)

	provider, err := openProvider(cfg)
	if err != nil {
		return err
	}
	assistant := agent.New(provider, registry, cfg.Model)

	return repl(ctx, assistant, st)
}

func openPersistence(cfg config.StorageConfig) (store.Persistence, error) {
	switch cfg.Backend {
	case "sqlite":
		return persistence.NewSQLiteStore(cfg.Path)
	case "", "file":
		return persistence.NewFileStore(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func openProvider(cfg config.Config) (providers.LLMProvider, error) {
	if cfg.APIKey() == "" {
		return nil, fmt.Errorf("no API key configured for provider %q", cfg.Provider)
	}
	switch cfg.Provider {
	case "openai":
		return providers.NewOpenAIProvider(cfg.OpenAIAPIKey), nil
	case "", "anthropic":
		return providers.NewAnthropicProvider(cfg.AnthropicAPIKey), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

// seedNotification adopts the configured Telegram credentials on first run,
// without overwriting settings the user already saved.
func seedNotification(st *store.Store, cfg config.TelegramConfig) {
	if cfg.BotToken == "" || st.Notification().BotToken != "" {
		return
	}
	st.SetNotification(schedule.NotificationConfig{
		BotToken: cfg.BotToken,
		ChatID:   cfg.ChatID,
		Enabled:  cfg.Enabled,
	})
}

func repl(ctx context.Context, assistant *agent.Agent, st *store.Store) error {
	rl, err := readline.New("miroma> ")
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer rl.Close()

	fmt.Println("MIROMA ✨ — digite a sua mensagem, /export <arquivo>, /import <arquivo> ou /sair.")

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("readline: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if handled, quit := builtin(line, assistant, st); quit {
			return nil
		} else if handled {
			continue
		}

		answer, err := assistant.Respond(ctx, line)
		if err != nil {
			logger.ErrorCF("cli", "Turn failed", map[string]interface{}{"error": err.Error()})
			fmt.Println("Desculpe, ocorreu um erro ao falar com o modelo. Tente novamente.")
			continue
		}
		fmt.Println(answer)
	}
}

// builtin handles local commands that bypass the model. It reports whether
// the line was consumed and whether the REPL should quit.
func builtin(line string, assistant *agent.Agent, st *store.Store) (handled, quit bool) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/sair", "/exit", "/quit":
		return true, true
	case "/reset":
		assistant.Reset()
		fmt.Println("Conversa reiniciada.")
		return true, false
	case "/export":
		if len(fields) != 2 {
			fmt.Println("Uso: /export <arquivo>")
			return true, false
		}
		data, err := st.ExportJSON()
		if err == nil {
			err = os.WriteFile(fields[1], data, 0o644)
		}
		if err != nil {
			fmt.Println("Falha ao exportar:", err)
		} else {
			fmt.Println("Backup exportado para", fields[1])
		}
		return true, false
	case "/import":
		if len(fields) != 2 {
			fmt.Println("Uso: /import <arquivo>")
			return true, false
		}
		data, err := os.ReadFile(fields[1])
		if err == nil {
			err = st.ImportJSON(data)
		}
		if err != nil {
			fmt.Println("Falha ao importar:", err)
		} else {
			fmt.Println("Backup importado com sucesso.")
		}
		return true, false
	}
	return false, false
}
