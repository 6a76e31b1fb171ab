package notify

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/miroma-app/miroma/pkg/logger"
)

// TelegramGateway delivers notifications through the Telegram Bot API.
// Credentials come from the live notification settings; the bot client is
// rebuilt only when the token changes.
type TelegramGateway struct {
	config ConfigSource

	mu       sync.Mutex
	botToken string
	bot      *telego.Bot
}

// NewTelegramGateway creates a Telegram gateway reading credentials from
// the given source.
func NewTelegramGateway(config ConfigSource) *TelegramGateway {
	return &TelegramGateway{config: config}
}

// Send delivers a message to the configured chat. Disabled or incomplete
// settings make it a silent no-op.
func (g *TelegramGateway) Send(ctx context.Context, text string) error {
	cfg := g.config()
	if !cfg.Ready() {
		logger.DebugC("notify", "Telegram disabled or not configured, skipping")
		return nil
	}

	bot, err := g.botFor(cfg.BotToken)
	if err != nil {
		return fmt.Errorf("telegram bot: %w", err)
	}

	msg := tu.Message(chatID(cfg.ChatID), text)
	msg.ParseMode = telego.ModeHTML
	if _, err := bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

func (g *TelegramGateway) botFor(token string) (*telego.Bot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.bot != nil && g.botToken == token {
		return g.bot, nil
	}
	bot, err := telego.NewBot(token, telego.WithDefaultLogger(false, false))
	if err != nil {
		return nil, err
	}
	g.botToken = token
	g.bot = bot
	return bot, nil
}

// chatID interprets the configured destination as a numeric chat ID when
// possible, otherwise as a channel username.
func chatID(dest string) telego.ChatID {
	if id, err := strconv.ParseInt(dest, 10, 64); err == nil {
		return tu.ID(id)
	}
	return tu.Username(dest)
}

var _ Gateway = (*TelegramGateway)(nil)
