package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nextswitchio/guestly/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts sales events to an operations channel.
type TelegramNotifier struct {
	bot       *tgbotapi.BotAPI
	opsChatID int64
	logger    logger.Logger
}

func NewTelegramNotifier(token string, opsChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, opsChatID: opsChatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, opsChatID: opsChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyOrderPaid(ctx context.Context, order *domain.Order) {
	text := fmt.Sprintf(
		"*Ticket order paid*\n\nOrder: %s\nEvent: %s\nUser: %s\nTotal: %.2f",
		order.ID, order.EventID, order.UserID, float64(order.TotalCents)/100,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyOrderExpired(ctx context.Context, order *domain.Order) {
	text := fmt.Sprintf(
		"*Ticket order expired*\n\nOrder: %s\nEvent: %s\nUser: %s",
		order.ID, order.EventID, order.UserID,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyMerchOrderPaid(ctx context.Context, order *domain.MerchOrder) {
	text := fmt.Sprintf(
		"*Merch order paid*\n\nOrder: %s\nUser: %s\nTotal: %.2f",
		order.ID, order.UserID, float64(order.TotalCents)/100,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.opsChatID == 0 {
		n.logger.Debug("notification skipped (no ops chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.opsChatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.opsChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.opsChatID),
			logger.String("error", err.Error()),
		)
	}
}
