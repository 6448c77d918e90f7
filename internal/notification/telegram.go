package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/syarief02/bubatbook-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02 Jan 2006"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyHoldCreated(ctx context.Context, customer *domain.Customer, car *domain.Car, booking *domain.Booking) {
	deadline := "soon"
	if booking.HoldExpiresAt != nil {
		deadline = booking.HoldExpiresAt.Format("15:04 MST")
	}
	text := fmt.Sprintf(
		"*Car reserved!*\n\n"+
			"Car: %s %s (%s)\n"+
			"Dates: %s - %s\n"+
			"Total: %d, deposit due: %d\n"+
			"Pay the deposit before %s or the hold will expire.",
		car.Make, car.Model, car.Plate,
		booking.PickupDate.Format(dateLayout), booking.ReturnDate.Format(dateLayout),
		booking.Total, booking.Deposit,
		deadline,
	)
	n.send(ctx, customer.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyPaymentReceived(ctx context.Context, customer *domain.Customer, car *domain.Car, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Deposit received!*\n\n"+
			"Car: %s %s\n"+
			"Dates: %s - %s\n"+
			"Your booking is now awaiting confirmation.",
		car.Make, car.Model,
		booking.PickupDate.Format(dateLayout), booking.ReturnDate.Format(dateLayout),
	)
	n.send(ctx, customer.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, customer *domain.Customer, car *domain.Car, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking confirmed!*\n\n"+
			"Car: %s %s (%s)\n"+
			"Pickup: %s\n"+
			"Return: %s",
		car.Make, car.Model, car.Plate,
		booking.PickupDate.Format(dateLayout),
		booking.ReturnDate.Format(dateLayout),
	)
	n.send(ctx, customer.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, customer *domain.Customer, car *domain.Car, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\n"+
			"Car: %s %s\n"+
			"Dates: %s - %s",
		car.Make, car.Model,
		booking.PickupDate.Format(dateLayout), booking.ReturnDate.Format(dateLayout),
	)
	n.send(ctx, customer.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyHoldExpired(ctx context.Context, customer *domain.Customer, car *domain.Car, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Reservation expired (deposit not paid in time)*\n\n"+
			"Car: %s %s\n"+
			"Dates: %s - %s\n"+
			"The dates are released. Start a new booking if you still need the car.",
		car.Make, car.Model,
		booking.PickupDate.Format(dateLayout), booking.ReturnDate.Format(dateLayout),
	)
	n.send(ctx, customer.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
