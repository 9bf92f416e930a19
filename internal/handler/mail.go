package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/carelink-dev/shift-market/backend/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

// publishMailMessage hands a notification to the mail worker queue. The
// database write this notifies about has already committed, so a publish
// failure is logged and never fails the request.
func (h *Handler) publishMailMessage(message domain.MailMessage) {
	if h.mailChannel == nil {
		return
	}

	body, err := json.Marshal(message)
	if err != nil {
		slog.Error("unable to serialize mail message", "type", message.Type, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		slog.Error("unable to publish mail message", "type", message.Type, "to", message.To, "error", err)
	}
}
