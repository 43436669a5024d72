package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	// retryAttempts — количество попыток отправки при ошибке.
	retryAttempts = 3
	// defaultRetryDelay — базовая задержка между попытками.
	defaultRetryDelay = 2 * time.Second
)

// Sender реализует app.Sender поверх Bot API клиента.
type Sender struct {
	client     TelegramClient
	retryDelay time.Duration
}

// NewSender создаёт новый экземпляр отправителя.
func NewSender(client TelegramClient) *Sender {
	return &Sender{
		client:     client,
		retryDelay: defaultRetryDelay,
	}
}

// Send отправляет одно сообщение в HTML-режиме с повторами при
// временных ошибках.
func (s *Sender) Send(ctx context.Context, chatID string, message string) error {
	var lastErr error

	for attempt := 0; attempt < retryAttempts; attempt++ {
		if attempt > 0 {
			delay := s.retryDelay * time.Duration(attempt)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		err := s.client.SendMessage(ctx, chatID, message, "HTML")
		if err == nil {
			return nil
		}

		lastErr = err

		// Для части ошибок Bot API повтор заведомо бесполезен.
		if !isRetryableError(err) {
			return err
		}
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

// isRetryableError определяет, можно ли повторить отправку при данной ошибке.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	nonRetryable := []string{
		"chat not found",
		"bot was blocked",
		"message is too long",
		"bad request",
		"status 400",
		"status 403",
	}

	for _, marker := range nonRetryable {
		if strings.Contains(errStr, marker) {
			return false
		}
	}

	// Сетевые и временные ошибки API считаем повторяемыми.
	return true
}
