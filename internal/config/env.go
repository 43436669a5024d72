package config

import (
	"fmt"
	"os"
)

// EnvConfig содержит секреты из переменных окружения.
type EnvConfig struct {
	TelegramBotToken string
}

// LoadEnvConfig читает переменные окружения и возвращает конфигурацию.
// Отсутствие токена — ошибка конфигурации: прогон не должен дойти
// ни до сети, ни до файла истории.
func LoadEnvConfig() (*EnvConfig, error) {
	tgToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	if tgToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is required")
	}

	return &EnvConfig{TelegramBotToken: tgToken}, nil
}
