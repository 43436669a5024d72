package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type (
	// Root объединяет все конфигурационные блоки.
	Root struct {
		Pipeline Pipeline `yaml:"pipeline"`
	}

	// Pipeline описывает параметры одного прогона.
	Pipeline struct {
		MaxFetchDays    int    `yaml:"max_fetch_days"` // окно свежести в днях, ограничивает разовый бэклог
		ChatID          string `yaml:"chat_id"`
		TelegramAPIBase string `yaml:"telegram_api_base"`
		FeedsPath       string `yaml:"feeds_path"`
		HistoryPath     string `yaml:"history_path"`
		FetchDelayMS    int    `yaml:"fetch_delay_ms"`
		SummaryMaxLen   int    `yaml:"summary_max_len"`
	}
)

// Default возвращает конфигурацию по умолчанию.
func Default() Root {
	return Root{Pipeline: Pipeline{
		MaxFetchDays:    1,
		ChatID:          "-1003514584440",
		TelegramAPIBase: "https://api.telegram.org",
		FeedsPath:       "rss.config",
		HistoryPath:     "data.json",
		FetchDelayMS:    500,
		SummaryMaxLen:   200,
	}}
}

// LoadRoot читает основной файл конфигурации. Отсутствующий файл — не
// ошибка: действуют значения по умолчанию, заданные поля перекрывают их.
func LoadRoot(path string) (Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Root{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Root{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
