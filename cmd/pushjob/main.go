package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/maine/rss_push_bot/internal/app"
	"github.com/maine/rss_push_bot/internal/config"
	"github.com/maine/rss_push_bot/internal/filter"
	"github.com/maine/rss_push_bot/internal/formatter"
	"github.com/maine/rss_push_bot/internal/history"
	"github.com/maine/rss_push_bot/internal/sources"
	"github.com/maine/rss_push_bot/internal/telegram"
)

func main() {
	ctx := context.Background()

	rootCfg, err := config.LoadRoot("configs/bot.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg := rootCfg.Pipeline

	// Без токена не трогаем ни сеть, ни файл истории.
	envCfg, err := config.LoadEnvConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}

	if err := config.EnsureFeedsFile(cfg.FeedsPath); err != nil {
		log.Fatalf("ensure feeds file: %v", err)
	}

	urls, err := config.LoadFeedURLs(cfg.FeedsPath)
	if err != nil {
		log.Fatalf("load feed urls: %v", err)
	}
	if len(urls) == 0 {
		log.Println("No feed URLs configured, nothing to do")
		return
	}

	// Инициализируем модули
	httpClient := &http.Client{Timeout: 15 * time.Second}
	collector := sources.NewCollector(urls, httpClient, time.Duration(cfg.FetchDelayMS)*time.Millisecond)
	tgClient := telegram.NewClient(envCfg.TelegramBotToken, cfg.TelegramAPIBase)

	p := app.NewPipeline(app.PipelineDeps{
		Collector: collector,
		Selector:  filter.New(cfg.MaxFetchDays, time.Now),
		Formatter: formatter.New(cfg.SummaryMaxLen),
		Sender:    telegram.NewSender(tgClient),
		History:   history.NewFileStore(cfg.HistoryPath),
		ChatID:    cfg.ChatID,
	})

	if err := p.Run(ctx); err != nil {
		log.Fatalf("pipeline failed: %v", err)
	}

	log.Println("pipeline completed successfully")
}
