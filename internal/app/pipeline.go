package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/maine/rss_push_bot/internal/feed"
	"github.com/maine/rss_push_bot/internal/history"
)

// ErrNotConfigured возвращается, когда пайплайн запущен без обязательных зависимостей.
var ErrNotConfigured = errors.New("pipeline dependencies not configured")

// SourceCollector собирает записи из всех настроенных лент.
type SourceCollector interface {
	Collect(ctx context.Context) ([]feed.Entry, error)
}

// Selector решает, какие записи достаточно свежи и ещё не отправлялись.
type Selector interface {
	Apply(entries []feed.Entry, seen history.Set) ([]feed.Entry, history.Set)
}

// Formatter превращает запись в текст уведомления.
type Formatter interface {
	Format(e feed.Entry) string
}

// Sender публикует подготовленное сообщение в канал.
type Sender interface {
	Send(ctx context.Context, chatID string, message string) error
}

// HistoryStore хранит ключи уже отправленных записей.
type HistoryStore interface {
	Load(ctx context.Context) (history.Set, error)
	Save(ctx context.Context, set history.Set) error
}

// PipelineDeps перечисляет зависимости пайплайна.
type PipelineDeps struct {
	Collector SourceCollector
	Selector  Selector
	Formatter Formatter
	Sender    Sender
	History   HistoryStore
	ChatID    string
}

// Pipeline инкапсулирует один прогон: fetch → select → format → send → persist.
type Pipeline struct {
	collector SourceCollector
	selector  Selector
	formatter Formatter
	sender    Sender
	history   HistoryStore
	chatID    string
}

// NewPipeline создаёт новый экземпляр пайплайна.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		collector: deps.Collector,
		selector:  deps.Selector,
		formatter: deps.Formatter,
		sender:    deps.Sender,
		history:   deps.History,
		chatID:    deps.ChatID,
	}
}

// Run исполняет полный цикл. Повторный запуск с сохранённой историей
// безопасен: уже отправленные записи отсеиваются по ключам. Падение между
// отправкой и сохранением истории означает повторную отправку этой записи
// на следующем прогоне (at-least-once).
func (p *Pipeline) Run(ctx context.Context) error {
	if err := p.validateDeps(); err != nil {
		return err
	}

	seen, err := p.history.Load(ctx)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	log.Println("Step 1: Collecting entries from feeds...")
	entries, err := p.collector.Collect(ctx)
	if err != nil {
		return fmt.Errorf("collect entries: %w", err)
	}
	log.Printf("Collected %d entries", len(entries))

	log.Println("Step 2: Selecting new entries...")
	selected, updated := p.selector.Apply(entries, seen)
	log.Printf("Selected %d new entries", len(selected))

	if len(selected) == 0 {
		// История не изменилась, запись на диск не нужна.
		return nil
	}

	log.Println("Step 3: Sending notifications...")
	sent := 0
	for _, e := range selected {
		if err := p.sender.Send(ctx, p.chatID, p.formatter.Format(e)); err != nil {
			// Ключ неудачной записи не сохраняем: на следующем прогоне она
			// будет отобрана и отправлена снова. Ключи уже отправленных
			// записей этой партии при этом не теряются.
			log.Printf("Failed to send entry %q: %v", feed.Identity(e), err)
			updated.Delete(feed.Identity(e))
			continue
		}
		sent++
	}

	if sent == 0 {
		return fmt.Errorf("all %d sends failed", len(selected))
	}

	if err := p.history.Save(ctx, updated); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	log.Printf("Sent %d/%d entries", sent, len(selected))

	return nil
}

func (p *Pipeline) validateDeps() error {
	switch {
	case p.collector == nil,
		p.selector == nil,
		p.formatter == nil,
		p.sender == nil,
		p.history == nil:
		return ErrNotConfigured
	default:
		return nil
	}
}
