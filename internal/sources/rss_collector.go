package sources

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/maine/rss_push_bot/internal/feed"
)

// userAgent: часть площадок отдаёт 403 на дефолтный Go-клиент.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Collector последовательно загружает записи из настроенных лент.
type Collector struct {
	urls   []string
	parser *gofeed.Parser
	delay  time.Duration
}

// NewCollector создаёт новый экземпляр. client == nil — клиент с таймаутом 15с.
func NewCollector(urls []string, client *http.Client, delay time.Duration) *Collector {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	parser := gofeed.NewParser()
	parser.Client = client
	parser.UserAgent = userAgent

	return &Collector{
		urls:   urls,
		parser: parser,
		delay:  delay,
	}
}

// Collect реализует app.SourceCollector. Ошибка одной ленты не прерывает
// остальные: такая лента даёт ноль записей в этом прогоне, без повторов.
func (c *Collector) Collect(ctx context.Context) ([]feed.Entry, error) {
	var results []feed.Entry
	for i, u := range c.urls {
		if i > 0 && c.delay > 0 {
			// Пауза вежливости между запросами к удалённым серверам.
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.delay):
			}
		}

		parsed, err := c.parser.ParseURLWithContext(u, ctx)
		if err != nil {
			log.Printf("Error fetching feed %s: %v", u, err)
			continue
		}

		source := sourceTitle(parsed, u)
		for _, item := range parsed.Items {
			results = append(results, entryFromItem(item, source))
		}
	}
	return results, nil
}

// sourceTitle подбирает человекочитаемую метку источника:
// заголовок ленты, её описание, в крайнем случае адрес.
func sourceTitle(parsed *gofeed.Feed, url string) string {
	if t := strings.TrimSpace(parsed.Title); t != "" {
		return t
	}
	if d := strings.TrimSpace(parsed.Description); d != "" {
		return d
	}
	return url
}

func entryFromItem(item *gofeed.Item, source string) feed.Entry {
	e := feed.Entry{
		// gofeed сводит atom id и rss guid в одно поле GUID.
		ID:          strings.TrimSpace(item.GUID),
		Title:       strings.TrimSpace(item.Title),
		Link:        strings.TrimSpace(item.Link),
		Summary:     selectSummary(item),
		SourceTitle: source,
		Published:   item.PublishedParsed,
		Updated:     item.UpdatedParsed,
	}
	if raw, ok := item.Custom["created"]; ok {
		e.Created = parseTime(raw)
	}
	return e
}

// selectSummary берёт description, при его отсутствии — полный контент.
func selectSummary(item *gofeed.Item) string {
	if item.Description != "" {
		return item.Description
	}
	return item.Content
}

// parseTime разбирает сырое значение даты по распространённым в лентах
// форматам. nil — значение не разобралось.
func parseTime(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	formats := []string{
		time.RFC1123Z,
		time.RFC1123,
		time.RFC822Z,
		time.RFC822,
		time.RFC3339,
		"Mon, 02 Jan 2006 15:04:05 MST",
		"02 Jan 2006 15:04:05 MST",
	}

	for _, f := range formats {
		if t, err := time.Parse(f, value); err == nil {
			return &t
		}
	}

	return nil
}
