package formatter

import (
	"fmt"
	"html"
	"strings"

	"github.com/maine/rss_push_bot/internal/feed"
)

const (
	// defaultSummaryMaxLen ограничивает длину текста записи в сообщении.
	defaultSummaryMaxLen = 200
	// ellipsis — маркер, добавляемый при обрезке.
	ellipsis = "..."

	missingTitle  = "(без названия)"
	missingSource = "Неизвестный источник"
)

// Formatter собирает текст уведомления для HTML-режима Telegram.
type Formatter struct {
	summaryMaxLen int
}

// New создаёт форматтер. maxLen <= 0 означает дефолтное значение.
func New(maxLen int) *Formatter {
	if maxLen <= 0 {
		maxLen = defaultSummaryMaxLen
	}
	return &Formatter{summaryMaxLen: maxLen}
}

// Format реализует app.Formatter. Функция чистая и тотальная: одинаковая
// запись всегда даёт одинаковую строку, отсутствующие заголовок и источник
// заменяются заглушками.
func (f *Formatter) Format(e feed.Entry) string {
	title := e.Title
	if title == "" {
		title = missingTitle
	}
	source := e.SourceTitle
	if source == "" {
		source = missingSource
	}

	summary := strings.TrimSpace(strings.ReplaceAll(e.Summary, "\n", " "))
	summary = shorten(summary, f.summaryMaxLen)

	parts := []string{fmt.Sprintf("[%s] 📰 <b>%s</b>", escape(source), escape(title))}
	if summary != "" {
		// Пустая строка отделяет заголовок от текста.
		parts = append(parts, "", "📝 "+escape(summary))
	}
	if e.Link != "" {
		parts = append(parts, "🔗 "+escape(e.Link))
	}

	return strings.Join(parts, "\n")
}

// shorten обрезает текст до maxLen рун, включая маркер обрезки.
func shorten(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen-len(ellipsis)]) + ellipsis
}

// escape экранирует символы, значимые для HTML-режима Telegram.
func escape(text string) string {
	return html.EscapeString(text)
}
