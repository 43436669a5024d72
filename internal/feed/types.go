package feed

import "time"

// Entry описывает одну запись ленты сразу после получения из источника.
// Отсутствие значения — отдельное состояние: пустая строка или nil,
// а не молча подставленный дефолт.
type Entry struct {
	ID          string
	GUID        string
	Title       string
	Link        string
	Summary     string
	SourceTitle string
	Published   *time.Time
	Updated     *time.Time
	Created     *time.Time
}

// PublishedTime возвращает лучшую доступную метку времени записи.
// Приоритет: published, затем updated, затем created. nil — метки нет.
func (e Entry) PublishedTime() *time.Time {
	for _, ts := range []*time.Time{e.Published, e.Updated, e.Created} {
		if ts != nil {
			return ts
		}
	}
	return nil
}
