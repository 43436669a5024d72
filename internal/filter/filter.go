package filter

import (
	"time"

	"github.com/maine/rss_push_bot/internal/feed"
	"github.com/maine/rss_push_bot/internal/history"
)

// Filter — движок отбора: окно свежести плюс дедупликация по истории.
type Filter struct {
	maxDays int
	clock   func() time.Time
}

// New создаёт движок. clock == nil означает time.Now.
func New(maxDays int, clock func() time.Time) *Filter {
	if clock == nil {
		clock = time.Now
	}
	return &Filter{maxDays: maxDays, clock: clock}
}

// Apply реализует app.Selector. Записи обходятся в порядке получения,
// порядок выбранных совпадает с порядком партии. Возвращает пополненное
// множество ключей (старые плюс ключи выбранных) независимо от того,
// был ли кто-то выбран. Ключ добавляется в рабочее множество сразу,
// поэтому из двух дубликатов в одной партии проходит только первый.
func (f *Filter) Apply(entries []feed.Entry, seen history.Set) ([]feed.Entry, history.Set) {
	now := f.clock()
	updated := seen.Clone()
	selected := make([]feed.Entry, 0, len(entries))

	for _, e := range entries {
		if !feed.Recent(e, f.maxDays, now) {
			continue
		}

		key := feed.Identity(e)
		if updated.Has(key) {
			continue
		}

		selected = append(selected, e)
		updated.Add(key)
	}

	return selected, updated
}
