package feed

import "time"

// Recent сообщает, попадает ли запись в окно свежести maxDays (граница
// включительно). Запись без метки времени отбрасывается: после долгого
// простоя это защищает от повторной рассылки недатированного старья,
// ценой потери недатированных свежих записей.
func Recent(e Entry, maxDays int, now time.Time) bool {
	ts := e.PublishedTime()
	if ts == nil {
		return false
	}
	maxAge := time.Duration(maxDays) * 24 * time.Hour
	return now.Sub(*ts) <= maxAge
}
