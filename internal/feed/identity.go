package feed

// fallbackSeparator не встречается ни в URL, ни в обычных заголовках,
// поэтому склейка link и title не даёт ложных совпадений.
const fallbackSeparator = "::"

// Identity возвращает стабильный ключ дедупликации записи.
// Приоритет: явный id, затем guid; без них — склейка link::title.
// Две разные записи без id/guid, но с одинаковыми link и title,
// дают один и тот же ключ — это осознанная эвристика.
func Identity(e Entry) string {
	if e.ID != "" {
		return e.ID
	}
	if e.GUID != "" {
		return e.GUID
	}
	return e.Link + fallbackSeparator + e.Title
}
