package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Set — множество ключей уже отправленных записей. Проверка членства
// строгая, по точному совпадению строки.
type Set map[string]struct{}

// NewSet создаёт множество из переданных ключей.
func NewSet(keys ...string) Set {
	s := make(Set, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has проверяет членство ключа.
func (s Set) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Add добавляет ключ.
func (s Set) Add(key string) {
	s[key] = struct{}{}
}

// Delete убирает ключ. Применяется только к ключам, добавленным в текущем
// прогоне и ещё не сохранённым: ключи, прочитанные с диска, не удаляются
// никогда.
func (s Set) Delete(key string) {
	delete(s, key)
}

// Clone возвращает независимую копию множества.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}

// Sorted возвращает ключи в отсортированном порядке.
func (s Set) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FileStore хранит множество ключей в JSON-файле (плоский массив строк).
type FileStore struct {
	path string
}

// NewFileStore создаёт новый файловый стор.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load читает сохранённые ключи. Отсутствующий файл создаётся пустым
// (идемпотентный бутстрап). Нечитаемое содержимое — ошибка: молчаливый
// сброс истории привёл бы к массовой повторной рассылке.
func (s *FileStore) Load(ctx context.Context) (Set, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := s.Save(ctx, Set{}); err != nil {
				return nil, fmt.Errorf("bootstrap history file: %w", err)
			}
			return Set{}, nil
		}
		return nil, fmt.Errorf("read history file: %w", err)
	}

	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("parse history file %s: %w", s.path, err)
	}

	return NewSet(keys...), nil
}

// Save атомарно перезаписывает файл (через временный файл и rename).
// Ключи сериализуются отсортированными, поэтому повторная сериализация
// того же множества даёт байт-в-байт тот же файл.
func (s *FileStore) Save(ctx context.Context, set Set) error {
	data, err := json.MarshalIndent(set.Sorted(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write temp history file: %w", err)
	}

	// Rename атомарен на большинстве файловых систем: упавший между
	// записью и переименованием процесс не оставит файл полупустым.
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp history file: %w", err)
	}

	return nil
}
