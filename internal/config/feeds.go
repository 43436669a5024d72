package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// defaultFeedsTemplate записывается при первом запуске, чтобы оператору
// было что редактировать.
const defaultFeedsTemplate = `# Feed URLs, one per line.
# Lines starting with # are ignored.
https://news.google.com/rss?hl=zh-CN&gl=CN&ceid=CN:zh-Hans
`

// EnsureFeedsFile создаёт файл со списком лент, если его ещё нет.
// Существующий файл не трогается.
func EnsureFeedsFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat feeds file: %w", err)
	}

	if err := os.WriteFile(path, []byte(defaultFeedsTemplate), 0644); err != nil {
		return fmt.Errorf("write default feeds file: %w", err)
	}
	return nil
}

// LoadFeedURLs читает адреса лент: по одному на строку, пустые строки и
// комментарии пропускаются. Порядок и дубликаты сохраняются как есть.
func LoadFeedURLs(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open feeds file: %w", err)
	}
	defer file.Close()

	var urls []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read feeds file: %w", err)
	}

	return urls, nil
}
