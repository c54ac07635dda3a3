package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	path string
}

// NewWriter prepares a CSV writer at path, creating parent directories.
func NewWriter(path string) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return &Writer{path: path}, nil
}

// WriteSearchMetrics appends records to the file, writing the header first
// when the file is new or empty.
func (w *Writer) WriteSearchMetrics(records []SearchMetric) error {
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open search metrics file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat search metrics file: %w", err)
	}

	writer := csv.NewWriter(f)

	if info.Size() == 0 {
		header := []string{"search", "max_card_value", "num_players", "start_time", "duration", "nodes", "leaves", "max_depth"}
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("failed to write search metrics header: %w", err)
		}
	}

	for _, record := range records {
		row := []string{
			record.Search,
			strconv.Itoa(record.MaxCardValue),
			strconv.Itoa(record.NumPlayers),
			record.StartTime.UTC().Format(time.RFC3339),
			record.Duration.String(),
			strconv.FormatInt(record.Nodes, 10),
			strconv.FormatInt(record.Leaves, 10),
			strconv.Itoa(record.MaxDepth),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write search metric row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
