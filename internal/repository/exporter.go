package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nikolayk812/cakeshop/internal/domain"
	"github.com/nikolayk812/cakeshop/internal/port"
)

type fileExporter struct {
	dir    string
	prefix string
}

func NewExporter(dir, prefix string) (port.CartExporter, error) {
	if dir == "" {
		return nil, fmt.Errorf("dir is empty")
	}
	if prefix == "" {
		return nil, fmt.Errorf("prefix is empty")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll: %w", err)
	}

	return &fileExporter{dir: dir, prefix: prefix}, nil
}

// ExportSnapshot writes the snapshot as an indented JSON document named
// <prefix>-cart-<epoch-millis>.json and returns its path.
func (e *fileExporter) ExportSnapshot(_ context.Context, snapshot domain.CartSnapshot) (string, error) {
	now := time.Now()
	snapshot.ExportedAt = &now

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("json.MarshalIndent: %w", err)
	}

	path := filepath.Join(e.dir, fmt.Sprintf("%s-cart-%d.json", e.prefix, now.UnixMilli()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("os.WriteFile: %w", err)
	}

	return path, nil
}
