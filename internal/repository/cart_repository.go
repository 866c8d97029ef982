package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nikolayk812/cakeshop/internal/domain"
	"github.com/nikolayk812/cakeshop/internal/port"
)

// Storage keys, one file per key under the store directory.
const (
	itemsKey    = "cart_items.json"
	snapshotKey = "cart_data.json"
)

type cartFileStore struct {
	dir string
}

func NewFileStore(dir string) (port.CartStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("dir is empty")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll: %w", err)
	}

	return &cartFileStore{dir: dir}, nil
}

// LoadItems reads the persisted item list. An absent key is an empty cart,
// not an error; malformed content is an error for the caller to degrade on.
func (s *cartFileStore) LoadItems(_ context.Context) ([]domain.OrderLineItem, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, itemsKey))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	var items []domain.OrderLineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return items, nil
}

func (s *cartFileStore) SaveItems(_ context.Context, items []domain.OrderLineItem) error {
	if items == nil {
		items = []domain.OrderLineItem{}
	}

	return s.write(itemsKey, items)
}

func (s *cartFileStore) SaveSnapshot(_ context.Context, snapshot domain.CartSnapshot) error {
	return s.write(snapshotKey, snapshot)
}

func (s *cartFileStore) write(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, key), data, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}

	return nil
}
