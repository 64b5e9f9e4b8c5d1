package storage

import (
	"fmt"
	"sort"
)

type (
	// MemStore is a Store over rows already held in memory. The parquet backend
	// decodes into one, and tests build fixtures with it.
	MemStore struct {
		rows    []map[string]any
		columns []string
		current map[string]any
		// Fail holds row indices whose LoadRow should fail, to simulate corrupt records
		Fail map[int64]bool
	}
)

func NewMemStore(rows []map[string]any) *MemStore {
	seen := map[string]bool{}
	var cols []string
	for _, row := range rows {
		for col := range row {
			if !seen[col] {
				seen[col] = true
				cols = append(cols, col)
			}
		}
	}
	sort.Strings(cols)
	return &MemStore{
		rows:    rows,
		columns: cols,
	}
}

func (ms *MemStore) Entries() int64 {
	return int64(len(ms.rows))
}

func (ms *MemStore) LoadRow(i int64) error {
	if i < 0 || i >= int64(len(ms.rows)) {
		return fmt.Errorf("row %d of %d: %w", i, len(ms.rows), ErrIndex)
	}
	if ms.Fail[i] {
		return fmt.Errorf("row %d is unreadable: %w", i, ErrStorage)
	}
	ms.current = ms.rows[i]
	return nil
}

func (ms *MemStore) Column(name string) (any, bool) {
	if ms.current == nil {
		return nil, false
	}
	v, ok := ms.current[name]
	return v, ok
}

func (ms *MemStore) Columns() []string {
	return ms.columns
}

func (ms *MemStore) Close() error {
	ms.current = nil
	return nil
}
