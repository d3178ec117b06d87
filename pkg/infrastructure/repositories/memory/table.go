package memory

import (
	"fmt"
	"sort"
	"strings"
)

// table keeps rows in insertion order with an id index
type table[T any] struct {
	kind  string
	rows  []T
	index map[int64]int
	id    func(*T) int64
}

func newTable[T any](kind string, expected int, id func(*T) int64) *table[T] {
	return &table[T]{
		kind:  kind,
		rows:  make([]T, 0, expected),
		index: make(map[int64]int, expected),
		id:    id,
	}
}

// add appends a row, rejecting duplicate ids
func (t *table[T]) add(row T) error {
	id := t.id(&row)
	if _, exists := t.index[id]; exists {
		return fmt.Errorf("duplicate %s id: %d", t.kind, id)
	}
	t.index[id] = len(t.rows)
	t.rows = append(t.rows, row)
	return nil
}

// load validates the whole batch for duplicates before adding anything
func (t *table[T]) load(rows []*T) error {
	seen := make(map[int64]bool, len(rows))
	var duplicates []string
	for _, row := range rows {
		id := t.id(row)
		if _, exists := t.index[id]; exists || seen[id] {
			duplicates = append(duplicates, fmt.Sprintf("%d", id))
		}
		seen[id] = true
	}
	if len(duplicates) > 0 {
		sort.Strings(duplicates)
		return fmt.Errorf("duplicate %s ids found: %s", t.kind, strings.Join(duplicates, ", "))
	}

	for _, row := range rows {
		if err := t.add(*row); err != nil {
			return err
		}
	}
	return nil
}

func (t *table[T]) get(id int64) (*T, error) {
	i, exists := t.index[id]
	if !exists {
		return nil, fmt.Errorf("%s not found: %d", t.kind, id)
	}
	return &t.rows[i], nil
}

func (t *table[T]) all() []*T {
	out := make([]*T, 0, len(t.rows))
	for i := range t.rows {
		out = append(out, &t.rows[i])
	}
	return out
}
