// Package memory keeps every record in process memory. It backs the tests
// and STORAGE_DRIVER=memory.
package memory

import (
	"slices"
	"sync"

	"eduhack/internal/domain/entities"
)

type (
	DB struct {
		hackathons   *table[entities.Hackathon]
		participants *table[entities.Participant]
		challenges   *table[entities.Challenge]
		teams        *table[entities.Team]
	}

	table[T any] struct {
		sync.RWMutex
		rows   map[uint]*T
		lastID uint
	}
)

func Open() *DB {
	return &DB{
		hackathons:   newTable[entities.Hackathon](),
		participants: newTable[entities.Participant](),
		challenges:   newTable[entities.Challenge](),
		teams:        newTable[entities.Team](),
	}
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[uint]*T)}
}

// nextID must be called with the write lock held.
func (t *table[T]) nextID() uint {
	t.lastID++
	return t.lastID
}

// ids returns the row ids in ascending order. Callers hold a lock.
func (t *table[T]) ids() []uint {
	ids := make([]uint, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// filter copies the rows accepted by keep, in id order. Callers hold a lock.
func (t *table[T]) filter(clone func(*T) T, keep func(*T) bool) []T {
	out := []T{}
	for _, id := range t.ids() {
		row := t.rows[id]
		if keep == nil || keep(row) {
			out = append(out, clone(row))
		}
	}
	return out
}
