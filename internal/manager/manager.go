// Package manager owns the in-memory item collection and keeps the data
// file in sync: every mutating operation rewrites the whole file before it
// returns. There is no rollback; if the write fails the in-memory change
// has already happened and the error is the caller's problem.
package manager

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/idilsaglam/todosh/internal/ids"
	"github.com/idilsaglam/todosh/internal/model"
	"github.com/idilsaglam/todosh/internal/store/jsonstore"
)

// Order selects the direction of SortByDate.
type Order int

const (
	OrderAsc Order = iota
	OrderDesc
)

// ParseOrder maps user input to an Order. Anything unrecognized means asc.
func ParseOrder(s string) Order {
	if strings.ToLower(s) == "desc" {
		return OrderDesc
	}
	return OrderAsc
}

// Filter selects a view of the collection.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

// ParseFilter maps user input to a Filter. Anything unrecognized means all.
func ParseFilter(s string) Filter {
	switch strings.ToLower(s) {
	case "active":
		return FilterActive
	case "completed":
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Manager holds the ordered collection and the store it persists to.
type Manager struct {
	items []model.Item
	store *jsonstore.Store
}

// New loads the collection from the store. A corrupt data file is
// recovered from by starting empty; recovered reports that so the caller
// can warn the user instead of silently losing data.
func New(store *jsonstore.Store) (m *Manager, recovered bool, err error) {
	items, err := store.Load()
	if err != nil {
		if !errors.Is(err, jsonstore.ErrCorrupt) {
			return nil, false, fmt.Errorf("load: %w", err)
		}
		recovered = true
	}
	return &Manager{items: items, store: store}, recovered, nil
}

func (m *Manager) persist() error {
	if err := m.store.Save(m.items); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// Len reports the number of items in the collection.
func (m *Manager) Len() int { return len(m.items) }

// Create appends a new item with a fresh id and persists. Title validation
// is the caller's job; the manager stores what it is given.
func (m *Manager) Create(title string, due *time.Time) (model.Item, error) {
	now := time.Now().UTC()
	it := model.Item{
		ID:        ids.New(),
		Title:     title,
		DueDate:   due,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.items = append(m.items, it)
	return it, m.persist()
}

// FindByID returns the first item with the given id.
func (m *Manager) FindByID(id string) (model.Item, bool) {
	for _, it := range m.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.Item{}, false
}

// Update overwrites title and due date of the matching item and persists.
// An unknown id is silently ignored.
func (m *Manager) Update(id, title string, due *time.Time) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Title = title
			m.items[i].DueDate = due
			m.items[i].UpdatedAt = time.Now().UTC()
			return m.persist()
		}
	}
	return nil
}

// Delete removes every item with the given id (structurally at most one)
// and persists whether or not anything matched.
func (m *Manager) Delete(id string) error {
	kept := m.items[:0]
	for _, it := range m.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	m.items = kept
	return m.persist()
}

// Toggle flips the completion flag of the matching item and persists.
// An unknown id is silently ignored.
func (m *Manager) Toggle(id string) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Completed = !m.items[i].Completed
			m.items[i].UpdatedAt = time.Now().UTC()
			return m.persist()
		}
	}
	return nil
}

// ClearCompleted drops every completed item and persists.
func (m *Manager) ClearCompleted() error {
	kept := m.items[:0]
	for _, it := range m.items {
		if !it.Completed {
			kept = append(kept, it)
		}
	}
	m.items = kept
	return m.persist()
}

// SortByDate returns a new slice sorted by creation time. The stored order
// is untouched; ties keep their original relative order.
func (m *Manager) SortByDate(order Order) []model.Item {
	out := make([]model.Item, len(m.items))
	copy(out, m.items)
	sort.SliceStable(out, func(i, j int) bool {
		if order == OrderDesc {
			return out[j].CreatedAt.Before(out[i].CreatedAt)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Filter returns a view of the collection. FilterAll returns the live
// slice in stored order; the other kinds build a fresh slice.
func (m *Manager) Filter(kind Filter) []model.Item {
	switch kind {
	case FilterActive:
		out := make([]model.Item, 0, len(m.items))
		for _, it := range m.items {
			if !it.Completed {
				out = append(out, it)
			}
		}
		return out
	case FilterCompleted:
		out := make([]model.Item, 0, len(m.items))
		for _, it := range m.items {
			if it.Completed {
				out = append(out, it)
			}
		}
		return out
	default:
		return m.items
	}
}

// Reset empties the collection and persists.
func (m *Manager) Reset() error {
	m.items = []model.Item{}
	return m.persist()
}
