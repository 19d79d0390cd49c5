// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session implements the in-memory item registry. A Session is
// process-lifetime state: it owns every item's content bytes and
// vanishes with the process; nothing is persisted.
// See docs/ARCHITECTURE § Session Registry.
package session

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/pdiddy/pdf-binder/pkg/types"
)

// ErrNotFound reports an item ID unknown to the session.
var ErrNotFound = errors.New("item not found")

// ErrNotRenamable reports a rename attempt on an item whose name is
// fixed (anything but a clipping).
var ErrNotRenamable = errors.New("item cannot be renamed")

// Session is an ordered, mutable collection of items. It is exclusively
// owned by one orchestrating invocation; no two generation requests
// interleave writes to the same session.
type Session struct {
	items []*types.Item
}

// New creates an empty session.
func New() *Session {
	return &Session{}
}

// Add inserts a new item at the end of the sequence. It assigns the ID,
// the default order key (after all existing items), and include=true.
func (s *Session) Add(name string, kind types.ItemKind, content []byte) *types.Item {
	it := &types.Item{
		ID:      uuid.New().String(),
		Name:    name,
		Kind:    kind,
		Content: content,
		Include: true,
		Order:   s.NextOrder(),
		Group:   types.GroupB,
	}
	s.items = append(s.items, it)
	return it
}

// NextOrder returns 1 + the current maximum order key, or 1 for an
// empty session, so newly appended items sort last without disturbing
// existing keys.
func (s *Session) NextOrder() int {
	max := 0
	for _, it := range s.items {
		if it.Order > max {
			max = it.Order
		}
	}
	return max + 1
}

// Len returns the number of items, included or not.
func (s *Session) Len() int {
	return len(s.items)
}

// Get returns the item with the given ID.
func (s *Session) Get(id string) (*types.Item, error) {
	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// SetInclude toggles an item's participation in output generation.
func (s *Session) SetInclude(id string, include bool) error {
	it, err := s.Get(id)
	if err != nil {
		return err
	}
	it.Include = include
	return nil
}

// SetOrder changes an item's sort key. Keys need not be unique; ties
// keep insertion order.
func (s *Session) SetOrder(id string, order int) error {
	it, err := s.Get(id)
	if err != nil {
		return err
	}
	it.Order = order
	return nil
}

// SetGroup assigns an item's manual bucket tag.
func (s *Session) SetGroup(id string, group types.GroupLabel) error {
	it, err := s.Get(id)
	if err != nil {
		return err
	}
	it.Group = group
	return nil
}

// Rename changes an item's display name. Only clippings carry a
// user-chosen name; everything else keeps its original filename.
func (s *Session) Rename(id, name string) error {
	it, err := s.Get(id)
	if err != nil {
		return err
	}
	if !it.Renamable() {
		return fmt.Errorf("%w: %s is a %s", ErrNotRenamable, id, it.Kind)
	}
	it.Name = name
	return nil
}

// Remove deletes an item. Items are destroyed only through Remove or
// Clear; there is no automatic eviction.
func (s *Session) Remove(id string) error {
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Clear empties the session.
func (s *Session) Clear() {
	s.items = nil
}

// View returns the items sorted by (order, insertion index) ascending.
// The sort is stable, so equal order keys keep insertion order. The
// returned slice is the caller's; the items are shared.
func (s *Session) View() []*types.Item {
	view := make([]*types.Item, len(s.items))
	copy(view, s.items)
	sort.SliceStable(view, func(i, j int) bool {
		return view[i].Order < view[j].Order
	})
	return view
}
