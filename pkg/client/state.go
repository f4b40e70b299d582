package client

import (
	"context"
	"sync"
)

// Slice is a client-side cache of one resource collection, the analog of a
// redux entity slice: a map keyed by id, rebuilt by a full list fetch.
type Slice[T any] struct {
	mu    sync.RWMutex
	items map[string]T

	fetch func(ctx context.Context) ([]T, error)
	key   func(T) string
}

func newSlice[T any](fetch func(ctx context.Context) ([]T, error), key func(T) string) *Slice[T] {
	return &Slice[T]{
		items: make(map[string]T),
		fetch: fetch,
		key:   key,
	}
}

// Refresh replaces the cache with the server's current list.
func (s *Slice[T]) Refresh(ctx context.Context) error {
	items, err := s.fetch(ctx)
	if err != nil {
		return err
	}
	next := make(map[string]T, len(items))
	for _, item := range items {
		next[s.key(item)] = item
	}
	s.mu.Lock()
	s.items = next
	s.mu.Unlock()
	return nil
}

// ByID returns the cached item, if any.
func (s *Slice[T]) ByID(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	return item, ok
}

// All returns a snapshot of the cached items, in no particular order.
func (s *Slice[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	return out
}

// Len reports the cached item count.
func (s *Slice[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// State holds every resource slice, like the SPA's store.
type State struct {
	client *Client

	Products   *Slice[Product]
	Pechinchas *Slice[Pechincha]
	Pedidos    *Slice[Pedido]
	Reviews    *Slice[Review]
}

func NewState(c *Client) *State {
	return &State{
		client:     c,
		Products:   newSlice(c.ListProducts, func(p Product) string { return p.ID }),
		Pechinchas: newSlice(c.ListPechinchas, func(p Pechincha) string { return p.ID }),
		Pedidos:    newSlice(c.ListPedidos, func(p Pedido) string { return p.ID }),
		Reviews:    newSlice(c.ListReviews, func(r Review) string { return r.ID }),
	}
}

// RefreshAll reloads every slice; pechinchas, pedidos and reviews require
// an authenticated client.
func (s *State) RefreshAll(ctx context.Context) error {
	if err := s.Products.Refresh(ctx); err != nil {
		return err
	}
	if err := s.Pechinchas.Refresh(ctx); err != nil {
		return err
	}
	if err := s.Pedidos.Refresh(ctx); err != nil {
		return err
	}
	return s.Reviews.Refresh(ctx)
}
