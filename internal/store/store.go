// Package store provides the document store client used by every resource
// handler. Collections hold flat documents addressed by a single key
// attribute; the operation set mirrors a key-value document API:
// scan (read all), get, put (insert/replace), update (partial write with
// upsert semantics) and delete (idempotent).
package store

import "context"

// Store is the document store contract. Scan decodes every document in the
// collection into out (a pointer to a slice). Get decodes the document with
// the given key into out and reports whether it existed. Put unconditionally
// replaces the document under key. Update applies a partial attribute set
// with upsert semantics and, when out is non-nil, decodes the resulting
// document into it. Delete removes the key and is a no-op when absent.
type Store interface {
	Scan(ctx context.Context, table string, out interface{}) error
	Get(ctx context.Context, table, key string, out interface{}) (bool, error)
	Put(ctx context.Context, table, key string, item interface{}) error
	Update(ctx context.Context, table, key string, attrs map[string]interface{}, out interface{}) error
	Delete(ctx context.Context, table, key string) error
	Count(ctx context.Context, table string) (int64, error)
	Close(ctx context.Context) error
}
