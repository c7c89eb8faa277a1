// Package storage provides the durable key-value store behind the stock
// engine. Collections are persisted as JSON strings under fixed keys; the
// engine never sees the backend, only this interface.
package storage

import "context"

// Store is a durable key-value store. Get reports presence explicitly so
// an absent key is distinguishable from an empty value.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}
