// Package store holds the durable key-value slot the todo list is persisted in.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/idilsaglam/todomvc/internal/store/jsonstore"
	"github.com/idilsaglam/todomvc/internal/store/memstore"
	"github.com/idilsaglam/todomvc/internal/store/sqlitestore"
)

// KV is a durable key-value store. Values are opaque text and are
// overwritten wholesale on every Set.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Backends lists the supported backend names.
var Backends = []string{BackendJSON, BackendSQLite, BackendMemory}

var ErrUnknownBackend = errors.New("unknown store backend")

// Open returns the KV named by backend, rooted at dir.
func Open(ctx context.Context, backend, dir string) (KV, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendJSON:
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		return jsonstore.New(dir), nil
	case BackendSQLite:
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		return sqlitestore.Open(ctx, dir)
	case BackendMemory:
		return memstore.New(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}

// ValidBackend reports whether name is accepted by Open.
func ValidBackend(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return true
	}
	for _, b := range Backends {
		if b == name {
			return true
		}
	}
	return false
}
