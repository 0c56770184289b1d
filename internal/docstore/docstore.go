// Package docstore is a minimal document database abstraction: independent
// named collections of JSON documents addressed by an opaque string id, with
// shallow partial updates. There are no relationships or constraints between
// collections.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
)

// Collection names used by the API. The store treats them as opaque labels.
const (
	Goals     = "goals"
	Todos     = "todos"
	MoodBoard = "moodboard"
	Gallery   = "gallery"
)

// DefaultListLimit caps how many documents a single List fetches.
const DefaultListLimit = 1000

var ErrNotFound = errors.New("document not found")

type Store interface {
	// List returns up to limit documents in stable insertion order.
	// An empty collection yields an empty slice, not an error.
	List(ctx context.Context, collection string, limit int) ([]json.RawMessage, error)
	Get(ctx context.Context, collection, id string) (json.RawMessage, error)
	Insert(ctx context.Context, collection, id string, doc any) error
	// Patch overwrites exactly the given top-level fields of the stored
	// document. Values replace wholesale; sub-objects are not deep-merged.
	// A nil value writes an explicit JSON null.
	Patch(ctx context.Context, collection, id string, patch map[string]any) error
	// Delete removes the document, returning ErrNotFound when nothing was
	// removed.
	Delete(ctx context.Context, collection, id string) error
}
