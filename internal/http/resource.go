package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/radhikag0/VisionBoard26/internal/docstore"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Document is any entity persisted in the store.
type Document interface {
	DocID() string
}

// CreateShape validates a create payload and mints the full entity (id and
// any server-side timestamp included).
type CreateShape[T Document] interface {
	Validate() error
	Entity() T
}

// UpdateShape compiles a sparse update payload into the set of fields to
// overwrite. Fields absent from the payload must be absent from the patch.
type UpdateShape interface {
	Patch() map[string]any
}

// resource is the one CRUD handler, instantiated per entity kind. label is
// the human-readable name used in error and ack messages ("Goal", "Image").
type resource[T Document, C CreateShape[T], U UpdateShape] struct {
	store      docstore.Store
	collection string
	label      string
}

func newResource[T Document, C CreateShape[T], U UpdateShape](store docstore.Store, collection, label string) *resource[T, C, U] {
	return &resource[T, C, U]{store: store, collection: collection, label: label}
}

func (res *resource[T, C, U]) routes(r chi.Router) {
	r.Get("/", res.list)
	r.Post("/", res.create)
	r.Put("/{id}", res.update)
	r.Delete("/{id}", res.delete)
}

func (res *resource[T, C, U]) list(w http.ResponseWriter, r *http.Request) {
	docs, err := res.store.List(r.Context(), res.collection, docstore.DefaultListLimit)
	if err != nil {
		zap.S().Errorw("list failed", "collection", res.collection, "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to list %s", res.collection))
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

func (res *resource[T, C, U]) create(w http.ResponseWriter, r *http.Request) {
	var shape C
	if !decodeJSON(w, r, &shape) {
		return
	}
	if err := shape.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	entity := shape.Entity()
	if err := res.store.Insert(r.Context(), res.collection, entity.DocID(), entity); err != nil {
		zap.S().Errorw("insert failed", "collection", res.collection, "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to create %s", res.collection))
		return
	}
	writeJSON(w, http.StatusOK, entity)
}

// update is a read-modify-write without a transaction: a concurrent update
// or delete between the existence check and the write-back can race. That is
// an accepted limitation of the store contract.
func (res *resource[T, C, U]) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var shape U
	if !decodeJSON(w, r, &shape) {
		return
	}
	if _, err := res.store.Get(r.Context(), res.collection, id); err != nil {
		res.notFoundOrInternal(w, err, "lookup")
		return
	}
	if err := res.store.Patch(r.Context(), res.collection, id, shape.Patch()); err != nil {
		res.notFoundOrInternal(w, err, "patch")
		return
	}
	// Re-read after the write so the response reflects exactly what the
	// store now holds.
	doc, err := res.store.Get(r.Context(), res.collection, id)
	if err != nil {
		res.notFoundOrInternal(w, err, "reread")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (res *resource[T, C, U]) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := res.store.Delete(r.Context(), res.collection, id); err != nil {
		res.notFoundOrInternal(w, err, "delete")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": res.label + " deleted"})
}

func (res *resource[T, C, U]) notFoundOrInternal(w http.ResponseWriter, err error, op string) {
	if errors.Is(err, docstore.ErrNotFound) {
		writeError(w, http.StatusNotFound, res.label+" not found")
		return
	}
	zap.S().Errorw(op+" failed", "collection", res.collection, "error", err)
	writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to access %s", res.collection))
}
