package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres stores every document as a jsonb row in a single documents table
// keyed by (collection, id).
type Postgres struct {
	Pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{Pool: pool}
}

func (s *Postgres) List(ctx context.Context, collection string, limit int) ([]json.RawMessage, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.Pool.Query(ctx, `SELECT doc FROM documents WHERE collection=$1 ORDER BY inserted_at, id LIMIT $2`, collection, limit)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer rows.Close()
	docs := []json.RawMessage{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		docs = append(docs, json.RawMessage(doc))
	}
	return docs, rows.Err()
}

func (s *Postgres) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	var doc []byte
	err := s.Pool.QueryRow(ctx, `SELECT doc FROM documents WHERE collection=$1 AND id=$2`, collection, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return json.RawMessage(doc), nil
}

func (s *Postgres) Insert(ctx context.Context, collection, id string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s/%s: %w", collection, id, err)
	}
	_, err = s.Pool.Exec(ctx, `INSERT INTO documents (collection, id, doc) VALUES ($1, $2, $3)`, collection, id, body)
	if err != nil {
		return fmt.Errorf("insert %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *Postgres) Patch(ctx context.Context, collection, id string, patch map[string]any) error {
	if len(patch) == 0 {
		// Nothing to overwrite; existence was already checked by the caller.
		return nil
	}
	body, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("marshal patch %s/%s: %w", collection, id, err)
	}
	// jsonb || merges top-level keys only, which is exactly the wanted
	// replace-not-deep-merge semantics.
	tag, err := s.Pool.Exec(ctx, `UPDATE documents SET doc = doc || $3::jsonb WHERE collection=$1 AND id=$2`, collection, id, body)
	if err != nil {
		return fmt.Errorf("patch %s/%s: %w", collection, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) Delete(ctx context.Context, collection, id string) error {
	tag, err := s.Pool.Exec(ctx, `DELETE FROM documents WHERE collection=$1 AND id=$2`, collection, id)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
