package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestia-app/paie-backend-go/internal/pkg/database"
)

// postgresStore keeps every document as one JSONB row in a shared
// documents table keyed by (collection, id).
type postgresStore struct {
	db *database.DB
}

func NewPostgresStore(db *database.DB) Store {
	return &postgresStore{db: db}
}

// Migrate creates the documents table if it does not exist yet.
func Migrate(ctx context.Context, db *database.DB) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			id         TEXT NOT NULL,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (collection, id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to migrate documents table: %w", err)
	}
	return nil
}

func (s *postgresStore) Get(ctx context.Context, collection, id string) (Document, error) {
	var data []byte
	err := s.db.QueryRow(ctx, `
		SELECT data FROM documents WHERE collection = $1 AND id = $2
	`, collection, id).Scan(&data)
	if err != nil {
		if err == pgx.ErrNoRows {
			return Document{}, ErrNotFound
		}
		return Document{}, fmt.Errorf("get %s/%s: %w: %w", collection, id, ErrUnavailable, err)
	}
	return Document{ID: id, Data: data}, nil
}

func (s *postgresStore) Set(ctx context.Context, collection, id string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("set %s/%s: encode: %w", collection, id, err)
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, id) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = NOW()
	`, collection, id, data)
	if err != nil {
		return fmt.Errorf("set %s/%s: %w: %w", collection, id, ErrUnavailable, err)
	}
	return nil
}

func (s *postgresStore) Update(ctx context.Context, collection, id string, partial map[string]interface{}) error {
	data, err := json.Marshal(partial)
	if err != nil {
		return fmt.Errorf("update %s/%s: encode: %w", collection, id, err)
	}
	tag, err := s.db.Exec(ctx, `
		UPDATE documents
		SET data = data || $3::jsonb, updated_at = NOW()
		WHERE collection = $1 AND id = $2
	`, collection, id, data)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w: %w", collection, id, ErrUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *postgresStore) Query(ctx context.Context, collection string, filters ...Filter) ([]Document, error) {
	match := make(map[string]interface{}, len(filters))
	for _, f := range filters {
		match[f.Field] = f.Value
	}
	matchJSON, err := json.Marshal(match)
	if err != nil {
		return nil, fmt.Errorf("query %s: encode filter: %w", collection, err)
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, data FROM documents
		WHERE collection = $1 AND data @> $2::jsonb
	`, collection, matchJSON)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w: %w", collection, ErrUnavailable, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.Data); err != nil {
			return nil, fmt.Errorf("query %s: scan: %w", collection, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query %s: %w: %w", collection, ErrUnavailable, err)
	}
	return docs, nil
}

func (s *postgresStore) ArrayUnion(ctx context.Context, collection, id, field, element string) error {
	// Membership is checked inside the statement so a retried call never
	// appends the same element twice.
	tag, err := s.db.Exec(ctx, `
		UPDATE documents
		SET data = jsonb_set(
				data,
				ARRAY[$3],
				COALESCE(data->$3, '[]'::jsonb) || to_jsonb($4::text)
			),
			updated_at = NOW()
		WHERE collection = $1 AND id = $2
		  AND NOT (COALESCE(data->$3, '[]'::jsonb) ? $4)
	`, collection, id, field, element)
	if err != nil {
		return fmt.Errorf("array union %s/%s.%s: %w: %w", collection, id, field, ErrUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		// Either the element was already present (a no-op success) or the
		// document is missing. Distinguish the two.
		_, err := s.Get(ctx, collection, id)
		return err
	}
	return nil
}
