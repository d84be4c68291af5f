package menu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// GET DOCUMENT
// --------------------------------------------------
func (r *PostgresRepository) Get(
	ctx context.Context,
	key string,
) (*Document, error) {

	var data []byte

	err := r.db.QueryRow(ctx, `
		SELECT data
		FROM menu_documents
		WHERE id = $1
	`, key).Scan(&data)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode menu document %q: %w", key, err)
	}

	return &doc, nil
}

// --------------------------------------------------
// UPSERT DOCUMENT (ONE ROW PER KEY)
// --------------------------------------------------
func (r *PostgresRepository) Upsert(
	ctx context.Context,
	key string,
	doc *Document,
) error {

	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO menu_documents (id, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE
		SET data = EXCLUDED.data,
		    updated_at = now()
	`, key, data)

	return err
}
