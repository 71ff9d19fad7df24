package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitaipro/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const SchemaSQL = `
CREATE TABLE IF NOT EXISTS record
(
    kind       VARCHAR     NOT NULL,
    key        VARCHAR     NOT NULL,
    data       BYTEA       NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (kind, key)
);
`

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		db: db,
	}
}

// Migrate creates the record table if missing.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, SchemaSQL); err != nil {
		return fmt.Errorf("create record table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, kind RecordKind, key string) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.postgres.get")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(attribute.String("kind", kind.String()))

	var data []byte
	err = s.db.
		QueryRow(ctx, `SELECT data FROM record WHERE kind = $1 AND key = $2`, kind.String(), key).
		Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *PostgresStore) Set(ctx context.Context, kind RecordKind, key string, value []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.postgres.set")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(attribute.String("kind", kind.String()))

	_, err = s.db.Exec(ctx, `
		INSERT INTO record (kind, key, data, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (kind, key) DO UPDATE
			SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at;
	`, kind.String(), key, value)
	return err
}

func (s *PostgresStore) Delete(ctx context.Context, kind RecordKind, key string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.postgres.delete")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(attribute.String("kind", kind.String()))

	_, err = s.db.Exec(ctx, `DELETE FROM record WHERE kind = $1 AND key = $2`, kind.String(), key)
	return err
}
