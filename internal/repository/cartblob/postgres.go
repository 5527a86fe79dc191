package cartblob

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresStorage struct {
	pool *pgxpool.Pool
}

// NewPostgres stores cart blobs in the cart_blobs table, one row per key.
func NewPostgres(pool *pgxpool.Pool) Storage {
	return &postgresStorage{pool: pool}
}

func (s *postgresStorage) Load(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT payload FROM cart_blobs WHERE key = $1`
	var blob []byte
	if err := s.pool.QueryRow(ctx, q, key).Scan(&blob); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return blob, nil
}

func (s *postgresStorage) Save(ctx context.Context, key string, blob []byte) error {
	const q = `
INSERT INTO cart_blobs (key, payload, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()
`
	_, err := s.pool.Exec(ctx, q, key, blob)
	return err
}

func (s *postgresStorage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
