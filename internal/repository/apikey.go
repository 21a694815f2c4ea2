package repository

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/storefront-orders/internal/domain/auth"
)

const (
	findActiveAPIKeySQL = `SELECT id, name, key_hash, scopes
		FROM api_keys WHERE key_hash = $1 AND active`

	upsertAPIKeySQL = `INSERT INTO api_keys (id, name, key_hash, scopes, active)
		VALUES ($1, $2, $3, $4, TRUE)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, key_hash = EXCLUDED.key_hash,
		    scopes = EXCLUDED.scopes, active = TRUE`
)

var _ auth.Repository = (*APIKeyRepository)(nil)

// APIKeyRepository stores API keys by their hex-encoded HMAC digest.
type APIKeyRepository struct {
	pool *pgxpool.Pool
}

// NewAPIKeyRepository returns an APIKeyRepository that uses the given pool.
func NewAPIKeyRepository(pool *pgxpool.Pool) *APIKeyRepository {
	return &APIKeyRepository{pool: pool}
}

// FindByHash returns the active key whose digest is hash, or auth.ErrNotFound.
func (r *APIKeyRepository) FindByHash(ctx context.Context, hash string) (*auth.APIKey, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, findActiveAPIKeySQL, hash)
	if err != nil {
		return nil, fmt.Errorf("finding api key: %w", err)
	}
	key, err := pgx.CollectExactlyOneRow(rows, scanAPIKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrNotFound
		}
		return nil, fmt.Errorf("finding api key: %w", err)
	}
	return &key, nil
}

// Save creates or replaces key and marks it active.
func (r *APIKeyRepository) Save(ctx context.Context, key *auth.APIKey) error {
	if _, err := conn(ctx, r.pool).Exec(ctx, upsertAPIKeySQL,
		key.ID, key.Name, hex.EncodeToString(key.Hash), key.Scopes.Names(),
	); err != nil {
		return fmt.Errorf("saving api key %q: %w", key.ID, err)
	}
	return nil
}

func scanAPIKey(row pgx.CollectableRow) (auth.APIKey, error) {
	var (
		key    auth.APIKey
		digest string
		scopes []string
	)
	if err := row.Scan(&key.ID, &key.Name, &digest, &scopes); err != nil {
		return key, err
	}
	raw, err := hex.DecodeString(digest)
	if err != nil {
		return key, errors.Wrapf(err, "decode digest of key %q", key.ID)
	}
	key.Hash = raw
	key.Scopes = auth.NewScopes(scopes...)
	return key, nil
}
