package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/KDR9MGR/digital-payments-core/internal/domain/transfer"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CapabilityRepository implements transfer.CapabilityLookup using PostgreSQL.
// It is the local directory of account capability flags, synced from the
// upstream account provider.
type CapabilityRepository struct {
	pool *pgxpool.Pool
}

// NewCapabilityRepository creates a new CapabilityRepository.
func NewCapabilityRepository(pool *pgxpool.Pool) *CapabilityRepository {
	return &CapabilityRepository{pool: pool}
}

// Lookup returns the capability flags for an account. An unknown account is
// reported as (nil, nil): absence is a valid directory answer, not an error.
func (r *CapabilityRepository) Lookup(ctx context.Context, accountID string) (*transfer.AccountCapability, error) {
	c := &transfer.AccountCapability{}
	err := r.pool.QueryRow(ctx,
		`SELECT charges_enabled, payouts_enabled
		 FROM account_capabilities WHERE account_id = $1`, accountID,
	).Scan(&c.ChargesEnabled, &c.PayoutsEnabled)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup capability: %w", err)
	}
	return c, nil
}

// Upsert records the latest capability flags for an account.
func (r *CapabilityRepository) Upsert(ctx context.Context, accountID string, c transfer.AccountCapability) error {
	now := time.Now().UTC()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO account_capabilities (account_id, charges_enabled, payouts_enabled, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $4)
		 ON CONFLICT (account_id)
		 DO UPDATE SET charges_enabled = $2, payouts_enabled = $3, updated_at = $4`,
		accountID, c.ChargesEnabled, c.PayoutsEnabled, now,
	)
	if err != nil {
		return fmt.Errorf("upsert capability: %w", err)
	}
	return nil
}

// Delete removes an account from the directory.
func (r *CapabilityRepository) Delete(ctx context.Context, accountID string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM account_capabilities WHERE account_id = $1`, accountID,
	)
	if err != nil {
		return fmt.Errorf("delete capability: %w", err)
	}
	return nil
}
