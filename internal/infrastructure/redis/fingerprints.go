package redis

import (
	"context"
	"fmt"

	"github.com/KDR9MGR/digital-payments-core/internal/domain/card"
	"github.com/redis/go-redis/v9"
)

const fingerprintSetKey = "cards:fingerprints"

// FingerprintStore keeps the set of enrolled card fingerprints in a Redis
// set so duplicate detection works across instances. It stores HMAC
// fingerprints only, never card numbers.
type FingerprintStore struct {
	client *redis.Client
	key    string
}

func NewFingerprintStore(client *redis.Client) *FingerprintStore {
	return &FingerprintStore{client: client, key: fingerprintSetKey}
}

// Contains implements card.FingerprintSet.
func (s *FingerprintStore) Contains(ctx context.Context, fp card.Fingerprint) (bool, error) {
	ok, err := s.client.SIsMember(ctx, s.key, string(fp)).Result()
	if err != nil {
		return false, fmt.Errorf("sismember %s: %w", s.key, err)
	}
	return ok, nil
}

// Add records a fingerprint after a successful enrollment.
func (s *FingerprintStore) Add(ctx context.Context, fp card.Fingerprint) error {
	if err := s.client.SAdd(ctx, s.key, string(fp)).Err(); err != nil {
		return fmt.Errorf("sadd %s: %w", s.key, err)
	}
	return nil
}

// Remove drops a fingerprint when a card is deleted from the wallet.
func (s *FingerprintStore) Remove(ctx context.Context, fp card.Fingerprint) error {
	if err := s.client.SRem(ctx, s.key, string(fp)).Err(); err != nil {
		return fmt.Errorf("srem %s: %w", s.key, err)
	}
	return nil
}
