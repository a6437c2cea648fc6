package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore records revoked token ids in Redis until the token would
// have expired anyway. Key format: revoked:<jti>
type RevocationStore struct {
	client *redis.Client
}

// NewRevocationStore creates a RevocationStore wrapping the given Redis client.
func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client}
}

// IsRevoked reports whether the token id has been revoked.
func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

// Revoke marks the token id as revoked for ttlSeconds. The TTL matches the
// token's remaining lifetime so entries clean themselves up.
func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, ttlSeconds int64) error {
	return s.client.Set(ctx, s.key(tokenID), "1", time.Duration(ttlSeconds)*time.Second).Err()
}

func (s *RevocationStore) key(tokenID string) string {
	return "revoked:" + tokenID
}
