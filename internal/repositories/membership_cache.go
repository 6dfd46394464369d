package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"family-bank/internal/logger"
)

// MembershipCacheRepository caches membership roles in Redis. Membership is
// checked on every authorized operation, so the hot path reads through the
// cache instead of the store.
type MembershipCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached roles
}

// NewMembershipCacheRepository creates a new repository instance with the given TTL
func NewMembershipCacheRepository(client *redis.Client, expiration time.Duration) *MembershipCacheRepository {
	return &MembershipCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func membershipKey(houseID, userID string) string {
	return fmt.Sprintf("membership:%s:%s", houseID, userID)
}

// GetRole returns the cached role of a user in a household, or an empty
// string on cache miss.
func (r *MembershipCacheRepository) GetRole(ctx context.Context, houseID, userID string) (string, error) {
	key := membershipKey(houseID, userID)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow("cache get",
		"key", key,
		"result", val,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return val, nil
}

// SetRole caches the role of a user in a household with expiration.
func (r *MembershipCacheRepository) SetRole(ctx context.Context, houseID, userID, role string) error {
	key := membershipKey(houseID, userID)
	err := r.client.Set(ctx, key, role, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"role", role,
		"error", err,
	)

	return err
}

// Invalidate drops the cached role after a membership write.
func (r *MembershipCacheRepository) Invalidate(ctx context.Context, houseID, userID string) error {
	key := membershipKey(houseID, userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("cache del",
		"key", key,
		"error", err,
	)

	return err
}
