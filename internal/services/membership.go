package services

import (
	"context"
	"errors"

	"family-bank/internal/models"
)

// ErrNotMember is returned when the caller does not belong to the household
// an operation references. Authorization is membership-based for every
// operation except invite creation, which additionally requires OWNER.
var ErrNotMember = errors.New("forbidden: not a member of this household")

// MembershipReader defines read operations for memberships.
type MembershipReader interface {
	GetByHouseholdAndUser(ctx context.Context, houseID, userID string) (*models.Membership, error) // Returns the membership or nil
	ListByHousehold(ctx context.Context, houseID string) ([]models.Membership, error)              // Members of a household
	ListByUser(ctx context.Context, userID string) ([]models.Membership, error)                    // Households of a user
}

// MembershipWriter defines write operations for memberships.
type MembershipWriter interface {
	Save(ctx context.Context, membership models.Membership) (bool, error) // Returns false when the membership already exists
}

// MembershipCache caches membership roles in front of the store.
type MembershipCache interface {
	GetRole(ctx context.Context, houseID, userID string) (string, error) // Empty string on miss
	SetRole(ctx context.Context, houseID, userID, role string) error
	Invalidate(ctx context.Context, houseID, userID string) error
}

// resolveRole returns the caller's role in a household, reading through the
// cache. An empty role means the caller is not a member. Cache failures are
// ignored; the store is authoritative.
func resolveRole(ctx context.Context, cache MembershipCache, reader MembershipReader, houseID, userID string) (string, error) {
	if cache != nil {
		if role, err := cache.GetRole(ctx, houseID, userID); err == nil && role != "" {
			return role, nil
		}
	}

	membership, err := reader.GetByHouseholdAndUser(ctx, houseID, userID)
	if err != nil {
		return "", err
	}
	if membership == nil {
		return "", nil
	}

	if cache != nil {
		_ = cache.SetRole(ctx, houseID, userID, membership.Role)
	}

	return membership.Role, nil
}
