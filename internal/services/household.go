package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"family-bank/internal/logger"
	"family-bank/internal/models"
)

// ErrHouseholdNameRequired is returned when a household is created with a
// missing or blank name. Rejected before any write.
var ErrHouseholdNameRequired = errors.New("household name is required")

// HouseholdWriter defines write operations for households.
type HouseholdWriter interface {
	Save(ctx context.Context, household models.Household) error
}

// HouseholdReader defines read operations for households.
type HouseholdReader interface {
	GetByID(ctx context.Context, houseID string) (*models.Household, error)
}

// HouseholdService creates households and lists them per user.
type HouseholdService struct {
	houseWriter  HouseholdWriter
	houseReader  HouseholdReader
	memberWriter MembershipWriter
	memberReader MembershipReader
	cache        MembershipCache
}

// NewHouseholdService creates a new HouseholdService.
func NewHouseholdService(
	houseWriter HouseholdWriter,
	houseReader HouseholdReader,
	memberWriter MembershipWriter,
	memberReader MembershipReader,
	cache MembershipCache,
) *HouseholdService {
	return &HouseholdService{
		houseWriter:  houseWriter,
		houseReader:  houseReader,
		memberWriter: memberWriter,
		memberReader: memberReader,
		cache:        cache,
	}
}

// Create creates a household and the creator's OWNER membership. Both writes
// run inside the request transaction: a household with no owner must never
// be observable.
func (svc *HouseholdService) Create(ctx context.Context, userID uuid.UUID, name string) (*models.UserHousehold, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrHouseholdNameRequired
	}

	now := time.Now().UTC()
	household := models.Household{
		HouseID:   uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		CreatedBy: userID.String(),
	}

	if err := svc.houseWriter.Save(ctx, household); err != nil {
		logger.Log.Errorw("failed to save household", "name", name, "error", err)
		return nil, err
	}

	membership := models.Membership{
		HouseID:  household.HouseID,
		UserID:   userID.String(),
		Role:     models.RoleOwner,
		JoinedAt: now,
	}

	if _, err := svc.memberWriter.Save(ctx, membership); err != nil {
		logger.Log.Errorw("failed to save owner membership", "houseID", household.HouseID, "error", err)
		return nil, err
	}

	if svc.cache != nil {
		_ = svc.cache.Invalidate(ctx, household.HouseID, userID.String())
	}

	return &models.UserHousehold{
		HouseID: household.HouseID,
		Name:    household.Name,
		Role:    models.RoleOwner,
	}, nil
}

// ListForUser returns all households the user belongs to, with role. Order
// is not guaranteed.
func (svc *HouseholdService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.UserHousehold, error) {
	memberships, err := svc.memberReader.ListByUser(ctx, userID.String())
	if err != nil {
		logger.Log.Errorw("failed to list memberships", "userID", userID, "error", err)
		return nil, err
	}

	households := make([]models.UserHousehold, 0, len(memberships))
	for _, membership := range memberships {
		household, err := svc.houseReader.GetByID(ctx, membership.HouseID)
		if err != nil {
			logger.Log.Errorw("failed to get household", "houseID", membership.HouseID, "error", err)
			return nil, err
		}
		if household == nil {
			continue
		}
		households = append(households, models.UserHousehold{
			HouseID: household.HouseID,
			Name:    household.Name,
			Role:    membership.Role,
		})
	}

	return households, nil
}
