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

// ErrDisplayNameRequired is returned when a profile is written with a blank
// display name.
var ErrDisplayNameRequired = errors.New("displayName is required")

// ProfileWriter defines write operations for profiles.
type ProfileWriter interface {
	Save(ctx context.Context, profile models.Profile) error
}

// ProfileReader defines read operations for profiles.
type ProfileReader interface {
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
}

// ProfileService reads and upserts user profiles.
type ProfileService struct {
	writeRepo    ProfileWriter
	readRepo     ProfileReader
	memberReader MembershipReader
	cache        MembershipCache
}

// NewProfileService creates a new ProfileService.
func NewProfileService(writeRepo ProfileWriter, readRepo ProfileReader, memberReader MembershipReader, cache MembershipCache) *ProfileService {
	return &ProfileService{
		writeRepo:    writeRepo,
		readRepo:     readRepo,
		memberReader: memberReader,
		cache:        cache,
	}
}

// Get returns the caller's profile, defaulting to an empty display name when
// never set.
func (svc *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	profile, err := svc.readRepo.GetByUserID(ctx, userID.String())
	if err != nil {
		logger.Log.Errorw("failed to get profile", "userID", userID, "error", err)
		return nil, err
	}
	if profile == nil {
		return &models.Profile{UserID: userID.String()}, nil
	}

	return profile, nil
}

// Put overwrites the caller's profile record. The avatar URL is optional.
func (svc *ProfileService) Put(ctx context.Context, userID uuid.UUID, displayName, avatarURL string) (*models.Profile, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, ErrDisplayNameRequired
	}

	now := time.Now().UTC()
	profile := models.Profile{
		UserID:      userID.String(),
		DisplayName: displayName,
		AvatarURL:   strings.TrimSpace(avatarURL),
		UpdatedAt:   &now,
	}

	if err := svc.writeRepo.Save(ctx, profile); err != nil {
		logger.Log.Errorw("failed to save profile", "userID", userID, "error", err)
		return nil, err
	}

	return &profile, nil
}

// ListForHousehold returns the profiles of every member of a household the
// caller belongs to. Members that never wrote a profile appear with the
// default empty one.
func (svc *ProfileService) ListForHousehold(ctx context.Context, userID uuid.UUID, houseID string) ([]models.Profile, error) {
	role, err := resolveRole(ctx, svc.cache, svc.memberReader, houseID, userID.String())
	if err != nil {
		logger.Log.Errorw("failed to resolve caller role", "houseID", houseID, "userID", userID, "error", err)
		return nil, err
	}
	if role == "" {
		return nil, ErrNotMember
	}

	memberships, err := svc.memberReader.ListByHousehold(ctx, houseID)
	if err != nil {
		logger.Log.Errorw("failed to list members", "houseID", houseID, "error", err)
		return nil, err
	}

	profiles := make([]models.Profile, 0, len(memberships))
	for _, membership := range memberships {
		profile, err := svc.readRepo.GetByUserID(ctx, membership.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get member profile", "userID", membership.UserID, "error", err)
			return nil, err
		}
		if profile == nil {
			profile = &models.Profile{UserID: membership.UserID}
		}
		profiles = append(profiles, *profile)
	}

	return profiles, nil
}
