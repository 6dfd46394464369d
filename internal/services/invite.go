package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"family-bank/internal/logger"
	"family-bank/internal/models"
)

// Error variables
var (
	ErrNotOwner            = errors.New("forbidden: only OWNER can create invites")
	ErrInvalidInviteRole   = errors.New("role must be OWNER or MEMBER")
	ErrInvalidInviteExpiry = errors.New("expiresInHours must be positive")
	ErrHouseholdNotFound   = errors.New("household not found")
	ErrInviteNotFound      = errors.New("invite not found")
	ErrInviteNotPending    = errors.New("invite already accepted, no longer pending")
	ErrInviteExpired       = errors.New("invite expired")
	ErrAlreadyMember       = errors.New("already a member of this household")
)

// InviteWriter defines write operations for invites.
type InviteWriter interface {
	Save(ctx context.Context, invite models.Invite) error
	MarkAccepted(ctx context.Context, invite models.Invite) (bool, error) // Returns false when the invite is no longer PENDING
}

// InviteReader defines read operations for invites.
type InviteReader interface {
	GetByID(ctx context.Context, inviteID string) (*models.Invite, error)
}

// InviteService drives the invite lifecycle: OWNER-guarded creation and the
// single PENDING -> ACCEPTED transition.
type InviteService struct {
	inviteWriter InviteWriter
	inviteReader InviteReader
	houseReader  HouseholdReader
	memberWriter MembershipWriter
	memberReader MembershipReader
	cache        MembershipCache
}

// NewInviteService creates a new InviteService.
func NewInviteService(
	inviteWriter InviteWriter,
	inviteReader InviteReader,
	houseReader HouseholdReader,
	memberWriter MembershipWriter,
	memberReader MembershipReader,
	cache MembershipCache,
) *InviteService {
	return &InviteService{
		inviteWriter: inviteWriter,
		inviteReader: inviteReader,
		houseReader:  houseReader,
		memberWriter: memberWriter,
		memberReader: memberReader,
		cache:        cache,
	}
}

// Create persists a PENDING invite for a household the caller owns and
// returns its id. The client composes the shareable join URL around it.
func (svc *InviteService) Create(ctx context.Context, userID uuid.UUID, houseID, role string, expiresInHours int) (string, error) {
	if !models.ValidRole(role) {
		return "", ErrInvalidInviteRole
	}
	if expiresInHours <= 0 {
		return "", ErrInvalidInviteExpiry
	}

	callerRole, err := resolveRole(ctx, svc.cache, svc.memberReader, houseID, userID.String())
	if err != nil {
		logger.Log.Errorw("failed to resolve caller role", "houseID", houseID, "userID", userID, "error", err)
		return "", err
	}
	if callerRole != models.RoleOwner {
		return "", ErrNotOwner
	}

	household, err := svc.houseReader.GetByID(ctx, houseID)
	if err != nil {
		logger.Log.Errorw("failed to get household", "houseID", houseID, "error", err)
		return "", err
	}
	if household == nil {
		return "", ErrHouseholdNotFound
	}

	now := time.Now().UTC()
	invite := models.Invite{
		InviteID:  uuid.NewString(),
		HouseID:   houseID,
		Role:      role,
		CreatedBy: userID.String(),
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(expiresInHours) * time.Hour),
		Status:    models.InvitePending,
	}

	if err := svc.inviteWriter.Save(ctx, invite); err != nil {
		logger.Log.Errorw("failed to save invite", "houseID", houseID, "error", err)
		return "", err
	}

	return invite.InviteID, nil
}

// Accept consumes an invite for the calling user. Checks run in order, each
// a distinct failure mode: the invite must exist, still be PENDING, not be
// expired, and the caller must not already belong to the household. On
// success the membership insert and the PENDING -> ACCEPTED flip land in the
// same request transaction; neither is observable without the other.
func (svc *InviteService) Accept(ctx context.Context, userID uuid.UUID, inviteID string) error {
	invite, err := svc.inviteReader.GetByID(ctx, inviteID)
	if err != nil {
		logger.Log.Errorw("failed to get invite", "inviteID", inviteID, "error", err)
		return err
	}
	if invite == nil {
		return ErrInviteNotFound
	}

	if invite.Status != models.InvitePending {
		return ErrInviteNotPending
	}

	if time.Now().UTC().After(invite.ExpiresAt) {
		return ErrInviteExpired
	}

	existing, err := svc.memberReader.GetByHouseholdAndUser(ctx, invite.HouseID, userID.String())
	if err != nil {
		logger.Log.Errorw("failed to check membership", "houseID", invite.HouseID, "userID", userID, "error", err)
		return err
	}
	if existing != nil {
		return ErrAlreadyMember
	}

	membership := models.Membership{
		HouseID:  invite.HouseID,
		UserID:   userID.String(),
		Role:     invite.Role,
		JoinedAt: time.Now().UTC(),
	}

	inserted, err := svc.memberWriter.Save(ctx, membership)
	if err != nil {
		logger.Log.Errorw("failed to save membership", "houseID", invite.HouseID, "userID", userID, "error", err)
		return err
	}
	if !inserted {
		return ErrAlreadyMember
	}

	accepted := *invite
	accepted.Status = models.InviteAccepted
	accepted.AcceptedBy = userID.String()

	flipped, err := svc.inviteWriter.MarkAccepted(ctx, accepted)
	if err != nil {
		logger.Log.Errorw("failed to mark invite accepted", "inviteID", inviteID, "error", err)
		return err
	}
	if !flipped {
		// A concurrent accept flipped it first; the error status makes the
		// request transaction roll the membership insert back.
		return ErrInviteNotPending
	}

	if svc.cache != nil {
		_ = svc.cache.Invalidate(ctx, invite.HouseID, userID.String())
	}

	return nil
}
