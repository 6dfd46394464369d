package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"family-bank/internal/models"
	"family-bank/internal/services"
)

type inviteMocks struct {
	inviteWriter *services.MockInviteWriter
	inviteReader *services.MockInviteReader
	houseReader  *services.MockHouseholdReader
	memberWriter *services.MockMembershipWriter
	memberReader *services.MockMembershipReader
	cache        *services.MockMembershipCache
}

func newInviteService(ctrl *gomock.Controller) (*services.InviteService, inviteMocks) {
	m := inviteMocks{
		inviteWriter: services.NewMockInviteWriter(ctrl),
		inviteReader: services.NewMockInviteReader(ctrl),
		houseReader:  services.NewMockHouseholdReader(ctrl),
		memberWriter: services.NewMockMembershipWriter(ctrl),
		memberReader: services.NewMockMembershipReader(ctrl),
		cache:        services.NewMockMembershipCache(ctrl),
	}
	svc := services.NewInviteService(m.inviteWriter, m.inviteReader, m.houseReader, m.memberWriter, m.memberReader, m.cache)
	return svc, m
}

func TestInviteService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newInviteService(ctrl)

	userID := uuid.New()
	houseID := "house-1"

	t.Run("owner creates a pending invite", func(t *testing.T) {
		m.cache.EXPECT().
			GetRole(gomock.Any(), houseID, userID.String()).
			Return(models.RoleOwner, nil)
		m.houseReader.EXPECT().
			GetByID(gomock.Any(), houseID).
			Return(&models.Household{HouseID: houseID, Name: "Smith Family"}, nil)
		m.inviteWriter.EXPECT().
			Save(gomock.Any(), gomock.AssignableToTypeOf(models.Invite{})).
			DoAndReturn(func(_ context.Context, inv models.Invite) error {
				assert.Equal(t, houseID, inv.HouseID)
				assert.Equal(t, models.RoleMember, inv.Role)
				assert.Equal(t, models.InvitePending, inv.Status)
				assert.Equal(t, userID.String(), inv.CreatedBy)
				assert.WithinDuration(t, time.Now().UTC().Add(72*time.Hour), inv.ExpiresAt, time.Minute)
				return nil
			})

		inviteID, err := svc.Create(context.Background(), userID, houseID, models.RoleMember, 72)
		require.NoError(t, err)
		assert.NotEmpty(t, inviteID)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := svc.Create(context.Background(), userID, houseID, "ADMIN", 72)
		assert.ErrorIs(t, err, services.ErrInvalidInviteRole)
	})

	t.Run("non-positive expiry", func(t *testing.T) {
		_, err := svc.Create(context.Background(), userID, houseID, models.RoleMember, 0)
		assert.ErrorIs(t, err, services.ErrInvalidInviteExpiry)
	})

	t.Run("member cannot create invites", func(t *testing.T) {
		m.cache.EXPECT().
			GetRole(gomock.Any(), houseID, userID.String()).
			Return(models.RoleMember, nil)

		_, err := svc.Create(context.Background(), userID, houseID, models.RoleMember, 72)
		assert.ErrorIs(t, err, services.ErrNotOwner)
	})

	t.Run("non-member cannot create invites", func(t *testing.T) {
		m.cache.EXPECT().
			GetRole(gomock.Any(), houseID, userID.String()).
			Return("", nil)
		m.memberReader.EXPECT().
			GetByHouseholdAndUser(gomock.Any(), houseID, userID.String()).
			Return(nil, nil)

		_, err := svc.Create(context.Background(), userID, houseID, models.RoleMember, 72)
		assert.ErrorIs(t, err, services.ErrNotOwner)
	})

	t.Run("household gone", func(t *testing.T) {
		m.cache.EXPECT().
			GetRole(gomock.Any(), houseID, userID.String()).
			Return(models.RoleOwner, nil)
		m.houseReader.EXPECT().
			GetByID(gomock.Any(), houseID).
			Return(nil, nil)

		_, err := svc.Create(context.Background(), userID, houseID, models.RoleMember, 72)
		assert.ErrorIs(t, err, services.ErrHouseholdNotFound)
	})

	t.Run("cache miss falls back to the store", func(t *testing.T) {
		m.cache.EXPECT().
			GetRole(gomock.Any(), houseID, userID.String()).
			Return("", nil)
		m.memberReader.EXPECT().
			GetByHouseholdAndUser(gomock.Any(), houseID, userID.String()).
			Return(&models.Membership{HouseID: houseID, UserID: userID.String(), Role: models.RoleOwner}, nil)
		m.cache.EXPECT().
			SetRole(gomock.Any(), houseID, userID.String(), models.RoleOwner).
			Return(nil)
		m.houseReader.EXPECT().
			GetByID(gomock.Any(), houseID).
			Return(&models.Household{HouseID: houseID}, nil)
		m.inviteWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.Create(context.Background(), userID, houseID, models.RoleMember, 72)
		assert.NoError(t, err)
	})
}

func TestInviteService_Accept(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newInviteService(ctrl)

	userID := uuid.New()
	inviteID := "invite-1"
	houseID := "house-1"

	pendingInvite := func() *models.Invite {
		return &models.Invite{
			InviteID:  inviteID,
			HouseID:   houseID,
			Role:      models.RoleMember,
			Status:    models.InvitePending,
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		}
	}

	t.Run("successful accept", func(t *testing.T) {
		m.inviteReader.EXPECT().
			GetByID(gomock.Any(), inviteID).
			Return(pendingInvite(), nil)
		m.memberReader.EXPECT().
			GetByHouseholdAndUser(gomock.Any(), houseID, userID.String()).
			Return(nil, nil)
		m.memberWriter.EXPECT().
			Save(gomock.Any(), gomock.AssignableToTypeOf(models.Membership{})).
			DoAndReturn(func(_ context.Context, mem models.Membership) (bool, error) {
				assert.Equal(t, houseID, mem.HouseID)
				assert.Equal(t, userID.String(), mem.UserID)
				assert.Equal(t, models.RoleMember, mem.Role)
				return true, nil
			})
		m.inviteWriter.EXPECT().
			MarkAccepted(gomock.Any(), gomock.AssignableToTypeOf(models.Invite{})).
			DoAndReturn(func(_ context.Context, inv models.Invite) (bool, error) {
				assert.Equal(t, models.InviteAccepted, inv.Status)
				assert.Equal(t, userID.String(), inv.AcceptedBy)
				return true, nil
			})
		m.cache.EXPECT().
			Invalidate(gomock.Any(), houseID, userID.String()).
			Return(nil)

		err := svc.Accept(context.Background(), userID, inviteID)
		assert.NoError(t, err)
	})

	t.Run("invite not found", func(t *testing.T) {
		m.inviteReader.EXPECT().
			GetByID(gomock.Any(), inviteID).
			Return(nil, nil)

		err := svc.Accept(context.Background(), userID, inviteID)
		assert.ErrorIs(t, err, services.ErrInviteNotFound)
	})

	t.Run("already accepted", func(t *testing.T) {
		inv := pendingInvite()
		inv.Status = models.InviteAccepted
		m.inviteReader.EXPECT().
			GetByID(gomock.Any(), inviteID).
			Return(inv, nil)

		err := svc.Accept(context.Background(), userID, inviteID)
		assert.ErrorIs(t, err, services.ErrInviteNotPending)
	})

	t.Run("expired invite stays pending but cannot be used", func(t *testing.T) {
		inv := pendingInvite()
		inv.ExpiresAt = time.Now().UTC().Add(-time.Minute)
		m.inviteReader.EXPECT().
			GetByID(gomock.Any(), inviteID).
			Return(inv, nil)

		err := svc.Accept(context.Background(), userID, inviteID)
		assert.ErrorIs(t, err, services.ErrInviteExpired)
	})

	t.Run("caller already a member", func(t *testing.T) {
		m.inviteReader.EXPECT().
			GetByID(gomock.Any(), inviteID).
			Return(pendingInvite(), nil)
		m.memberReader.EXPECT().
			GetByHouseholdAndUser(gomock.Any(), houseID, userID.String()).
			Return(&models.Membership{HouseID: houseID, UserID: userID.String(), Role: models.RoleOwner}, nil)

		err := svc.Accept(context.Background(), userID, inviteID)
		assert.ErrorIs(t, err, services.ErrAlreadyMember)
	})

	t.Run("concurrent insert loses", func(t *testing.T) {
		m.inviteReader.EXPECT().
			GetByID(gomock.Any(), inviteID).
			Return(pendingInvite(), nil)
		m.memberReader.EXPECT().
			GetByHouseholdAndUser(gomock.Any(), houseID, userID.String()).
			Return(nil, nil)
		m.memberWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Accept(context.Background(), userID, inviteID)
		assert.ErrorIs(t, err, services.ErrAlreadyMember)
	})

	t.Run("concurrent accept flips first", func(t *testing.T) {
		m.inviteReader.EXPECT().
			GetByID(gomock.Any(), inviteID).
			Return(pendingInvite(), nil)
		m.memberReader.EXPECT().
			GetByHouseholdAndUser(gomock.Any(), houseID, userID.String()).
			Return(nil, nil)
		m.memberWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(true, nil)
		m.inviteWriter.EXPECT().
			MarkAccepted(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Accept(context.Background(), userID, inviteID)
		assert.ErrorIs(t, err, services.ErrInviteNotPending)
	})
}
