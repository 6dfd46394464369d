package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"family-bank/internal/models"
	"family-bank/internal/services"
)

func TestHouseholdService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHouseWriter := services.NewMockHouseholdWriter(ctrl)
	mockHouseReader := services.NewMockHouseholdReader(ctrl)
	mockMemberWriter := services.NewMockMembershipWriter(ctrl)
	mockMemberReader := services.NewMockMembershipReader(ctrl)
	mockCache := services.NewMockMembershipCache(ctrl)

	svc := services.NewHouseholdService(mockHouseWriter, mockHouseReader, mockMemberWriter, mockMemberReader, mockCache)

	userID := uuid.New()

	t.Run("creator becomes OWNER", func(t *testing.T) {
		var savedHouseID string

		mockHouseWriter.EXPECT().
			Save(gomock.Any(), gomock.AssignableToTypeOf(models.Household{})).
			DoAndReturn(func(_ context.Context, h models.Household) error {
				assert.Equal(t, "Smith Family", h.Name)
				assert.Equal(t, userID.String(), h.CreatedBy)
				assert.NotEmpty(t, h.HouseID)
				savedHouseID = h.HouseID
				return nil
			})

		mockMemberWriter.EXPECT().
			Save(gomock.Any(), gomock.AssignableToTypeOf(models.Membership{})).
			DoAndReturn(func(_ context.Context, m models.Membership) (bool, error) {
				assert.Equal(t, savedHouseID, m.HouseID)
				assert.Equal(t, userID.String(), m.UserID)
				assert.Equal(t, models.RoleOwner, m.Role)
				return true, nil
			})

		mockCache.EXPECT().
			Invalidate(gomock.Any(), gomock.Any(), userID.String()).
			Return(nil)

		result, err := svc.Create(context.Background(), userID, "  Smith Family  ")
		require.NoError(t, err)
		assert.Equal(t, savedHouseID, result.HouseID)
		assert.Equal(t, "Smith Family", result.Name)
		assert.Equal(t, models.RoleOwner, result.Role)
	})

	t.Run("blank name rejected before any write", func(t *testing.T) {
		result, err := svc.Create(context.Background(), userID, "   ")
		assert.ErrorIs(t, err, services.ErrHouseholdNameRequired)
		assert.Nil(t, result)
	})

	t.Run("household save error", func(t *testing.T) {
		mockHouseWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		result, err := svc.Create(context.Background(), userID, "Smith Family")
		assert.EqualError(t, err, "db error")
		assert.Nil(t, result)
	})

	t.Run("membership save error", func(t *testing.T) {
		mockHouseWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(nil)
		mockMemberWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(false, errors.New("db error"))

		result, err := svc.Create(context.Background(), userID, "Smith Family")
		assert.EqualError(t, err, "db error")
		assert.Nil(t, result)
	})
}

func TestHouseholdService_ListForUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHouseWriter := services.NewMockHouseholdWriter(ctrl)
	mockHouseReader := services.NewMockHouseholdReader(ctrl)
	mockMemberWriter := services.NewMockMembershipWriter(ctrl)
	mockMemberReader := services.NewMockMembershipReader(ctrl)
	mockCache := services.NewMockMembershipCache(ctrl)

	svc := services.NewHouseholdService(mockHouseWriter, mockHouseReader, mockMemberWriter, mockMemberReader, mockCache)

	userID := uuid.New()

	t.Run("returns households with roles", func(t *testing.T) {
		mockMemberReader.EXPECT().
			ListByUser(gomock.Any(), userID.String()).
			Return([]models.Membership{
				{HouseID: "house-1", UserID: userID.String(), Role: models.RoleOwner},
				{HouseID: "house-2", UserID: userID.String(), Role: models.RoleMember},
			}, nil)
		mockHouseReader.EXPECT().
			GetByID(gomock.Any(), "house-1").
			Return(&models.Household{HouseID: "house-1", Name: "First"}, nil)
		mockHouseReader.EXPECT().
			GetByID(gomock.Any(), "house-2").
			Return(&models.Household{HouseID: "house-2", Name: "Second"}, nil)

		result, err := svc.ListForUser(context.Background(), userID)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, models.RoleOwner, result[0].Role)
		assert.Equal(t, "Second", result[1].Name)
	})

	t.Run("skips dangling memberships", func(t *testing.T) {
		mockMemberReader.EXPECT().
			ListByUser(gomock.Any(), userID.String()).
			Return([]models.Membership{
				{HouseID: "house-gone", UserID: userID.String(), Role: models.RoleMember},
			}, nil)
		mockHouseReader.EXPECT().
			GetByID(gomock.Any(), "house-gone").
			Return(nil, nil)

		result, err := svc.ListForUser(context.Background(), userID)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("no memberships", func(t *testing.T) {
		mockMemberReader.EXPECT().
			ListByUser(gomock.Any(), userID.String()).
			Return(nil, nil)

		result, err := svc.ListForUser(context.Background(), userID)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("reader error", func(t *testing.T) {
		mockMemberReader.EXPECT().
			ListByUser(gomock.Any(), userID.String()).
			Return(nil, errors.New("db error"))

		result, err := svc.ListForUser(context.Background(), userID)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, result)
	})
}
