package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"family-bank/internal/logger"
	"family-bank/internal/models"
)

// ErrInvalidSavingsGoal is returned when the savings goal is negative.
var ErrInvalidSavingsGoal = errors.New("savingsGoal must be a non-negative number")

// GoalWriter defines write operations for goals.
type GoalWriter interface {
	Save(ctx context.Context, goal models.Goal) error
}

// GoalReader defines read operations for goals.
type GoalReader interface {
	GetByHousehold(ctx context.Context, houseID string) (*models.Goal, error)
}

// GoalService reads and upserts the single savings goal of a household.
type GoalService struct {
	writeRepo    GoalWriter
	readRepo     GoalReader
	memberReader MembershipReader
	cache        MembershipCache
}

// NewGoalService creates a new GoalService.
func NewGoalService(writeRepo GoalWriter, readRepo GoalReader, memberReader MembershipReader, cache MembershipCache) *GoalService {
	return &GoalService{
		writeRepo:    writeRepo,
		readRepo:     readRepo,
		memberReader: memberReader,
		cache:        cache,
	}
}

// Get returns the household's goal, or a zero-value default when none was
// ever set. The default is not written back; this is a read, not an upsert.
func (svc *GoalService) Get(ctx context.Context, userID uuid.UUID, houseID string) (*models.Goal, error) {
	role, err := resolveRole(ctx, svc.cache, svc.memberReader, houseID, userID.String())
	if err != nil {
		logger.Log.Errorw("failed to resolve caller role", "houseID", houseID, "userID", userID, "error", err)
		return nil, err
	}
	if role == "" {
		return nil, ErrNotMember
	}

	goal, err := svc.readRepo.GetByHousehold(ctx, houseID)
	if err != nil {
		logger.Log.Errorw("failed to get goal", "houseID", houseID, "error", err)
		return nil, err
	}
	if goal == nil {
		return models.DefaultGoal(houseID), nil
	}

	return goal, nil
}

// Put overwrites the household's goal record, stamping updated-at and
// updated-by.
func (svc *GoalService) Put(ctx context.Context, userID uuid.UUID, houseID string, savingsGoal decimal.Decimal) (*models.Goal, error) {
	if savingsGoal.IsNegative() {
		return nil, ErrInvalidSavingsGoal
	}

	role, err := resolveRole(ctx, svc.cache, svc.memberReader, houseID, userID.String())
	if err != nil {
		logger.Log.Errorw("failed to resolve caller role", "houseID", houseID, "userID", userID, "error", err)
		return nil, err
	}
	if role == "" {
		return nil, ErrNotMember
	}

	now := time.Now().UTC()
	goal := models.Goal{
		HouseID:     houseID,
		SavingsGoal: savingsGoal,
		UpdatedAt:   &now,
		UpdatedBy:   userID.String(),
	}

	if err := svc.writeRepo.Save(ctx, goal); err != nil {
		logger.Log.Errorw("failed to save goal", "houseID", houseID, "error", err)
		return nil, err
	}

	return &goal, nil
}
