package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fintrack/internal/analytics"
	"fintrack/internal/dto"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidGoal  = errors.New("invalid goal")
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepo interface {
	Create(ctx context.Context, goal *models.FinancialGoal) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.FinancialGoal, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.FinancialGoal, error)
	Update(ctx context.Context, goal *models.FinancialGoal) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// GoalWithProgress pairs a stored goal with its evaluation relative to now.
type GoalWithProgress struct {
	Goal     *models.FinancialGoal
	Progress analytics.GoalProgress
}

type GoalService struct {
	goalRepo GoalRepo
	logger   *zap.Logger
}

func NewGoalService(goalRepo GoalRepo, logger *zap.Logger) *GoalService {
	return &GoalService{goalRepo: goalRepo, logger: logger}
}

func (s *GoalService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateGoalRequest) (*models.FinancialGoal, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: empty title", ErrInvalidGoal)
	}
	target, err := decimal.NewFromString(req.TargetAmount)
	if err != nil || target.Sign() <= 0 {
		return nil, fmt.Errorf("%w: target amount %q", ErrInvalidGoal, req.TargetAmount)
	}
	current := decimal.Zero
	if req.CurrentAmount != "" {
		current, err = decimal.NewFromString(req.CurrentAmount)
		if err != nil || current.Sign() < 0 {
			return nil, fmt.Errorf("%w: current amount %q", ErrInvalidGoal, req.CurrentAmount)
		}
	}
	targetDate, err := time.Parse(time.RFC3339, req.TargetDate)
	if err != nil {
		return nil, fmt.Errorf("%w: target date %q", ErrInvalidGoal, req.TargetDate)
	}

	now := time.Now()
	goal := &models.FinancialGoal{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         req.Title,
		TargetAmount:  target.String(),
		CurrentAmount: current.String(),
		TargetDate:    targetDate,
		IsCompleted:   current.GreaterThanOrEqual(target),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) List(ctx context.Context, userID uuid.UUID, now time.Time) ([]*GoalWithProgress, error) {
	goals, err := s.goalRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*GoalWithProgress, 0, len(goals))
	for _, g := range goals {
		progress, err := s.evaluate(g, now)
		if err != nil {
			return nil, err
		}
		out = append(out, &GoalWithProgress{Goal: g, Progress: progress})
	}
	return out, nil
}

// Contribute adds amount to the goal's saved total, marking the goal
// completed once the target is reached.
func (s *GoalService) Contribute(ctx context.Context, userID, id uuid.UUID, amount string) (*GoalWithProgress, error) {
	add, err := decimal.NewFromString(amount)
	if err != nil || add.Sign() <= 0 {
		return nil, fmt.Errorf("%w: contribution %q", ErrInvalidGoal, amount)
	}

	goal, err := s.goalRepo.GetByID(ctx, id)
	if err != nil || goal == nil || goal.UserID != userID {
		return nil, ErrGoalNotFound
	}

	current, err := decimal.NewFromString(goal.CurrentAmount)
	if err != nil {
		return nil, fmt.Errorf("goal %s current amount: %w", goal.ID, err)
	}
	target, err := decimal.NewFromString(goal.TargetAmount)
	if err != nil {
		return nil, fmt.Errorf("goal %s target amount: %w", goal.ID, err)
	}

	current = current.Add(add)
	goal.CurrentAmount = current.String()
	goal.IsCompleted = current.GreaterThanOrEqual(target)
	goal.UpdatedAt = time.Now()

	if err := s.goalRepo.Update(ctx, goal); err != nil {
		return nil, err
	}

	progress, err := s.evaluate(goal, time.Now())
	if err != nil {
		return nil, err
	}
	return &GoalWithProgress{Goal: goal, Progress: progress}, nil
}

func (s *GoalService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.goalRepo.Delete(ctx, userID, id)
}

func (s *GoalService) evaluate(g *models.FinancialGoal, now time.Time) (analytics.GoalProgress, error) {
	current, err := decimal.NewFromString(g.CurrentAmount)
	if err != nil {
		return analytics.GoalProgress{}, fmt.Errorf("goal %s current amount: %w", g.ID, err)
	}
	target, err := decimal.NewFromString(g.TargetAmount)
	if err != nil {
		return analytics.GoalProgress{}, fmt.Errorf("goal %s target amount: %w", g.ID, err)
	}
	return analytics.EvaluateGoal(current, target, g.TargetDate, now, g.IsCompleted), nil
}
