package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/27Chinedu/Module13Assignment/internal/calculation"
	"github.com/27Chinedu/Module13Assignment/internal/logger"
	"github.com/27Chinedu/Module13Assignment/internal/model"
)

type Calculation struct {
	store  model.CalculationStore
	logger *logger.Logger
}

func NewCalculation(store model.CalculationStore, logger *logger.Logger) *Calculation {
	return &Calculation{
		store:  store,
		logger: logger,
	}
}

// Create validates and computes before anything is persisted.
func (s *Calculation) Create(ctx context.Context, userID uuid.UUID, opType model.OperationType, inputs []float64) (model.Calculation, error) {
	s.logger.Debug("Calculation service: creating calculation",
		"user_id", userID,
		"type", opType)

	result, err := calculation.Compute(opType, inputs)
	if err != nil {
		return model.Calculation{}, err
	}

	now := time.Now()
	calc := model.Calculation{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      opType,
		Inputs:    inputs,
		Result:    result,
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := s.store.Create(ctx, calc)
	if err != nil {
		s.logger.Error("Calculation service: failed to create calculation",
			"user_id", userID,
			"error", err.Error())
		return model.Calculation{}, fmt.Errorf("failed to create calculation: %w", err)
	}

	s.logger.Info("Calculation service: calculation created",
		"calculation_id", saved.ID,
		"user_id", userID)

	return saved, nil
}

// List returns the owner's calculations, newest first.
func (s *Calculation) List(ctx context.Context, userID uuid.UUID) ([]model.Calculation, error) {
	calculations, err := s.store.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}

	return calculations, nil
}

// Get hides foreign calculations behind ErrNotFound, so an id owned by
// someone else and a missing id are indistinguishable to the caller.
func (s *Calculation) Get(ctx context.Context, userID uuid.UUID, calculationID uuid.UUID) (model.Calculation, error) {
	calc, err := s.store.GetByID(ctx, calculationID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Calculation{}, err
	}
	if err != nil {
		return model.Calculation{}, fmt.Errorf("failed to get calculation by id: %w", err)
	}

	if calc.UserID != userID {
		return model.Calculation{}, model.ErrNotFound
	}

	return calc, nil
}

// Update recomputes the result from the new inputs; type and owner are
// immutable. The conditional store write re-checks ownership atomically,
// so a calculation that vanished in between surfaces as ErrNotFound.
func (s *Calculation) Update(ctx context.Context, userID uuid.UUID, calculationID uuid.UUID, inputs []float64) (model.Calculation, error) {
	s.logger.Debug("Calculation service: updating calculation",
		"calculation_id", calculationID,
		"user_id", userID)

	current, err := s.Get(ctx, userID, calculationID)
	if err != nil {
		return model.Calculation{}, err
	}

	result, err := calculation.Compute(current.Type, inputs)
	if err != nil {
		return model.Calculation{}, err
	}

	updated, err := s.store.UpdateOwned(ctx, calculationID, userID, inputs, result)
	if errors.Is(err, model.ErrNotFound) {
		return model.Calculation{}, err
	}
	if err != nil {
		return model.Calculation{}, fmt.Errorf("failed to update calculation: %w", err)
	}

	s.logger.Info("Calculation service: calculation updated",
		"calculation_id", calculationID,
		"user_id", userID)

	return updated, nil
}

// Delete removes an owned calculation; missing and foreign ids answer
// the same way.
func (s *Calculation) Delete(ctx context.Context, userID uuid.UUID, calculationID uuid.UUID) error {
	err := s.store.DeleteOwned(ctx, calculationID, userID)
	if errors.Is(err, model.ErrNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to delete calculation: %w", err)
	}

	s.logger.Info("Calculation service: calculation deleted",
		"calculation_id", calculationID,
		"user_id", userID)

	return nil
}
