package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CalculationStore defines persistence operations for calculations.
// UpdateOwned and DeleteOwned match on both id and owner in a single
// statement, so the ownership check and the mutation are atomic.
type CalculationStore interface {
	Create(ctx context.Context, calculation Calculation) (Calculation, error)
	GetByID(ctx context.Context, id uuid.UUID) (Calculation, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Calculation, error)
	UpdateOwned(ctx context.Context, id, ownerID uuid.UUID, inputs []float64, result float64) (Calculation, error)
	DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) error
}

// Calculation represents a stored calculation owned by a user.
// Type and UserID never change after creation.
type Calculation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      OperationType
	Inputs    []float64
	Result    float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OperationType enumerates calculation kinds.
type OperationType string

const (
	// OperationAddition folds operands with +.
	OperationAddition OperationType = "addition"
	// OperationSubtraction folds operands with -.
	OperationSubtraction OperationType = "subtraction"
	// OperationMultiplication folds operands with *.
	OperationMultiplication OperationType = "multiplication"
	// OperationDivision folds operands with /; zero divisors are rejected.
	OperationDivision OperationType = "division"
)
