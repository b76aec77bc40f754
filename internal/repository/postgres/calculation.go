package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/27Chinedu/Module13Assignment/internal/model"
)

var _ model.CalculationStore = (*CalculationRepository)(nil)

type CalculationRepository struct {
	db *Connection
}

func NewCalculationRepository(db *Connection) *CalculationRepository {
	return &CalculationRepository{
		db: db,
	}
}

func (r *CalculationRepository) Create(ctx context.Context, calc model.Calculation) (model.Calculation, error) {
	query := `INSERT INTO calculations (id, user_id, type, inputs, result, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, user_id, type, inputs, result, created_at, updated_at`

	var saved model.Calculation
	err := r.db.QueryRow(ctx, query,
		calc.ID, calc.UserID, string(calc.Type), calc.Inputs, calc.Result,
		calc.CreatedAt, calc.UpdatedAt,
	).Scan(
		&saved.ID, &saved.UserID, &saved.Type, &saved.Inputs, &saved.Result,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.Calculation{}, fmt.Errorf("failed to create calculation: %w", err)
	}

	return saved, nil
}

func (r *CalculationRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Calculation, error) {
	query := `SELECT id, user_id, type, inputs, result, created_at, updated_at
			  FROM calculations WHERE id = $1`

	var calc model.Calculation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&calc.ID, &calc.UserID, &calc.Type, &calc.Inputs, &calc.Result,
		&calc.CreatedAt, &calc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Calculation{}, model.ErrNotFound
		}
		return model.Calculation{}, fmt.Errorf("failed to get calculation by id: %w", err)
	}

	return calc, nil
}

func (r *CalculationRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]model.Calculation, error) {
	query := `SELECT id, user_id, type, inputs, result, created_at, updated_at
			  FROM calculations
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	defer rows.Close()

	var calculations []model.Calculation
	for rows.Next() {
		var calc model.Calculation
		err := rows.Scan(
			&calc.ID, &calc.UserID, &calc.Type, &calc.Inputs, &calc.Result,
			&calc.CreatedAt, &calc.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan calculation: %w", err)
		}
		calculations = append(calculations, calc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read calculations: %w", err)
	}

	return calculations, nil
}

func (r *CalculationRepository) UpdateOwned(ctx context.Context, id, userID uuid.UUID, inputs []float64, result float64) (model.Calculation, error) {
	// Ownership is part of the predicate, so the update either hits the
	// caller's own row or no row at all.
	query := `UPDATE calculations SET inputs = $3, result = $4, updated_at = now()
			  WHERE id = $1 AND user_id = $2
			  RETURNING id, user_id, type, inputs, result, created_at, updated_at`

	var calc model.Calculation
	err := r.db.QueryRow(ctx, query, id, userID, inputs, result).Scan(
		&calc.ID, &calc.UserID, &calc.Type, &calc.Inputs, &calc.Result,
		&calc.CreatedAt, &calc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Calculation{}, model.ErrNotFound
		}
		return model.Calculation{}, fmt.Errorf("failed to update calculation: %w", err)
	}

	return calc, nil
}

func (r *CalculationRepository) DeleteOwned(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM calculations WHERE id = $1 AND user_id = $2`

	cmd, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete calculation: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
