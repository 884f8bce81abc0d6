package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/liora/internal/domain/profile"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileRepository implementa a interface profile.Repository usando PostgreSQL
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository cria uma nova instância de ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) profile.Repository {
	return &ProfileRepository{
		db: db,
	}
}

// FindByUserID implementa profile.Repository.FindByUserID
func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*profile.Profile, error) {
	query := `
		SELECT
			id, user_id, COALESCE(full_name, ''), user_type, linked_household_id,
			dietary_restrictions, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	p := &profile.Profile{}
	var userType string
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.FullName,
		&userType,
		&p.LinkedHouseholdID,
		&p.DietaryRestrictions,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("erro ao buscar perfil: %w", err)
	}

	p.UserType = profile.UserType(userType)
	if p.DietaryRestrictions == nil {
		p.DietaryRestrictions = []string{}
	}

	return p, nil
}
