package profile

import (
	"context"
	"errors"
	"time"
)

var (
	ErrProfileNotFound = errors.New("perfil não encontrado")
)

// UserType define se o perfil é individual ou parte de um household
type UserType string

const (
	UserTypeIndividual UserType = "individual"
	UserTypeHousehold  UserType = "household"
)

// Profile representa as preferências do usuário usadas na personalização
type Profile struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user_id"`
	FullName            string    `json:"full_name"`
	UserType            UserType  `json:"user_type"`
	LinkedHouseholdID   *string   `json:"linked_household_id,omitempty"`
	DietaryRestrictions []string  `json:"dietary_restrictions"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// HouseholdID retorna o household vinculado, ou "" se não houver
func (p *Profile) HouseholdID() string {
	if p == nil || p.LinkedHouseholdID == nil {
		return ""
	}
	return *p.LinkedHouseholdID
}

// Repository define a interface para operações de repositório de perfis
type Repository interface {
	// FindByUserID busca o perfil de um usuário
	FindByUserID(ctx context.Context, userID string) (*Profile, error)
}
