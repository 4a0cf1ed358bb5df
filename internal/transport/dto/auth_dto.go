package dto

import (
	"github.com/google/uuid"

	"hr-dashboard/internal/models"
)

// RegisterRequest accepts either a single Name (split into first/last, with the
// username derived from the email prefix) or the explicit field set.
type RegisterRequest struct {
	Name       string      `json:"name"`
	Username   string      `json:"username"`
	Email      string      `json:"email" validate:"required,email"`
	Password   string      `json:"password" validate:"required,min=6"`
	FirstName  string      `json:"firstName"`
	LastName   string      `json:"lastName"`
	Department string      `json:"department"`
	Role       models.Role `json:"role" validate:"omitempty,oneof=admin hr_manager hr_staff interviewer"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse mirrors the shape the frontend has always consumed.
type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

type LoginUser struct {
	ID         uuid.UUID   `json:"id"`
	Username   string      `json:"username"`
	Email      string      `json:"email"`
	Role       models.Role `json:"role"`
	FirstName  string      `json:"firstName"`
	LastName   string      `json:"lastName"`
	Department string      `json:"department"`
}
