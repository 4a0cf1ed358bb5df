package dto

import (
	"hr-dashboard/internal/models"
)

// UpdateUserRequest carries optional fields; only non-nil values are applied.
type UpdateUserRequest struct {
	FirstName   *string             `json:"firstName"`
	LastName    *string             `json:"lastName"`
	Department  *string             `json:"department"`
	Role        *models.Role        `json:"role" validate:"omitempty,oneof=admin hr_manager hr_staff interviewer"`
	IsActive    *bool               `json:"isActive"`
	Permissions []models.Permission `json:"permissions"`
}
