package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"hr-dashboard/internal/auth"
	"hr-dashboard/internal/models"
	"hr-dashboard/internal/storage"
	"hr-dashboard/internal/transport/dto"
)

type authService struct {
	users         storage.UserRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(users storage.UserRepository, jwtSecret string, jwtExpiration time.Duration) AuthService {
	return &authService{
		users:         users,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register creates a new account. The frontend sends either a full "name" or
// explicit first/last fields; the username falls back to the email prefix and
// the department to "General". No token is issued at registration.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	firstName, lastName := req.FirstName, req.LastName
	if req.Name != "" && firstName == "" && lastName == "" {
		parts := strings.Fields(strings.TrimSpace(req.Name))
		if len(parts) > 0 {
			firstName = parts[0]
			lastName = strings.Join(parts[1:], " ")
		}
	}

	username := req.Username
	if username == "" {
		username = strings.SplitN(req.Email, "@", 2)[0]
	}

	department := req.Department
	if department == "" {
		department = "General"
	}

	role := req.Role
	if role == "" {
		role = models.RoleHRStaff
	}
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	if _, err := s.users.GetByEmailOrUsername(ctx, req.Email, username); err == nil {
		return nil, fmt.Errorf("%w: user already exists", ErrConflict)
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Printf("AuthService: error checking for existing user %s: %v", req.Email, err)
		return nil, fmt.Errorf("internal error during registration: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("AuthService: error hashing password for %s: %v", req.Email, err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		FirstName:    firstName,
		LastName:     lastName,
		Department:   department,
		IsActive:     true,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) || errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: user already exists", ErrConflict)
		}
		log.Printf("AuthService: error creating user: %v", err)
		return nil, fmt.Errorf("internal error creating user: %w", err)
	}
	return created, nil
}

// Login checks credentials and issues a session token. A missing user and a
// wrong password both surface as the same ErrInvalidCredentials so the
// response never reveals which check failed.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		log.Printf("AuthService: error fetching user %s during login: %v", req.Email, err)
		return nil, fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.users.SetLastLogin(ctx, user.ID, now); err != nil {
		// Login still succeeds; the timestamp is best-effort.
		log.Printf("AuthService: error updating last login for %s: %v", user.Email, err)
	}

	token, err := auth.NewToken(s.jwtSecret, s.jwtExpiration, user)
	if err != nil {
		log.Printf("AuthService: error generating token for %s: %v", user.Email, err)
		return nil, fmt.Errorf("failed to generate login token: %w", err)
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.LoginUser{
			ID:         user.ID,
			Username:   user.Username,
			Email:      user.Email,
			Role:       user.Role,
			FirstName:  user.FirstName,
			LastName:   user.LastName,
			Department: user.Department,
		},
	}, nil
}
