package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	adminRepo "github.com/pr4shxnt/ecobin-backend/database/repository/admin"
	"github.com/pr4shxnt/ecobin-backend/models"
	"github.com/pr4shxnt/ecobin-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Admin auth tokens are valid for ten days.
const tokenDuration = 10 * 24 * time.Hour

// ErrInvalidCredentials hides whether the email or the password was wrong.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials")

// RegisterRequest carries the input for a new admin account.
type RegisterRequest struct {
	FirstName     string             `json:"firstName"`
	LastName      string             `json:"lastName"`
	EmailAddress  string             `json:"emailAddress"`
	PhoneNumber   string             `json:"phoneNumber"`
	Password      string             `json:"password"`
	Role          string             `json:"role,omitempty"`
	AssignedZones []string           `json:"assignedZones,omitempty"`
	VehicleInfo   models.VehicleInfo `json:"vehicleInfo,omitempty"`
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token string              `json:"token"`
	Admin models.AdminProfile `json:"admin"`
}

// AuthService handles admin registration, authentication and profile access.
type AuthService struct {
	Repo   adminRepo.AdminRepository
	Logger *zap.Logger
}

// Register creates a new admin account with the default permission set.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*models.AdminProfile, error) {
	if req.FirstName == "" || req.LastName == "" || req.EmailAddress == "" || req.PhoneNumber == "" || req.Password == "" {
		return nil, fmt.Errorf("all required fields must be provided")
	}

	email := strings.ToLower(strings.TrimSpace(req.EmailAddress))
	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, fmt.Errorf("admin with this email already exists")
	} else if err != nil && err != adminRepo.ErrAdminNotFound {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.AdminRoleAdmin
	}

	now := time.Now()
	account := &models.Admin{
		ID:            uuid.NewString(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		EmailAddress:  email,
		PhoneNumber:   req.PhoneNumber,
		Password:      string(hashed),
		Role:          role,
		Permissions:   models.DefaultAdminPermissions(),
		AssignedZones: req.AssignedZones,
		VehicleInfo:   req.VehicleInfo,
		CurrentLocation: models.AdminLocation{
			LastUpdated: now,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repo.Create(ctx, account); err != nil {
		return nil, err
	}

	profile := account.Profile()
	return &profile, nil
}

// Login verifies credentials, issues a ten-day JWT, caches its hash for fast
// middleware validation, and flips the admin online.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	account, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if err == adminRepo.ErrAdminNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAdminToken(account.ID, account.EmailAddress, account.Role, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if cache := utils.GetAuthCacheClient(); cache != nil {
		key := utils.AuthCachePrefix + account.ID
		if err := cache.Set(ctx, key, utils.HashToken(token), tokenDuration).Err(); err != nil {
			s.Logger.Warn("Login: failed to cache auth token", zap.Error(err))
		}
	}

	if err := s.Repo.SetOnline(ctx, account.ID, true); err != nil {
		s.Logger.Warn("Login: failed to mark admin online", zap.Error(err))
	}

	return &LoginResult{Token: token, Admin: account.Profile()}, nil
}

// Logout flips the admin offline and revokes the cached auth token.
func (s *AuthService) Logout(ctx context.Context, adminID string) error {
	if cache := utils.GetAuthCacheClient(); cache != nil {
		if err := cache.Del(ctx, utils.AuthCachePrefix+adminID).Err(); err != nil {
			s.Logger.Warn("Logout: failed to revoke cached auth token", zap.Error(err))
		}
	}
	return s.Repo.SetOnline(ctx, adminID, false)
}

// Profile returns the admin's public profile.
func (s *AuthService) Profile(ctx context.Context, adminID string) (*models.Admin, error) {
	return s.Repo.GetByID(ctx, adminID)
}

// UpdateProfile applies the given partial update to the admin's profile.
func (s *AuthService) UpdateProfile(ctx context.Context, adminID string, update adminRepo.AdminUpdate) (*models.Admin, error) {
	return s.Repo.UpdateProfile(ctx, adminID, update)
}
