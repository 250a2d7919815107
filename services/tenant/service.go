package tenant

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	subscriptionRepo "github.com/pr4shxnt/ecobin-backend/database/repository/subscription"
	tenantRepo "github.com/pr4shxnt/ecobin-backend/database/repository/tenant"
	"github.com/pr4shxnt/ecobin-backend/models"
	"github.com/pr4shxnt/ecobin-backend/services/storage"
	"github.com/pr4shxnt/ecobin-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 10 * 24 * time.Hour

// ErrInvalidCredentials hides whether the email or the password was wrong.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials")

// RegisterRequest carries the tenant registration fields plus the two
// required document uploads.
type RegisterRequest struct {
	FirstName      string
	LastName       string
	EmailAddress   string
	PhoneNumber    string
	DateOfBirth    time.Time
	Occupation     string
	Employer       string
	AnnualIncome   float64
	CurrentAddress string
	City           string
	State          string
	ZipCode        string
	Password       string

	RentalAgreement    *multipart.FileHeader
	PhotoIdentityProof *multipart.FileHeader
}

// SubscribeRequest registers a device token for push delivery.
type SubscribeRequest struct {
	Token    string         `json:"token"`
	Platform string         `json:"platform"`
	Address  models.Address `json:"address"`
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token  string         `json:"token"`
	Tenant *models.Tenant `json:"tenant"`
}

// Service handles tenant registration, login and push subscriptions.
type Service struct {
	Repo    tenantRepo.TenantRepository
	Subs    subscriptionRepo.SubscriptionRepository
	Storage storage.StorageService
	Logger  *zap.Logger
}

// Register creates a tenant account, uploading both identity documents.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*models.Tenant, error) {
	if req.FirstName == "" || req.LastName == "" || req.EmailAddress == "" || req.Password == "" {
		return nil, fmt.Errorf("firstName, lastName, emailAddress and password are required")
	}
	if req.RentalAgreement == nil || req.PhotoIdentityProof == nil {
		return nil, fmt.Errorf("rentalAgreement and photoIdentityProof documents are required")
	}

	email := strings.ToLower(strings.TrimSpace(req.EmailAddress))
	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, fmt.Errorf("tenant with this email already exists")
	} else if err != nil && err != tenantRepo.ErrTenantNotFound {
		return nil, err
	}

	rental, err := s.Storage.UploadDocument(ctx, req.RentalAgreement, "tenants/rental-agreements")
	if err != nil {
		return nil, fmt.Errorf("failed to store rental agreement: %w", err)
	}
	identity, err := s.Storage.UploadDocument(ctx, req.PhotoIdentityProof, "tenants/identity-proofs")
	if err != nil {
		return nil, fmt.Errorf("failed to store identity proof: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	account := &models.Tenant{
		ID:                 uuid.NewString(),
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		EmailAddress:       email,
		PhoneNumber:        req.PhoneNumber,
		DateOfBirth:        req.DateOfBirth,
		Occupation:         req.Occupation,
		Employer:           req.Employer,
		AnnualIncome:       req.AnnualIncome,
		CurrentAddress:     req.CurrentAddress,
		City:               req.City,
		State:              req.State,
		ZipCode:            req.ZipCode,
		Password:           string(hashed),
		RentalAgreement:    *rental,
		PhotoIdentityProof: *identity,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.Repo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Login verifies credentials and issues a tenant JWT.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	account, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if err == tenantRepo.ErrTenantNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(account.ID, account.EmailAddress, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &LoginResult{Token: token, Tenant: account}, nil
}

// Profile returns the tenant account for the given id.
func (s *Service) Profile(ctx context.Context, tenantID string) (*models.Tenant, error) {
	return s.Repo.GetByID(ctx, tenantID)
}

// Subscribe registers or refreshes a push subscription for the tenant's
// address. Tokens are upserted so re-registration is idempotent.
func (s *Service) Subscribe(ctx context.Context, tenantID string, req SubscribeRequest) (*models.PushSubscription, error) {
	if req.Token == "" {
		return nil, fmt.Errorf("token is required")
	}
	if req.Address.ZipCode == "" || req.Address.City == "" {
		return nil, fmt.Errorf("address zipCode and city are required")
	}

	now := time.Now()
	sub := &models.PushSubscription{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		Token:     req.Token,
		Platform:  req.Platform,
		Address:   req.Address,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Subs.Upsert(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}
