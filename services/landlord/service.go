package landlord

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	landlordRepo "github.com/pr4shxnt/ecobin-backend/database/repository/landlord"
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

// RegisterRequest carries the landlord registration fields plus the two
// required document uploads.
type RegisterRequest struct {
	FirstName    string
	LastName     string
	EmailAddress string
	PhoneNumber  string
	Address      string
	City         string
	State        string
	ZipCode      string
	Password     string

	HouseDocuments *multipart.FileHeader
	ProofOfAddress *multipart.FileHeader
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token    string           `json:"token"`
	Landlord *models.Landlord `json:"landlord"`
}

// Service handles landlord registration, login and profile access.
type Service struct {
	Repo    landlordRepo.LandlordRepository
	Storage storage.StorageService
	Logger  *zap.Logger
}

// Register creates a landlord account, uploading both property documents.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*models.Landlord, error) {
	if req.FirstName == "" || req.LastName == "" || req.EmailAddress == "" || req.Password == "" {
		return nil, fmt.Errorf("firstName, lastName, emailAddress and password are required")
	}
	if req.HouseDocuments == nil || req.ProofOfAddress == nil {
		return nil, fmt.Errorf("houseDocuments and proofOfAddress documents are required")
	}

	email := strings.ToLower(strings.TrimSpace(req.EmailAddress))
	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, fmt.Errorf("landlord with this email already exists")
	} else if err != nil && err != landlordRepo.ErrLandlordNotFound {
		return nil, err
	}

	house, err := s.Storage.UploadDocument(ctx, req.HouseDocuments, "landlords/house-documents")
	if err != nil {
		return nil, fmt.Errorf("failed to store house documents: %w", err)
	}
	proof, err := s.Storage.UploadDocument(ctx, req.ProofOfAddress, "landlords/address-proofs")
	if err != nil {
		return nil, fmt.Errorf("failed to store proof of address: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	account := &models.Landlord{
		ID:             uuid.NewString(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		EmailAddress:   email,
		PhoneNumber:    req.PhoneNumber,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		ZipCode:        req.ZipCode,
		Password:       string(hashed),
		HouseDocuments: *house,
		ProofOfAddress: *proof,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Repo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Login verifies credentials and issues a landlord JWT.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	account, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if err == landlordRepo.ErrLandlordNotFound {
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
	return &LoginResult{Token: token, Landlord: account}, nil
}

// Profile returns the landlord account for the given id.
func (s *Service) Profile(ctx context.Context, landlordID string) (*models.Landlord, error) {
	return s.Repo.GetByID(ctx, landlordID)
}
