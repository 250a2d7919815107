package admin

import (
	"context"
	"errors"
	"testing"

	adminRepo "github.com/pr4shxnt/ecobin-backend/database/repository/admin"
	"github.com/pr4shxnt/ecobin-backend/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminRepo struct {
	byEmail map[string]*models.Admin
	created *models.Admin
	online  map[string]bool
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{byEmail: make(map[string]*models.Admin), online: make(map[string]bool)}
}

func (f *fakeAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	f.created = admin
	f.byEmail[admin.EmailAddress] = admin
	return nil
}

func (f *fakeAdminRepo) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	for _, a := range f.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, adminRepo.ErrAdminNotFound
}

func (f *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if a, ok := f.byEmail[email]; ok {
		return a, nil
	}
	return nil, adminRepo.ErrAdminNotFound
}

func (f *fakeAdminRepo) UpdateProfile(ctx context.Context, id string, update adminRepo.AdminUpdate) (*models.Admin, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeAdminRepo) SetLocation(ctx context.Context, id string, coords models.Coordinates, online bool) (*models.Admin, error) {
	a, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.CurrentLocation.Coordinates = &coords
	a.CurrentLocation.IsOnline = online
	return a, nil
}

func (f *fakeAdminRepo) SetOnline(ctx context.Context, id string, online bool) error {
	f.online[id] = online
	return nil
}

func (f *fakeAdminRepo) FindOnline(ctx context.Context) ([]models.Admin, error) {
	var out []models.Admin
	for _, a := range f.byEmail {
		if f.online[a.ID] || a.CurrentLocation.IsOnline {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAdminRepo) FindOnlineByZone(ctx context.Context, zone string) ([]models.Admin, error) {
	var out []models.Admin
	for _, a := range f.byEmail {
		if !f.online[a.ID] && !a.CurrentLocation.IsOnline {
			continue
		}
		for _, z := range a.AssignedZones {
			if z == zone {
				out = append(out, *a)
				break
			}
		}
	}
	return out, nil
}

func registerRequest() RegisterRequest {
	return RegisterRequest{
		FirstName:    "Asha",
		LastName:     "Karki",
		EmailAddress: "Asha@Ecobin.dev",
		PhoneNumber:  "9800000000",
		Password:     "s3cret-pass",
	}
}

func TestRegisterHashesPasswordAndLowercasesEmail(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := &AuthService{Repo: repo, Logger: zap.NewNop()}

	profile, err := svc.Register(context.Background(), registerRequest())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if repo.created == nil {
		t.Fatal("admin was not persisted")
	}
	if repo.created.EmailAddress != "asha@ecobin.dev" {
		t.Errorf("email = %q, want lowercased", repo.created.EmailAddress)
	}
	if repo.created.Password == "s3cret-pass" {
		t.Fatal("password must not be stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.created.Password), []byte("s3cret-pass")); err != nil {
		t.Errorf("stored hash does not match the password: %v", err)
	}
	if repo.created.Role != models.AdminRoleAdmin {
		t.Errorf("role = %q, want default admin", repo.created.Role)
	}
	if profile.EmailAddress != "asha@ecobin.dev" {
		t.Errorf("profile email = %q", profile.EmailAddress)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := &AuthService{Repo: repo, Logger: zap.NewNop()}

	if _, err := svc.Register(context.Background(), registerRequest()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), registerRequest()); err == nil {
		t.Fatal("expected duplicate email to be rejected")
	}
}

func TestLogin(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := &AuthService{Repo: repo, Logger: zap.NewNop()}

	if _, err := svc.Register(context.Background(), registerRequest()); err != nil {
		t.Fatalf("register: %v", err)
	}

	t.Run("success", func(t *testing.T) {
		result, err := svc.Login(context.Background(), "asha@ecobin.dev", "s3cret-pass")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if result.Token == "" {
			t.Error("expected a token")
		}
		if !repo.online[result.Admin.ID] {
			t.Error("login must flip the admin online")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "asha@ecobin.dev", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "ghost@ecobin.dev", "s3cret-pass")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestLogoutFlipsOffline(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := &AuthService{Repo: repo, Logger: zap.NewNop()}

	if err := svc.Logout(context.Background(), "admin-1"); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if repo.online["admin-1"] {
		t.Error("logout must flip the admin offline")
	}
}
