package user_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"Pantry-Tracker-Backend/domain"
	"Pantry-Tracker-Backend/entities"
	"Pantry-Tracker-Backend/pkg/jwt"
	"Pantry-Tracker-Backend/pkg/user"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type stubS3 struct{}

func (stubS3) UploadFile(string, *multipart.FileHeader, string, ...string) (string, error) {
	return "", nil
}

func (stubS3) UpdateFile(string, *multipart.FileHeader, ...string) (string, error) {
	return "", nil
}

func (stubS3) DeleteFile(string) error { return nil }

func (stubS3) GetPublicLinkKey(string) string { return "" }

func (stubS3) GetObjectKeyFromLink(string) string { return "" }

func memdb(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newService(db *gorm.DB) user.UserService {
	return user.NewUserService(user.NewUserRepository(db), jwt.NewJWTService(), stubS3{})
}

func TestRegisterAndLogin(t *testing.T) {
	db := memdb(t)
	svc := newService(db)
	ctx := context.Background()

	err := svc.Register(ctx, domain.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pw",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	res, err := svc.Login(ctx, domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret-pw",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Token == "" {
		t.Fatal("want a token on successful login")
	}
	if res.Role != domain.RoleMember {
		t.Fatalf("want role %q, got %q", domain.RoleMember, res.Role)
	}

	var stored entities.User
	if err := db.First(&stored, "email = ?", "alice@example.com").Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.Password == "s3cret-pw" {
		t.Fatal("password must be stored hashed")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := memdb(t)
	svc := newService(db)
	ctx := context.Background()

	req := domain.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pw",
	}
	if err := svc.Register(ctx, req); err != nil {
		t.Fatalf("register: %v", err)
	}

	err := svc.Register(ctx, req)
	if !errors.Is(err, domain.ErrEmailAlreadyExists) {
		t.Fatalf("want ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := memdb(t)
	svc := newService(db)
	ctx := context.Background()

	err := svc.Register(ctx, domain.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pw",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err = svc.Login(ctx, domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, domain.ErrCredentialsInvalid) {
		t.Fatalf("want ErrCredentialsInvalid for wrong password, got %v", err)
	}

	_, err = svc.Login(ctx, domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret-pw",
	})
	if !errors.Is(err, domain.ErrCredentialsInvalid) {
		t.Fatalf("want ErrCredentialsInvalid for unknown email, got %v", err)
	}
}

func TestVerifyEmailWithScopedToken(t *testing.T) {
	db := memdb(t)
	jwtService := jwt.NewJWTService()
	svc := user.NewUserService(user.NewUserRepository(db), jwtService, stubS3{})
	ctx := context.Background()

	err := svc.Register(ctx, domain.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pw",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	var stored entities.User
	if err := db.First(&stored, "email = ?", "alice@example.com").Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}

	token, err := jwtService.GenerateTokenScoped(map[string]any{
		"user_id": stored.ID.String(),
		"scope":   "verify_email",
	}, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if err := svc.VerifyEmail(ctx, token); err != nil {
		t.Fatalf("verify email: %v", err)
	}

	me, err := svc.Me(ctx, stored.ID.String())
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if !me.IsVerified {
		t.Fatal("want user verified after confirming the token")
	}

	// a token scoped for password reset must not verify an email
	wrongScope, err := jwtService.GenerateTokenScoped(map[string]any{
		"user_id": stored.ID.String(),
		"scope":   "reset_password",
	}, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if err := svc.VerifyEmail(ctx, wrongScope); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("want ErrTokenInvalid for wrong scope, got %v", err)
	}
}

func TestResetPasswordWithScopedToken(t *testing.T) {
	db := memdb(t)
	jwtService := jwt.NewJWTService()
	svc := user.NewUserService(user.NewUserRepository(db), jwtService, stubS3{})
	ctx := context.Background()

	err := svc.Register(ctx, domain.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "old-pw",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	var stored entities.User
	if err := db.First(&stored, "email = ?", "alice@example.com").Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}

	token, err := jwtService.GenerateTokenScoped(map[string]any{
		"user_id": stored.ID.String(),
		"scope":   "reset_password",
	}, time.Minute*30)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	err = svc.ResetPassword(ctx, domain.ResetPasswordRequest{Token: token, Password: "new-pw"})
	if err != nil {
		t.Fatalf("reset password: %v", err)
	}

	if _, err := svc.Login(ctx, domain.LoginRequest{Email: "alice@example.com", Password: "old-pw"}); !errors.Is(err, domain.ErrCredentialsInvalid) {
		t.Fatalf("want old password rejected, got %v", err)
	}
	if _, err := svc.Login(ctx, domain.LoginRequest{Email: "alice@example.com", Password: "new-pw"}); err != nil {
		t.Fatalf("want new password accepted, got %v", err)
	}
}
