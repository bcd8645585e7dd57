package service

import (
	"errors"
	"testing"
	"time"

	"lsv_backend/internal/config"
	"lsv_backend/internal/model"
	"lsv_backend/internal/repository"
	"lsv_backend/internal/testutil"
	"lsv_backend/internal/util"

	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret-0123456789abcdef0123"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	db := testutil.DB(t)
	svc := newAuthService(db)

	resp, err := svc.Register(RegisterReq{
		Email:     "ada@example.com",
		Password:  "correct-horse",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	if err != nil {
		t.Fatalf("Register() returned error: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("Register() returned empty token")
	}
	if resp.User.Role != model.RoleUser {
		t.Fatalf("new user role = %s, want %s", resp.User.Role, model.RoleUser)
	}
	if resp.User.HashPassword == "correct-horse" {
		t.Fatal("password stored in plain text")
	}

	login, err := svc.Login(LoginReq{Email: "ada@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login() returned error: %v", err)
	}

	claims, err := util.ParseJWT(login.Token, svc.Cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims.UserID != resp.User.ID {
		t.Fatalf("token subject = %s, want %s", claims.UserID, resp.User.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testutil.DB(t)
	svc := newAuthService(db)

	req := RegisterReq{Email: "ada@example.com", Password: "correct-horse", FirstName: "Ada", LastName: "Lovelace"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first Register() returned error: %v", err)
	}
	if _, err := svc.Register(req); !errors.Is(err, util.ErrEmailRegistered) {
		t.Fatalf("second Register() = %v, want ErrEmailRegistered", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := testutil.DB(t)
	svc := newAuthService(db)

	if _, err := svc.Register(RegisterReq{
		Email: "ada@example.com", Password: "correct-horse", FirstName: "Ada", LastName: "Lovelace",
	}); err != nil {
		t.Fatalf("Register() returned error: %v", err)
	}

	if _, err := svc.Login(LoginReq{Email: "ada@example.com", Password: "wrong"}); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("wrong password = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(LoginReq{Email: "nobody@example.com", Password: "correct-horse"}); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("unknown email = %v, want ErrInvalidCredentials", err)
	}
}
