package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shoplist/shoplist-go/internal/crypto"
	"github.com/shoplist/shoplist-go/internal/model"
)

func newTestAuthService() (*AuthService, *memStore) {
	store := newMemStore()
	return NewAuthService(store, "test-secret", time.Hour), store
}

func register(t *testing.T, svc *AuthService, email, name, password string) {
	t.Helper()
	err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    email,
		Name:     name,
		Password: password,
	})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
}

func TestRegisterAllFieldsEmpty(t *testing.T) {
	svc, _ := newTestAuthService()

	err := svc.Register(context.Background(), model.RegisterRequest{})
	if !errors.Is(err, ErrFieldsRequired) {
		t.Errorf("Register() = %v, want ErrFieldsRequired", err)
	}
}

func TestRegisterInvalidName(t *testing.T) {
	svc, _ := newTestAuthService()

	err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "user@test.com",
		Name:     "bad/name!",
		Password: "test1234",
	})
	if !errors.Is(err, ErrInvalidUserName) {
		t.Errorf("Register() = %v, want ErrInvalidUserName", err)
	}
}

func TestRegisterInvalidEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "not-an-email",
		Name:     "Test User",
		Password: "test1234",
	})
	if !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("Register() = %v, want ErrInvalidEmail", err)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	svc, _ := newTestAuthService()

	err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "user@test.com",
		Name:     "Test User",
		Password: "short",
	})
	if !errors.Is(err, ErrWeakPassword) {
		t.Errorf("Register() = %v, want ErrWeakPassword", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()
	register(t, svc, "user@test.com", "Test User", "test1234")

	err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "user@test.com",
		Name:     "Another User",
		Password: "test1234",
	})
	if !errors.Is(err, ErrUserExists) {
		t.Errorf("Register() = %v, want ErrUserExists", err)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	svc, _ := newTestAuthService()
	register(t, svc, "user@test.com", "Test User", "test1234")

	resp, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "user@test.com",
		Password: "test1234",
	})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("Login() returned empty access token")
	}
	if resp.Name != "Test User" {
		t.Errorf("Login() name = %q, want %q", resp.Name, "Test User")
	}

	claims, err := crypto.ValidateToken(resp.AccessToken, "test-secret")
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.UserID == 0 {
		t.Error("token carries no user identity")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestAuthService()
	register(t, svc, "user@test.com", "Test User", "test1234")

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "user@test.com",
		Password: "wrong9999",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "nobody@test.com",
		Password: "test1234",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() = %v, want ErrInvalidCredentials", err)
	}
}

func TestChangePasswordWrongOld(t *testing.T) {
	svc, store := newTestAuthService()
	register(t, svc, "user@test.com", "Test User", "test1234")
	user, _ := store.GetByEmail(context.Background(), "user@test.com")

	err := svc.ChangePassword(context.Background(), user.ID, model.ChangePasswordRequest{
		OldPassword: "wrong9999",
		NewPassword: "newpass99",
	})
	if !errors.Is(err, ErrWrongOldPassword) {
		t.Errorf("ChangePassword() = %v, want ErrWrongOldPassword", err)
	}
}

func TestChangePasswordThenLogin(t *testing.T) {
	svc, store := newTestAuthService()
	register(t, svc, "user@test.com", "Test User", "test1234")
	user, _ := store.GetByEmail(context.Background(), "user@test.com")

	err := svc.ChangePassword(context.Background(), user.ID, model.ChangePasswordRequest{
		OldPassword: "test1234",
		NewPassword: "newpass99",
	})
	if err != nil {
		t.Fatalf("ChangePassword() unexpected error: %v", err)
	}

	if _, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "user@test.com",
		Password: "test1234",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() with old password = %v, want ErrInvalidCredentials", err)
	}

	if _, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "user@test.com",
		Password: "newpass99",
	}); err != nil {
		t.Errorf("Login() with new password unexpected error: %v", err)
	}
}

func TestResetPasswordIssuesUsablePassword(t *testing.T) {
	svc, _ := newTestAuthService()
	register(t, svc, "user@test.com", "Test User", "test1234")

	password, err := svc.ResetPassword(context.Background(), "user@test.com")
	if err != nil {
		t.Fatalf("ResetPassword() unexpected error: %v", err)
	}
	if len(password) != crypto.TempPasswordLength {
		t.Errorf("ResetPassword() password length = %d, want %d", len(password), crypto.TempPasswordLength)
	}
	if !validPassword(password) {
		t.Errorf("ResetPassword() password %q does not satisfy the login policy", password)
	}

	if _, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "user@test.com",
		Password: password,
	}); err != nil {
		t.Errorf("Login() with reset password unexpected error: %v", err)
	}
}

func TestResetPasswordUnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.ResetPassword(context.Background(), "nobody@test.com")
	if !errors.Is(err, ErrUnknownEmail) {
		t.Errorf("ResetPassword() = %v, want ErrUnknownEmail", err)
	}
}
