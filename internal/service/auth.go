package service

import (
	"context"
	"errors"
	"time"

	"github.com/shoplist/shoplist-go/internal/crypto"
	"github.com/shoplist/shoplist-go/internal/model"
	"github.com/shoplist/shoplist-go/internal/repository"
)

// The register/login error texts double as the response messages the
// original API contract exposes, so they keep its exact wording.
var (
	ErrFieldsRequired     = errors.New("Email, Password and name cannot be empty")
	ErrInvalidUserName    = errors.New("Enter a correct name")
	ErrInvalidEmail       = errors.New("Enter a correct email address")
	ErrWeakPassword       = errors.New("Password should be at least 8 characters both numbers and letters")
	ErrUserExists         = errors.New("User already exists. Please login.")
	ErrInvalidCredentials = errors.New("Invalid email or password, Please try again")
	ErrWrongOldPassword   = errors.New("old password is incorrect")
	ErrUnknownEmail       = errors.New("no account with that email")
)

// AuthService handles registration, login and password management.
type AuthService struct {
	store     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		store:     store,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account. An already-registered email is
// reported with ErrUserExists so the handler can answer 202.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) error {
	if req.Email == "" && req.Password == "" && req.Name == "" {
		return ErrFieldsRequired
	}
	if err := validateName(req.Name); err != nil {
		return ErrInvalidUserName
	}
	if !validEmail(req.Email) {
		return ErrInvalidEmail
	}
	if !validPassword(req.Password) {
		return ErrWeakPassword
	}

	if _, err := s.store.GetByEmail(ctx, req.Email); err == nil {
		return ErrUserExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrUserExists
		}
		return err
	}

	return nil
}

// Login authenticates a user and issues an access token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	user, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.LoginResponse{}, err
	}
	if !match {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{
		Message:     "You logged in successfully.",
		AccessToken: token,
		Name:        user.Name,
	}, nil
}

// ChangePassword replaces the caller's password after verifying the old one.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, req model.ChangePasswordRequest) error {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	match, err := crypto.VerifyPassword(req.OldPassword, user.PasswordHash)
	if err != nil {
		return err
	}
	if !match {
		return ErrWrongOldPassword
	}

	if !validPassword(req.NewPassword) {
		return ErrWeakPassword
	}

	hash, err := crypto.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.store.UpdatePassword(ctx, user.ID, hash)
}

// ResetPassword replaces the account password with a random temporary
// one and returns it. The generated password satisfies the login
// password policy.
func (s *AuthService) ResetPassword(ctx context.Context, email string) (string, error) {
	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUnknownEmail
		}
		return "", err
	}

	password, err := crypto.GenerateTempPassword()
	if err != nil {
		return "", err
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return "", err
	}

	if err := s.store.UpdatePassword(ctx, user.ID, hash); err != nil {
		return "", err
	}

	return password, nil
}
