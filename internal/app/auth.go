package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"realestate_chatbot/internal/domain"
)

const (
	TokenTTL          = 24 * time.Hour
	minPasswordLength = 6
	// bcrypt rejects longer inputs
	maxPasswordBytes = 72
)

// tokenClaims mirror the fields issued to browser sessions.
type tokenClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService struct {
	users      domain.UserRepository
	secret     []byte
	adminEmail string
	now        func() time.Time
}

// NewAuthService signs tokens with secret. Signing up with adminEmail
// grants the admin role.
func NewAuthService(users domain.UserRepository, secret, adminEmail string) *AuthService {
	return &AuthService{
		users:      users,
		secret:     []byte(secret),
		adminEmail: strings.ToLower(strings.TrimSpace(adminEmail)),
		now:        time.Now,
	}
}

// Signup creates a user and returns it with a fresh token.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (domain.User, string, error) {
	email = strings.TrimSpace(email)
	if strings.TrimSpace(name) == "" || email == "" || password == "" {
		return domain.User{}, "", fmt.Errorf("%w: All fields are required", domain.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return domain.User{}, "", fmt.Errorf("%w: Password must be at least %d characters long", domain.ErrValidation, minPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return domain.User{}, "", fmt.Errorf("%w: Password must be at most %d bytes long", domain.ErrValidation, maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("hash password: %w", err)
	}
	u := domain.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    s.now().UTC(),
	}
	if s.adminEmail != "" && strings.EqualFold(email, s.adminEmail) {
		u.Role = domain.RoleAdmin
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		return domain.User{}, "", err
	}

	tok, err := s.issue(u)
	if err != nil {
		return domain.User{}, "", err
	}
	return u, tok, nil
}

// Login checks credentials. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.User{}, "", fmt.Errorf("%w: Email and password are required", domain.ErrValidation)
	}
	u, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	tok, err := s.issue(u)
	if err != nil {
		return domain.User{}, "", err
	}
	return u, tok, nil
}

// Me loads the caller's current user record.
func (s *AuthService) Me(ctx context.Context, p domain.Principal) (domain.User, error) {
	if p.UserID == "" {
		return domain.User{}, domain.ErrUnauthenticated
	}
	return s.users.GetUserByID(ctx, p.UserID)
}

// ParseToken validates an HS256 token and returns its principal.
func (s *AuthService) ParseToken(raw string) (domain.Principal, error) {
	claims := &tokenClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !tok.Valid || claims.UserID == "" {
		return domain.Principal{}, domain.ErrUnauthenticated
	}
	return domain.Principal{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}

func (s *AuthService) issue(u domain.User) (string, error) {
	now := s.now()
	claims := &tokenClaims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
