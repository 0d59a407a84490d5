package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"second-brain/cmd/api/auth"
	"second-brain/models"
	"second-brain/repositories"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	Insert(ctx context.Context, u models.User) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthService struct {
	users UserStore
	jwt   *auth.JWTManager
}

func NewAuthService(users UserStore, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{users: users, jwt: jwtManager}
}

// Register creates a new active account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Insert(ctx, models.User{
		Email:          email,
		HashedPassword: hashed,
		IsActive:       true,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrUserExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("register user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !user.IsActive || !auth.CheckPassword(user.HashedPassword, password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwt.Sign(user.ID.Hex())
	if err != nil {
		return "", fmt.Errorf("jwt sign: %w", err)
	}
	return token, nil
}

// ParseAccessToken verifies a bearer token and returns the user id.
func (s *AuthService) ParseAccessToken(token string) (string, error) {
	return s.jwt.Parse(token)
}

// GetProfile loads the user behind an access token's subject. A stale
// token for a deleted user yields ErrUserNotFound.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
