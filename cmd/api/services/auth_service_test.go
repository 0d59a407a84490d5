package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"second-brain/cmd/api/auth"
	"second-brain/models"
	"second-brain/repositories"
)

type fakeUserStore struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byEmail: map[string]*models.User{},
		byID:    map[string]*models.User{},
	}
}

func (f *fakeUserStore) Insert(_ context.Context, u models.User) (*models.User, error) {
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, repositories.ErrUserExists
	}
	u.ID = primitive.NewObjectID()
	f.byEmail[u.Email] = &u
	f.byID[u.ID.Hex()] = &u
	return &u, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return u, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return u, nil
}

func newTestAuthService(t *testing.T) (*AuthService, *fakeUserStore) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store := newFakeUserStore()
	return NewAuthService(store, jwtManager), store
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Someone@Example.COM", "p4ssword!")
	if err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}
	if user.Email != "someone@example.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
	if user.HashedPassword == "p4ssword!" {
		t.Fatalf("password must be stored hashed")
	}

	token, err := svc.Login(ctx, "someone@example.com", "p4ssword!")
	if err != nil {
		t.Fatalf("unexpected login error: %v", err)
	}

	userID, err := svc.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if userID != user.ID.Hex() {
		t.Fatalf("expected token subject %s, got %s", user.ID.Hex(), userID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "dup@example.com", "p4ssword!"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.Register(ctx, "dup@example.com", "other-pass")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@example.com", "correct-pass"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Login(ctx, "a@example.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	svc, store := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "inactive@example.com", "p4ssword!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store.byEmail[user.Email].IsActive = false

	if _, err := svc.Login(ctx, "inactive@example.com", "p4ssword!"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for inactive user, got %v", err)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	svc, _ := newTestAuthService(t)
	_, err := svc.GetProfile(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDocIDFromURL(t *testing.T) {
	if id := DocIDFromURL("https://youtu.be/dQw4w9WgXcQ"); id != "dQw4w9WgXcQ" {
		t.Fatalf("expected video id, got %q", id)
	}

	a := DocIDFromURL("https://example.com/post")
	b := DocIDFromURL("https://example.com/post")
	c := DocIDFromURL("https://example.com/other")
	if a != b {
		t.Fatalf("doc id must be stable for the same URL")
	}
	if a == c {
		t.Fatalf("different URLs must get different doc ids")
	}
	if len(a) != 16 {
		t.Fatalf("expected 16 hex chars, got %q", a)
	}
}
