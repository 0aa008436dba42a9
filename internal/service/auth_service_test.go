package service

import (
	"errors"
	"testing"

	"brewmatic/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_SignUp_HashesPassword(t *testing.T) {
	repo := &fakeAuthRepo{createID: 42}
	s := NewAuthService(repo)

	id, err := s.SignUp("alice", "s3cret")
	if err != nil {
		t.Fatalf("SignUp() error: %v", err)
	}
	if id != 42 {
		t.Fatalf("id=%d, want 42", id)
	}
	if repo.lastHash == "s3cret" || repo.lastHash == "" {
		t.Fatalf("password stored without hashing")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.lastHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestAuthService_SignUp_RejectsEmptyPassword(t *testing.T) {
	s := NewAuthService(&fakeAuthRepo{})

	if _, err := s.SignUp("alice", "   "); err == nil {
		t.Fatalf("blank password accepted")
	}
}

func TestAuthService_GenerateToken_Errors(t *testing.T) {
	// Unknown user.
	s := NewAuthService(&fakeAuthRepo{})
	if _, err := s.GenerateToken("ghost", "pw"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err=%v, want ErrUserNotFound", err)
	}

	// Wrong password.
	hash, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	s = NewAuthService(&fakeAuthRepo{user: &models.User{ID: 7, Username: "alice", PasswordHash: string(hash)}})
	if _, err := s.GenerateToken("alice", "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("err=%v, want ErrInvalidPassword", err)
	}
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	s := NewAuthService(&fakeAuthRepo{user: &models.User{ID: 7, Username: "alice", PasswordHash: string(hash)}})

	token, err := s.GenerateToken("alice", "pw")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}
	id, err := s.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error: %v", err)
	}
	if id != 7 {
		t.Fatalf("user id=%d, want 7", id)
	}
}

func TestAuthService_ParseToken_RejectsGarbage(t *testing.T) {
	s := NewAuthService(&fakeAuthRepo{})

	if _, err := s.ParseToken("not-a-jwt"); err == nil {
		t.Fatalf("garbage token accepted")
	}
}
