package services

import (
	"errors"
	"testing"
)

func TestRegisterLoginRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret", 30)

	trainer, err := svc.Register("ash", "pikachu123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if trainer.Level != 1 || trainer.Experience != 0 {
		t.Fatalf("new trainer should start at level 1 with 0 XP, got %+v", trainer)
	}
	if trainer.PasswordHash == "pikachu123" {
		t.Fatal("password stored in plain text")
	}

	if _, err := svc.Register("ash", "other"); !errors.Is(err, ErrTrainerExists) {
		t.Fatalf("expected ErrTrainerExists, got %v", err)
	}

	token, err := svc.Login("ash", "pikachu123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	trainerID, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if trainerID != "ash" {
		t.Fatalf("token subject = %q, want ash", trainerID)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret", 30)

	if _, err := svc.Register("misty", "starmie99"); err != nil {
		t.Fatalf("register: %v", err)
	}

	cases := []struct {
		name      string
		trainerID string
		password  string
	}{
		{"wrong password", "misty", "wrong"},
		{"unknown trainer", "nobody", "starmie99"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Login(tc.trainerID, tc.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret", 30)

	for _, token := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		if _, err := svc.ValidateToken(token); err == nil {
			t.Fatalf("token %q should not validate", token)
		}
	}

	// Token signed with a different secret must be rejected.
	other := NewAuthService(db, "other-secret", 30)
	token, err := other.GenerateToken("ash")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatal("token signed with wrong secret should not validate")
	}
}
