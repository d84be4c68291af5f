package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestJWTFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	adminID := uuid.New().String()

	token, err := GenerateToken(adminID, "warden")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	gotID, gotUsername, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}
	if gotID != adminID {
		t.Fatalf("Expected adminID %s, got %s", adminID, gotID)
	}
	if gotUsername != "warden" {
		t.Fatalf("Expected username warden, got %s", gotUsername)
	}
}

func TestGenerateToken_ExpiresInSevenDays(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	token, err := GenerateToken("id-1", "warden")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		t.Fatalf("parse: %v", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		t.Fatalf("missing exp claim: %v", err)
	}
	if d := time.Until(exp.Time); d < 7*24*time.Hour-time.Minute || d > 7*24*time.Hour {
		t.Errorf("unexpected token lifetime %s", d)
	}
}

func TestValidateToken_Rejects(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       "id-1",
		"username": "warden",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	expiredToken, _ := expired.SignedString([]byte("test-secret-key-12345"))

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       "id-1",
		"username": "warden",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	otherToken, _ := other.SignedString([]byte("some-other-secret"))

	for name, token := range map[string]string{
		"garbage":      "not.a.token",
		"expired":      expiredToken,
		"wrong secret": otherToken,
	} {
		t.Run(name, func(t *testing.T) {
			if _, _, err := ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestGenerateToken_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := GenerateToken("id-1", "warden"); err == nil {
		t.Fatal("expected an error without JWT_SECRET")
	}
}
