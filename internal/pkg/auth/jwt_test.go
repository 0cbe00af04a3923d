package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/deniz/technexus/internal/app/models"
)

func testService(ttl time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "unit-test-secret",
		AccessTokenExp: ttl,
		TokenIssuer:    "test",
	})
}

func TestIssueValidateRoundTrip(t *testing.T) {
	svc := testService(time.Hour)
	userID := int64(42)

	token, err := svc.Issue(Identity{Subject: "ada", UserType: models.UserTypeUser, UserID: &userID})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.Subject != "ada" {
		t.Errorf("subject = %q, want ada", claims.Subject)
	}
	if claims.UserType != models.UserTypeUser {
		t.Errorf("user_type = %q, want user", claims.UserType)
	}
	if claims.UserID == nil || *claims.UserID != userID {
		t.Errorf("user_id = %v, want %d", claims.UserID, userID)
	}
	if claims.ID == "" {
		t.Error("expected a jti claim")
	}
}

func TestAdminTokenHasNoUserID(t *testing.T) {
	svc := testService(time.Hour)

	token, err := svc.Issue(Identity{Subject: "root", UserType: models.UserTypeAdmin})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.UserType != models.UserTypeAdmin {
		t.Errorf("user_type = %q, want admin", claims.UserType)
	}
	if claims.UserID != nil {
		t.Errorf("user_id = %v, want nil", claims.UserID)
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := testService(-time.Minute)

	token, err := svc.Issue(Identity{Subject: "ada", UserType: models.UserTypeUser})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expired token error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateRejectsWrongKey(t *testing.T) {
	token, err := testService(time.Hour).Issue(Identity{Subject: "ada", UserType: models.UserTypeUser})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "a-different-secret", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("wrong key error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := testService(time.Hour)
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate(%q) = %v, want ErrInvalidToken", token, err)
		}
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc123")
	if err != nil || token != "abc123" {
		t.Errorf("ExtractBearerToken = %q, %v", token, err)
	}

	// A bare token is accepted as-is
	token, err = ExtractBearerToken("abc123")
	if err != nil || token != "abc123" {
		t.Errorf("ExtractBearerToken without prefix = %q, %v", token, err)
	}

	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("empty header error = %v, want ErrInvalidFormat", err)
	}
}
