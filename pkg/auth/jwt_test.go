package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shashiranjanraj/rasoi/config"
	"github.com/shashiranjanraj/rasoi/pkg/auth"
)

func TestIssueAndVerify(t *testing.T) {
	token, err := auth.IssueToken("a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := auth.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("email claim = %q, want a@x.com", claims.Email)
	}
}

func TestVerifyMalformed(t *testing.T) {
	if _, err := auth.VerifyToken("not-a-token"); err == nil {
		t.Error("expected malformed token to fail verification")
	}
}

func TestVerifyWrongSignature(t *testing.T) {
	claims := auth.Claims{Email: "a@x.com"}
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := auth.VerifyToken(forged); err == nil {
		t.Error("expected token signed with a different secret to fail")
	}
}

func TestVerifyExpired(t *testing.T) {
	claims := auth.Claims{Email: "a@x.com"}
	claims.IssuedAt = jwt.NewNumericDate(time.Now().Add(-2 * time.Hour))
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.JWTSecret()))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := auth.VerifyToken(expired); err == nil {
		t.Error("expected expired token to fail verification")
	}
}

func TestTokenTTLIsOneHour(t *testing.T) {
	if auth.TokenTTL != time.Hour {
		t.Errorf("TokenTTL = %v, want 1h", auth.TokenTTL)
	}
}
