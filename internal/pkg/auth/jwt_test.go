package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/tastapp/tast-backend/internal/app/models"
	"github.com/tastapp/tast-backend/internal/pkg/apperrors"
)

func testService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "tast.test",
	})
}

func testUser() *models.User {
	return &models.User{ID: 7, Username: "admin", IsAdmin: true}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(time.Hour)

	token, expiresIn, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn: want=3600 got=%d", expiresIn)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("userID: want=7 got=%d", claims.UserID)
	}
	if claims.Username != "admin" {
		t.Errorf("username: want=admin got=%s", claims.Username)
	}
	if !claims.IsAdmin {
		t.Error("isAdmin: want=true got=false")
	}
	if claims.Issuer != "tast.test" {
		t.Errorf("issuer: want=tast.test got=%s", claims.Issuer)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := testService(time.Hour).GenerateToken(testUser())
	if err != nil {
		t.Fatal(err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "different", AccessTokenExp: time.Hour, TokenIssuer: "tast.test"})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("want error for token signed with a different secret, got nil")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := testService(-time.Minute)

	token, _, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Fatalf("want ErrTokenExpired, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer prefix", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"raw token", "abc.def.ghi", "abc.def.ghi", false},
		{"empty", "", "", true},
	}
	for _, tc := range cases {
		got, err := ExtractBearerToken(tc.header)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%s: want error, got nil", tc.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: want=%s got=%s", tc.name, tc.want, got)
		}
	}
}

func TestValidateAndExtractClaimsRejectsEmpty(t *testing.T) {
	_, err := testService(time.Hour).ValidateAndExtractClaims("")
	if !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Fatalf("want ErrTokenInvalid, got %v", err)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !CheckPassword(hash, "s3cret-password") {
		t.Error("correct password should verify")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Error("wrong password should not verify")
	}
}
