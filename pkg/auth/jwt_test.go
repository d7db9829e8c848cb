package auth

import (
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("s3cret", "showai-web", time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ValidateAccessToken("s3cret", token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Client != "showai-web" || claims.Subject != "showai-web" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestValidateAccessTokenRejectsWrongSecret(t *testing.T) {
	token, _ := GenerateAccessToken("s3cret", "showai-web", time.Minute)
	if _, err := ValidateAccessToken("other", token); err == nil {
		t.Fatalf("expected signature error")
	}
}

func TestValidateAccessTokenRejectsExpired(t *testing.T) {
	token, _ := GenerateAccessToken("s3cret", "showai-web", -time.Minute)
	if _, err := ValidateAccessToken("s3cret", token); err == nil {
		t.Fatalf("expected expiry error")
	}
}

func TestValidateAccessTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateAccessToken("s3cret", "not.a.jwt"); err == nil {
		t.Fatalf("expected parse error")
	}
}
