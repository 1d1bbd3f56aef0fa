package utils

import (
	"testing"
	"time"
)

func TestLoginTokenRoundTrip(t *testing.T) {
	token, err := GenerateLoginToken(42, "mir_anees", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseLoginToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.ID != 42 || claims.Username != "mir_anees" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseLoginTokenRejectsExpired(t *testing.T) {
	token, err := GenerateLoginToken(42, "mir_anees", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseLoginToken(token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestParseLoginTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseLoginToken("not.a.token"); err == nil {
		t.Error("garbage token accepted")
	}
}
