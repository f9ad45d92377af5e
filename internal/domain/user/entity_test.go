package user

import (
	"testing"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
)

func TestNewUserNormalizesEmail(t *testing.T) {
	u, err := NewUser("  Maria@Exemplo.COM ", Profile{Name: "Maria"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "maria@exemplo.com" {
		t.Fatalf("expected lower-cased email, got %q", u.Email)
	}
	if !u.IsActive() {
		t.Fatalf("expected active user")
	}
}

func TestNewUserValidation(t *testing.T) {
	_, err := NewUser("invalido", Profile{})
	verr, ok := apperror.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"email", "name"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Fatalf("expected field %s in %v", field, verr.Fields)
		}
	}
}

func TestPassword(t *testing.T) {
	u, _ := NewUser("a@b.com", Profile{Name: "A"})
	if u.CheckPassword("qualquer") {
		t.Fatalf("user without password must not authenticate")
	}
	if err := u.SetPassword("curta"); err == nil {
		t.Fatalf("expected error for short password")
	}
	if err := u.SetPassword("segredo123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !u.CheckPassword("segredo123") {
		t.Fatalf("expected password to match")
	}
	if u.CheckPassword("segredo124") {
		t.Fatalf("expected wrong password to fail")
	}
}
