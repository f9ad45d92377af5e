package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationErrorKeepsFirstMessagePerField(t *testing.T) {
	verr := NewValidationError().
		Add("nome", "obrigatório").
		Add("nome", "muito longo").
		Add("codigo_sku", "duplicado")

	if got := verr.Fields["nome"]; got != "obrigatório" {
		t.Fatalf("expected first message to win, got %q", got)
	}
	want := "dados inválidos: codigo_sku: duplicado; nome: obrigatório"
	if verr.Error() != want {
		t.Fatalf("unexpected message %q", verr.Error())
	}
}

func TestOrNil(t *testing.T) {
	if err := NewValidationError().OrNil(); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if err := NewValidationError().Add("x", "y").OrNil(); err == nil {
		t.Fatal("expected error")
	}
}

func TestAsValidationThroughWrapping(t *testing.T) {
	err := fmt.Errorf("erro ao salvar: %w", Invalid("quantidade", "deve ser maior que zero"))

	verr, ok := AsValidation(err)
	if !ok {
		t.Fatal("expected validation error in chain")
	}
	if verr.Fields["quantidade"] == "" {
		t.Fatalf("missing field detail: %v", verr.Fields)
	}
	if _, ok := AsValidation(errors.New("outro")); ok {
		t.Fatal("plain error must not be a validation error")
	}
}
