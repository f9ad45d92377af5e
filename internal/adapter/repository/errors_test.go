package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/hugohenrick/precificacao-api/internal/domain/catalog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"sem linhas", pgx.ErrNoRows, catalog.ErrItemNotFound},
		{"unicidade", &pgconn.PgError{Code: "23505", ConstraintName: "ux_produtos_empresa_sku"}, apperror.ErrConflict},
		{"chave estrangeira", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23503"}), apperror.ErrReferenced},
		{"uuid inválido", &pgconn.PgError{Code: "22P02"}, catalog.ErrItemNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err, "excluir produto", catalog.ErrItemNotFound)
			if !errors.Is(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}

	if translateError(nil, "x", nil) != nil {
		t.Fatalf("expected nil for nil error")
	}

	if got := translateError(&pgconn.PgError{Code: "22P02"}, "buscar produtos", nil); !errors.Is(got, apperror.ErrNotFound) {
		t.Fatalf("expected not found for invalid uuid without sentinel, got %v", got)
	}

	overflow := translateError(&pgconn.PgError{Code: "22003", ColumnName: "preco_custo"}, "criar produto", catalog.ErrItemNotFound)
	verr, ok := apperror.AsValidation(overflow)
	if !ok || verr.Fields["preco_custo"] == "" {
		t.Fatalf("expected validation error on preco_custo, got %v", overflow)
	}
	overflow = translateError(&pgconn.PgError{Code: "22003"}, "atualizar orçamento", nil)
	if verr, ok := apperror.AsValidation(overflow); !ok || verr.Fields["valor"] == "" {
		t.Fatalf("expected validation error on valor, got %v", overflow)
	}

	other := errors.New("conexão perdida")
	got := translateError(other, "listar produtos", nil)
	if !errors.Is(got, other) || errors.Is(got, apperror.ErrConflict) {
		t.Fatalf("expected wrapped original error, got %v", got)
	}
}

func TestExpectAffected(t *testing.T) {
	if err := expectAffected(pgconn.NewCommandTag("DELETE 0"), catalog.ErrItemNotFound); !errors.Is(err, catalog.ErrItemNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := expectAffected(pgconn.NewCommandTag("UPDATE 1"), catalog.ErrItemNotFound); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
