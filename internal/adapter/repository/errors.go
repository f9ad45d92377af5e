package repository

import (
	"errors"
	"fmt"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos de erro do PostgreSQL tratados pelos repositórios
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidText         = "22P02"
	pgNumericOutOfRange   = "22003"
)

// translateError converte erros do pgx para a taxonomia de domínio.
// notFound é devolvido quando a consulta não retorna linhas ou quando o
// identificador informado não é um UUID válido.
func translateError(err error, op string, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) && notFound != nil {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("erro ao %s: %s: %w", op, pgErr.ConstraintName, apperror.ErrConflict)
		case pgForeignKeyViolation:
			return fmt.Errorf("erro ao %s: %s: %w", op, pgErr.ConstraintName, apperror.ErrReferenced)
		case pgInvalidText:
			if notFound != nil {
				return notFound
			}
			return fmt.Errorf("erro ao %s: %w", op, apperror.ErrNotFound)
		case pgNumericOutOfRange:
			field := pgErr.ColumnName
			if field == "" {
				field = "valor"
			}
			return apperror.Invalid(field, "valor numérico fora do intervalo permitido")
		}
	}
	return fmt.Errorf("erro ao %s: %w", op, err)
}

// expectAffected devolve notFound quando o comando não alterou nenhuma linha
func expectAffected(tag pgconn.CommandTag, notFound error) error {
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}

// constraintViolated informa se err é a violação da constraint informada
func constraintViolated(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.ConstraintName == constraint
}

func isReferenced(err error) bool {
	return errors.Is(err, apperror.ErrReferenced)
}
