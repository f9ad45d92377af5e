// Package apperror define a taxonomia de erros compartilhada pelos domínios.
// Os erros de cada domínio embrulham estes valores para que a camada HTTP
// consiga classificá-los com errors.Is/errors.As.
package apperror

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound indica que o registro não existe para o tenant informado
	ErrNotFound = errors.New("não encontrado")

	// ErrConflict indica violação de unicidade ou de estado
	ErrConflict = errors.New("conflito com o estado atual")

	// ErrReferenced indica que o registro está em uso por outros registros
	ErrReferenced = errors.New("registro em uso por outros registros")

	// ErrTenantRequired ocorre quando uma escrita é feita sem empresa associada
	ErrTenantRequired = errors.New("usuário não possui empresa associada")

	// ErrForbidden indica que a operação não é permitida para o usuário
	ErrForbidden = errors.New("operação não permitida")

	// ErrUnauthorized indica credenciais ausentes ou inválidas
	ErrUnauthorized = errors.New("não autenticado")
)

// ValidationError agrupa erros de validação por campo
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError cria um ValidationError vazio
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Invalid cria um erro de validação para um único campo
func Invalid(field, message string) error {
	return NewValidationError().Add(field, message)
}

// Add registra a mensagem do campo. A primeira mensagem de cada campo prevalece.
func (e *ValidationError) Add(field, message string) *ValidationError {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
	return e
}

// HasErrors informa se algum campo foi registrado
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// OrNil retorna nil quando não há erros registrados
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

// Error implementa a interface error com os campos em ordem alfabética
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "dados inválidos: " + strings.Join(parts, "; ")
}

// AsValidation extrai o ValidationError da cadeia de erros
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
