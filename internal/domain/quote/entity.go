// Package quote modela o orçamento: cópia editável da composição, linhas de
// processo e de despesas/impostos e o bloco de totais calculado pelo Rollup.
package quote

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/hugohenrick/precificacao-api/internal/domain/catalog"
	"github.com/hugohenrick/precificacao-api/internal/domain/recipe"
	"github.com/shopspring/decimal"
)

var (
	ErrQuoteNotFound = fmt.Errorf("orçamento %w", apperror.ErrNotFound)
	ErrLineNotFound  = fmt.Errorf("item do orçamento %w", apperror.ErrNotFound)
	ErrQuoteApproved = fmt.Errorf("orçamento aprovado não pode ser alterado: %w", apperror.ErrConflict)
)

// Precisão de cada campo persistido
const (
	QuantityPlaces     = 2 // Quantidade do orçamento
	LineQuantityPlaces = 4
	UnitCostPlaces     = 4
	HoursPlaces        = 2
	HourlyRatePlaces   = 2
	FeeValuePlaces     = 2
	MarginPlaces       = 2
	TotalPlaces        = 2
)

var errMarginRange = errors.New("margem deve ser maior ou igual a 0 e menor que 100")

var (
	hundred       = decimal.NewFromInt(100)
	defaultMargin = decimal.NewFromInt(20)
)

// Status representa a situação do orçamento
type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid verifica se o status é conhecido
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Totals é a aba de totais do orçamento
type Totals struct {
	Materials      decimal.Decimal
	Processes      decimal.Decimal
	Fees           decimal.Decimal
	ProductionCost decimal.Decimal
	ComputedPrice  decimal.Decimal
	FinalPrice     decimal.Decimal
}

// Quote representa um orçamento
type Quote struct {
	ID          string
	TenantID    string
	ProductID   string
	Description string
	Quantity    decimal.Decimal
	Status      Status
	Margin      decimal.Decimal // Percentual, 0 <= m < 100
	// FixedCost é copiado da composição no momento da criação
	FixedCost decimal.Decimal
	// FinalPriceManual indica que FinalPrice foi definido pelo usuário e não
	// acompanha mais o preço calculado
	FinalPriceManual bool
	Totals           Totals
	Materials        []MaterialLine
	Processes        []ProcessLine
	Fees             []FeeLine
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewInput contém os dados de criação de um orçamento
type NewInput struct {
	ProductID   string
	Description string
	Quantity    *decimal.Decimal
	Margin      *decimal.Decimal
}

// HeaderInput contém as alterações de cabeçalho. Campos nil não são alterados.
type HeaderInput struct {
	Description *string
	Quantity    *decimal.Decimal
	Status      *Status
	Margin      *decimal.Decimal
}

// New cria um orçamento em rascunho. Quando a composição é informada, suas
// linhas são copiadas com o nome e o custo atuais dos componentes e o custo
// fixo passa a fazer parte do orçamento.
func New(tenantID string, in NewInput, rec *recipe.Recipe, components map[string]*catalog.Item) (*Quote, error) {
	now := time.Now()
	q := &Quote{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		ProductID:   strings.TrimSpace(in.ProductID),
		Description: strings.TrimSpace(in.Description),
		Quantity:    decimal.NewFromInt(1),
		Status:      StatusDraft,
		Margin:      defaultMargin,
		FixedCost:   decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Quantity != nil {
		q.Quantity = in.Quantity.Round(QuantityPlaces)
	}
	if in.Margin != nil {
		q.Margin = in.Margin.Round(MarginPlaces)
	}

	verr := apperror.NewValidationError()
	if q.ProductID == "" {
		verr.Add("produto_base", "produto base é obrigatório")
	}
	validateHeader(verr, q.Description, q.Quantity, q.Margin)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	if rec != nil {
		q.FixedCost = rec.FixedCost
		for _, l := range rec.Lines {
			item, ok := components[l.ComponentID]
			if !ok {
				return nil, fmt.Errorf("componente %s da composição não encontrado: %w", l.ComponentID, apperror.ErrNotFound)
			}
			q.Materials = append(q.Materials, MaterialLine{
				ID:          uuid.New().String(),
				QuoteID:     q.ID,
				ComponentID: item.ID,
				Description: item.Name,
				Quantity:    l.Quantity,
				UnitCost:    item.UnitCost,
			})
		}
	}

	if err := q.Rollup(); err != nil {
		return nil, err
	}
	return q, nil
}

// ApplyHeader altera o cabeçalho. Orçamentos aprovados aceitam apenas a
// troca de status.
func (q *Quote) ApplyHeader(in HeaderInput) error {
	if q.Status == StatusApproved && in.changesMoreThanStatus(q) {
		return ErrQuoteApproved
	}

	description, quantity, margin := q.Description, q.Quantity, q.Margin
	status := q.Status
	if in.Description != nil {
		description = strings.TrimSpace(*in.Description)
	}
	if in.Quantity != nil {
		quantity = in.Quantity.Round(QuantityPlaces)
	}
	if in.Margin != nil {
		margin = in.Margin.Round(MarginPlaces)
	}
	if in.Status != nil {
		status = *in.Status
	}

	verr := apperror.NewValidationError()
	validateHeader(verr, description, quantity, margin)
	if !status.Valid() {
		verr.Add("status", "status deve ser draft, sent, approved ou rejected")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	q.Description = description
	q.Quantity = quantity
	q.Margin = margin
	q.Status = status
	q.touch()
	return nil
}

// SetFinalPrice define o preço final manualmente. Com valor nil o preço
// final volta a acompanhar o preço calculado.
func (q *Quote) SetFinalPrice(price *decimal.Decimal) error {
	if err := q.EnsureEditable(); err != nil {
		return err
	}
	if price == nil {
		q.FinalPriceManual = false
		q.Totals.FinalPrice = q.Totals.ComputedPrice
		q.touch()
		return nil
	}
	if price.IsNegative() {
		return apperror.Invalid("preco_venda_final", "preço final não pode ser negativo")
	}
	q.FinalPriceManual = true
	q.Totals.FinalPrice = price.Round(TotalPlaces)
	q.touch()
	return nil
}

// EnsureEditable retorna ErrQuoteApproved para orçamentos aprovados
func (q *Quote) EnsureEditable() error {
	if q.Status == StatusApproved {
		return ErrQuoteApproved
	}
	return nil
}

func (q *Quote) touch() {
	q.UpdatedAt = time.Now()
}

func (in HeaderInput) changesMoreThanStatus(q *Quote) bool {
	if in.Description != nil && strings.TrimSpace(*in.Description) != q.Description {
		return true
	}
	if in.Quantity != nil && !in.Quantity.Round(QuantityPlaces).Equal(q.Quantity) {
		return true
	}
	if in.Margin != nil && !in.Margin.Round(MarginPlaces).Equal(q.Margin) {
		return true
	}
	return false
}

func validateHeader(verr *apperror.ValidationError, description string, quantity, margin decimal.Decimal) {
	if len(description) > 255 {
		verr.Add("descricao", "descrição deve ter no máximo 255 caracteres")
	}
	if !quantity.IsPositive() {
		verr.Add("quantidade", "quantidade deve ser maior que zero")
	}
	if err := validateMargin(margin); err != nil {
		verr.Add("margem_lucro_percentual", err.Error())
	}
}

func validateMargin(margin decimal.Decimal) error {
	if margin.IsNegative() || margin.GreaterThanOrEqual(hundred) {
		return errMarginRange
	}
	return nil
}
