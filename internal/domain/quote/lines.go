package quote

import (
	"strings"

	"github.com/google/uuid"
	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/shopspring/decimal"
)

// FeeKind indica se a despesa é percentual ou valor fixo
type FeeKind string

const (
	FeePercentage FeeKind = "percentual"
	FeeFixed      FeeKind = "fixo"
)

// FeeBase indica sobre qual valor a despesa percentual incide
type FeeBase string

const (
	BaseCost FeeBase = "custo"
	BaseSale FeeBase = "venda"
)

// MaterialLine é um item da aba de composição do orçamento
type MaterialLine struct {
	ID          string
	QuoteID     string
	ComponentID string
	Description string
	Quantity    decimal.Decimal
	UnitCost    decimal.Decimal
	Total       decimal.Decimal
}

// ProcessLine é um item da aba de processos (mão de obra)
type ProcessLine struct {
	ID          string
	QuoteID     string
	Description string
	Hours       decimal.Decimal
	HourlyRate  decimal.Decimal
	Total       decimal.Decimal
}

// FeeLine é um item da aba de despesas e impostos
type FeeLine struct {
	ID          string
	QuoteID     string
	Description string
	Kind        FeeKind
	Base        FeeBase
	Value       decimal.Decimal
	Total       decimal.Decimal
}

type MaterialInput struct {
	ComponentID string
	Description string
	Quantity    decimal.Decimal
	UnitCost    decimal.Decimal
}

type ProcessInput struct {
	Description string
	Hours       decimal.Decimal
	HourlyRate  decimal.Decimal
}

type FeeInput struct {
	Description string
	Kind        FeeKind
	Base        FeeBase
	Value       decimal.Decimal
}

// AddMaterial inclui um item de matéria-prima
func (q *Quote) AddMaterial(in MaterialInput) (*MaterialLine, error) {
	if err := q.EnsureEditable(); err != nil {
		return nil, err
	}
	line := MaterialLine{ID: uuid.New().String(), QuoteID: q.ID}
	if err := line.apply(in); err != nil {
		return nil, err
	}
	q.Materials = append(q.Materials, line)
	q.touch()
	return &q.Materials[len(q.Materials)-1], nil
}

// UpdateMaterial altera um item de matéria-prima
func (q *Quote) UpdateMaterial(id string, in MaterialInput) (*MaterialLine, error) {
	if err := q.EnsureEditable(); err != nil {
		return nil, err
	}
	for i := range q.Materials {
		if q.Materials[i].ID != id {
			continue
		}
		line := q.Materials[i]
		if err := line.apply(in); err != nil {
			return nil, err
		}
		q.Materials[i] = line
		q.touch()
		return &q.Materials[i], nil
	}
	return nil, ErrLineNotFound
}

// RemoveMaterial remove um item de matéria-prima
func (q *Quote) RemoveMaterial(id string) error {
	if err := q.EnsureEditable(); err != nil {
		return err
	}
	for i := range q.Materials {
		if q.Materials[i].ID == id {
			q.Materials = append(q.Materials[:i], q.Materials[i+1:]...)
			q.touch()
			return nil
		}
	}
	return ErrLineNotFound
}

// AddProcess inclui um item de processo
func (q *Quote) AddProcess(in ProcessInput) (*ProcessLine, error) {
	if err := q.EnsureEditable(); err != nil {
		return nil, err
	}
	line := ProcessLine{ID: uuid.New().String(), QuoteID: q.ID}
	if err := line.apply(in); err != nil {
		return nil, err
	}
	q.Processes = append(q.Processes, line)
	q.touch()
	return &q.Processes[len(q.Processes)-1], nil
}

// UpdateProcess altera um item de processo
func (q *Quote) UpdateProcess(id string, in ProcessInput) (*ProcessLine, error) {
	if err := q.EnsureEditable(); err != nil {
		return nil, err
	}
	for i := range q.Processes {
		if q.Processes[i].ID != id {
			continue
		}
		line := q.Processes[i]
		if err := line.apply(in); err != nil {
			return nil, err
		}
		q.Processes[i] = line
		q.touch()
		return &q.Processes[i], nil
	}
	return nil, ErrLineNotFound
}

// RemoveProcess remove um item de processo
func (q *Quote) RemoveProcess(id string) error {
	if err := q.EnsureEditable(); err != nil {
		return err
	}
	for i := range q.Processes {
		if q.Processes[i].ID == id {
			q.Processes = append(q.Processes[:i], q.Processes[i+1:]...)
			q.touch()
			return nil
		}
	}
	return ErrLineNotFound
}

// AddFee inclui uma despesa ou imposto
func (q *Quote) AddFee(in FeeInput) (*FeeLine, error) {
	if err := q.EnsureEditable(); err != nil {
		return nil, err
	}
	line := FeeLine{ID: uuid.New().String(), QuoteID: q.ID}
	if err := line.apply(in); err != nil {
		return nil, err
	}
	q.Fees = append(q.Fees, line)
	q.touch()
	return &q.Fees[len(q.Fees)-1], nil
}

// UpdateFee altera uma despesa ou imposto
func (q *Quote) UpdateFee(id string, in FeeInput) (*FeeLine, error) {
	if err := q.EnsureEditable(); err != nil {
		return nil, err
	}
	for i := range q.Fees {
		if q.Fees[i].ID != id {
			continue
		}
		line := q.Fees[i]
		if err := line.apply(in); err != nil {
			return nil, err
		}
		q.Fees[i] = line
		q.touch()
		return &q.Fees[i], nil
	}
	return nil, ErrLineNotFound
}

// RemoveFee remove uma despesa ou imposto
func (q *Quote) RemoveFee(id string) error {
	if err := q.EnsureEditable(); err != nil {
		return err
	}
	for i := range q.Fees {
		if q.Fees[i].ID == id {
			q.Fees = append(q.Fees[:i], q.Fees[i+1:]...)
			q.touch()
			return nil
		}
	}
	return ErrLineNotFound
}

// FindMaterial busca um item de matéria-prima pelo ID
func (q *Quote) FindMaterial(id string) (*MaterialLine, bool) {
	for i := range q.Materials {
		if q.Materials[i].ID == id {
			return &q.Materials[i], true
		}
	}
	return nil, false
}

func (l *MaterialLine) apply(in MaterialInput) error {
	in.ComponentID = strings.TrimSpace(in.ComponentID)
	in.Description = strings.TrimSpace(in.Description)
	in.Quantity = in.Quantity.Round(LineQuantityPlaces)
	in.UnitCost = in.UnitCost.Round(UnitCostPlaces)

	verr := apperror.NewValidationError()
	if in.ComponentID == "" {
		verr.Add("componente", "componente é obrigatório")
	}
	validateDescription(verr, in.Description)
	if !in.Quantity.IsPositive() {
		verr.Add("quantidade", "quantidade deve ser maior que zero")
	}
	if in.UnitCost.IsNegative() {
		verr.Add("custo_unitario", "custo unitário não pode ser negativo")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	l.ComponentID = in.ComponentID
	l.Description = in.Description
	l.Quantity = in.Quantity
	l.UnitCost = in.UnitCost
	return nil
}

func (l *ProcessLine) apply(in ProcessInput) error {
	in.Description = strings.TrimSpace(in.Description)
	in.Hours = in.Hours.Round(HoursPlaces)
	in.HourlyRate = in.HourlyRate.Round(HourlyRatePlaces)

	verr := apperror.NewValidationError()
	validateDescription(verr, in.Description)
	if in.Hours.IsNegative() {
		verr.Add("horas", "horas não podem ser negativas")
	}
	if in.HourlyRate.IsNegative() {
		verr.Add("custo_hora", "custo por hora não pode ser negativo")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	l.Description = in.Description
	l.Hours = in.Hours
	l.HourlyRate = in.HourlyRate
	return nil
}

func (l *FeeLine) apply(in FeeInput) error {
	in.Description = strings.TrimSpace(in.Description)
	in.Value = in.Value.Round(FeeValuePlaces)
	if in.Kind == "" {
		in.Kind = FeePercentage
	}
	if in.Base == "" {
		in.Base = BaseCost
	}

	verr := apperror.NewValidationError()
	validateDescription(verr, in.Description)
	if in.Kind != FeePercentage && in.Kind != FeeFixed {
		verr.Add("tipo", "tipo deve ser percentual ou fixo")
	}
	if in.Base != BaseCost && in.Base != BaseSale {
		verr.Add("base_calculo", "base de cálculo deve ser custo ou venda")
	}
	if in.Value.IsNegative() {
		verr.Add("valor", "valor não pode ser negativo")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	l.Description = in.Description
	l.Kind = in.Kind
	l.Base = in.Base
	l.Value = in.Value
	return nil
}

func validateDescription(verr *apperror.ValidationError, description string) {
	switch {
	case description == "":
		verr.Add("descricao", "descrição é obrigatória")
	case len(description) > 255:
		verr.Add("descricao", "descrição deve ter no máximo 255 caracteres")
	}
}
