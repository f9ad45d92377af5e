// Package recipe modela a composição (ficha técnica) de um produto acabado ou
// sub-produto e a substituição transacional das suas linhas.
package recipe

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/hugohenrick/precificacao-api/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

var (
	ErrRecipeNotFound = fmt.Errorf("composição %w", apperror.ErrNotFound)
	ErrRecipeExists   = fmt.Errorf("produto já possui composição: %w", apperror.ErrConflict)
)

const (
	QuantityPlaces  = 4
	FixedCostPlaces = 2
)

// Recipe é a composição de um produto: componentes, quantidades e custo fixo
type Recipe struct {
	ID          string
	TenantID    string
	ProductID   string
	Description string
	FixedCost   decimal.Decimal
	Lines       []Line
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Line é um componente da composição
type Line struct {
	ID          string
	RecipeID    string
	ComponentID string
	Quantity    decimal.Decimal
}

// LineInput é uma linha enviada pelo cliente
type LineInput struct {
	ComponentID string
	Quantity    decimal.Decimal
}

// Input contém os dados de criação ou atualização. ReplaceLines indica que
// Lines traz o conjunto completo de linhas; caso contrário as linhas atuais
// são mantidas.
type Input struct {
	ProductID    string
	Description  string
	FixedCost    decimal.Decimal
	Lines        []LineInput
	ReplaceLines bool
}

// New cria uma composição validada. As referências a produtos são
// verificadas separadamente por CheckReferences.
func New(tenantID string, in Input) (*Recipe, error) {
	in = in.normalized()
	if err := in.validate(true); err != nil {
		return nil, err
	}

	now := time.Now()
	r := &Recipe{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		ProductID:   in.ProductID,
		Description: in.Description,
		FixedCost:   in.FixedCost,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.Lines = make([]Line, 0, len(in.Lines))
	for _, li := range in.Lines {
		r.Lines = append(r.Lines, r.newLine(li))
	}
	return r, nil
}

// Update aplica o cabeçalho e, quando solicitado, o novo conjunto de linhas.
// Retorna a diferença a ser persistida.
func (r *Recipe) Update(in Input) (Diff, error) {
	in = in.normalized()
	if in.ProductID == "" {
		in.ProductID = r.ProductID
	}
	if err := in.validate(in.ReplaceLines); err != nil {
		return Diff{}, err
	}
	if !in.ReplaceLines {
		for _, l := range r.Lines {
			if l.ComponentID == in.ProductID {
				return Diff{}, apperror.Invalid("produto_acabado", "produto não pode ser componente da própria composição")
			}
		}
	}

	r.ProductID = in.ProductID
	r.Description = in.Description
	r.FixedCost = in.FixedCost
	r.UpdatedAt = time.Now()

	if !in.ReplaceLines {
		return Diff{}, nil
	}

	diff := DiffLines(r.ID, r.Lines, in.Lines)
	r.Lines = diff.Result
	return diff, nil
}

// ComponentIDs retorna os componentes referenciados pelas linhas
func (r *Recipe) ComponentIDs() []string {
	ids := make([]string, 0, len(r.Lines))
	for _, l := range r.Lines {
		ids = append(ids, l.ComponentID)
	}
	return ids
}

// UnitCost calcula o custo de uma unidade do produto com os custos atuais
// do catálogo, arredondado a duas casas.
func (r *Recipe) UnitCost(components map[string]*catalog.Item) decimal.Decimal {
	total := r.FixedCost
	for _, l := range r.Lines {
		if item, ok := components[l.ComponentID]; ok {
			total = total.Add(l.Quantity.Mul(item.UnitCost))
		}
	}
	return total.Round(2)
}

func (r *Recipe) newLine(li LineInput) Line {
	return Line{
		ID:          uuid.New().String(),
		RecipeID:    r.ID,
		ComponentID: li.ComponentID,
		Quantity:    li.Quantity,
	}
}

// CheckReferences valida o produto acabado e os componentes contra o
// catálogo da empresa. Itens de outra empresa não aparecem no mapa e são
// tratados como inexistentes.
func CheckReferences(product *catalog.Item, lines []LineInput, components map[string]*catalog.Item) error {
	verr := apperror.NewValidationError()
	switch {
	case product == nil:
		verr.Add("produto_acabado", "produto não encontrado na empresa")
	case !product.Kind.CanOwnRecipe():
		verr.Add("produto_acabado", "matéria-prima não pode ter composição")
	}
	for i, li := range lines {
		if _, ok := components[li.ComponentID]; !ok {
			verr.Add(fmt.Sprintf("itens[%d].componente", i), "componente não encontrado na empresa")
		}
	}
	return verr.OrNil()
}

func (in Input) normalized() Input {
	in.ProductID = strings.TrimSpace(in.ProductID)
	in.Description = strings.TrimSpace(in.Description)
	in.FixedCost = in.FixedCost.Round(FixedCostPlaces)
	lines := make([]LineInput, len(in.Lines))
	for i, li := range in.Lines {
		lines[i] = LineInput{
			ComponentID: strings.TrimSpace(li.ComponentID),
			Quantity:    li.Quantity.Round(QuantityPlaces),
		}
	}
	in.Lines = lines
	return in
}

func (in Input) validate(checkLines bool) error {
	verr := apperror.NewValidationError()
	if in.ProductID == "" {
		verr.Add("produto_acabado", "produto acabado é obrigatório")
	}
	if len(in.Description) > 255 {
		verr.Add("descricao", "descrição deve ter no máximo 255 caracteres")
	}
	if in.FixedCost.IsNegative() {
		verr.Add("custo_adicional_fixo", "custo adicional fixo não pode ser negativo")
	}
	if !checkLines {
		return verr.OrNil()
	}

	seen := make(map[string]int, len(in.Lines))
	for i, li := range in.Lines {
		field := fmt.Sprintf("itens[%d]", i)
		switch {
		case li.ComponentID == "":
			verr.Add(field+".componente", "componente é obrigatório")
		case li.ComponentID == in.ProductID:
			verr.Add(field+".componente", "produto não pode ser componente da própria composição")
		}
		if prev, dup := seen[li.ComponentID]; dup && li.ComponentID != "" {
			verr.Add(field+".componente", fmt.Sprintf("componente repetido (linha %d)", prev))
		} else {
			seen[li.ComponentID] = i
		}
		if !li.Quantity.IsPositive() {
			verr.Add(field+".quantidade", "quantidade deve ser maior que zero")
		}
	}
	return verr.OrNil()
}
