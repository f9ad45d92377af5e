// Package catalog contém o cadastro de produtos, matérias-primas, serviços e
// sub-produtos de cada empresa.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/shopspring/decimal"
)

var (
	ErrItemNotFound   = fmt.Errorf("produto %w", apperror.ErrNotFound)
	ErrItemReferenced = fmt.Errorf("produto utilizado em composições ou orçamentos: %w", apperror.ErrReferenced)
)

// CostPlaces é a precisão do preço de custo
const CostPlaces = 4

// Kind representa o tipo do item
type Kind string

const (
	KindRawMaterial Kind = "MP" // Matéria-prima
	KindFinished    Kind = "PA" // Produto acabado
	KindService     Kind = "SV" // Serviço
	KindSubProduct  Kind = "SB" // Sub-produto/intermediário
)

// Valid verifica se o tipo é conhecido
func (k Kind) Valid() bool {
	switch k {
	case KindRawMaterial, KindFinished, KindService, KindSubProduct:
		return true
	}
	return false
}

// CanOwnRecipe informa se itens deste tipo podem ter composição
func (k Kind) CanOwnRecipe() bool {
	return k.Valid() && k != KindRawMaterial
}

// Item representa um produto do catálogo da empresa
type Item struct {
	ID        string
	TenantID  string
	Name      string
	SKU       string
	Kind      Kind
	Unit      string
	UnitCost  decimal.Decimal
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemInput contém os campos editáveis de um item
type ItemInput struct {
	Name     string
	SKU      string
	Kind     Kind
	Unit     string
	UnitCost decimal.Decimal
	Active   bool
}

// NewItem cria um item validado para a empresa
func NewItem(tenantID string, in ItemInput) (*Item, error) {
	in = in.normalized()
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Item{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      in.Name,
		SKU:       in.SKU,
		Kind:      in.Kind,
		Unit:      in.Unit,
		UnitCost:  in.UnitCost,
		Active:    in.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Apply substitui os campos editáveis do item
func (i *Item) Apply(in ItemInput) error {
	in = in.normalized()
	if err := in.validate(); err != nil {
		return err
	}

	i.Name = in.Name
	i.SKU = in.SKU
	i.Kind = in.Kind
	i.Unit = in.Unit
	i.UnitCost = in.UnitCost
	i.Active = in.Active
	i.UpdatedAt = time.Now()
	return nil
}

// Label retorna o nome exibido em listas e planilhas
func (i *Item) Label() string {
	return fmt.Sprintf("%s (%s)", i.Name, i.Unit)
}

func (in ItemInput) normalized() ItemInput {
	in.Name = strings.TrimSpace(in.Name)
	in.SKU = strings.TrimSpace(in.SKU)
	in.Kind = Kind(strings.ToUpper(strings.TrimSpace(string(in.Kind))))
	in.Unit = strings.TrimSpace(in.Unit)
	in.UnitCost = in.UnitCost.Round(CostPlaces)
	return in
}

func (in ItemInput) validate() error {
	verr := apperror.NewValidationError()
	switch {
	case in.Name == "":
		verr.Add("nome", "nome é obrigatório")
	case len(in.Name) > 255:
		verr.Add("nome", "nome deve ter no máximo 255 caracteres")
	}
	if len(in.SKU) > 100 {
		verr.Add("codigo_sku", "SKU deve ter no máximo 100 caracteres")
	}
	if !in.Kind.Valid() {
		verr.Add("tipo", "tipo deve ser MP, PA, SV ou SB")
	}
	switch {
	case in.Unit == "":
		verr.Add("unidade_medida", "unidade de medida é obrigatória")
	case len(in.Unit) > 20:
		verr.Add("unidade_medida", "unidade de medida deve ter no máximo 20 caracteres")
	}
	if in.UnitCost.IsNegative() {
		verr.Add("preco_custo", "preço de custo não pode ser negativo")
	}
	return verr.OrNil()
}
