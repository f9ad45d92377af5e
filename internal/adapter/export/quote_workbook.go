// Package export gera a planilha do orçamento com as abas de composição,
// processos, despesas e o bloco de totais.
package export

import (
	"bytes"
	"fmt"

	"github.com/hugohenrick/precificacao-api/internal/domain/catalog"
	"github.com/hugohenrick/precificacao-api/internal/domain/quote"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary   = "Resumo"
	SheetMaterials = "Materiais"
	SheetProcesses = "Processos"
	SheetFees      = "Despesas e Impostos"
)

var statusLabels = map[quote.Status]string{
	quote.StatusDraft:    "Rascunho",
	quote.StatusSent:     "Enviado",
	quote.StatusApproved: "Aprovado",
	quote.StatusRejected: "Recusado",
}

// QuoteWorkbook gera o arquivo XLSX de um orçamento
type QuoteWorkbook struct{}

// NewQuoteWorkbook cria uma nova instância de QuoteWorkbook
func NewQuoteWorkbook() *QuoteWorkbook {
	return &QuoteWorkbook{}
}

type sheetWriter struct {
	f           *excelize.File
	headerStyle int
	totalStyle  int
	moneyStyle  int
}

// Quote gera a planilha do orçamento. O produto pode ser nil quando o
// produto base não está mais disponível.
func (w *QuoteWorkbook) Quote(q *quote.Quote, product *catalog.Item) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return nil, fmt.Errorf("renomear aba: %w", err)
	}
	for _, name := range []string{SheetMaterials, SheetProcesses, SheetFees} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("criar aba %s: %w", name, err)
		}
	}

	sw, err := newSheetWriter(f)
	if err != nil {
		return nil, err
	}
	if err := sw.summary(q, product); err != nil {
		return nil, err
	}
	if err := sw.materials(q); err != nil {
		return nil, err
	}
	if err := sw.processes(q); err != nil {
		return nil, err
	}
	if err := sw.fees(q); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("gravar planilha: %w", err)
	}
	return buf.Bytes(), nil
}

func newSheetWriter(f *excelize.File) (*sheetWriter, error) {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("criar estilo do cabeçalho: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		NumFmt: 4, // #,##0.00
	})
	if err != nil {
		return nil, fmt.Errorf("criar estilo de totais: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4, Border: thinBorders()})
	if err != nil {
		return nil, fmt.Errorf("criar estilo monetário: %w", err)
	}
	return &sheetWriter{f: f, headerStyle: headerStyle, totalStyle: totalStyle, moneyStyle: moneyStyle}, nil
}

func (sw *sheetWriter) summary(q *quote.Quote, product *catalog.Item) error {
	productName := q.ProductID
	if product != nil {
		productName = product.Name
	}
	status := statusLabels[q.Status]
	if status == "" {
		status = string(q.Status)
	}

	header := [][2]interface{}{
		{"Orçamento", sanitizeCell(q.Description)},
		{"Produto", sanitizeCell(productName)},
		{"Quantidade", number(q.Quantity)},
		{"Situação", status},
		{"Margem (%)", number(q.Margin)},
		{"Data", q.CreatedAt.Format("02/01/2006")},
	}
	totals := [][2]interface{}{
		{"Materiais", number(q.Totals.Materials)},
		{"Processos", number(q.Totals.Processes)},
		{"Custo adicional fixo", number(q.FixedCost)},
		{"Despesas e impostos", number(q.Totals.Fees)},
		{"Custo de produção", number(q.Totals.ProductionCost)},
		{"Preço calculado", number(q.Totals.ComputedPrice)},
		{"Preço final", number(q.Totals.FinalPrice)},
	}

	row := 1
	for _, kv := range header {
		if err := sw.f.SetSheetRow(SheetSummary, cell("A", row), &[]interface{}{kv[0], kv[1]}); err != nil {
			return fmt.Errorf("preencher resumo: %w", err)
		}
		row++
	}
	row++
	first := row
	for _, kv := range totals {
		if err := sw.f.SetSheetRow(SheetSummary, cell("A", row), &[]interface{}{kv[0], kv[1]}); err != nil {
			return fmt.Errorf("preencher totais: %w", err)
		}
		row++
	}
	if err := sw.f.SetCellStyle(SheetSummary, cell("B", first), cell("B", row-1), sw.totalStyle); err != nil {
		return err
	}
	return sw.f.SetColWidth(SheetSummary, "A", "B", 24)
}

func (sw *sheetWriter) materials(q *quote.Quote) error {
	rows := make([][]interface{}, 0, len(q.Materials))
	for _, l := range q.Materials {
		rows = append(rows, []interface{}{sanitizeCell(l.Description), number(l.Quantity), number(l.UnitCost), number(l.Total)})
	}
	return sw.table(SheetMaterials, []string{"Descrição", "Quantidade", "Custo unitário", "Total"}, rows, q.Totals.Materials)
}

func (sw *sheetWriter) processes(q *quote.Quote) error {
	rows := make([][]interface{}, 0, len(q.Processes))
	for _, l := range q.Processes {
		rows = append(rows, []interface{}{sanitizeCell(l.Description), number(l.Hours), number(l.HourlyRate), number(l.Total)})
	}
	return sw.table(SheetProcesses, []string{"Descrição", "Horas", "Valor hora", "Total"}, rows, q.Totals.Processes)
}

func (sw *sheetWriter) fees(q *quote.Quote) error {
	rows := make([][]interface{}, 0, len(q.Fees))
	for _, l := range q.Fees {
		base := ""
		if l.Kind == quote.FeePercentage {
			base = string(l.Base)
		}
		rows = append(rows, []interface{}{sanitizeCell(l.Description), string(l.Kind), base, number(l.Value), number(l.Total)})
	}
	return sw.table(SheetFees, []string{"Descrição", "Tipo", "Base", "Valor", "Total"}, rows, q.Totals.Fees)
}

// table escreve o cabeçalho, as linhas e a linha de total na última coluna
func (sw *sheetWriter) table(sheet string, headers []string, rows [][]interface{}, total decimal.Decimal) error {
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}

	hdr := make([]interface{}, len(headers))
	for i, h := range headers {
		hdr[i] = h
	}
	if err := sw.f.SetSheetRow(sheet, "A1", &hdr); err != nil {
		return fmt.Errorf("preencher cabeçalho de %s: %w", sheet, err)
	}
	if err := sw.f.SetCellStyle(sheet, "A1", cell(lastCol, 1), sw.headerStyle); err != nil {
		return err
	}

	row := 2
	for _, r := range rows {
		r := r
		if err := sw.f.SetSheetRow(sheet, cell("A", row), &r); err != nil {
			return fmt.Errorf("preencher %s: %w", sheet, err)
		}
		if err := sw.f.SetCellStyle(sheet, cell(lastCol, row), cell(lastCol, row), sw.moneyStyle); err != nil {
			return err
		}
		row++
	}

	if err := sw.f.SetCellValue(sheet, cell("A", row), "Total"); err != nil {
		return err
	}
	if err := sw.f.SetCellValue(sheet, cell(lastCol, row), number(total)); err != nil {
		return err
	}
	if err := sw.f.SetCellStyle(sheet, cell("A", row), cell(lastCol, row), sw.totalStyle); err != nil {
		return err
	}
	if err := sw.f.SetColWidth(sheet, "A", "A", 40); err != nil {
		return err
	}
	return sw.f.SetColWidth(sheet, "B", lastCol, 16)
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func number(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// sanitizeCell impede que textos iniciados por caracteres de fórmula sejam
// interpretados pelo Excel
func sanitizeCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
