package quote

import (
	"errors"
	"testing"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
)

func TestNewDefaults(t *testing.T) {
	q, err := New("tenant", NewInput{ProductID: "pa"}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Status != StatusDraft {
		t.Fatalf("expected draft, got %s", q.Status)
	}
	assertDecimal(t, "margin", q.Margin, "20")
	assertDecimal(t, "quantity", q.Quantity, "1")
	if len(q.Materials) != 0 {
		t.Fatalf("expected no lines without recipe")
	}
}

func TestApprovedQuoteIsLocked(t *testing.T) {
	q := seededQuote(t, "20")
	approved := StatusApproved
	if err := q.ApplyHeader(HeaderInput{Status: &approved}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := q.AddProcess(ProcessInput{Description: "X", Hours: d("1"), HourlyRate: d("1")}); !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("expected conflict adding line, got %v", err)
	}
	if err := q.ApplyHeader(HeaderInput{Margin: dp("30")}); !errors.Is(err, ErrQuoteApproved) {
		t.Fatalf("expected conflict changing margin, got %v", err)
	}
	if err := q.SetFinalPrice(dp("10")); !errors.Is(err, ErrQuoteApproved) {
		t.Fatalf("expected conflict setting price, got %v", err)
	}

	// Reenviar a mesma margem junto com o status é permitido
	sent := StatusSent
	if err := q.ApplyHeader(HeaderInput{Status: &sent, Margin: dp("20.00")}); err != nil {
		t.Fatalf("unexpected error reopening quote: %v", err)
	}
	if q.Status != StatusSent {
		t.Fatalf("expected sent, got %s", q.Status)
	}
}

func TestLineOperations(t *testing.T) {
	q := seededQuote(t, "20")
	line, err := q.AddFee(FeeInput{Description: "ISS", Value: d("5")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.Kind != FeePercentage || line.Base != BaseCost {
		t.Fatalf("expected percentage on cost defaults, got %s/%s", line.Kind, line.Base)
	}

	if _, err := q.UpdateFee(line.ID, FeeInput{Description: "ISS", Kind: FeeFixed, Value: d("3")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Fees[0].Kind != FeeFixed {
		t.Fatalf("expected updated kind, got %s", q.Fees[0].Kind)
	}
	if err := q.RemoveFee("inexistente"); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := q.RemoveFee(line.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Fees) != 0 {
		t.Fatalf("expected fee removed")
	}

	materialID := q.Materials[0].ID
	if _, err := q.UpdateMaterial(materialID, MaterialInput{ComponentID: "mp1", Description: "Farinha especial", Quantity: d("3"), UnitCost: d("10")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := q.Rollup(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDecimal(t, "materials", q.Totals.Materials, "30")

	if _, err := q.AddFee(FeeInput{Description: "X", Kind: "outro", Value: d("1")}); err == nil {
		t.Fatalf("expected invalid kind to be rejected")
	}
}
