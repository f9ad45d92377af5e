package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus representa a situação do pagamento
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentSucceeded  PaymentStatus = "succeeded"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
)

// Payment é um registro do histórico de pagamentos. Os registros são
// gravados pela integração com o gateway; a API apenas os consulta.
type Payment struct {
	ID               string
	UserID           string
	SubscriptionID   string
	Amount           decimal.Decimal
	Currency         string
	Status           PaymentStatus
	Gateway          string
	GatewayPaymentID string
	PaymentMethod    string
	PaidAt           *time.Time
	FailedAt         *time.Time
	FailureMessage   string
	CreatedAt        time.Time
}
