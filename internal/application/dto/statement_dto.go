package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// DepositRequest body para POST /deposit.
type DepositRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// WithdrawRequest body para POST /withdraw.
type WithdrawRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// OperationResponse una línea del extracto.
type OperationResponse struct {
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
	Type        string          `json:"type"`
}

// ToOperationResponses mapea el extracto; nunca devuelve nil para que el JSON sea [].
func ToOperationResponses(ops []entity.Operation) []OperationResponse {
	out := make([]OperationResponse, 0, len(ops))
	for _, op := range ops {
		out = append(out, OperationResponse{
			Description: op.Description,
			Amount:      op.Amount,
			CreatedAt:   op.CreatedAt,
			Type:        op.Type,
		})
	}
	return out
}
