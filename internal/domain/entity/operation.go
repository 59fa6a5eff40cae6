package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de operación del extracto.
const (
	OperationTypeCredit = "credit" // depósito
	OperationTypeDebit  = "debit"  // retiro
)

// Operation es una línea del extracto. Inmutable una vez agregada.
type Operation struct {
	Description string
	Amount      decimal.Decimal
	CreatedAt   time.Time
	Type        string
}
