package statement

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/repository"
)

// TxRunner ejecuta fn de forma atómica respecto del resto de escrituras del ledger.
// El retiro lo necesita para calcular el saldo y agregar el débito sin carreras.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.CustomerRepository) error) error
}

// StatementPDFGenerator genera la representación en PDF del extracto.
type StatementPDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, customer *entity.Customer, balance decimal.Decimal) ([]byte, error)
}
