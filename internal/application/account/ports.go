package account

import (
	"context"

	"github.com/jhoicas/ledger-api/internal/domain/repository"
)

// TxRunner ejecuta fn de forma atómica respecto del resto de escrituras del ledger.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.CustomerRepository) error) error
}
