package repository

import (
	"context"

	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para las cuentas del ledger.
// GetByCPF devuelve (nil, nil) cuando la cuenta no existe.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByCPF(ctx context.Context, cpf string) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
	// Update persiste los campos mutables del titular (nombre); el extracto solo crece vía AppendOperation.
	Update(ctx context.Context, customer *entity.Customer) error
	AppendOperation(ctx context.Context, cpf string, op entity.Operation) error
	Delete(ctx context.Context, id string) error
}
