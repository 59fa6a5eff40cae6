package statement

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/application/dto"
	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/repository"
	domstatement "github.com/jhoicas/ledger-api/internal/domain/statement"
)

// StatementUseCase depósitos, retiros y consultas del extracto de una cuenta.
type StatementUseCase struct {
	repo     repository.CustomerRepository
	txRunner TxRunner
	loc      *time.Location
	now      func() time.Time
}

// NewStatementUseCase construye el caso de uso. loc es la zona en la que se comparan fechas calendario.
func NewStatementUseCase(repo repository.CustomerRepository, txRunner TxRunner, loc *time.Location) *StatementUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &StatementUseCase{repo: repo, txRunner: txRunner, loc: loc, now: time.Now}
}

// GetStatement devuelve el extracto completo, sin filtrar.
func (uc *StatementUseCase) GetStatement(ctx context.Context, cpf string) ([]dto.OperationResponse, error) {
	customer, err := uc.resolve(ctx, uc.repo, cpf)
	if err != nil {
		return nil, err
	}
	return dto.ToOperationResponses(customer.Statement), nil
}

// Deposit agrega un crédito con la hora actual. No valida el monto.
func (uc *StatementUseCase) Deposit(ctx context.Context, cpf string, in dto.DepositRequest) error {
	op := entity.Operation{
		Description: in.Description,
		Amount:      in.Amount,
		CreatedAt:   uc.now(),
		Type:        entity.OperationTypeCredit,
	}
	return uc.repo.AppendOperation(ctx, cpf, op)
}

// Withdraw agrega un débito si el saldo alcanza. Devuelve ErrInsufficientFunds si saldo < monto,
// en cuyo caso el extracto no cambia.
func (uc *StatementUseCase) Withdraw(ctx context.Context, cpf string, in dto.WithdrawRequest) error {
	return uc.txRunner.Run(ctx, func(repo repository.CustomerRepository) error {
		customer, err := uc.resolve(ctx, repo, cpf)
		if err != nil {
			return err
		}
		if domstatement.Balance(customer.Statement).LessThan(in.Amount) {
			return domain.ErrInsufficientFunds
		}
		return repo.AppendOperation(ctx, cpf, entity.Operation{
			Amount:    in.Amount,
			CreatedAt: uc.now(),
			Type:      entity.OperationTypeDebit,
		})
	})
}

// GetStatementByDate devuelve las operaciones del día date (YYYY-MM-DD).
// Devuelve ErrInvalidInput si date no tiene ese formato.
func (uc *StatementUseCase) GetStatementByDate(ctx context.Context, cpf, date string) ([]dto.OperationResponse, error) {
	customer, err := uc.resolve(ctx, uc.repo, cpf)
	if err != nil {
		return nil, err
	}
	day, err := domstatement.ParseDate(date, uc.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, date)
	}
	return dto.ToOperationResponses(domstatement.FilterByDate(customer.Statement, day)), nil
}

// GetBalance calcula el saldo actual.
func (uc *StatementUseCase) GetBalance(ctx context.Context, cpf string) (decimal.Decimal, error) {
	customer, err := uc.resolve(ctx, uc.repo, cpf)
	if err != nil {
		return decimal.Zero, err
	}
	return domstatement.Balance(customer.Statement), nil
}

func (uc *StatementUseCase) resolve(ctx context.Context, repo repository.CustomerRepository, cpf string) (*entity.Customer, error) {
	customer, err := repo.GetByCPF(ctx, cpf)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrAccountNotFound
	}
	return customer, nil
}
