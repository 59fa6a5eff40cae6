package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/ledger-api/internal/application/dto"
	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/repository"
)

// AccountUseCase casos de uso CRUD para cuentas.
type AccountUseCase struct {
	repo     repository.CustomerRepository
	txRunner TxRunner
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(repo repository.CustomerRepository, txRunner TxRunner) *AccountUseCase {
	return &AccountUseCase{repo: repo, txRunner: txRunner}
}

// List devuelve todas las cuentas tal cual, sin filtros.
func (uc *AccountUseCase) List(ctx context.Context) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToCustomerResponses(list), nil
}

// Create abre una cuenta con extracto vacío. Devuelve ErrAccountAlreadyExists si el CPF ya está registrado.
func (uc *AccountUseCase) Create(ctx context.Context, in dto.CreateAccountRequest) (*dto.CustomerResponse, error) {
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		CPF:       in.CPF,
		Name:      in.Name,
		Statement: []entity.Operation{},
	}
	err := uc.txRunner.Run(ctx, func(repo repository.CustomerRepository) error {
		existing, err := repo.GetByCPF(ctx, in.CPF)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrAccountAlreadyExists
		}
		return repo.Create(ctx, customer)
	})
	if err != nil {
		return nil, err
	}
	return dto.ToCustomerResponse(customer), nil
}

// Resolve busca la cuenta por CPF. Devuelve ErrAccountNotFound si no existe.
func (uc *AccountUseCase) Resolve(ctx context.Context, cpf string) (*dto.CustomerResponse, error) {
	customer, err := resolve(ctx, uc.repo, cpf)
	if err != nil {
		return nil, err
	}
	return dto.ToCustomerResponse(customer), nil
}

// GetByCPF devuelve las cuentas con ese CPF como lista (a lo sumo una).
func (uc *AccountUseCase) GetByCPF(ctx context.Context, cpf string) ([]*dto.CustomerResponse, error) {
	customer, err := resolve(ctx, uc.repo, cpf)
	if err != nil {
		return nil, err
	}
	return dto.ToCustomerResponses([]*entity.Customer{customer}), nil
}

// Rename cambia solo el nombre del titular y devuelve la cuenta actualizada.
func (uc *AccountUseCase) Rename(ctx context.Context, cpf string, in dto.UpdateAccountRequest) (*dto.CustomerResponse, error) {
	var updated *entity.Customer
	err := uc.txRunner.Run(ctx, func(repo repository.CustomerRepository) error {
		customer, err := resolve(ctx, repo, cpf)
		if err != nil {
			return err
		}
		customer.Name = in.Name
		if err := repo.Update(ctx, customer); err != nil {
			return err
		}
		updated = customer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToCustomerResponse(updated), nil
}

// Delete elimina la cuenta resuelta y devuelve las cuentas restantes.
func (uc *AccountUseCase) Delete(ctx context.Context, cpf string) ([]*dto.CustomerResponse, error) {
	var remaining []*entity.Customer
	err := uc.txRunner.Run(ctx, func(repo repository.CustomerRepository) error {
		customer, err := resolve(ctx, repo, cpf)
		if err != nil {
			return err
		}
		if err := repo.Delete(ctx, customer.ID); err != nil {
			return err
		}
		remaining, err = repo.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto.ToCustomerResponses(remaining), nil
}

func resolve(ctx context.Context, repo repository.CustomerRepository, cpf string) (*entity.Customer, error) {
	customer, err := repo.GetByCPF(ctx, cpf)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrAccountNotFound
	}
	return customer, nil
}
