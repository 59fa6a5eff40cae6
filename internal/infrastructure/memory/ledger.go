// Package memory implementa el ledger en memoria del proceso.
//
// Un único sync.RWMutex protege todo el estado: las lecturas toman RLock y
// devuelven copias profundas, las escrituras toman Lock. Las secuencias
// verificar-y-escribir (crear si no existe, retirar con saldo) se ejecutan con
// Run, que mantiene el Lock durante todo el callback.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*Ledger)(nil)

// Ledger colección ordenada de cuentas, viva mientras viva el proceso.
type Ledger struct {
	mu    sync.RWMutex
	state *ledgerState
}

// NewLedger construye un ledger vacío.
func NewLedger() *Ledger {
	return &Ledger{state: newLedgerState()}
}

// Run ejecuta fn con el Lock tomado, pasando un repositorio sin bloqueo atado al mismo estado.
// Si fn devuelve error los cambios ya aplicados se mantienen: fn debe validar antes de escribir.
func (l *Ledger) Run(ctx context.Context, fn func(repo repository.CustomerRepository) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("ledger: %w", err)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.state)
}

// Create agrega una cuenta nueva al final del ledger.
func (l *Ledger) Create(ctx context.Context, customer *entity.Customer) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Create(ctx, customer)
}

// GetByCPF busca la primera cuenta con ese CPF.
func (l *Ledger) GetByCPF(ctx context.Context, cpf string) (*entity.Customer, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state.GetByCPF(ctx, cpf)
}

// List devuelve todas las cuentas en orden de creación.
func (l *Ledger) List(ctx context.Context) ([]*entity.Customer, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state.List(ctx)
}

// Update actualiza el nombre del titular.
func (l *Ledger) Update(ctx context.Context, customer *entity.Customer) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Update(ctx, customer)
}

// AppendOperation agrega una operación al final del extracto.
func (l *Ledger) AppendOperation(ctx context.Context, cpf string, op entity.Operation) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.AppendOperation(ctx, cpf, op)
}

// Delete elimina la cuenta con ese ID.
func (l *Ledger) Delete(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Delete(ctx, id)
}

// ledgerState es el estado sin bloqueo; solo se usa con el mutex del Ledger tomado.
type ledgerState struct {
	customers []*entity.Customer
	byCPF     map[string]*entity.Customer
}

func newLedgerState() *ledgerState {
	return &ledgerState{byCPF: make(map[string]*entity.Customer)}
}

func (s *ledgerState) Create(_ context.Context, customer *entity.Customer) error {
	if _, ok := s.byCPF[customer.CPF]; ok {
		return domain.ErrAccountAlreadyExists
	}
	stored := customer.Clone()
	s.customers = append(s.customers, stored)
	s.byCPF[stored.CPF] = stored
	return nil
}

func (s *ledgerState) GetByCPF(_ context.Context, cpf string) (*entity.Customer, error) {
	c, ok := s.byCPF[cpf]
	if !ok {
		return nil, nil
	}
	return c.Clone(), nil
}

func (s *ledgerState) List(_ context.Context) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		out = append(out, c.Clone())
	}
	return out, nil
}

func (s *ledgerState) Update(_ context.Context, customer *entity.Customer) error {
	idx := s.indexOf(customer.ID)
	if idx < 0 {
		return domain.ErrAccountNotFound
	}
	s.customers[idx].Name = customer.Name
	return nil
}

func (s *ledgerState) AppendOperation(_ context.Context, cpf string, op entity.Operation) error {
	c, ok := s.byCPF[cpf]
	if !ok {
		return domain.ErrAccountNotFound
	}
	c.Statement = append(c.Statement, op)
	return nil
}

func (s *ledgerState) Delete(_ context.Context, id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.ErrAccountNotFound
	}
	delete(s.byCPF, s.customers[idx].CPF)
	s.customers = append(s.customers[:idx], s.customers[idx+1:]...)
	return nil
}

func (s *ledgerState) indexOf(id string) int {
	for i, c := range s.customers {
		if c.ID == id {
			return i
		}
	}
	return -1
}
