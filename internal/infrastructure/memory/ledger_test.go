package memory_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/repository"
	"github.com/jhoicas/ledger-api/internal/infrastructure/memory"
)

func newCustomer(id, cpf, name string) *entity.Customer {
	return &entity.Customer{ID: id, CPF: cpf, Name: name, Statement: []entity.Operation{}}
}

func TestLedger_CreateYGetByCPF(t *testing.T) {
	ctx := context.Background()
	l := memory.NewLedger()

	require.NoError(t, l.Create(ctx, newCustomer("id-1", "111", "Alice")))

	got, err := l.GetByCPF(ctx, "111")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, "Alice", got.Name)

	missing, err := l.GetByCPF(ctx, "999")
	require.NoError(t, err)
	assert.Nil(t, missing, "un CPF inexistente devuelve (nil, nil)")
}

func TestLedger_CreateDuplicadoNoCambiaTamano(t *testing.T) {
	ctx := context.Background()
	l := memory.NewLedger()
	require.NoError(t, l.Create(ctx, newCustomer("id-1", "111", "Alice")))

	err := l.Create(ctx, newCustomer("id-2", "111", "Otra"))
	assert.ErrorIs(t, err, domain.ErrAccountAlreadyExists)

	list, err := l.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestLedger_ListConservaOrden(t *testing.T) {
	ctx := context.Background()
	l := memory.NewLedger()
	for i, cpf := range []string{"333", "111", "222"} {
		require.NoError(t, l.Create(ctx, newCustomer(fmt.Sprintf("id-%d", i), cpf, cpf)))
	}

	list, err := l.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "333", list[0].CPF)
	assert.Equal(t, "111", list[1].CPF)
	assert.Equal(t, "222", list[2].CPF)
}

// Las lecturas devuelven copias: mutarlas no altera el ledger.
func TestLedger_LecturasSonCopias(t *testing.T) {
	ctx := context.Background()
	l := memory.NewLedger()
	require.NoError(t, l.Create(ctx, newCustomer("id-1", "111", "Alice")))

	got, err := l.GetByCPF(ctx, "111")
	require.NoError(t, err)
	got.Name = "Mallory"
	got.Statement = append(got.Statement, entity.Operation{Amount: decimal.NewFromInt(1)})

	again, err := l.GetByCPF(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, "Alice", again.Name)
	assert.Empty(t, again.Statement)
}

func TestLedger_UpdateSoloCambiaNombre(t *testing.T) {
	ctx := context.Background()
	l := memory.NewLedger()
	require.NoError(t, l.Create(ctx, newCustomer("id-1", "111", "Alice")))
	require.NoError(t, l.AppendOperation(ctx, "111", entity.Operation{
		Amount: decimal.NewFromInt(10), Type: entity.OperationTypeCredit, CreatedAt: time.Now(),
	}))

	require.NoError(t, l.Update(ctx, &entity.Customer{ID: "id-1", CPF: "otro", Name: "Alicia"}))

	got, err := l.GetByCPF(ctx, "111")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Alicia", got.Name)
	assert.Len(t, got.Statement, 1)

	assert.ErrorIs(t, l.Update(ctx, &entity.Customer{ID: "nope"}), domain.ErrAccountNotFound)
}

func TestLedger_AppendOperationCuentaInexistente(t *testing.T) {
	err := memory.NewLedger().AppendOperation(context.Background(), "999", entity.Operation{})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestLedger_DeleteEliminaSoloLaCuentaIndicada(t *testing.T) {
	ctx := context.Background()
	l := memory.NewLedger()
	require.NoError(t, l.Create(ctx, newCustomer("id-1", "111", "Alice")))
	require.NoError(t, l.Create(ctx, newCustomer("id-2", "222", "Bob")))
	require.NoError(t, l.Create(ctx, newCustomer("id-3", "333", "Carol")))

	require.NoError(t, l.Delete(ctx, "id-1"))

	list, err := l.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "222", list[0].CPF)
	assert.Equal(t, "333", list[1].CPF)

	gone, err := l.GetByCPF(ctx, "111")
	require.NoError(t, err)
	assert.Nil(t, gone)

	// el CPF queda libre para una cuenta nueva
	require.NoError(t, l.Create(ctx, newCustomer("id-4", "111", "Alice")))

	assert.ErrorIs(t, l.Delete(ctx, "id-1"), domain.ErrAccountNotFound)
}

func TestLedger_RunPropagaErrorDelCallback(t *testing.T) {
	boom := errors.New("boom")
	err := memory.NewLedger().Run(context.Background(), func(repository.CustomerRepository) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestLedger_RunConContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := memory.NewLedger().Run(ctx, func(repository.CustomerRepository) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

// Escrituras concurrentes dentro de Run no pierden operaciones (ejecutar con -race).
func TestLedger_RunSerializaEscrituras(t *testing.T) {
	ctx := context.Background()
	l := memory.NewLedger()
	require.NoError(t, l.Create(ctx, newCustomer("id-1", "111", "Alice")))

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = l.Run(ctx, func(repo repository.CustomerRepository) error {
				return repo.AppendOperation(ctx, "111", entity.Operation{
					Amount: decimal.NewFromInt(1), Type: entity.OperationTypeCredit, CreatedAt: time.Now(),
				})
			})
		}()
	}
	wg.Wait()

	got, err := l.GetByCPF(ctx, "111")
	require.NoError(t, err)
	assert.Len(t, got.Statement, workers)
}
