package account_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ledger-api/internal/application/account"
	"github.com/jhoicas/ledger-api/internal/application/dto"
	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/infrastructure/memory"
)

func newUseCase() (*account.AccountUseCase, *memory.Ledger) {
	ledger := memory.NewLedger()
	return account.NewAccountUseCase(ledger, ledger), ledger
}

func TestCreate_AsignaUUIDYExtractoVacio(t *testing.T) {
	uc, _ := newUseCase()

	out, err := uc.Create(context.Background(), dto.CreateAccountRequest{CPF: "111", Name: "Alice"})
	require.NoError(t, err)

	assert.Equal(t, "111", out.CPF)
	assert.Equal(t, "Alice", out.Name)
	assert.NotNil(t, out.Statement)
	assert.Empty(t, out.Statement)
	_, err = uuid.Parse(out.ID)
	assert.NoError(t, err, "el id debe ser un UUID")
}

func TestCreate_IdsDistintos(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	a, err := uc.Create(ctx, dto.CreateAccountRequest{CPF: "111", Name: "Alice"})
	require.NoError(t, err)
	b, err := uc.Create(ctx, dto.CreateAccountRequest{CPF: "222", Name: "Bob"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestCreate_CPFDuplicado(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateAccountRequest{CPF: "111", Name: "Alice"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateAccountRequest{CPF: "111", Name: "Impostor"})
	assert.ErrorIs(t, err, domain.ErrAccountAlreadyExists)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1, "el ledger no debe crecer")
	assert.Equal(t, "Alice", list[0].Name)
}

func TestList_VacioDevuelveSliceVacio(t *testing.T) {
	uc, _ := newUseCase()
	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestResolve_Inexistente(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Resolve(context.Background(), "999")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestGetByCPF_DevuelveListaDeUno(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.CreateAccountRequest{CPF: "111", Name: "Alice"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateAccountRequest{CPF: "222", Name: "Bob"})
	require.NoError(t, err)

	got, err := uc.GetByCPF(ctx, "222")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Bob", got[0].Name)

	_, err = uc.GetByCPF(ctx, "999")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

// Renombrar cambia solo el nombre: CPF, id y extracto quedan iguales.
func TestRename_SoloCambiaNombre(t *testing.T) {
	uc, ledger := newUseCase()
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.CreateAccountRequest{CPF: "111", Name: "Alice"})
	require.NoError(t, err)
	require.NoError(t, ledger.AppendOperation(ctx, "111", entity.Operation{
		Amount: decimal.NewFromInt(100), Type: entity.OperationTypeCredit,
	}))

	out, err := uc.Rename(ctx, "111", dto.UpdateAccountRequest{Name: "Alicia"})
	require.NoError(t, err)

	assert.Equal(t, "Alicia", out.Name)
	assert.Equal(t, "111", out.CPF)
	assert.Equal(t, created.ID, out.ID)
	require.Len(t, out.Statement, 1)
	assert.Equal(t, "100", out.Statement[0].Amount.String())

	_, err = uc.Rename(ctx, "999", dto.UpdateAccountRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

// Borrar elimina exactamente la cuenta resuelta, aunque no sea la primera ni la segunda.
func TestDelete_EliminaLaCuentaResuelta(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()
	for _, cpf := range []string{"111", "222", "333"} {
		_, err := uc.Create(ctx, dto.CreateAccountRequest{CPF: cpf, Name: cpf})
		require.NoError(t, err)
	}

	remaining, err := uc.Delete(ctx, "333")
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, "111", remaining[0].CPF)
	assert.Equal(t, "222", remaining[1].CPF)

	_, err = uc.Resolve(ctx, "333")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestDelete_Inexistente(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.CreateAccountRequest{CPF: "111", Name: "Alice"})
	require.NoError(t, err)

	_, err = uc.Delete(ctx, "999")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
