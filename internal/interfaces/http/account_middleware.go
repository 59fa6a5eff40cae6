package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ledger-api/internal/application/dto"
	"github.com/jhoicas/ledger-api/internal/domain"
)

// HeaderCPF header que identifica la cuenta en las rutas protegidas.
const HeaderCPF = "cpf"

// LocalCPF key en c.Locals con el CPF ya resuelto.
const LocalCPF = "cpf"

// accountResolver es el contrato mínimo que necesita el middleware.
// Lo implementa *account.AccountUseCase.
type accountResolver interface {
	Resolve(ctx context.Context, cpf string) (*dto.CustomerResponse, error)
}

// VerifyAccountCPF exige que el header cpf corresponda a una cuenta existente.
// Responde 400 {"error":"Customer not found"} si no existe; si existe guarda el CPF en c.Locals.
func VerifyAccountCPF(resolver accountResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cpf := c.Get(HeaderCPF)
		if _, err := resolver.Resolve(c.Context(), cpf); err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: MsgCustomerNotFound})
			}
			return writeError(c, err)
		}
		c.Locals(LocalCPF, cpf)
		return c.Next()
	}
}

// GetCPF devuelve el CPF resuelto por VerifyAccountCPF.
func GetCPF(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalCPF).(string)
	return s
}
