package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ledger-api/internal/application/dto"
	"github.com/jhoicas/ledger-api/internal/domain"
)

// Mensajes de error expuestos al cliente.
const (
	MsgCustomerNotFound      = "Customer not found"
	MsgCustomerAlreadyExists = "Customer already exists!"
	MsgInsufficientFunds     = "Insufficient funds!"
	MsgInvalidRequest        = "Invalid request"
	MsgInvalidDate           = "Invalid date"
	MsgInternal              = "Internal server error"
)

// LocalError key en c.Locals con el error interno, para que RequestLogger lo registre.
const LocalError = "handler_error"

// writeError traduce errores de dominio a HTTP. Los errores de negocio son 400; el resto 500.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: MsgCustomerNotFound})
	case errors.Is(err, domain.ErrAccountAlreadyExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: MsgCustomerAlreadyExists})
	case errors.Is(err, domain.ErrInsufficientFunds):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: MsgInsufficientFunds})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: MsgInvalidRequest})
	default:
		c.Locals(LocalError, err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: MsgInternal})
	}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: MsgInvalidRequest})
}
