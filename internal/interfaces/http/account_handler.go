package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ledger-api/internal/application/account"
	"github.com/jhoicas/ledger-api/internal/application/dto"
)

// AccountHandler maneja las peticiones HTTP de cuentas.
type AccountHandler struct {
	uc *account.AccountUseCase
}

// NewAccountHandler construye el handler.
func NewAccountHandler(uc *account.AccountUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// Get godoc
// @Summary      Listar cuentas o buscar por CPF
// @Description  Sin header cpf lista todas las cuentas. Con header cpf devuelve una lista con la cuenta encontrada.
// @Tags         account
// @Produce      json
// @Param        cpf  header  string  false  "CPF del titular"
// @Success      200  {array}   dto.CustomerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /account [get]
func (h *AccountHandler) Get(c *fiber.Ctx) error {
	cpf := c.Get(HeaderCPF)
	if cpf == "" {
		list, err := h.uc.List(c.Context())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(list)
	}
	list, err := h.uc.GetByCPF(c.Context(), cpf)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Abrir cuenta
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAccountRequest  true  "cpf y name"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /account [post]
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Cambiar el nombre del titular
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        cpf   header  string                    true  "CPF del titular"
// @Param        body  body    dto.UpdateAccountRequest  true  "name"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /account [put]
func (h *AccountHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Rename(c.Context(), GetCPF(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar cuenta
// @Tags         account
// @Produce      json
// @Param        cpf  header  string  true  "CPF del titular"
// @Success      200  {array}   dto.CustomerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /account [delete]
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	remaining, err := h.uc.Delete(c.Context(), GetCPF(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(remaining)
}
