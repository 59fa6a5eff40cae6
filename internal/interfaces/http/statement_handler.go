package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ledger-api/internal/application/dto"
	"github.com/jhoicas/ledger-api/internal/application/statement"
	"github.com/jhoicas/ledger-api/internal/domain"
)

// StatementHandler maneja depósitos, retiros y consultas del extracto.
type StatementHandler struct {
	uc  *statement.StatementUseCase
	pdf *statement.PDFUseCase
}

// NewStatementHandler construye el handler.
func NewStatementHandler(uc *statement.StatementUseCase, pdf *statement.PDFUseCase) *StatementHandler {
	return &StatementHandler{uc: uc, pdf: pdf}
}

// GetStatement godoc
// @Summary      Extracto completo
// @Tags         statement
// @Produce      json
// @Param        cpf  header  string  true  "CPF del titular"
// @Success      200  {array}   dto.OperationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /statement [get]
func (h *StatementHandler) GetStatement(c *fiber.Ctx) error {
	ops, err := h.uc.GetStatement(c.Context(), GetCPF(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(ops)
}

// GetStatementByDate godoc
// @Summary      Extracto de un día
// @Tags         statement
// @Produce      json
// @Param        cpf   header  string  true  "CPF del titular"
// @Param        date  query   string  true  "Fecha YYYY-MM-DD"
// @Success      200   {array}   dto.OperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /statement/date [get]
func (h *StatementHandler) GetStatementByDate(c *fiber.Ctx) error {
	ops, err := h.uc.GetStatementByDate(c.Context(), GetCPF(c), c.Query("date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: MsgInvalidDate})
		}
		return writeError(c, err)
	}
	return c.JSON(ops)
}

// Deposit godoc
// @Summary      Depositar
// @Tags         statement
// @Accept       json
// @Param        cpf   header  string              true  "CPF del titular"
// @Param        body  body    dto.DepositRequest  true  "description, amount"
// @Success      201
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /deposit [post]
func (h *StatementHandler) Deposit(c *fiber.Ctx) error {
	var in dto.DepositRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Deposit(c.Context(), GetCPF(c), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).Send(nil)
}

// Withdraw godoc
// @Summary      Retirar
// @Tags         statement
// @Accept       json
// @Param        cpf   header  string               true  "CPF del titular"
// @Param        body  body    dto.WithdrawRequest  true  "amount"
// @Success      201
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /withdraw [post]
func (h *StatementHandler) Withdraw(c *fiber.Ctx) error {
	var in dto.WithdrawRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Withdraw(c.Context(), GetCPF(c), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).Send(nil)
}

// GetBalance godoc
// @Summary      Saldo actual
// @Tags         statement
// @Produce      json
// @Param        cpf  header  string  true  "CPF del titular"
// @Success      200  {number}  number
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /balance [get]
func (h *StatementHandler) GetBalance(c *fiber.Ctx) error {
	balance, err := h.uc.GetBalance(c.Context(), GetCPF(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(balance)
}

// DownloadPDF godoc
// @Summary      Extracto en PDF
// @Tags         statement
// @Produce      application/pdf
// @Param        cpf  header  string  true  "CPF del titular"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /statement/pdf [get]
func (h *StatementHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.ExportStatementPDF(c.Context(), GetCPF(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
