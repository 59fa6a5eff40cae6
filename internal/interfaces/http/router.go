package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ledger-api/internal/application/account"
	"github.com/jhoicas/ledger-api/internal/application/statement"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AccountUC   *account.AccountUseCase
	StatementUC *statement.StatementUseCase
	PDFUC       *statement.PDFUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	accountHandler := NewAccountHandler(deps.AccountUC)
	statementHandler := NewStatementHandler(deps.StatementUC, deps.PDFUC)

	// Públicas
	app.Get("/account", accountHandler.Get) // con header cpf se comporta como búsqueda
	app.Post("/account", accountHandler.Create)

	// Requieren header cpf de una cuenta existente
	verify := VerifyAccountCPF(deps.AccountUC)
	app.Put("/account", verify, accountHandler.Update)
	app.Delete("/account", verify, accountHandler.Delete)

	app.Get("/statement", verify, statementHandler.GetStatement)
	app.Get("/statement/date", verify, statementHandler.GetStatementByDate)
	app.Get("/statement/pdf", verify, statementHandler.DownloadPDF)
	app.Post("/deposit", verify, statementHandler.Deposit)
	app.Post("/withdraw", verify, statementHandler.Withdraw)
	app.Get("/balance", verify, statementHandler.GetBalance)
}
