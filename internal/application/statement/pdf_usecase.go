package statement

import (
	"context"
	"fmt"

	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/repository"
	domstatement "github.com/jhoicas/ledger-api/internal/domain/statement"
)

// PDFUseCase genera el extracto de una cuenta en PDF.
type PDFUseCase struct {
	repo      repository.CustomerRepository
	generator StatementPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(repo repository.CustomerRepository, generator StatementPDFGenerator) *PDFUseCase {
	return &PDFUseCase{repo: repo, generator: generator}
}

// ExportStatementPDF devuelve (pdfBytes, filename, nil) o ErrAccountNotFound si el CPF no existe.
func (uc *PDFUseCase) ExportStatementPDF(ctx context.Context, cpf string) (pdfBytes []byte, filename string, err error) {
	customer, err := uc.repo.GetByCPF(ctx, cpf)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cuenta: %w", err)
	}
	if customer == nil {
		return nil, "", domain.ErrAccountNotFound
	}

	pdfBytes, err = uc.generator.GenerateStatementPDF(ctx, customer, domstatement.Balance(customer.Statement))
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("extrato_%s.pdf", customer.CPF), nil
}
