package dto

import "github.com/jhoicas/ledger-api/internal/domain/entity"

// CreateAccountRequest body para POST /account.
type CreateAccountRequest struct {
	CPF  string `json:"cpf"`
	Name string `json:"name"`
}

// UpdateAccountRequest body para PUT /account.
type UpdateAccountRequest struct {
	Name string `json:"name"`
}

// CustomerResponse salida de una cuenta con su extracto completo.
type CustomerResponse struct {
	ID        string              `json:"id"`
	CPF       string              `json:"cpf"`
	Name      string              `json:"name"`
	Statement []OperationResponse `json:"statement"`
}

// ToCustomerResponse mapea la entidad a su representación HTTP.
func ToCustomerResponse(c *entity.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:        c.ID,
		CPF:       c.CPF,
		Name:      c.Name,
		Statement: ToOperationResponses(c.Statement),
	}
}

// ToCustomerResponses mapea una lista; nunca devuelve nil.
func ToCustomerResponses(list []*entity.Customer) []*CustomerResponse {
	out := make([]*CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, ToCustomerResponse(c))
	}
	return out
}
