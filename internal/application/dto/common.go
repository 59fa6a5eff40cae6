package dto

import "github.com/shopspring/decimal"

func init() {
	// Los montos viajan como números JSON (100.5) y no como strings ("100.5").
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Error string `json:"error"`
}
