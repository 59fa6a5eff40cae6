package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrAccountNotFound      = errors.New("cuenta no encontrada")
	ErrAccountAlreadyExists = errors.New("ya existe una cuenta con ese CPF")
	ErrInsufficientFunds    = errors.New("saldo insuficiente")
	ErrInvalidInput         = errors.New("entrada inválida")
)
