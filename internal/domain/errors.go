package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAnalyticsLevel = errors.New("invalid analytics level")
	ErrMissingField          = errors.New("missing required field")
)

// MissingFieldError indica que uma linha chegou sem um campo obrigatório.
// Invalida o lote inteiro: não existe enriquecimento parcial.
type MissingFieldError struct {
	Row   int    // Posição da linha na tabela de entrada
	Field string // Nome do campo ausente
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: linha %d sem %s", ErrMissingField.Error(), e.Row, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}
