package authenticating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/cashier-flash-report/pkg/apiErrors"
)

var (
	ErrInvalidToken        = errors.New("token inválido")
	ErrExpiredToken        = errors.New("token expirado")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidRole         = errors.New("perfil desconhecido")
)

// AuthError é um erro com o código devolvido pela API
type AuthError struct {
	Err     error
	Code    string
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// CodeFor devolve o código de API de um erro de autenticação
func CodeFor(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.Code != "" {
		return authErr.Code
	}
	if errors.Is(err, ErrExpiredToken) {
		return apiErrors.ErrExpiredToken
	}
	return apiErrors.ErrInvalidToken
}
