package authenticating

import (
	"errors"
	"fmt"
)

// Tipos de erros de autenticação personalizados
var (
	// Erros da callback OAuth
	ErrProviderError = errors.New("provedor OAuth retornou erro")
	ErrMissingCode   = errors.New("código de autorização ausente")
	ErrStateMismatch = errors.New("state do OAuth não confere")
	ErrTokenExchange = errors.New("falha na troca do código por token")

	// Erros de sessão
	ErrNotAuthenticated = errors.New("sessão sem login Google")
	ErrSessionStore     = errors.New("erro ao persistir sessão")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError cria um novo erro de autenticação
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
