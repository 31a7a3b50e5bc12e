package clinic

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de clínicas
var (
	ErrClinicNameRequired  = errors.New("clinic name is required")
	ErrClinicAlreadyExists = errors.New("clinic already exists")
	ErrClinicNotFound      = errors.New("clinic not found")
	ErrDatabaseOperation   = errors.New("clinic storage operation error")
	ErrGenerateID          = errors.New("error generating clinic id")
)

// ClinicError é um erro com contexto adicional para clínicas
type ClinicError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	ClinicName string // Nome informado na requisição
	Details    string // Detalhes adicionais
}

func (e *ClinicError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ClinicError) Unwrap() error {
	return e.Err
}

func NewClinicError(err error, code string, clinicName string, details string) *ClinicError {
	return &ClinicError{
		Err:        err,
		Code:       code,
		ClinicName: clinicName,
		Details:    details,
	}
}
