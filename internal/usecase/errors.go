package usecase

import (
	"errors"

	"github.com/xavierca1/crm-api/internal/entity"
)

const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeDuplicateKey = "DUPLICATE_KEY"
	CodeNotFound     = "NOT_FOUND"
	CodeDatabase     = "DATABASE_ERROR"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// HasCode informa se err é um DomainError com o código informado.
func HasCode(err error, code string) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == code
}

func newNotFound(msg string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: msg}
}

func newDuplicateKey(msg string) *DomainError {
	return &DomainError{Code: CodeDuplicateKey, Message: msg}
}

type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

func newDatabaseError(err error) *TechnicalError {
	return &TechnicalError{Code: CodeDatabase, Message: "erro ao acessar o banco de dados", Err: err}
}

// storeError traduz os sentinelas do repositório para erros de domínio.
func storeError(err error, notFoundMsg, duplicateMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, entity.ErrNotFound):
		return newNotFound(notFoundMsg)
	case errors.Is(err, entity.ErrEmailAlreadyExists):
		return newDuplicateKey(duplicateMsg)
	default:
		return newDatabaseError(err)
	}
}
