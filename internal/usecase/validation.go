package usecase

import (
	"fmt"
	"math"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/xavierca1/crm-api/internal/entity"
)

// Limites iguais aos tamanhos das colunas no Postgres.
const (
	maxNameLength        = 200
	maxDescriptionLength = 2000
	maxEmailLength       = 255
	maxPhoneLength       = 50
	maxCompanyLength     = 200
	maxOrigemLength      = 100
	maxSituacaoLength    = 50
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// validationFailed junta as falhas em um único DomainError legível.
func validationFailed(errs []ValidationError) error {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Error())
	}
	return &DomainError{
		Code:    CodeValidation,
		Message: "dados inválidos: " + strings.Join(parts, "; "),
	}
}

func ValidatePagination(p entity.Pagination) []ValidationError {
	var errors []ValidationError

	if p.Offset < 0 {
		errors = append(errors, ValidationError{"pular", "deve ser maior ou igual a 0"})
	}
	if p.Limit < 1 || p.Limit > entity.MaxLimit {
		errors = append(errors, ValidationError{"limite", fmt.Sprintf("deve estar entre 1 e %d", entity.MaxLimit)})
	}

	return errors
}

func validateRequiredText(field, value string, maxLen int) []ValidationError {
	if strings.TrimSpace(value) == "" {
		return []ValidationError{{field, "é obrigatório"}}
	}
	if utf8.RuneCountInString(value) > maxLen {
		return []ValidationError{{field, fmt.Sprintf("deve ter no máximo %d caracteres", maxLen)}}
	}
	return nil
}

func validateOptionalText(field string, value *string, maxLen int) []ValidationError {
	if value != nil && utf8.RuneCountInString(*value) > maxLen {
		return []ValidationError{{field, fmt.Sprintf("deve ter no máximo %d caracteres", maxLen)}}
	}
	return nil
}

func validateEmail(field string, email *string) []ValidationError {
	if email == nil || *email == "" {
		return nil
	}
	if utf8.RuneCountInString(*email) > maxEmailLength {
		return []ValidationError{{field, fmt.Sprintf("deve ter no máximo %d caracteres", maxEmailLength)}}
	}
	if !isValidEmail(*email) {
		return []ValidationError{{field, "não é um e-mail válido"}}
	}
	return nil
}

// isValidEmail aceita apenas o endereço puro, sem nome de exibição.
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func validateFase(fase string) []ValidationError {
	if !entity.IsValidFase(fase) {
		return []ValidationError{{"fase", "deve ser um de " + strings.Join(entity.Fases, ", ")}}
	}
	return nil
}

func validateProbabilidade(p *int) []ValidationError {
	if p != nil && (*p < 0 || *p > 100) {
		return []ValidationError{{"probabilidade", "deve estar entre 0 e 100"}}
	}
	return nil
}

func validateValor(v *float64) []ValidationError {
	if v == nil {
		return nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
		return []ValidationError{{"valor_previsto", "deve ser um número maior ou igual a 0"}}
	}
	return nil
}

// trimOptional normaliza campos opcionais da criação: espaços são removidos e vazio vira nulo.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// trimPatch mantém a presença do campo; uma string vazia enviada no update limpa o valor.
func trimPatch(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func roundMoney(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := math.Round(*v*100) / 100
	return &r
}

// normalizeDate trata a data zero (campo enviado como "") como ausente.
func normalizeDate(d *entity.Date) *entity.Date {
	if d == nil || d.IsZero() {
		return nil
	}
	return d
}
