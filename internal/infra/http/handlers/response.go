package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/crm-api/internal/entity"
	"github.com/xavierca1/crm-api/internal/usecase"
)

const (
	CodeInvalidJSON = "INVALID_JSON"
	CodeInternal    = "INTERNAL_ERROR"
)

// ErrorResponse é o corpo de toda resposta de erro da API.
type ErrorResponse struct {
	Error   string `json:"error" example:"VALIDATION_ERROR"`
	Message string `json:"message" example:"dados inválidos: nome: é obrigatório"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Erro ao escrever resposta JSON: %v", err)
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// writeUseCaseError traduz os erros do usecase para status HTTP em um único lugar.
func writeUseCaseError(w http.ResponseWriter, r *http.Request, err error) {
	var de *usecase.DomainError
	if errors.As(err, &de) {
		switch de.Code {
		case usecase.CodeNotFound:
			writeErrorResponse(w, http.StatusNotFound, de.Code, de.Message)
		default:
			writeErrorResponse(w, http.StatusBadRequest, de.Code, de.Message)
		}
		return
	}

	log.Printf("❌ [%s %s] %v", r.Method, r.URL.Path, err)
	writeErrorResponse(w, http.StatusInternalServerError, CodeInternal, "Erro interno. Tente novamente mais tarde.")
}

func writeValidationError(w http.ResponseWriter, message string) {
	writeErrorResponse(w, http.StatusBadRequest, usecase.CodeValidation, message)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, CodeInvalidJSON, "JSON inválido: "+err.Error())
		return false
	}
	return true
}

// pathID lê o {id} da rota. Um id que não é inteiro é erro de validação;
// um id inteiro que não pode existir é tratado como registro inexistente.
func pathID(w http.ResponseWriter, r *http.Request, notFoundMsg string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeValidationError(w, "dados inválidos: id: deve ser um número inteiro")
		return 0, false
	}
	if id <= 0 {
		writeErrorResponse(w, http.StatusNotFound, usecase.CodeNotFound, notFoundMsg)
		return 0, false
	}
	return id, true
}

// queryInt devolve def quando o parâmetro não foi enviado.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + ": deve ser um número inteiro")
	}
	return v, nil
}

func queryBool(r *http.Request, name string, def bool) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.New(name + ": deve ser true ou false")
	}
	return v, nil
}

func queryPagination(r *http.Request) (entity.Pagination, error) {
	p := entity.DefaultPagination()

	offset, err := queryInt(r, "pular", p.Offset)
	if err != nil {
		return p, err
	}
	limit, err := queryInt(r, "limite", p.Limit)
	if err != nil {
		return p, err
	}

	p.Offset, p.Limit = offset, limit
	return p, nil
}
