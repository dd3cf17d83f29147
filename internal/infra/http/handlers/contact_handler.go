package handlers

import (
	"net/http"
	"strings"

	"github.com/xavierca1/crm-api/internal/entity"
	"github.com/xavierca1/crm-api/internal/usecase"
)

const contactNotFound = "Contato não encontrado."

type ContactHandler struct {
	Service ContactService
}

func NewContactHandler(service ContactService) *ContactHandler {
	return &ContactHandler{Service: service}
}

// Create godoc
// @Summary      Cria um contato
// @Tags         contatos
// @Accept       json
// @Produce      json
// @Param        contato  body      usecase.CreateContactInput  true  "Dados do contato"
// @Success      201      {object}  entity.Contact
// @Failure      400      {object}  ErrorResponse
// @Router       /api/v1/contatos [post]
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateContactInput
	if !decodeJSON(w, r, &input) {
		return
	}

	contact, err := h.Service.Create(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, contact)
}

// List godoc
// @Summary      Lista contatos
// @Tags         contatos
// @Produce      json
// @Param        pular     query     int     false  "Registros a pular"  default(0)
// @Param        limite    query     int     false  "Máximo de registros (1-500)"  default(100)
// @Param        situacao  query     string  false  "Filtra pela situação (lead, cliente, inativo)"
// @Success      200       {array}   entity.Contact
// @Failure      400       {object}  ErrorResponse
// @Router       /api/v1/contatos [get]
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := queryPagination(r)
	if err != nil {
		writeValidationError(w, "dados inválidos: "+err.Error())
		return
	}

	contacts, err := h.Service.List(r.Context(), entity.ContactFilter{
		Situacao:   strings.TrimSpace(r.URL.Query().Get("situacao")),
		Pagination: page,
	})
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, contacts)
}

// Get godoc
// @Summary      Busca um contato
// @Tags         contatos
// @Produce      json
// @Param        id   path      int  true  "ID do contato"
// @Success      200  {object}  entity.Contact
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/contatos/{id} [get]
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, contactNotFound)
	if !ok {
		return
	}

	contact, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, contact)
}

// Update godoc
// @Summary      Atualiza um contato
// @Description  Apenas os campos enviados são alterados.
// @Tags         contatos
// @Accept       json
// @Produce      json
// @Param        id       path      int                         true  "ID do contato"
// @Param        contato  body      usecase.UpdateContactInput  true  "Campos a alterar"
// @Success      200      {object}  entity.Contact
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /api/v1/contatos/{id} [put]
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, contactNotFound)
	if !ok {
		return
	}

	var input usecase.UpdateContactInput
	if !decodeJSON(w, r, &input) {
		return
	}

	contact, err := h.Service.Update(r.Context(), id, input)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, contact)
}

// Delete godoc
// @Summary      Remove um contato
// @Description  Os negócios do contato também são removidos.
// @Tags         contatos
// @Param        id   path  int  true  "ID do contato"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/contatos/{id} [delete]
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, contactNotFound)
	if !ok {
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
