package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/xavierca1/crm-api/internal/entity"
	"github.com/xavierca1/crm-api/internal/usecase"
)

const dealNotFound = "Negócio não encontrado."

type DealHandler struct {
	Service DealService
}

func NewDealHandler(service DealService) *DealHandler {
	return &DealHandler{Service: service}
}

// Create godoc
// @Summary      Cria um negócio
// @Description  Publica o evento negocio.criado quando a mensageria está configurada.
// @Tags         negocios
// @Accept       json
// @Produce      json
// @Param        negocio  body      usecase.CreateDealInput  true  "Dados do negócio"
// @Success      201      {object}  entity.Deal
// @Failure      400      {object}  ErrorResponse
// @Router       /api/v1/negocios [post]
func (h *DealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateDealInput
	if !decodeJSON(w, r, &input) {
		return
	}

	deal, err := h.Service.Create(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, deal)
}

// List godoc
// @Summary      Lista negócios
// @Description  Mais recentes primeiro.
// @Tags         negocios
// @Produce      json
// @Param        pular       query     int     false  "Registros a pular"  default(0)
// @Param        limite      query     int     false  "Máximo de registros (1-500)"  default(100)
// @Param        fase        query     string  false  "novo, em_proposta, fechado_ganho ou fechado_perdido"
// @Param        origem      query     string  false  "Canal de origem"
// @Param        contato_id  query     int     false  "ID do contato"
// @Success      200         {array}   entity.Deal
// @Failure      400         {object}  ErrorResponse
// @Router       /api/v1/negocios [get]
func (h *DealHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := queryPagination(r)
	if err != nil {
		writeValidationError(w, "dados inválidos: "+err.Error())
		return
	}

	var contatoID int64
	if raw := strings.TrimSpace(r.URL.Query().Get("contato_id")); raw != "" {
		contatoID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeValidationError(w, "dados inválidos: contato_id: deve ser um número inteiro")
			return
		}
	}

	q := r.URL.Query()
	deals, err := h.Service.List(r.Context(), entity.DealFilter{
		Fase:       strings.TrimSpace(q.Get("fase")),
		Origem:     strings.TrimSpace(q.Get("origem")),
		ContatoID:  contatoID,
		Pagination: page,
	})
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deals)
}

// Get godoc
// @Summary      Busca um negócio
// @Tags         negocios
// @Produce      json
// @Param        id   path      int  true  "ID do negócio"
// @Success      200  {object}  entity.Deal
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/negocios/{id} [get]
func (h *DealHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, dealNotFound)
	if !ok {
		return
	}

	deal, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deal)
}

// Update godoc
// @Summary      Atualiza um negócio
// @Description  Apenas os campos enviados são alterados. Mover para fechado_ganho publica negocio.ganho.
// @Tags         negocios
// @Accept       json
// @Produce      json
// @Param        id       path      int                      true  "ID do negócio"
// @Param        negocio  body      usecase.UpdateDealInput  true  "Campos a alterar"
// @Success      200      {object}  entity.Deal
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /api/v1/negocios/{id} [put]
func (h *DealHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, dealNotFound)
	if !ok {
		return
	}

	var input usecase.UpdateDealInput
	if !decodeJSON(w, r, &input) {
		return
	}

	deal, err := h.Service.Update(r.Context(), id, input)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deal)
}

// Delete godoc
// @Summary      Remove um negócio
// @Tags         negocios
// @Param        id   path  int  true  "ID do negócio"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/negocios/{id} [delete]
func (h *DealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, dealNotFound)
	if !ok {
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
