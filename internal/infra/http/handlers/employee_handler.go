package handlers

import (
	"net/http"

	"github.com/xavierca1/crm-api/internal/entity"
	"github.com/xavierca1/crm-api/internal/usecase"
)

const employeeNotFound = "Funcionário não encontrado."

type EmployeeHandler struct {
	Service EmployeeService
}

func NewEmployeeHandler(service EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{Service: service}
}

// Create godoc
// @Summary      Cria um funcionário
// @Tags         funcionarios
// @Accept       json
// @Produce      json
// @Param        funcionario  body      usecase.CreateEmployeeInput  true  "Dados do funcionário"
// @Success      201          {object}  entity.Employee
// @Failure      400          {object}  ErrorResponse
// @Router       /api/v1/funcionarios [post]
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateEmployeeInput
	if !decodeJSON(w, r, &input) {
		return
	}

	employee, err := h.Service.Create(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, employee)
}

// List godoc
// @Summary      Lista funcionários
// @Description  Ordenados por nome.
// @Tags         funcionarios
// @Produce      json
// @Param        pular           query     int   false  "Registros a pular"  default(0)
// @Param        limite          query     int   false  "Máximo de registros (1-500)"  default(100)
// @Param        somente_ativos  query     bool  false  "Lista apenas os ativos"  default(false)
// @Success      200             {array}   entity.Employee
// @Failure      400             {object}  ErrorResponse
// @Router       /api/v1/funcionarios [get]
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := queryPagination(r)
	if err != nil {
		writeValidationError(w, "dados inválidos: "+err.Error())
		return
	}
	onlyActive, err := queryBool(r, "somente_ativos", false)
	if err != nil {
		writeValidationError(w, "dados inválidos: "+err.Error())
		return
	}

	employees, err := h.Service.List(r.Context(), entity.EmployeeFilter{
		SomenteAtivos: onlyActive,
		Pagination:    page,
	})
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, employees)
}

// Get godoc
// @Summary      Busca um funcionário
// @Tags         funcionarios
// @Produce      json
// @Param        id   path      int  true  "ID do funcionário"
// @Success      200  {object}  entity.Employee
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/funcionarios/{id} [get]
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, employeeNotFound)
	if !ok {
		return
	}

	employee, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, employee)
}

// Update godoc
// @Summary      Atualiza um funcionário
// @Tags         funcionarios
// @Accept       json
// @Produce      json
// @Param        id           path      int                          true  "ID do funcionário"
// @Param        funcionario  body      usecase.UpdateEmployeeInput  true  "Campos a alterar"
// @Success      200          {object}  entity.Employee
// @Failure      400          {object}  ErrorResponse
// @Failure      404          {object}  ErrorResponse
// @Router       /api/v1/funcionarios/{id} [put]
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, employeeNotFound)
	if !ok {
		return
	}

	var input usecase.UpdateEmployeeInput
	if !decodeJSON(w, r, &input) {
		return
	}

	employee, err := h.Service.Update(r.Context(), id, input)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, employee)
}

// Delete godoc
// @Summary      Remove um funcionário
// @Description  Os negócios do funcionário ficam sem responsável.
// @Tags         funcionarios
// @Param        id   path  int  true  "ID do funcionário"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/funcionarios/{id} [delete]
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, employeeNotFound)
	if !ok {
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
