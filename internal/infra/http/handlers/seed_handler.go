package handlers

import (
	"log"
	"net/http"

	"github.com/xavierca1/crm-api/internal/usecase"
)

// SeedHandler popula o banco com dados fictícios. Só é montado em desenvolvimento.
type SeedHandler struct {
	Service SeedService
}

func NewSeedHandler(service SeedService) *SeedHandler {
	return &SeedHandler{Service: service}
}

// Handle godoc
// @Summary      Gera dados fictícios
// @Description  Disponível apenas com APP_ENV=development.
// @Tags         dev
// @Produce      json
// @Param        limpar            query     bool  false  "Apaga os dados antes de gerar"  default(true)
// @Param        dias_passado      query     int   false  "Janela de datas no passado"  default(60)
// @Param        qtd_funcionarios  query     int   false  "Funcionários a gerar"  default(5)
// @Param        qtd_contatos      query     int   false  "Contatos a gerar"  default(40)
// @Param        qtd_negocios      query     int   false  "Negócios a gerar"  default(120)
// @Success      200               {object}  usecase.SeedOutput
// @Failure      400               {object}  ErrorResponse
// @Router       /dev/seed [post]
func (h *SeedHandler) Handle(w http.ResponseWriter, r *http.Request) {
	input, err := seedInputFromQuery(r)
	if err != nil {
		writeValidationError(w, "dados inválidos: "+err.Error())
		return
	}

	out, err := h.Service.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	log.Printf("🌱 Seed concluído: %d funcionários, %d contatos, %d negócios",
		out.Resumo.FuncionariosCriados, out.Resumo.ContatosCriados, out.Resumo.NegociosCriados)
	writeJSON(w, http.StatusOK, out)
}

func seedInputFromQuery(r *http.Request) (usecase.SeedInput, error) {
	in := usecase.DefaultSeedInput()
	var err error

	if in.Limpar, err = queryBool(r, "limpar", in.Limpar); err != nil {
		return in, err
	}
	if in.DiasPassado, err = queryInt(r, "dias_passado", in.DiasPassado); err != nil {
		return in, err
	}
	if in.QtdFuncionarios, err = queryInt(r, "qtd_funcionarios", in.QtdFuncionarios); err != nil {
		return in, err
	}
	if in.QtdContatos, err = queryInt(r, "qtd_contatos", in.QtdContatos); err != nil {
		return in, err
	}
	if in.QtdNegocios, err = queryInt(r, "qtd_negocios", in.QtdNegocios); err != nil {
		return in, err
	}
	return in, nil
}
