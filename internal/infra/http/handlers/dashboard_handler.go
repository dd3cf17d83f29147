package handlers

import (
	"log"
	"net/http"

	"github.com/xavierca1/crm-api/internal/infra/http/views"
	"github.com/xavierca1/crm-api/internal/infra/metrics"
)

type PageRenderer interface {
	Render(w http.ResponseWriter, name string, page views.Page) error
}

// DashboardHandler serve os painéis HTML; os números são recalculados a cada requisição.
type DashboardHandler struct {
	Service  DashboardService
	Renderer PageRenderer
}

func NewDashboardHandler(service DashboardService, renderer PageRenderer) *DashboardHandler {
	return &DashboardHandler{Service: service, Renderer: renderer}
}

// Contacts godoc
// @Summary      Painel de contatos
// @Tags         paineis
// @Produce      html
// @Success      200  {string}  string  "HTML"
// @Router       /painel [get]
func (h *DashboardHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	panel, err := h.Service.ContactPanel(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "painel.html", views.Page{Titulo: "Painel de contatos", Ativo: "painel", Dados: panel})
}

// Funnel godoc
// @Summary      Funil de vendas
// @Tags         paineis
// @Produce      html
// @Success      200  {string}  string  "HTML"
// @Router       /funil [get]
func (h *DashboardHandler) Funnel(w http.ResponseWriter, r *http.Request) {
	panel, err := h.Service.FunnelPanel(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "funil.html", views.Page{Titulo: "Funil de vendas", Ativo: "funil", Dados: panel})
}

// Indicators godoc
// @Summary      Indicadores por funcionário e canal
// @Description  Sem período válido, considera os últimos 30 dias.
// @Tags         paineis
// @Produce      html
// @Param        inicio  query     string  false  "Data inicial (AAAA-MM-DD)"
// @Param        fim     query     string  false  "Data final (AAAA-MM-DD)"
// @Success      200     {string}  string  "HTML"
// @Router       /indicadores [get]
func (h *DashboardHandler) Indicators(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	panel, err := h.Service.IndicatorsPanel(r.Context(), q.Get("inicio"), q.Get("fim"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "indicadores.html", views.Page{Titulo: "Indicadores", Ativo: "indicadores", Dados: panel})
}

func (h *DashboardHandler) render(w http.ResponseWriter, r *http.Request, name string, page views.Page) {
	if err := h.Renderer.Render(w, name, page); err != nil {
		h.fail(w, r, err)
		return
	}
	metrics.RecordDashboardRender(page.Ativo)
}

func (h *DashboardHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("❌ Erro ao montar o painel %s: %v", r.URL.Path, err)
	http.Error(w, "Erro ao montar o painel. Tente novamente mais tarde.", http.StatusInternalServerError)
}
