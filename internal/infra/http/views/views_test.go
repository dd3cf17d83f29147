package views

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/crm-api/internal/entity"
	"github.com/xavierca1/crm-api/internal/report"
)

func TestFormatMoney(t *testing.T) {
	v := 1234.5
	assert.Equal(t, "R$ 1.234,50", formatMoney(v))
	assert.Equal(t, "R$ 0,00", formatMoney(0.0))
	assert.Equal(t, "R$ 1.000.000,01", formatMoney(1000000.011))
	assert.Equal(t, "R$ 1.234,50", formatMoney(&v))
	assert.Equal(t, "-", formatMoney((*float64)(nil)))
	assert.Equal(t, "-R$ 10,00", formatMoney(-10.0))
}

func TestFormatDate(t *testing.T) {
	d := entity.NewDate(2025, time.March, 5)
	assert.Equal(t, "05/03/2025", formatDate(d))
	assert.Equal(t, "05/03/2025", formatDate(&d))
	assert.Equal(t, "-", formatDate((*entity.Date)(nil)))

	loc := time.FixedZone("BRT", -3*60*60)
	ts := time.Date(2025, time.March, 5, 2, 30, 0, 0, time.UTC)
	assert.Equal(t, "04/03/2025 23:30", formatDateTime(ts, loc))
	assert.Equal(t, "-", formatDateTime((*time.Time)(nil), loc))
}

func TestRenderer_AllPages(t *testing.T) {
	r, err := NewRenderer(time.UTC)
	require.NoError(t, err)

	b := &report.Builder{Now: func() time.Time { return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC) }, Location: time.UTC}
	email := "joao@empresa.com"
	valor := 1500.0
	prob := 50
	resp := "Ana"
	fechamento := entity.NewDate(2025, 3, 9)

	contacts := []*entity.Contact{{ID: 1, Nome: "João <script>", Email: &email, Situacao: entity.SituacaoLead, CriadoEm: time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)}}
	deals := []*entity.DealDetail{{
		Deal: entity.Deal{
			ID: 1, Titulo: "Projeto X", Fase: entity.FaseFechadoGanho, ValorPrevisto: &valor,
			Probabilidade: &prob, ContatoID: 1, DataFechamento: &fechamento,
			CriadoEm: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		ContatoNome:     "João",
		ResponsavelNome: &resp,
	}}
	employees := []*entity.Employee{{ID: 1, Nome: "Ana", Ativo: true}}

	cases := []struct {
		name     string
		page     Page
		contains []string
	}{
		{"painel.html", Page{Titulo: "Contatos", Ativo: "painel", Dados: b.ContactPanel(contacts)}, []string{"joao@empresa.com", "João &lt;script&gt;", "09/03/2025 10:00"}},
		{"funil.html", Page{Titulo: "Funil", Ativo: "funil", Dados: report.Funnel(deals)}, []string{"Projeto X", "R$ 1.500,00", "Fechados (ganhos)", "Ana", "50%"}},
		{"indicadores.html", Page{Titulo: "Indicadores", Ativo: "indicadores", Dados: b.Indicators(deals, employees, b.ResolveWindow("", ""))}, []string{"2025-02-09", "Não informada", "09/03/2025"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			require.NoError(t, r.Render(w, tc.name, tc.page))

			assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
			body := w.Body.String()
			assert.Contains(t, body, "<title>"+tc.page.Titulo)
			for _, s := range tc.contains {
				assert.Contains(t, body, s)
			}
		})
	}
}

func TestRenderer_UnknownPage(t *testing.T) {
	r, err := NewRenderer(nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	err = r.Render(w, "nada.html", Page{})

	assert.Error(t, err)
	assert.Empty(t, w.Body.String())
}
