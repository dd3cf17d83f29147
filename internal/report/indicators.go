package report

import (
	"sort"
	"strings"

	"github.com/xavierca1/crm-api/internal/entity"
)

const (
	defaultWindowDays  = 30
	origemNaoInformada = "Não informada"
)

// Window é um intervalo fechado de datas.
type Window struct {
	Inicio entity.Date
	Fim    entity.Date
}

func (w Window) Contains(d entity.Date) bool {
	return d.Between(w.Inicio, w.Fim)
}

// ResolveWindow interpreta os parâmetros inicio/fim do painel de indicadores.
// Ausência de qualquer um deles ou data inválida cai nos últimos 30 dias; datas invertidas são trocadas.
func (b *Builder) ResolveWindow(inicio, fim string) Window {
	today := b.Today()
	padrao := Window{Inicio: today.AddDays(-(defaultWindowDays - 1)), Fim: today}

	if strings.TrimSpace(inicio) == "" || strings.TrimSpace(fim) == "" {
		return padrao
	}

	start, err := entity.ParseDate(strings.TrimSpace(inicio))
	if err != nil {
		return padrao
	}
	end, err := entity.ParseDate(strings.TrimSpace(fim))
	if err != nil {
		return padrao
	}

	if start.After(end) {
		start, end = end, start
	}
	return Window{Inicio: start, Fim: end}
}

type EmployeeMetrics struct {
	Funcionario         *entity.Employee
	NegociosRecebidos   int
	NegociosTrabalhados int
	NegociosGanhos      int
	CicloMedio          float64
	TaxaConversao       int
	ValorGanho          float64
	LarguraBarra        int
}

type ChannelSales struct {
	Origem       string
	Quantidade   int
	Valor        float64
	LarguraBarra int
}

type DailyProductivity struct {
	Data         entity.Date
	Quantidade   int
	LarguraBarra int
}

// IndicatorsPanel alimenta o painel /indicadores.
type IndicatorsPanel struct {
	Inicio entity.Date
	Fim    entity.Date

	TotalNegociosRecebidos int
	TotalNegociosGanhos    int
	CicloMedio             float64
	TaxaConversao          int

	Funcionarios        []EmployeeMetrics
	VendasPorOrigem     []ChannelSales
	ProdutividadePorDia []DailyProductivity
}

// Indicators calcula os indicadores da janela. employees deve vir na ordem de exibição;
// funcionários inativos são ignorados.
func (b *Builder) Indicators(deals []*entity.DealDetail, employees []*entity.Employee, w Window) *IndicatorsPanel {
	p := &IndicatorsPanel{Inicio: w.Inicio, Fim: w.Fim}

	var ganhos []*entity.DealDetail
	for _, d := range deals {
		if b.receivedIn(d, w) {
			p.TotalNegociosRecebidos++
		}
		if wonIn(d, w) {
			ganhos = append(ganhos, d)
		}
	}

	p.TotalNegociosGanhos = len(ganhos)
	p.CicloMedio = b.averageCycle(ganhos)
	p.TaxaConversao = percent(p.TotalNegociosGanhos, p.TotalNegociosRecebidos)

	p.Funcionarios = b.employeeMetrics(deals, employees, w)
	p.VendasPorOrigem = salesByChannel(ganhos)
	p.ProdutividadePorDia = dailyProductivity(ganhos)

	return p
}

func (b *Builder) receivedIn(d *entity.DealDetail, w Window) bool {
	return !d.CriadoEm.IsZero() && w.Contains(b.dateOf(d.CriadoEm))
}

func (b *Builder) touchedIn(d *entity.DealDetail, w Window) bool {
	return d.AtualizadoEm != nil && w.Contains(b.dateOf(*d.AtualizadoEm))
}

func wonIn(d *entity.DealDetail, w Window) bool {
	return d.Fase == entity.FaseFechadoGanho && d.DataFechamento != nil && w.Contains(*d.DataFechamento)
}

// averageCycle é a média de dias entre a data de criação e a data de fechamento, com uma casa.
func (b *Builder) averageCycle(won []*entity.DealDetail) float64 {
	var total, n int
	for _, d := range won {
		if d.CriadoEm.IsZero() || d.DataFechamento == nil {
			continue
		}
		total += b.dateOf(d.CriadoEm).DaysUntil(*d.DataFechamento)
		n++
	}
	if n == 0 {
		return 0
	}
	return round1(float64(total) / float64(n))
}

func (b *Builder) employeeMetrics(deals []*entity.DealDetail, employees []*entity.Employee, w Window) []EmployeeMetrics {
	byEmployee := map[int64][]*entity.DealDetail{}
	for _, d := range deals {
		if d.ResponsavelID != nil {
			byEmployee[*d.ResponsavelID] = append(byEmployee[*d.ResponsavelID], d)
		}
	}

	metrics := make([]EmployeeMetrics, 0, len(employees))
	var maxValor float64

	for _, f := range employees {
		if !f.Ativo {
			continue
		}

		m := EmployeeMetrics{Funcionario: f}
		var ganhos []*entity.DealDetail

		for _, d := range byEmployee[f.ID] {
			received := b.receivedIn(d, w)
			if received {
				m.NegociosRecebidos++
			}
			if received || b.touchedIn(d, w) {
				m.NegociosTrabalhados++
			}
			if wonIn(d, w) {
				ganhos = append(ganhos, d)
				m.ValorGanho += d.Valor()
			}
		}

		m.NegociosGanhos = len(ganhos)
		m.CicloMedio = b.averageCycle(ganhos)
		m.TaxaConversao = percent(m.NegociosGanhos, m.NegociosRecebidos)
		m.ValorGanho = round2(m.ValorGanho)
		maxValor = max(maxValor, m.ValorGanho)

		metrics = append(metrics, m)
	}

	for i := range metrics {
		metrics[i].LarguraBarra = barWidth(metrics[i].ValorGanho, maxValor)
	}
	return metrics
}

// salesByChannel agrupa os ganhos por origem na ordem em que cada origem aparece.
func salesByChannel(won []*entity.DealDetail) []ChannelSales {
	index := map[string]int{}
	var sales []ChannelSales

	for _, d := range won {
		origem := origemNaoInformada
		if d.Origem != nil && strings.TrimSpace(*d.Origem) != "" {
			origem = *d.Origem
		}

		i, ok := index[origem]
		if !ok {
			i = len(sales)
			index[origem] = i
			sales = append(sales, ChannelSales{Origem: origem})
		}
		sales[i].Quantidade++
		sales[i].Valor += d.Valor()
	}

	var maxValor float64
	for i := range sales {
		sales[i].Valor = round2(sales[i].Valor)
		maxValor = max(maxValor, sales[i].Valor)
	}
	for i := range sales {
		sales[i].LarguraBarra = barWidth(sales[i].Valor, maxValor)
	}
	return sales
}

// dailyProductivity conta ganhos por data de fechamento, em ordem crescente de data.
func dailyProductivity(won []*entity.DealDetail) []DailyProductivity {
	counts := map[entity.Date]int{}
	for _, d := range won {
		if d.DataFechamento != nil {
			counts[*d.DataFechamento]++
		}
	}

	days := make([]DailyProductivity, 0, len(counts))
	maxQtd := 0
	for day, qtd := range counts {
		days = append(days, DailyProductivity{Data: day, Quantidade: qtd})
		maxQtd = max(maxQtd, qtd)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Data.Before(days[j].Data) })

	for i := range days {
		days[i].LarguraBarra = barWidth(float64(days[i].Quantidade), float64(maxQtd))
	}
	return days
}
