package report

import (
	"sort"

	"github.com/xavierca1/crm-api/internal/entity"
)

type FunnelStage struct {
	Fase     string
	Negocios []*entity.DealDetail
	Total    int
	Valor    float64
}

// FunnelPanel alimenta o painel /funil.
type FunnelPanel struct {
	Novos            FunnelStage
	EmProposta       FunnelStage
	FechadosGanhos   FunnelStage
	FechadosPerdidos FunnelStage

	TotalNegocios  int
	ValorTotal     float64
	TaxaFechamento int
}

// Etapas devolve as quatro colunas na ordem do funil.
func (p *FunnelPanel) Etapas() []FunnelStage {
	return []FunnelStage{p.Novos, p.EmProposta, p.FechadosGanhos, p.FechadosPerdidos}
}

// Funnel separa os negócios nas quatro fases, cada uma do mais recente para o mais antigo.
// Negócios com fase desconhecida ficam fora do funil.
func Funnel(deals []*entity.DealDetail) *FunnelPanel {
	buckets := map[string][]*entity.DealDetail{}
	for _, d := range deals {
		buckets[d.Fase] = append(buckets[d.Fase], d)
	}

	p := &FunnelPanel{
		Novos:            newStage(entity.FaseNovo, buckets[entity.FaseNovo]),
		EmProposta:       newStage(entity.FaseEmProposta, buckets[entity.FaseEmProposta]),
		FechadosGanhos:   newStage(entity.FaseFechadoGanho, buckets[entity.FaseFechadoGanho]),
		FechadosPerdidos: newStage(entity.FaseFechadoPerdido, buckets[entity.FaseFechadoPerdido]),
	}

	for _, s := range p.Etapas() {
		p.TotalNegocios += s.Total
		p.ValorTotal += s.Valor
	}
	p.ValorTotal = round2(p.ValorTotal)

	abertosEGanhos := p.Novos.Total + p.EmProposta.Total + p.FechadosGanhos.Total
	p.TaxaFechamento = percent(p.FechadosGanhos.Total, abertosEGanhos)

	return p
}

func newStage(fase string, deals []*entity.DealDetail) FunnelStage {
	sorted := make([]*entity.DealDetail, len(deals))
	copy(sorted, deals)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.CriadoEm.Equal(b.CriadoEm) {
			return a.CriadoEm.After(b.CriadoEm)
		}
		return a.ID > b.ID
	})

	var valor float64
	for _, d := range sorted {
		valor += d.Valor()
	}

	return FunnelStage{
		Fase:     fase,
		Negocios: sorted,
		Total:    len(sorted),
		Valor:    round2(valor),
	}
}
