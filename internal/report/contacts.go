package report

import "github.com/xavierca1/crm-api/internal/entity"

// ContactPanel alimenta o painel /painel.
type ContactPanel struct {
	Contatos []*entity.Contact

	TotalContatos    int
	TotalLeads       int
	TotalClientes    int
	TotalInativos    int
	TotalOutros      int
	ContatosUltimos7 int

	TaxaLeads                int
	TaxaClientes             int
	TaxaInativos             int
	TaxaOutros               int
	TaxaConversaoLeadCliente int
}

// ContactPanel recebe os contatos já ordenados do mais recente para o mais antigo.
func (b *Builder) ContactPanel(contacts []*entity.Contact) *ContactPanel {
	p := &ContactPanel{
		Contatos:      contacts,
		TotalContatos: len(contacts),
	}

	limite := b.Today().AddDays(-7)

	for _, c := range contacts {
		switch c.Situacao {
		case entity.SituacaoLead:
			p.TotalLeads++
		case entity.SituacaoCliente:
			p.TotalClientes++
		case entity.SituacaoInativo:
			p.TotalInativos++
		}

		if !c.CriadoEm.IsZero() && !b.dateOf(c.CriadoEm).Before(limite) {
			p.ContatosUltimos7++
		}
	}

	p.TotalOutros = max(p.TotalContatos-(p.TotalLeads+p.TotalClientes+p.TotalInativos), 0)
	p.TaxaLeads, p.TaxaClientes, p.TaxaInativos, p.TaxaOutros = statusShares(
		p.TotalContatos, p.TotalLeads, p.TotalClientes, p.TotalInativos,
	)
	p.TaxaConversaoLeadCliente = percent(p.TotalClientes, p.TotalLeads)

	return p
}

// statusShares arredonda cada fatia separadamente e força a soma das quatro a 100.
// "outros" fica com o que sobra; se o arredondamento estourar 100, a maior fatia cede o excesso.
func statusShares(total, leads, clientes, inativos int) (int, int, int, int) {
	if total == 0 {
		return 0, 0, 0, 0
	}

	shares := [3]int{percent(leads, total), percent(clientes, total), percent(inativos, total)}

	if excess := shares[0] + shares[1] + shares[2] - 100; excess > 0 {
		largest := 0
		for i := 1; i < len(shares); i++ {
			if shares[i] > shares[largest] {
				largest = i
			}
		}
		shares[largest] -= excess
	}

	outros := max(0, 100-(shares[0]+shares[1]+shares[2]))
	return shares[0], shares[1], shares[2], outros
}
