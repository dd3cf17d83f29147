package entity

import (
	"context"
	"time"
)

// Fases do funil de vendas.
const (
	FaseNovo           = "novo"
	FaseEmProposta     = "em_proposta"
	FaseFechadoGanho   = "fechado_ganho"
	FaseFechadoPerdido = "fechado_perdido"
)

var Fases = []string{FaseNovo, FaseEmProposta, FaseFechadoGanho, FaseFechadoPerdido}

func IsValidFase(fase string) bool {
	for _, f := range Fases {
		if f == fase {
			return true
		}
	}
	return false
}

// Deal é uma oportunidade ("negócio") no funil de vendas.
type Deal struct {
	ID                     int64      `json:"id"`
	Titulo                 string     `json:"titulo"`
	Descricao              *string    `json:"descricao"`
	ValorPrevisto          *float64   `json:"valor_previsto"`
	Fase                   string     `json:"fase"`
	Origem                 *string    `json:"origem"`
	Probabilidade          *int       `json:"probabilidade"` // 0–100
	ContatoID              int64      `json:"contato_id"`
	ResponsavelID          *int64     `json:"responsavel_id"`
	DataPrevistaFechamento *Date      `json:"data_prevista_fechamento"`
	DataFechamento         *Date      `json:"data_fechamento"`
	CriadoEm               time.Time  `json:"criado_em"`
	AtualizadoEm           *time.Time `json:"atualizado_em"`
}

// Valor devolve o valor previsto, tratando ausente como zero.
func (d *Deal) Valor() float64 {
	if d.ValorPrevisto == nil {
		return 0
	}
	return *d.ValorPrevisto
}

// DealDetail é o negócio com os nomes do contato e do responsável, lidos via JOIN.
type DealDetail struct {
	Deal
	ContatoNome     string
	ResponsavelNome *string
}

type DealFilter struct {
	Fase      string
	Origem    string
	ContatoID int64
	Pagination
}

type DealRepositoryInterface interface {
	Create(ctx context.Context, d *Deal) error
	FindByID(ctx context.Context, id int64) (*Deal, error)
	List(ctx context.Context, filter DealFilter) ([]*Deal, error)
	Update(ctx context.Context, d *Deal) error
	Delete(ctx context.Context, id int64) error
	// ListDetailed devolve todos os negócios com contato e responsável, mais recentes primeiro.
	ListDetailed(ctx context.Context) ([]*DealDetail, error)
	DeleteAll(ctx context.Context) error
}
