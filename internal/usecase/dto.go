package usecase

import "github.com/xavierca1/crm-api/internal/entity"

type CreateContactInput struct {
	Nome     string  `json:"nome" example:"João Silva"`
	Email    *string `json:"email,omitempty" example:"joao.silva@empresa.com"`
	Telefone *string `json:"telefone,omitempty" example:"5592999999999"`
	Empresa  *string `json:"empresa,omitempty" example:"Empresa X"`
	Origem   *string `json:"origem,omitempty" example:"whatsapp"`
	Situacao string  `json:"situacao,omitempty" example:"lead"`
}

// UpdateContactInput usa ponteiros: campo ausente (ou null) não é alterado.
type UpdateContactInput struct {
	Nome     *string `json:"nome,omitempty"`
	Email    *string `json:"email,omitempty"`
	Telefone *string `json:"telefone,omitempty"`
	Empresa  *string `json:"empresa,omitempty"`
	Origem   *string `json:"origem,omitempty"`
	Situacao *string `json:"situacao,omitempty"`
}

type CreateEmployeeInput struct {
	Nome  string  `json:"nome" example:"Maria Souza"`
	Email *string `json:"email,omitempty" example:"maria.souza@empresa.com"`
	Cargo *string `json:"cargo,omitempty" example:"Vendedora"`
	Ativo *bool   `json:"ativo,omitempty" example:"true"`
}

type UpdateEmployeeInput struct {
	Nome  *string `json:"nome,omitempty"`
	Email *string `json:"email,omitempty"`
	Cargo *string `json:"cargo,omitempty"`
	Ativo *bool   `json:"ativo,omitempty"`
}

type CreateDealInput struct {
	Titulo                 string       `json:"titulo" example:"Projeto CRM para Empresa X"`
	Descricao              *string      `json:"descricao,omitempty"`
	ValorPrevisto          *float64     `json:"valor_previsto,omitempty" example:"15000"`
	Fase                   string       `json:"fase,omitempty" example:"novo"`
	Origem                 *string      `json:"origem,omitempty" example:"whatsapp"`
	Probabilidade          *int         `json:"probabilidade,omitempty" example:"40"`
	ContatoID              int64        `json:"contato_id" example:"1"`
	ResponsavelID          *int64       `json:"responsavel_id,omitempty" example:"1"`
	DataPrevistaFechamento *entity.Date `json:"data_prevista_fechamento,omitempty" swaggertype:"string" example:"2025-12-31"`
	DataFechamento         *entity.Date `json:"data_fechamento,omitempty" swaggertype:"string"`
}

type UpdateDealInput struct {
	Titulo                 *string      `json:"titulo,omitempty"`
	Descricao              *string      `json:"descricao,omitempty"`
	ValorPrevisto          *float64     `json:"valor_previsto,omitempty"`
	Fase                   *string      `json:"fase,omitempty"`
	Origem                 *string      `json:"origem,omitempty"`
	Probabilidade          *int         `json:"probabilidade,omitempty"`
	ContatoID              *int64       `json:"contato_id,omitempty"`
	ResponsavelID          *int64       `json:"responsavel_id,omitempty"`
	DataPrevistaFechamento *entity.Date `json:"data_prevista_fechamento,omitempty" swaggertype:"string"`
	DataFechamento         *entity.Date `json:"data_fechamento,omitempty" swaggertype:"string"`
}

type SeedInput struct {
	Limpar          bool `json:"limpar"`
	DiasPassado     int  `json:"dias_passado"`
	QtdFuncionarios int  `json:"qtd_funcionarios"`
	QtdContatos     int  `json:"qtd_contatos"`
	QtdNegocios     int  `json:"qtd_negocios"`
}

func DefaultSeedInput() SeedInput {
	return SeedInput{
		Limpar:          true,
		DiasPassado:     60,
		QtdFuncionarios: 5,
		QtdContatos:     40,
		QtdNegocios:     120,
	}
}

type SeedSummary struct {
	FuncionariosCriados int `json:"funcionarios_criados"`
	ContatosCriados     int `json:"contatos_criados"`
	NegociosCriados     int `json:"negocios_criados"`
	NegociosGanhos      int `json:"negocios_ganhos"`
	NegociosPerdidos    int `json:"negocios_perdidos"`
}

type SeedOutput struct {
	Mensagem   string      `json:"mensagem"`
	Parametros SeedInput   `json:"parametros"`
	Resumo     SeedSummary `json:"resumo"`
}
