package entity

import (
	"context"
	"time"
)

// Situação do contato no relacionamento. Outros valores são aceitos e contados como "outros" no painel.
const (
	SituacaoLead    = "lead"
	SituacaoCliente = "cliente"
	SituacaoInativo = "inativo"
)

// Contact representa um contato do CRM (lead, cliente etc.).
type Contact struct {
	ID           int64      `json:"id"`
	Nome         string     `json:"nome"`
	Email        *string    `json:"email"`
	Telefone     *string    `json:"telefone"`
	Empresa      *string    `json:"empresa"`
	Origem       *string    `json:"origem"` // whatsapp, site, instagram, indicação, ligação...
	Situacao     string     `json:"situacao"`
	CriadoEm     time.Time  `json:"criado_em"`
	AtualizadoEm *time.Time `json:"atualizado_em"`
}

type ContactFilter struct {
	Situacao string
	Pagination
}

type ContactRepositoryInterface interface {
	Create(ctx context.Context, c *Contact) error
	FindByID(ctx context.Context, id int64) (*Contact, error)
	List(ctx context.Context, filter ContactFilter) ([]*Contact, error)
	Update(ctx context.Context, c *Contact) error
	// Delete remove o contato e os negócios vinculados a ele.
	Delete(ctx context.Context, id int64) error
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	// ListAll devolve todos os contatos, mais recentes primeiro.
	ListAll(ctx context.Context) ([]*Contact, error)
	DeleteAll(ctx context.Context) error
}
