package entity

import (
	"context"
	"time"
)

// Employee é o funcionário dono dos negócios, usado nos indicadores.
type Employee struct {
	ID           int64      `json:"id"`
	Nome         string     `json:"nome"`
	Email        *string    `json:"email"`
	Cargo        *string    `json:"cargo"`
	Ativo        bool       `json:"ativo"`
	CriadoEm     time.Time  `json:"criado_em"`
	AtualizadoEm *time.Time `json:"atualizado_em"`
}

type EmployeeFilter struct {
	SomenteAtivos bool
	Pagination
}

type EmployeeRepositoryInterface interface {
	Create(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, id int64) (*Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]*Employee, error)
	Update(ctx context.Context, e *Employee) error
	// Delete remove o funcionário e limpa o responsavel_id dos negócios dele.
	Delete(ctx context.Context, id int64) error
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	// ListActive devolve os funcionários ativos ordenados por nome.
	ListActive(ctx context.Context) ([]*Employee, error)
	DeleteAll(ctx context.Context) error
}
