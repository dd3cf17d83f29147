package handlers

import (
	"context"

	"github.com/xavierca1/crm-api/internal/entity"
	"github.com/xavierca1/crm-api/internal/report"
	"github.com/xavierca1/crm-api/internal/usecase"
)

type ContactService interface {
	Create(ctx context.Context, input usecase.CreateContactInput) (*entity.Contact, error)
	List(ctx context.Context, filter entity.ContactFilter) ([]*entity.Contact, error)
	GetByID(ctx context.Context, id int64) (*entity.Contact, error)
	Update(ctx context.Context, id int64, input usecase.UpdateContactInput) (*entity.Contact, error)
	Delete(ctx context.Context, id int64) error
}

type EmployeeService interface {
	Create(ctx context.Context, input usecase.CreateEmployeeInput) (*entity.Employee, error)
	List(ctx context.Context, filter entity.EmployeeFilter) ([]*entity.Employee, error)
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	Update(ctx context.Context, id int64, input usecase.UpdateEmployeeInput) (*entity.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type DealService interface {
	Create(ctx context.Context, input usecase.CreateDealInput) (*entity.Deal, error)
	List(ctx context.Context, filter entity.DealFilter) ([]*entity.Deal, error)
	GetByID(ctx context.Context, id int64) (*entity.Deal, error)
	Update(ctx context.Context, id int64, input usecase.UpdateDealInput) (*entity.Deal, error)
	Delete(ctx context.Context, id int64) error
}

type DashboardService interface {
	ContactPanel(ctx context.Context) (*report.ContactPanel, error)
	FunnelPanel(ctx context.Context) (*report.FunnelPanel, error)
	IndicatorsPanel(ctx context.Context, inicio, fim string) (*report.IndicatorsPanel, error)
}

type SeedService interface {
	Execute(ctx context.Context, input usecase.SeedInput) (*usecase.SeedOutput, error)
}
