package usecase

import (
	"context"

	"github.com/xavierca1/crm-api/internal/entity"
	"github.com/xavierca1/crm-api/internal/report"
)

// DashboardUseCase carrega as tabelas inteiras a cada chamada e delega o cálculo ao report.Builder.
type DashboardUseCase struct {
	ContactRepo  entity.ContactRepositoryInterface
	EmployeeRepo entity.EmployeeRepositoryInterface
	DealRepo     entity.DealRepositoryInterface
	Report       *report.Builder
}

func NewDashboardUseCase(
	contactRepo entity.ContactRepositoryInterface,
	employeeRepo entity.EmployeeRepositoryInterface,
	dealRepo entity.DealRepositoryInterface,
	builder *report.Builder,
) *DashboardUseCase {
	return &DashboardUseCase{
		ContactRepo:  contactRepo,
		EmployeeRepo: employeeRepo,
		DealRepo:     dealRepo,
		Report:       builder,
	}
}

func (uc *DashboardUseCase) ContactPanel(ctx context.Context) (*report.ContactPanel, error) {
	contacts, err := uc.ContactRepo.ListAll(ctx)
	if err != nil {
		return nil, newDatabaseError(err)
	}
	return uc.Report.ContactPanel(contacts), nil
}

func (uc *DashboardUseCase) FunnelPanel(ctx context.Context) (*report.FunnelPanel, error) {
	deals, err := uc.DealRepo.ListDetailed(ctx)
	if err != nil {
		return nil, newDatabaseError(err)
	}
	return report.Funnel(deals), nil
}

// IndicatorsPanel nunca falha por causa das datas: valores inválidos caem na janela padrão.
func (uc *DashboardUseCase) IndicatorsPanel(ctx context.Context, inicio, fim string) (*report.IndicatorsPanel, error) {
	window := uc.Report.ResolveWindow(inicio, fim)

	deals, err := uc.DealRepo.ListDetailed(ctx)
	if err != nil {
		return nil, newDatabaseError(err)
	}

	employees, err := uc.EmployeeRepo.ListActive(ctx)
	if err != nil {
		return nil, newDatabaseError(err)
	}

	return uc.Report.Indicators(deals, employees, window), nil
}
