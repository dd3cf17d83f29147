package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/crm-api/internal/entity"
	"github.com/xavierca1/crm-api/internal/infra/http/views"
	"github.com/xavierca1/crm-api/internal/report"
	"github.com/xavierca1/crm-api/internal/usecase"
)

type MockContactService struct{ mock.Mock }

func (m *MockContactService) Create(ctx context.Context, input usecase.CreateContactInput) (*entity.Contact, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *MockContactService) List(ctx context.Context, filter entity.ContactFilter) ([]*entity.Contact, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Contact), args.Error(1)
}

func (m *MockContactService) GetByID(ctx context.Context, id int64) (*entity.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *MockContactService) Update(ctx context.Context, id int64, input usecase.UpdateContactInput) (*entity.Contact, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *MockContactService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockEmployeeService struct{ mock.Mock }

func (m *MockEmployeeService) Create(ctx context.Context, input usecase.CreateEmployeeInput) (*entity.Employee, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Employee), args.Error(1)
}

func (m *MockEmployeeService) List(ctx context.Context, filter entity.EmployeeFilter) ([]*entity.Employee, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Employee), args.Error(1)
}

func (m *MockEmployeeService) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Employee), args.Error(1)
}

func (m *MockEmployeeService) Update(ctx context.Context, id int64, input usecase.UpdateEmployeeInput) (*entity.Employee, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Employee), args.Error(1)
}

func (m *MockEmployeeService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockDealService struct{ mock.Mock }

func (m *MockDealService) Create(ctx context.Context, input usecase.CreateDealInput) (*entity.Deal, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Deal), args.Error(1)
}

func (m *MockDealService) List(ctx context.Context, filter entity.DealFilter) ([]*entity.Deal, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Deal), args.Error(1)
}

func (m *MockDealService) GetByID(ctx context.Context, id int64) (*entity.Deal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Deal), args.Error(1)
}

func (m *MockDealService) Update(ctx context.Context, id int64, input usecase.UpdateDealInput) (*entity.Deal, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Deal), args.Error(1)
}

func (m *MockDealService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockDashboardService struct{ mock.Mock }

func (m *MockDashboardService) ContactPanel(ctx context.Context) (*report.ContactPanel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.ContactPanel), args.Error(1)
}

func (m *MockDashboardService) FunnelPanel(ctx context.Context) (*report.FunnelPanel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.FunnelPanel), args.Error(1)
}

func (m *MockDashboardService) IndicatorsPanel(ctx context.Context, inicio, fim string) (*report.IndicatorsPanel, error) {
	args := m.Called(ctx, inicio, fim)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.IndicatorsPanel), args.Error(1)
}

type MockSeedService struct{ mock.Mock }

func (m *MockSeedService) Execute(ctx context.Context, input usecase.SeedInput) (*usecase.SeedOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.SeedOutput), args.Error(1)
}

type MockRenderer struct{ mock.Mock }

func (m *MockRenderer) Render(w http.ResponseWriter, name string, page views.Page) error {
	return m.Called(w, name, page).Error(0)
}

// newRequest monta a requisição com o {id} já resolvido, como o chi faria.
func newRequest(method, target, body, id string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}

func strPtr(s string) *string { return &s }
