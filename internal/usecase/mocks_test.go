package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/crm-api/internal/entity"
	"github.com/xavierca1/crm-api/internal/infra/queue"
)

var fixedNow = time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, c *entity.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepo) FindByID(ctx context.Context, id int64) (*entity.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *MockContactRepo) List(ctx context.Context, filter entity.ContactFilter) ([]*entity.Contact, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*entity.Contact), args.Error(1)
}

func (m *MockContactRepo) Update(ctx context.Context, c *entity.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContactRepo) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockContactRepo) ListAll(ctx context.Context) ([]*entity.Contact, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Contact), args.Error(1)
}

func (m *MockContactRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEmployeeRepo) FindByID(ctx context.Context, id int64) (*entity.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Employee), args.Error(1)
}

func (m *MockEmployeeRepo) List(ctx context.Context, filter entity.EmployeeFilter) ([]*entity.Employee, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*entity.Employee), args.Error(1)
}

func (m *MockEmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEmployeeRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmployeeRepo) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeRepo) ListActive(ctx context.Context) ([]*entity.Employee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Employee), args.Error(1)
}

func (m *MockEmployeeRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockDealRepo struct {
	mock.Mock
}

func (m *MockDealRepo) Create(ctx context.Context, d *entity.Deal) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDealRepo) FindByID(ctx context.Context, id int64) (*entity.Deal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Deal), args.Error(1)
}

func (m *MockDealRepo) List(ctx context.Context, filter entity.DealFilter) ([]*entity.Deal, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*entity.Deal), args.Error(1)
}

func (m *MockDealRepo) Update(ctx context.Context, d *entity.Deal) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDealRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDealRepo) ListDetailed(ctx context.Context) ([]*entity.DealDetail, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.DealDetail), args.Error(1)
}

func (m *MockDealRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishDealEvent(ctx context.Context, event queue.DealEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }
