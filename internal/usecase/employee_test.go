package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/crm-api/internal/entity"
)

func newEmployeeUseCase(repo *MockEmployeeRepo) *EmployeeUseCase {
	uc := NewEmployeeUseCase(repo)
	uc.Now = fixedClock
	return uc
}

func TestEmployeeCreate_DefaultsToActive(t *testing.T) {
	repo := new(MockEmployeeRepo)
	repo.On("ExistsByEmail", mock.Anything, "maria@empresa.com", int64(0)).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	e, err := newEmployeeUseCase(repo).Create(context.Background(), CreateEmployeeInput{
		Nome:  "Maria",
		Email: strPtr("maria@empresa.com"),
		Cargo: strPtr("Vendedora"),
	})

	require.NoError(t, err)
	assert.True(t, e.Ativo)
	assert.Equal(t, fixedNow, e.CriadoEm)
	assert.Nil(t, e.AtualizadoEm)
}

func TestEmployeeCreate_Inactive(t *testing.T) {
	repo := new(MockEmployeeRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	ativo := false

	e, err := newEmployeeUseCase(repo).Create(context.Background(), CreateEmployeeInput{Nome: "Pedro", Ativo: &ativo})

	require.NoError(t, err)
	assert.False(t, e.Ativo)
}

func TestEmployeeCreate_DuplicateEmail(t *testing.T) {
	repo := new(MockEmployeeRepo)
	repo.On("ExistsByEmail", mock.Anything, "maria@empresa.com", int64(0)).Return(true, nil)

	_, err := newEmployeeUseCase(repo).Create(context.Background(), CreateEmployeeInput{
		Nome:  "Maria",
		Email: strPtr("maria@empresa.com"),
	})

	assert.True(t, HasCode(err, CodeDuplicateKey))
}

func TestEmployeeUpdate_SameEmailIsNotAConflict(t *testing.T) {
	repo := new(MockEmployeeRepo)
	repo.On("FindByID", mock.Anything, int64(4)).Return(&entity.Employee{ID: 4, Nome: "Maria", Email: strPtr("maria@empresa.com"), Ativo: true}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	ativo := false

	e, err := newEmployeeUseCase(repo).Update(context.Background(), 4, UpdateEmployeeInput{
		Email: strPtr("maria@empresa.com"),
		Ativo: &ativo,
	})

	require.NoError(t, err)
	assert.False(t, e.Ativo)
	assert.Equal(t, "Maria", e.Nome)
	require.NotNil(t, e.AtualizadoEm)
	repo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestEmployeeUpdate_EmailTakenByAnother(t *testing.T) {
	repo := new(MockEmployeeRepo)
	repo.On("FindByID", mock.Anything, int64(4)).Return(&entity.Employee{ID: 4, Nome: "Maria"}, nil)
	repo.On("ExistsByEmail", mock.Anything, "outro@empresa.com", int64(4)).Return(true, nil)

	_, err := newEmployeeUseCase(repo).Update(context.Background(), 4, UpdateEmployeeInput{Email: strPtr("outro@empresa.com")})

	assert.True(t, HasCode(err, CodeDuplicateKey))
}

func TestEmployeeUpdate_NotFound(t *testing.T) {
	repo := new(MockEmployeeRepo)
	repo.On("FindByID", mock.Anything, int64(99)).Return(nil, entity.ErrNotFound)

	_, err := newEmployeeUseCase(repo).Update(context.Background(), 99, UpdateEmployeeInput{Nome: strPtr("X")})

	assert.True(t, HasCode(err, CodeNotFound))
}

func TestEmployeeList(t *testing.T) {
	repo := new(MockEmployeeRepo)
	filter := entity.EmployeeFilter{SomenteAtivos: true, Pagination: entity.DefaultPagination()}
	repo.On("List", mock.Anything, filter).Return([]*entity.Employee{{ID: 1, Ativo: true}}, nil)

	got, err := newEmployeeUseCase(repo).List(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestEmployeeDelete_NotFound(t *testing.T) {
	repo := new(MockEmployeeRepo)
	repo.On("Delete", mock.Anything, int64(5)).Return(entity.ErrNotFound)

	err := newEmployeeUseCase(repo).Delete(context.Background(), 5)

	assert.True(t, HasCode(err, CodeNotFound))
}
