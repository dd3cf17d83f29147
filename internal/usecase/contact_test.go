package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/crm-api/internal/entity"
)

func newContactUseCase(repo *MockContactRepo) *ContactUseCase {
	uc := NewContactUseCase(repo)
	uc.Now = fixedClock
	return uc
}

func TestContactCreate_Success(t *testing.T) {
	repo := new(MockContactRepo)
	repo.On("ExistsByEmail", mock.Anything, "joao@empresa.com", int64(0)).Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Contact")).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.Contact).ID = 1 }).
		Return(nil)

	c, err := newContactUseCase(repo).Create(context.Background(), CreateContactInput{
		Nome:     "  João Silva ",
		Email:    strPtr(" joao@empresa.com "),
		Telefone: strPtr(""),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)
	assert.Equal(t, "João Silva", c.Nome)
	assert.Equal(t, "joao@empresa.com", *c.Email)
	assert.Nil(t, c.Telefone)
	assert.Equal(t, entity.SituacaoLead, c.Situacao)
	assert.Equal(t, fixedNow, c.CriadoEm)
	assert.Nil(t, c.AtualizadoEm)
	repo.AssertExpectations(t)
}

func TestContactCreate_WithoutEmailSkipsUniquenessCheck(t *testing.T) {
	repo := new(MockContactRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := newContactUseCase(repo).Create(context.Background(), CreateContactInput{Nome: "Sem Email"})

	require.NoError(t, err)
	repo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestContactCreate_DuplicateEmail(t *testing.T) {
	repo := new(MockContactRepo)
	repo.On("ExistsByEmail", mock.Anything, "joao@empresa.com", int64(0)).Return(true, nil)

	_, err := newContactUseCase(repo).Create(context.Background(), CreateContactInput{
		Nome:  "João",
		Email: strPtr("joao@empresa.com"),
	})

	assert.True(t, HasCode(err, CodeDuplicateKey))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestContactCreate_RaceOnUniqueIndex(t *testing.T) {
	repo := new(MockContactRepo)
	repo.On("ExistsByEmail", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(entity.ErrEmailAlreadyExists)

	_, err := newContactUseCase(repo).Create(context.Background(), CreateContactInput{
		Nome:  "João",
		Email: strPtr("joao@empresa.com"),
	})

	assert.True(t, HasCode(err, CodeDuplicateKey))
}

func TestContactCreate_Validation(t *testing.T) {
	cases := []struct {
		name  string
		input CreateContactInput
		field string
	}{
		{"nome vazio", CreateContactInput{Nome: "   "}, "nome"},
		{"email inválido", CreateContactInput{Nome: "João", Email: strPtr("joao@")}, "email"},
		{"email com nome de exibição", CreateContactInput{Nome: "João", Email: strPtr("João <joao@x.com>")}, "email"},
		{"email longo demais", CreateContactInput{Nome: "João", Email: strPtr(strings.Repeat("a", 250) + "@x.com")}, "email"},
		{"nome longo demais", CreateContactInput{Nome: strings.Repeat("n", 201)}, "nome"},
		{"origem longa demais", CreateContactInput{Nome: "João", Origem: strPtr(strings.Repeat("o", 101))}, "origem"},
		{"telefone longo demais", CreateContactInput{Nome: "João", Telefone: strPtr(strings.Repeat("9", 51))}, "telefone"},
		{"empresa longa demais", CreateContactInput{Nome: "João", Empresa: strPtr(strings.Repeat("e", 201))}, "empresa"},
		{"situação longa demais", CreateContactInput{Nome: "João", Situacao: strings.Repeat("s", 51)}, "situacao"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockContactRepo)

			_, err := newContactUseCase(repo).Create(context.Background(), tc.input)

			require.Error(t, err)
			assert.True(t, HasCode(err, CodeValidation))
			assert.Contains(t, err.Error(), tc.field)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestContactList_RejectsOutOfRangePagination(t *testing.T) {
	repo := new(MockContactRepo)
	uc := newContactUseCase(repo)

	for _, p := range []entity.Pagination{{Offset: -1, Limit: 10}, {Offset: 0, Limit: 0}, {Offset: 0, Limit: 501}} {
		_, err := uc.List(context.Background(), entity.ContactFilter{Pagination: p})
		assert.True(t, HasCode(err, CodeValidation), "paginação %+v", p)
	}
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestContactList_PassesFilter(t *testing.T) {
	repo := new(MockContactRepo)
	filter := entity.ContactFilter{Situacao: "cliente", Pagination: entity.Pagination{Offset: 0, Limit: 500}}
	repo.On("List", mock.Anything, filter).Return([]*entity.Contact{{ID: 2}}, nil)

	got, err := newContactUseCase(repo).List(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestContactGetByID_NotFound(t *testing.T) {
	repo := new(MockContactRepo)
	repo.On("FindByID", mock.Anything, int64(9)).Return(nil, entity.ErrNotFound)

	_, err := newContactUseCase(repo).GetByID(context.Background(), 9)

	assert.True(t, HasCode(err, CodeNotFound))
}

func TestContactUpdate_OnlySuppliedFieldsChange(t *testing.T) {
	repo := new(MockContactRepo)
	existing := &entity.Contact{
		ID:       1,
		Nome:     "João",
		Email:    strPtr("joao@empresa.com"),
		Telefone: strPtr("92999990000"),
		Situacao: entity.SituacaoLead,
		CriadoEm: fixedNow.AddDate(0, -1, 0),
	}
	repo.On("FindByID", mock.Anything, int64(1)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	c, err := newContactUseCase(repo).Update(context.Background(), 1, UpdateContactInput{
		Situacao: strPtr("cliente"),
	})

	require.NoError(t, err)
	assert.Equal(t, "cliente", c.Situacao)
	assert.Equal(t, "joao@empresa.com", *c.Email)
	assert.Equal(t, "92999990000", *c.Telefone)
	assert.Equal(t, "João", c.Nome)
	assert.Equal(t, fixedNow.AddDate(0, -1, 0), c.CriadoEm)
	require.NotNil(t, c.AtualizadoEm)
	assert.Equal(t, fixedNow, *c.AtualizadoEm)
	repo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestContactUpdate_EmptyStringClearsOptionalField(t *testing.T) {
	repo := new(MockContactRepo)
	repo.On("FindByID", mock.Anything, int64(1)).Return(&entity.Contact{ID: 1, Nome: "A", Empresa: strPtr("X")}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	c, err := newContactUseCase(repo).Update(context.Background(), 1, UpdateContactInput{Empresa: strPtr("")})

	require.NoError(t, err)
	assert.Nil(t, c.Empresa)
}

func TestContactUpdate_EmailChangeExcludesSelf(t *testing.T) {
	repo := new(MockContactRepo)
	repo.On("FindByID", mock.Anything, int64(1)).Return(&entity.Contact{ID: 1, Nome: "A", Email: strPtr("a@x.com")}, nil)
	repo.On("ExistsByEmail", mock.Anything, "b@x.com", int64(1)).Return(true, nil)

	_, err := newContactUseCase(repo).Update(context.Background(), 1, UpdateContactInput{Email: strPtr("b@x.com")})

	assert.True(t, HasCode(err, CodeDuplicateKey))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestContactUpdate_EmptyNomeIsRejected(t *testing.T) {
	repo := new(MockContactRepo)

	_, err := newContactUseCase(repo).Update(context.Background(), 1, UpdateContactInput{Nome: strPtr(" ")})

	assert.True(t, HasCode(err, CodeValidation))
}

func TestContactUpdate_TextTooLongIsRejected(t *testing.T) {
	repo := new(MockContactRepo)

	_, err := newContactUseCase(repo).Update(context.Background(), 1, UpdateContactInput{Origem: strPtr(strings.Repeat("o", 101))})

	require.Error(t, err)
	assert.True(t, HasCode(err, CodeValidation))
	assert.Contains(t, err.Error(), "origem")
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestContactCreate_TextAtColumnLimitIsAccepted(t *testing.T) {
	repo := new(MockContactRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := newContactUseCase(repo).Create(context.Background(), CreateContactInput{
		Nome:   strings.Repeat("n", 200),
		Origem: strPtr(strings.Repeat("o", 100)),
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestContactDelete(t *testing.T) {
	repo := new(MockContactRepo)
	repo.On("Delete", mock.Anything, int64(1)).Return(nil)
	repo.On("Delete", mock.Anything, int64(2)).Return(entity.ErrNotFound)
	repo.On("Delete", mock.Anything, int64(3)).Return(errors.New("conexão perdida"))
	uc := newContactUseCase(repo)

	assert.NoError(t, uc.Delete(context.Background(), 1))
	assert.True(t, HasCode(uc.Delete(context.Background(), 2), CodeNotFound))
	assert.True(t, IsTechnicalError(uc.Delete(context.Background(), 3)))
}
