package usecase

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/crm-api/internal/entity"
)

func newSeedUseCase() (*SeedUseCase, *MockContactRepo, *MockEmployeeRepo, *MockDealRepo) {
	contacts := new(MockContactRepo)
	employees := new(MockEmployeeRepo)
	deals := new(MockDealRepo)

	uc := NewSeedUseCase(contacts, employees, deals, time.UTC)
	uc.Now = fixedClock
	uc.Rand = rand.New(rand.NewPCG(1, 2))
	return uc, contacts, employees, deals
}

func TestSeedExecute(t *testing.T) {
	uc, contacts, employees, deals := newSeedUseCase()

	var nextID int64
	assignEmployee := func(args mock.Arguments) { nextID++; args.Get(1).(*entity.Employee).ID = nextID }
	assignContact := func(args mock.Arguments) { nextID++; args.Get(1).(*entity.Contact).ID = nextID }

	var created []*entity.Deal
	deals.On("DeleteAll", mock.Anything).Return(nil).Once()
	contacts.On("DeleteAll", mock.Anything).Return(nil).Once()
	employees.On("DeleteAll", mock.Anything).Return(nil).Once()
	employees.On("Create", mock.Anything, mock.Anything).Run(assignEmployee).Return(nil)
	contacts.On("Create", mock.Anything, mock.Anything).Run(assignContact).Return(nil)
	deals.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { created = append(created, args.Get(1).(*entity.Deal)) }).
		Return(nil)

	input := SeedInput{Limpar: true, DiasPassado: 30, QtdFuncionarios: 3, QtdContatos: 10, QtdNegocios: 50}
	out, err := uc.Execute(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, 3, out.Resumo.FuncionariosCriados)
	assert.Equal(t, 10, out.Resumo.ContatosCriados)
	assert.Equal(t, 50, out.Resumo.NegociosCriados)
	assert.Equal(t, input, out.Parametros)
	require.Len(t, created, 50)

	today := entity.NewDate(2025, time.March, 10)
	ganhos, perdidos := 0, 0
	for _, d := range created {
		assert.True(t, entity.IsValidFase(d.Fase))
		assert.GreaterOrEqual(t, *d.ValorPrevisto, 500.0)
		assert.LessOrEqual(t, *d.ValorPrevisto, 20000.0)
		assert.Contains(t, seedProbabilities[d.Fase], *d.Probabilidade)
		assert.NotZero(t, d.ContatoID)
		require.NotNil(t, d.ResponsavelID)

		criado := entity.DateOf(d.CriadoEm, time.UTC)
		assert.False(t, criado.After(today))
		assert.False(t, criado.Before(today.AddDays(-30)))

		switch d.Fase {
		case entity.FaseFechadoGanho, entity.FaseFechadoPerdido:
			require.NotNil(t, d.DataFechamento)
			assert.False(t, d.DataFechamento.After(today))
			assert.False(t, d.DataFechamento.Before(criado))
			if d.Fase == entity.FaseFechadoGanho {
				ganhos++
			} else {
				perdidos++
			}
		default:
			assert.Nil(t, d.DataFechamento)
		}
	}
	assert.Equal(t, ganhos, out.Resumo.NegociosGanhos)
	assert.Equal(t, perdidos, out.Resumo.NegociosPerdidos)

	deals.AssertExpectations(t)
	contacts.AssertExpectations(t)
}

func TestSeedExecute_NoContactsCreatesNoDeals(t *testing.T) {
	uc, _, employees, deals := newSeedUseCase()
	employees.On("Create", mock.Anything, mock.Anything).Return(nil)

	out, err := uc.Execute(context.Background(), SeedInput{QtdFuncionarios: 2, QtdNegocios: 10})

	require.NoError(t, err)
	assert.Equal(t, 0, out.Resumo.NegociosCriados)
	deals.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	deals.AssertNotCalled(t, "DeleteAll", mock.Anything)
}

func TestSeedExecute_RejectsNegativeQuantities(t *testing.T) {
	uc, _, _, _ := newSeedUseCase()

	_, err := uc.Execute(context.Background(), SeedInput{QtdContatos: -1})

	assert.True(t, HasCode(err, CodeValidation))
}

func TestWeightedIndex_StaysInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	counts := make([]int, len(seedStageWeights))
	for i := 0; i < 1000; i++ {
		counts[weightedIndex(rng, seedStageWeights)]++
	}
	for _, c := range counts {
		assert.Positive(t, c)
	}
}
