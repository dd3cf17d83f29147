package usecase

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/xavierca1/crm-api/internal/entity"
)

const maxSeedQuantity = 5000

var (
	seedFirstNames   = []string{"Ana", "Bruno", "Carla", "Daniel", "Eduarda", "Felipe", "Gabriela", "Henrique", "Isabela", "João", "Larissa", "Marcos", "Natalia", "Otávio", "Paula"}
	seedLastNames    = []string{"Silva", "Souza", "Oliveira", "Pereira", "Costa", "Almeida", "Gomes", "Ribeiro", "Carvalho", "Santos"}
	seedRoles        = []string{"Vendedor", "Closer", "SDR", "Gestor Comercial", "Pré-vendas"}
	seedContactNames = []string{"Carlos", "Fernanda", "Rodrigo", "Juliana", "Thiago", "Patrícia", "André", "Luciana", "Vinícius", "Marta", "Rafael", "Camila", "Diego", "Bianca", "Gustavo"}
	seedCompanies    = []string{"Tech Manaus", "Inova Digital", "Amazon Solutions", "Comercial Rio Negro", "Studio Criar", "Global Contábil", "Impacto Vendas", "Norte Serviços", "Amazônia Solar"}
	seedPhones       = []string{"9299990000", "9298880000", "9299770000"}
	seedChannels     = []string{"whatsapp", "site", "instagram", "indicação", "ligação"}

	seedStatuses      = []string{entity.SituacaoLead, entity.SituacaoCliente, entity.SituacaoInativo}
	seedStatusWeights = []float64{0.6, 0.3, 0.1}
	seedStageWeights  = []float64{0.35, 0.30, 0.25, 0.10}

	seedProbabilities = map[string][]int{
		entity.FaseNovo:           {10, 20, 30, 40},
		entity.FaseEmProposta:     {40, 50, 60, 70},
		entity.FaseFechadoGanho:   {80, 90, 100},
		entity.FaseFechadoPerdido: {5, 10, 15},
	}
)

// SeedUseCase gera dados de exemplo para desenvolvimento. Só é exposto com APP_ENV=development.
type SeedUseCase struct {
	ContactRepo  entity.ContactRepositoryInterface
	EmployeeRepo entity.EmployeeRepositoryInterface
	DealRepo     entity.DealRepositoryInterface
	Location     *time.Location
	Now          Clock
	Rand         *rand.Rand
}

func NewSeedUseCase(
	contactRepo entity.ContactRepositoryInterface,
	employeeRepo entity.EmployeeRepositoryInterface,
	dealRepo entity.DealRepositoryInterface,
	loc *time.Location,
) *SeedUseCase {
	return &SeedUseCase{
		ContactRepo:  contactRepo,
		EmployeeRepo: employeeRepo,
		DealRepo:     dealRepo,
		Location:     loc,
	}
}

func ValidateSeedInput(input SeedInput) []ValidationError {
	var errors []ValidationError

	check := func(field string, v int) {
		if v < 0 || v > maxSeedQuantity {
			errors = append(errors, ValidationError{field, fmt.Sprintf("deve estar entre 0 e %d", maxSeedQuantity)})
		}
	}
	check("dias_passado", input.DiasPassado)
	check("qtd_funcionarios", input.QtdFuncionarios)
	check("qtd_contatos", input.QtdContatos)
	check("qtd_negocios", input.QtdNegocios)

	return errors
}

func (uc *SeedUseCase) Execute(ctx context.Context, input SeedInput) (*SeedOutput, error) {
	if errs := ValidateSeedInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	rng := uc.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	loc := uc.Location
	if loc == nil {
		loc = time.UTC
	}
	now := uc.Now.timestamp()

	if input.Limpar {
		if err := uc.clear(ctx); err != nil {
			return nil, newDatabaseError(err)
		}
		log.Printf("🧹 Seed: tabelas limpas")
	}

	// sem limpar, um sufixo evita colisão com os e-mails de execuções anteriores
	suffix := ""
	if !input.Limpar {
		suffix = "." + strconv.FormatInt(now.UnixNano(), 36)
	}

	out := &SeedOutput{
		Mensagem:   "Seed de desenvolvimento executada com sucesso.",
		Parametros: input,
	}

	employees := make([]*entity.Employee, 0, input.QtdFuncionarios)
	for i := 0; i < input.QtdFuncionarios; i++ {
		e := &entity.Employee{
			Nome:     pick(rng, seedFirstNames) + " " + pick(rng, seedLastNames),
			Email:    ptrTo(fmt.Sprintf("vendedor%d%s@empresa.com", i+1, suffix)),
			Cargo:    ptrTo(pick(rng, seedRoles)),
			Ativo:    true,
			CriadoEm: now,
		}
		if err := uc.EmployeeRepo.Create(ctx, e); err != nil {
			return nil, newDatabaseError(err)
		}
		employees = append(employees, e)
	}
	out.Resumo.FuncionariosCriados = len(employees)

	contacts := make([]*entity.Contact, 0, input.QtdContatos)
	for i := 0; i < input.QtdContatos; i++ {
		first := pick(rng, seedContactNames)
		empresa := pick(rng, seedCompanies)
		phone := pick(rng, seedPhones)

		c := &entity.Contact{
			Nome:     first + " " + pick(rng, seedLastNames),
			Email:    ptrTo(fmt.Sprintf("%s%d%s@%s.com", strings.ToLower(first), i+1, suffix, strings.ToLower(strings.Fields(empresa)[0]))),
			Telefone: ptrTo(phone[:len(phone)-1] + strconv.Itoa(i%10)),
			Empresa:  ptrTo(empresa),
			Origem:   ptrTo(pick(rng, seedChannels)),
			Situacao: seedStatuses[weightedIndex(rng, seedStatusWeights)],
			CriadoEm: now,
		}
		if err := uc.ContactRepo.Create(ctx, c); err != nil {
			return nil, newDatabaseError(err)
		}
		contacts = append(contacts, c)
	}
	out.Resumo.ContatosCriados = len(contacts)

	if len(contacts) == 0 || len(employees) == 0 {
		return out, nil
	}

	today := entity.DateOf(now, loc)
	for i := 0; i < input.QtdNegocios; i++ {
		d := uc.randomDeal(rng, i, today, input.DiasPassado, pick(rng, contacts), pick(rng, employees), loc)
		if err := uc.DealRepo.Create(ctx, d); err != nil {
			return nil, newDatabaseError(err)
		}

		out.Resumo.NegociosCriados++
		switch d.Fase {
		case entity.FaseFechadoGanho:
			out.Resumo.NegociosGanhos++
		case entity.FaseFechadoPerdido:
			out.Resumo.NegociosPerdidos++
		}
	}

	log.Printf("🌱 Seed: %d funcionários, %d contatos, %d negócios",
		out.Resumo.FuncionariosCriados, out.Resumo.ContatosCriados, out.Resumo.NegociosCriados)

	return out, nil
}

func (uc *SeedUseCase) clear(ctx context.Context) error {
	if err := uc.DealRepo.DeleteAll(ctx); err != nil {
		return err
	}
	if err := uc.ContactRepo.DeleteAll(ctx); err != nil {
		return err
	}
	return uc.EmployeeRepo.DeleteAll(ctx)
}

// randomDeal cria um negócio com data de criação no passado; fechados recebem data de fechamento até hoje.
func (uc *SeedUseCase) randomDeal(rng *rand.Rand, i int, today entity.Date, diasPassado int, c *entity.Contact, resp *entity.Employee, loc *time.Location) *entity.Deal {
	created := today.AddDays(-rng.IntN(max(diasPassado, 1) + 1))
	fase := entity.Fases[weightedIndex(rng, seedStageWeights)]
	valor := math.Round((500+rng.Float64()*19500)*100) / 100
	probabilidade := pick(rng, seedProbabilities[fase])
	prevista := created.AddDays(5 + rng.IntN(26))

	var fechamento *entity.Date
	if fase == entity.FaseFechadoGanho || fase == entity.FaseFechadoPerdido {
		f := created.AddDays(1 + rng.IntN(45))
		if f.After(today) {
			f = today
		}
		fechamento = &f
	}

	empresa := ""
	if c.Empresa != nil {
		empresa = *c.Empresa
	}

	return &entity.Deal{
		Titulo:                 fmt.Sprintf("Projeto #%d - %s", i+1, empresa),
		Descricao:              ptrTo(fmt.Sprintf("Negócio gerado automaticamente para testes (contato: %s).", c.Nome)),
		ValorPrevisto:          &valor,
		Fase:                   fase,
		Origem:                 ptrTo(pick(rng, seedChannels)),
		Probabilidade:          &probabilidade,
		ContatoID:              c.ID,
		ResponsavelID:          &resp.ID,
		DataPrevistaFechamento: &prevista,
		DataFechamento:         fechamento,
		CriadoEm:               time.Date(created.Year(), created.Month(), created.Day(), 0, 0, 0, 0, loc).UTC(),
	}
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

// weightedIndex sorteia um índice proporcional aos pesos.
func weightedIndex(rng *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}

	r := rng.Float64() * total
	for i, w := range weights {
		if r < w {
			return i
		}
		r -= w
	}
	return len(weights) - 1
}

func ptrTo[T any](v T) *T {
	return &v
}
