package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/xavierca1/crm-api/internal/entity"
	"github.com/xavierca1/crm-api/internal/infra/metrics"
	"github.com/xavierca1/crm-api/internal/infra/queue"
)

const msgDealNotFound = "Negócio não encontrado."


type DealUseCase struct {
	Repo         entity.DealRepositoryInterface
	ContactRepo  entity.ContactRepositoryInterface
	EmployeeRepo entity.EmployeeRepositoryInterface
	Events       EventPublisherInterface // nil desliga a publicação
	Now          Clock
}

func NewDealUseCase(
	repo entity.DealRepositoryInterface,
	contactRepo entity.ContactRepositoryInterface,
	employeeRepo entity.EmployeeRepositoryInterface,
	events EventPublisherInterface,
) *DealUseCase {
	return &DealUseCase{
		Repo:         repo,
		ContactRepo:  contactRepo,
		EmployeeRepo: employeeRepo,
		Events:       events,
	}
}

func (uc *DealUseCase) Create(ctx context.Context, input CreateDealInput) (*entity.Deal, error) {
	input.Titulo = strings.TrimSpace(input.Titulo)
	input.Descricao = trimOptional(input.Descricao)
	input.Origem = trimOptional(input.Origem)
	input.Fase = strings.TrimSpace(input.Fase)
	if input.Fase == "" {
		input.Fase = entity.FaseNovo
	}
	if input.ResponsavelID != nil && *input.ResponsavelID == 0 {
		input.ResponsavelID = nil
	}

	var errs []ValidationError
	errs = append(errs, validateRequiredText("titulo", input.Titulo, maxNameLength)...)
	errs = append(errs, validateOptionalText("descricao", input.Descricao, maxDescriptionLength)...)
	errs = append(errs, validateOptionalText("origem", input.Origem, maxOrigemLength)...)
	errs = append(errs, validateFase(input.Fase)...)
	errs = append(errs, validateProbabilidade(input.Probabilidade)...)
	errs = append(errs, validateValor(input.ValorPrevisto)...)
	if input.ContatoID <= 0 {
		errs = append(errs, ValidationError{"contato_id", "é obrigatório"})
	}
	if len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	if err := uc.checkReferences(ctx, &input.ContatoID, input.ResponsavelID); err != nil {
		return nil, err
	}

	deal := &entity.Deal{
		Titulo:                 input.Titulo,
		Descricao:              input.Descricao,
		ValorPrevisto:          roundMoney(input.ValorPrevisto),
		Fase:                   input.Fase,
		Origem:                 input.Origem,
		Probabilidade:          input.Probabilidade,
		ContatoID:              input.ContatoID,
		ResponsavelID:          input.ResponsavelID,
		DataPrevistaFechamento: normalizeDate(input.DataPrevistaFechamento),
		DataFechamento:         normalizeDate(input.DataFechamento),
		CriadoEm:               uc.Now.timestamp(),
	}

	if err := uc.Repo.Create(ctx, deal); err != nil {
		return nil, storeError(err, msgDealNotFound, "")
	}

	metrics.RecordDealCreated(deal.Fase)
	uc.publish(ctx, queue.RoutingKeyDealCreated, deal)

	if deal.Fase == entity.FaseFechadoGanho {
		metrics.RecordDealWon(deal.Valor())
		uc.publish(ctx, queue.RoutingKeyDealWon, deal)
	}

	return deal, nil
}

func (uc *DealUseCase) List(ctx context.Context, filter entity.DealFilter) ([]*entity.Deal, error) {
	if errs := ValidatePagination(filter.Pagination); len(errs) > 0 {
		return nil, validationFailed(errs)
	}
	filter.Fase = strings.TrimSpace(filter.Fase)
	filter.Origem = strings.TrimSpace(filter.Origem)

	deals, err := uc.Repo.List(ctx, filter)
	if err != nil {
		return nil, newDatabaseError(err)
	}
	return deals, nil
}

func (uc *DealUseCase) GetByID(ctx context.Context, id int64) (*entity.Deal, error) {
	deal, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, msgDealNotFound, "")
	}
	return deal, nil
}

// Update aplica apenas os campos enviados. responsavel_id 0 e datas vazias limpam o valor.
func (uc *DealUseCase) Update(ctx context.Context, id int64, input UpdateDealInput) (*entity.Deal, error) {
	input.Titulo = trimPatch(input.Titulo)
	input.Descricao = trimPatch(input.Descricao)
	input.Origem = trimPatch(input.Origem)
	input.Fase = trimPatch(input.Fase)

	var errs []ValidationError
	if input.Titulo != nil {
		errs = append(errs, validateRequiredText("titulo", *input.Titulo, maxNameLength)...)
	}
	errs = append(errs, validateOptionalText("descricao", input.Descricao, maxDescriptionLength)...)
	errs = append(errs, validateOptionalText("origem", input.Origem, maxOrigemLength)...)
	if input.Fase != nil {
		errs = append(errs, validateFase(*input.Fase)...)
	}
	errs = append(errs, validateProbabilidade(input.Probabilidade)...)
	errs = append(errs, validateValor(input.ValorPrevisto)...)
	if input.ContatoID != nil && *input.ContatoID <= 0 {
		errs = append(errs, ValidationError{"contato_id", "deve referenciar um contato existente"})
	}
	if len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	deal, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	responsavelID := input.ResponsavelID
	if responsavelID != nil && *responsavelID == 0 {
		responsavelID = nil
	}
	if err := uc.checkReferences(ctx, input.ContatoID, responsavelID); err != nil {
		return nil, err
	}

	faseAnterior := deal.Fase

	if input.Titulo != nil {
		deal.Titulo = *input.Titulo
	}
	if input.Descricao != nil {
		deal.Descricao = emptyToNil(input.Descricao)
	}
	if input.ValorPrevisto != nil {
		deal.ValorPrevisto = roundMoney(input.ValorPrevisto)
	}
	if input.Fase != nil {
		deal.Fase = *input.Fase
	}
	if input.Origem != nil {
		deal.Origem = emptyToNil(input.Origem)
	}
	if input.Probabilidade != nil {
		deal.Probabilidade = input.Probabilidade
	}
	if input.ContatoID != nil {
		deal.ContatoID = *input.ContatoID
	}
	if input.ResponsavelID != nil {
		deal.ResponsavelID = responsavelID
	}
	if input.DataPrevistaFechamento != nil {
		deal.DataPrevistaFechamento = normalizeDate(input.DataPrevistaFechamento)
	}
	if input.DataFechamento != nil {
		deal.DataFechamento = normalizeDate(input.DataFechamento)
	}

	now := uc.Now.timestamp()
	deal.AtualizadoEm = &now

	if err := uc.Repo.Update(ctx, deal); err != nil {
		return nil, storeError(err, msgDealNotFound, "")
	}

	if faseAnterior != entity.FaseFechadoGanho && deal.Fase == entity.FaseFechadoGanho {
		metrics.RecordDealWon(deal.Valor())
		uc.publish(ctx, queue.RoutingKeyDealWon, deal)
	}

	return deal, nil
}

func (uc *DealUseCase) Delete(ctx context.Context, id int64) error {
	return storeError(uc.Repo.Delete(ctx, id), msgDealNotFound, "")
}

// checkReferences confere contato e responsável informados; nil significa "não informado".
func (uc *DealUseCase) checkReferences(ctx context.Context, contatoID, responsavelID *int64) error {
	if contatoID != nil {
		if _, err := uc.ContactRepo.FindByID(ctx, *contatoID); err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return validationFailed([]ValidationError{{"contato_id", "contato não encontrado"}})
			}
			return newDatabaseError(err)
		}
	}

	if responsavelID != nil {
		if _, err := uc.EmployeeRepo.FindByID(ctx, *responsavelID); err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return validationFailed([]ValidationError{{"responsavel_id", "funcionário não encontrado"}})
			}
			return newDatabaseError(err)
		}
	}

	return nil
}

// publish nunca falha a requisição: erro no broker só vira log e métrica.
func (uc *DealUseCase) publish(ctx context.Context, evento string, deal *entity.Deal) {
	if uc.Events == nil {
		return
	}

	var responsavel *entity.Employee
	if deal.ResponsavelID != nil {
		if emp, err := uc.EmployeeRepo.FindByID(ctx, *deal.ResponsavelID); err == nil {
			responsavel = emp
		}
	}

	event := queue.NewDealEvent(evento, deal, responsavel, uc.Now.timestamp())
	if err := uc.Events.PublishDealEvent(ctx, event); err != nil {
		log.Printf("⚠️ Falha ao publicar %s do negócio %d: %v", evento, deal.ID, err)
		metrics.RecordIntegrationError("rabbitmq", evento)
		return
	}

	log.Printf("📤 Evento %s publicado (negócio %d)", evento, deal.ID)
}
