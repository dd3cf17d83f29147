package usecase

import (
	"context"
	"strings"

	"github.com/xavierca1/crm-api/internal/entity"
)

const (
	msgContactNotFound  = "Contato não encontrado."
	msgContactDuplicate = "Já existe um contato cadastrado com esse e-mail."
)

type ContactUseCase struct {
	Repo entity.ContactRepositoryInterface
	Now  Clock
}

func NewContactUseCase(repo entity.ContactRepositoryInterface) *ContactUseCase {
	return &ContactUseCase{Repo: repo}
}

func (uc *ContactUseCase) Create(ctx context.Context, input CreateContactInput) (*entity.Contact, error) {
	input.Nome = strings.TrimSpace(input.Nome)
	input.Email = trimOptional(input.Email)
	input.Telefone = trimOptional(input.Telefone)
	input.Empresa = trimOptional(input.Empresa)
	input.Origem = trimOptional(input.Origem)
	input.Situacao = strings.TrimSpace(input.Situacao)
	if input.Situacao == "" {
		input.Situacao = entity.SituacaoLead
	}

	var errs []ValidationError
	errs = append(errs, validateRequiredText("nome", input.Nome, maxNameLength)...)
	errs = append(errs, validateEmail("email", input.Email)...)
	errs = append(errs, validateContactTexts(input.Telefone, input.Empresa, input.Origem, &input.Situacao)...)
	if len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	if input.Email != nil {
		if err := uc.ensureEmailAvailable(ctx, *input.Email, 0); err != nil {
			return nil, err
		}
	}

	contact := &entity.Contact{
		Nome:     input.Nome,
		Email:    input.Email,
		Telefone: input.Telefone,
		Empresa:  input.Empresa,
		Origem:   input.Origem,
		Situacao: input.Situacao,
		CriadoEm: uc.Now.timestamp(),
	}

	if err := uc.Repo.Create(ctx, contact); err != nil {
		return nil, storeError(err, msgContactNotFound, msgContactDuplicate)
	}

	return contact, nil
}

func (uc *ContactUseCase) List(ctx context.Context, filter entity.ContactFilter) ([]*entity.Contact, error) {
	if errs := ValidatePagination(filter.Pagination); len(errs) > 0 {
		return nil, validationFailed(errs)
	}
	filter.Situacao = strings.TrimSpace(filter.Situacao)

	contacts, err := uc.Repo.List(ctx, filter)
	if err != nil {
		return nil, newDatabaseError(err)
	}
	return contacts, nil
}

func (uc *ContactUseCase) GetByID(ctx context.Context, id int64) (*entity.Contact, error) {
	contact, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, msgContactNotFound, msgContactDuplicate)
	}
	return contact, nil
}

// Update aplica apenas os campos enviados. Para campos opcionais, string vazia limpa o valor.
func (uc *ContactUseCase) Update(ctx context.Context, id int64, input UpdateContactInput) (*entity.Contact, error) {
	input.Nome = trimPatch(input.Nome)
	input.Email = trimPatch(input.Email)
	input.Telefone = trimPatch(input.Telefone)
	input.Empresa = trimPatch(input.Empresa)
	input.Origem = trimPatch(input.Origem)
	input.Situacao = trimPatch(input.Situacao)

	var errs []ValidationError
	if input.Nome != nil {
		errs = append(errs, validateRequiredText("nome", *input.Nome, maxNameLength)...)
	}
	errs = append(errs, validateEmail("email", input.Email)...)
	errs = append(errs, validateContactTexts(input.Telefone, input.Empresa, input.Origem, input.Situacao)...)
	if input.Situacao != nil && *input.Situacao == "" {
		errs = append(errs, ValidationError{"situacao", "não pode ser vazia"})
	}
	if len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	contact, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if email := emptyToNil(input.Email); email != nil && !sameString(contact.Email, *email) {
		if err := uc.ensureEmailAvailable(ctx, *email, id); err != nil {
			return nil, err
		}
	}

	if input.Nome != nil {
		contact.Nome = *input.Nome
	}
	if input.Email != nil {
		contact.Email = emptyToNil(input.Email)
	}
	if input.Telefone != nil {
		contact.Telefone = emptyToNil(input.Telefone)
	}
	if input.Empresa != nil {
		contact.Empresa = emptyToNil(input.Empresa)
	}
	if input.Origem != nil {
		contact.Origem = emptyToNil(input.Origem)
	}
	if input.Situacao != nil {
		contact.Situacao = *input.Situacao
	}

	now := uc.Now.timestamp()
	contact.AtualizadoEm = &now

	if err := uc.Repo.Update(ctx, contact); err != nil {
		return nil, storeError(err, msgContactNotFound, msgContactDuplicate)
	}

	return contact, nil
}

// Delete remove o contato junto com os negócios dele.
func (uc *ContactUseCase) Delete(ctx context.Context, id int64) error {
	return storeError(uc.Repo.Delete(ctx, id), msgContactNotFound, msgContactDuplicate)
}

func (uc *ContactUseCase) ensureEmailAvailable(ctx context.Context, email string, excludeID int64) error {
	exists, err := uc.Repo.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return newDatabaseError(err)
	}
	if exists {
		return newDuplicateKey(msgContactDuplicate)
	}
	return nil
}

func validateContactTexts(telefone, empresa, origem, situacao *string) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateOptionalText("telefone", telefone, maxPhoneLength)...)
	errs = append(errs, validateOptionalText("empresa", empresa, maxCompanyLength)...)
	errs = append(errs, validateOptionalText("origem", origem, maxOrigemLength)...)
	errs = append(errs, validateOptionalText("situacao", situacao, maxSituacaoLength)...)
	return errs
}

func sameString(current *string, v string) bool {
	return current != nil && *current == v
}
