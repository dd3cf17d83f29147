package usecase

import (
	"context"
	"strings"

	"github.com/xavierca1/crm-api/internal/entity"
)

const (
	msgEmployeeNotFound  = "Funcionário não encontrado."
	msgEmployeeDuplicate = "Já existe um funcionário cadastrado com esse e-mail."
	maxCargoLength       = 100
)

type EmployeeUseCase struct {
	Repo entity.EmployeeRepositoryInterface
	Now  Clock
}

func NewEmployeeUseCase(repo entity.EmployeeRepositoryInterface) *EmployeeUseCase {
	return &EmployeeUseCase{Repo: repo}
}

func (uc *EmployeeUseCase) Create(ctx context.Context, input CreateEmployeeInput) (*entity.Employee, error) {
	input.Nome = strings.TrimSpace(input.Nome)
	input.Email = trimOptional(input.Email)
	input.Cargo = trimOptional(input.Cargo)

	var errs []ValidationError
	errs = append(errs, validateRequiredText("nome", input.Nome, maxNameLength)...)
	errs = append(errs, validateEmail("email", input.Email)...)
	errs = append(errs, validateOptionalText("cargo", input.Cargo, maxCargoLength)...)
	if len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	if input.Email != nil {
		if err := uc.ensureEmailAvailable(ctx, *input.Email, 0); err != nil {
			return nil, err
		}
	}

	ativo := true
	if input.Ativo != nil {
		ativo = *input.Ativo
	}

	employee := &entity.Employee{
		Nome:     input.Nome,
		Email:    input.Email,
		Cargo:    input.Cargo,
		Ativo:    ativo,
		CriadoEm: uc.Now.timestamp(),
	}

	if err := uc.Repo.Create(ctx, employee); err != nil {
		return nil, storeError(err, msgEmployeeNotFound, msgEmployeeDuplicate)
	}

	return employee, nil
}

func (uc *EmployeeUseCase) List(ctx context.Context, filter entity.EmployeeFilter) ([]*entity.Employee, error) {
	if errs := ValidatePagination(filter.Pagination); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	employees, err := uc.Repo.List(ctx, filter)
	if err != nil {
		return nil, newDatabaseError(err)
	}
	return employees, nil
}

func (uc *EmployeeUseCase) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	employee, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, msgEmployeeNotFound, msgEmployeeDuplicate)
	}
	return employee, nil
}

func (uc *EmployeeUseCase) Update(ctx context.Context, id int64, input UpdateEmployeeInput) (*entity.Employee, error) {
	input.Nome = trimPatch(input.Nome)
	input.Email = trimPatch(input.Email)
	input.Cargo = trimPatch(input.Cargo)

	var errs []ValidationError
	if input.Nome != nil {
		errs = append(errs, validateRequiredText("nome", *input.Nome, maxNameLength)...)
	}
	errs = append(errs, validateEmail("email", input.Email)...)
	errs = append(errs, validateOptionalText("cargo", input.Cargo, maxCargoLength)...)
	if len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	employee, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// o próprio registro não conta como conflito
	if email := emptyToNil(input.Email); email != nil && !sameString(employee.Email, *email) {
		if err := uc.ensureEmailAvailable(ctx, *email, id); err != nil {
			return nil, err
		}
	}

	if input.Nome != nil {
		employee.Nome = *input.Nome
	}
	if input.Email != nil {
		employee.Email = emptyToNil(input.Email)
	}
	if input.Cargo != nil {
		employee.Cargo = emptyToNil(input.Cargo)
	}
	if input.Ativo != nil {
		employee.Ativo = *input.Ativo
	}

	now := uc.Now.timestamp()
	employee.AtualizadoEm = &now

	if err := uc.Repo.Update(ctx, employee); err != nil {
		return nil, storeError(err, msgEmployeeNotFound, msgEmployeeDuplicate)
	}

	return employee, nil
}

// Delete remove o funcionário; os negócios dele ficam sem responsável.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id int64) error {
	return storeError(uc.Repo.Delete(ctx, id), msgEmployeeNotFound, msgEmployeeDuplicate)
}

func (uc *EmployeeUseCase) ensureEmailAvailable(ctx context.Context, email string, excludeID int64) error {
	exists, err := uc.Repo.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return newDatabaseError(err)
	}
	if exists {
		return newDuplicateKey(msgEmployeeDuplicate)
	}
	return nil
}
