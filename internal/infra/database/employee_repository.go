package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/crm-api/internal/entity"
)

const employeeColumns = `id, nome, email, cargo, ativo, criado_em, atualizado_em`

type EmployeeRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewEmployeeRepository(db *sql.DB, dialect Dialect) *EmployeeRepository {
	return &EmployeeRepository{DB: db, Dialect: dialect}
}

func (r *EmployeeRepository) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO funcionarios (nome, email, cargo, ativo, criado_em, atualizado_em)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	err := r.DB.QueryRowContext(ctx, r.Dialect.Rebind(query),
		e.Nome,
		nullable(e.Email),
		nullable(e.Cargo),
		e.Ativo,
		e.CriadoEm.UTC(),
		nullableTime(e.AtualizadoEm),
	).Scan(&e.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrEmailAlreadyExists
		}
		return fmt.Errorf("erro ao criar funcionário: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM funcionarios WHERE id = ?`

	e, err := scanEmployee(r.DB.QueryRowContext(ctx, r.Dialect.Rebind(query), id))
	if err != nil {
		return nil, notFoundIfNoRows(err)
	}
	return e, nil
}

func (r *EmployeeRepository) List(ctx context.Context, filter entity.EmployeeFilter) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM funcionarios`
	var args []any

	if filter.SomenteAtivos {
		query += ` WHERE ativo = ?`
		args = append(args, true)
	}

	query += ` ORDER BY nome, id LIMIT ? OFFSET ?`
	args = append(args, int64(filter.Limit), int64(filter.Offset))

	return r.query(ctx, query, args...)
}

func (r *EmployeeRepository) ListActive(ctx context.Context) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM funcionarios WHERE ativo = ? ORDER BY nome, id`
	return r.query(ctx, query, true)
}

func (r *EmployeeRepository) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE funcionarios
		SET nome = ?, email = ?, cargo = ?, ativo = ?, atualizado_em = ?
		WHERE id = ?
	`

	res, err := r.DB.ExecContext(ctx, r.Dialect.Rebind(query),
		e.Nome,
		nullable(e.Email),
		nullable(e.Cargo),
		e.Ativo,
		nullableTime(e.AtualizadoEm),
		e.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrEmailAlreadyExists
		}
		return fmt.Errorf("erro ao atualizar funcionário: %w", err)
	}
	return checkAffected(res)
}

// Delete remove o funcionário; os negócios dele ficam sem responsável.
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, r.Dialect.Rebind(`UPDATE negocios SET responsavel_id = NULL WHERE responsavel_id = ?`), id); err != nil {
		return fmt.Errorf("erro ao desvincular negócios do funcionário: %w", err)
	}

	res, err := tx.ExecContext(ctx, r.Dialect.Rebind(`DELETE FROM funcionarios WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("erro ao deletar funcionário: %w", err)
	}
	if err := checkAffected(res); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *EmployeeRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM funcionarios WHERE email = ? AND id <> ?)`

	var exists bool
	if err := r.DB.QueryRowContext(ctx, r.Dialect.Rebind(query), email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("erro ao verificar e-mail do funcionário: %w", err)
	}
	return exists, nil
}

func (r *EmployeeRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM funcionarios`); err != nil {
		return fmt.Errorf("erro ao limpar funcionários: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) query(ctx context.Context, query string, args ...any) ([]*entity.Employee, error) {
	rows, err := r.DB.QueryContext(ctx, r.Dialect.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar funcionários: %w", err)
	}
	defer rows.Close()

	employees := []*entity.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear funcionário: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func scanEmployee(s rowScanner) (*entity.Employee, error) {
	var (
		e            entity.Employee
		email, cargo sql.NullString
		atualizadoEm sql.NullTime
	)

	if err := s.Scan(&e.ID, &e.Nome, &email, &cargo, &e.Ativo, &e.CriadoEm, &atualizadoEm); err != nil {
		return nil, err
	}

	e.Email = stringPtr(email)
	e.Cargo = stringPtr(cargo)
	e.AtualizadoEm = timePtr(atualizadoEm)
	return &e, nil
}
