package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/crm-api/internal/entity"
)

const contactColumns = `id, nome, email, telefone, empresa, origem, situacao, criado_em, atualizado_em`

type ContactRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewContactRepository(db *sql.DB, dialect Dialect) *ContactRepository {
	return &ContactRepository{DB: db, Dialect: dialect}
}

func (r *ContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	query := `
		INSERT INTO contatos (nome, email, telefone, empresa, origem, situacao, criado_em, atualizado_em)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	err := r.DB.QueryRowContext(ctx, r.Dialect.Rebind(query),
		c.Nome,
		nullable(c.Email),
		nullable(c.Telefone),
		nullable(c.Empresa),
		nullable(c.Origem),
		c.Situacao,
		c.CriadoEm.UTC(),
		nullableTime(c.AtualizadoEm),
	).Scan(&c.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrEmailAlreadyExists
		}
		return fmt.Errorf("erro ao criar contato: %w", err)
	}
	return nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id int64) (*entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contatos WHERE id = ?`

	c, err := scanContact(r.DB.QueryRowContext(ctx, r.Dialect.Rebind(query), id))
	if err != nil {
		return nil, notFoundIfNoRows(err)
	}
	return c, nil
}

func (r *ContactRepository) List(ctx context.Context, filter entity.ContactFilter) ([]*entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contatos`
	var args []any

	if filter.Situacao != "" {
		query += ` WHERE situacao = ?`
		args = append(args, filter.Situacao)
	}

	query += ` ORDER BY id LIMIT ? OFFSET ?`
	args = append(args, int64(filter.Limit), int64(filter.Offset))

	return r.query(ctx, query, args...)
}

func (r *ContactRepository) ListAll(ctx context.Context) ([]*entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contatos ORDER BY criado_em DESC, id DESC`
	return r.query(ctx, query)
}

func (r *ContactRepository) Update(ctx context.Context, c *entity.Contact) error {
	query := `
		UPDATE contatos
		SET nome = ?, email = ?, telefone = ?, empresa = ?, origem = ?, situacao = ?, atualizado_em = ?
		WHERE id = ?
	`

	res, err := r.DB.ExecContext(ctx, r.Dialect.Rebind(query),
		c.Nome,
		nullable(c.Email),
		nullable(c.Telefone),
		nullable(c.Empresa),
		nullable(c.Origem),
		c.Situacao,
		nullableTime(c.AtualizadoEm),
		c.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrEmailAlreadyExists
		}
		return fmt.Errorf("erro ao atualizar contato: %w", err)
	}
	return checkAffected(res)
}

// Delete apaga os negócios do contato e depois o contato, na mesma transação.
func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, r.Dialect.Rebind(`DELETE FROM negocios WHERE contato_id = ?`), id); err != nil {
		return fmt.Errorf("erro ao deletar negócios do contato: %w", err)
	}

	res, err := tx.ExecContext(ctx, r.Dialect.Rebind(`DELETE FROM contatos WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("erro ao deletar contato: %w", err)
	}
	if err := checkAffected(res); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ContactRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM contatos WHERE email = ? AND id <> ?)`

	var exists bool
	if err := r.DB.QueryRowContext(ctx, r.Dialect.Rebind(query), email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("erro ao verificar e-mail do contato: %w", err)
	}
	return exists, nil
}

func (r *ContactRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM contatos`); err != nil {
		return fmt.Errorf("erro ao limpar contatos: %w", err)
	}
	return nil
}

func (r *ContactRepository) query(ctx context.Context, query string, args ...any) ([]*entity.Contact, error) {
	rows, err := r.DB.QueryContext(ctx, r.Dialect.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar contatos: %w", err)
	}
	defer rows.Close()

	contacts := []*entity.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear contato: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func scanContact(s rowScanner) (*entity.Contact, error) {
	var (
		c                                entity.Contact
		email, telefone, empresa, origem sql.NullString
		atualizadoEm                     sql.NullTime
	)

	err := s.Scan(&c.ID, &c.Nome, &email, &telefone, &empresa, &origem, &c.Situacao, &c.CriadoEm, &atualizadoEm)
	if err != nil {
		return nil, err
	}

	c.Email = stringPtr(email)
	c.Telefone = stringPtr(telefone)
	c.Empresa = stringPtr(empresa)
	c.Origem = stringPtr(origem)
	c.AtualizadoEm = timePtr(atualizadoEm)
	return &c, nil
}
