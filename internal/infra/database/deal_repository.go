package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/xavierca1/crm-api/internal/entity"
)

const dealColumns = `id, titulo, descricao, valor_previsto, fase, origem, probabilidade, contato_id, responsavel_id,
	data_prevista_fechamento, data_fechamento, criado_em, atualizado_em`

type DealRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewDealRepository(db *sql.DB, dialect Dialect) *DealRepository {
	return &DealRepository{DB: db, Dialect: dialect}
}

func (r *DealRepository) Create(ctx context.Context, d *entity.Deal) error {
	query := `
		INSERT INTO negocios (
			titulo, descricao, valor_previsto, fase, origem, probabilidade, contato_id, responsavel_id,
			data_prevista_fechamento, data_fechamento, criado_em, atualizado_em
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	err := r.DB.QueryRowContext(ctx, r.Dialect.Rebind(query),
		d.Titulo,
		nullable(d.Descricao),
		nullable(d.ValorPrevisto),
		d.Fase,
		nullable(d.Origem),
		nullableInt(d.Probabilidade),
		d.ContatoID,
		nullable(d.ResponsavelID),
		nullableDate(d.DataPrevistaFechamento),
		nullableDate(d.DataFechamento),
		d.CriadoEm.UTC(),
		nullableTime(d.AtualizadoEm),
	).Scan(&d.ID)

	if err != nil {
		return fmt.Errorf("erro ao criar negócio: %w", err)
	}
	return nil
}

func (r *DealRepository) FindByID(ctx context.Context, id int64) (*entity.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM negocios WHERE id = ?`

	d, err := scanDeal(r.DB.QueryRowContext(ctx, r.Dialect.Rebind(query), id))
	if err != nil {
		return nil, notFoundIfNoRows(err)
	}
	return d, nil
}

func (r *DealRepository) List(ctx context.Context, filter entity.DealFilter) ([]*entity.Deal, error) {
	var (
		where []string
		args  []any
	)

	if filter.Fase != "" {
		where = append(where, "fase = ?")
		args = append(args, filter.Fase)
	}
	if filter.Origem != "" {
		where = append(where, "origem = ?")
		args = append(args, filter.Origem)
	}
	if filter.ContatoID != 0 {
		where = append(where, "contato_id = ?")
		args = append(args, filter.ContatoID)
	}

	query := `SELECT ` + dealColumns + ` FROM negocios`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY criado_em DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, int64(filter.Limit), int64(filter.Offset))

	rows, err := r.DB.QueryContext(ctx, r.Dialect.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar negócios: %w", err)
	}
	defer rows.Close()

	deals := []*entity.Deal{}
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear negócio: %w", err)
		}
		deals = append(deals, d)
	}
	return deals, rows.Err()
}

// ListDetailed faz o JOIN explícito com contatos e funcionários para os painéis.
func (r *DealRepository) ListDetailed(ctx context.Context) ([]*entity.DealDetail, error) {
	query := `
		SELECT
			n.id, n.titulo, n.descricao, n.valor_previsto, n.fase, n.origem, n.probabilidade,
			n.contato_id, n.responsavel_id, n.data_prevista_fechamento, n.data_fechamento,
			n.criado_em, n.atualizado_em,
			c.nome, f.nome
		FROM negocios n
		LEFT JOIN contatos c ON c.id = n.contato_id
		LEFT JOIN funcionarios f ON f.id = n.responsavel_id
		ORDER BY n.criado_em DESC, n.id DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar negócios detalhados: %w", err)
	}
	defer rows.Close()

	details := []*entity.DealDetail{}
	for rows.Next() {
		var contatoNome, responsavelNome sql.NullString
		d, err := scanDeal(rows, &contatoNome, &responsavelNome)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear negócio: %w", err)
		}
		details = append(details, &entity.DealDetail{
			Deal:            *d,
			ContatoNome:     contatoNome.String,
			ResponsavelNome: stringPtr(responsavelNome),
		})
	}
	return details, rows.Err()
}

func (r *DealRepository) Update(ctx context.Context, d *entity.Deal) error {
	query := `
		UPDATE negocios
		SET titulo = ?, descricao = ?, valor_previsto = ?, fase = ?, origem = ?, probabilidade = ?,
			contato_id = ?, responsavel_id = ?, data_prevista_fechamento = ?, data_fechamento = ?,
			atualizado_em = ?
		WHERE id = ?
	`

	res, err := r.DB.ExecContext(ctx, r.Dialect.Rebind(query),
		d.Titulo,
		nullable(d.Descricao),
		nullable(d.ValorPrevisto),
		d.Fase,
		nullable(d.Origem),
		nullableInt(d.Probabilidade),
		d.ContatoID,
		nullable(d.ResponsavelID),
		nullableDate(d.DataPrevistaFechamento),
		nullableDate(d.DataFechamento),
		nullableTime(d.AtualizadoEm),
		d.ID,
	)
	if err != nil {
		return fmt.Errorf("erro ao atualizar negócio: %w", err)
	}
	return checkAffected(res)
}

func (r *DealRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, r.Dialect.Rebind(`DELETE FROM negocios WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("erro ao deletar negócio: %w", err)
	}
	return checkAffected(res)
}

func (r *DealRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM negocios`); err != nil {
		return fmt.Errorf("erro ao limpar negócios: %w", err)
	}
	return nil
}

// scanDeal lê as colunas de dealColumns; extra recebe colunas adicionais do SELECT.
func scanDeal(s rowScanner, extra ...any) (*entity.Deal, error) {
	var (
		d                     entity.Deal
		descricao, origem     sql.NullString
		valor                 sql.NullFloat64
		probabilidade, respID sql.NullInt64
		prevista, fechamento  sql.Null[entity.Date]
		atualizadoEm          sql.NullTime
	)

	dest := []any{
		&d.ID, &d.Titulo, &descricao, &valor, &d.Fase, &origem, &probabilidade,
		&d.ContatoID, &respID, &prevista, &fechamento, &d.CriadoEm, &atualizadoEm,
	}
	dest = append(dest, extra...)

	if err := s.Scan(dest...); err != nil {
		return nil, err
	}

	d.Descricao = stringPtr(descricao)
	d.Origem = stringPtr(origem)
	d.ValorPrevisto = float64Ptr(valor)
	d.Probabilidade = intPtr(probabilidade)
	d.ResponsavelID = int64Ptr(respID)
	d.DataPrevistaFechamento = datePtr(prevista)
	d.DataFechamento = datePtr(fechamento)
	d.AtualizadoEm = timePtr(atualizadoEm)
	return &d, nil
}
