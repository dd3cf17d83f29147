package database

import (
	"context"
	"database/sql"
	"fmt"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS contatos (
		id            BIGSERIAL PRIMARY KEY,
		nome          VARCHAR(200) NOT NULL,
		email         VARCHAR(255),
		telefone      VARCHAR(50),
		empresa       VARCHAR(200),
		origem        VARCHAR(100),
		situacao      VARCHAR(50) NOT NULL DEFAULT 'lead',
		criado_em     TIMESTAMPTZ NOT NULL,
		atualizado_em TIMESTAMPTZ
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_contatos_email ON contatos (email)`,
	`CREATE INDEX IF NOT EXISTS ix_contatos_situacao ON contatos (situacao)`,
	`CREATE TABLE IF NOT EXISTS funcionarios (
		id            BIGSERIAL PRIMARY KEY,
		nome          VARCHAR(200) NOT NULL,
		email         VARCHAR(255),
		cargo         VARCHAR(100),
		ativo         BOOLEAN NOT NULL DEFAULT TRUE,
		criado_em     TIMESTAMPTZ NOT NULL,
		atualizado_em TIMESTAMPTZ
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_funcionarios_email ON funcionarios (email)`,
	`CREATE TABLE IF NOT EXISTS negocios (
		id                       BIGSERIAL PRIMARY KEY,
		titulo                   VARCHAR(200) NOT NULL,
		descricao                VARCHAR(2000),
		valor_previsto           NUMERIC(12, 2),
		fase                     VARCHAR(50) NOT NULL DEFAULT 'novo',
		origem                   VARCHAR(100),
		probabilidade            INTEGER CHECK (probabilidade BETWEEN 0 AND 100),
		contato_id               BIGINT NOT NULL REFERENCES contatos (id),
		responsavel_id           BIGINT REFERENCES funcionarios (id),
		data_prevista_fechamento DATE,
		data_fechamento          DATE,
		criado_em                TIMESTAMPTZ NOT NULL,
		atualizado_em            TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS ix_negocios_fase ON negocios (fase)`,
	`CREATE INDEX IF NOT EXISTS ix_negocios_contato ON negocios (contato_id)`,
	`CREATE INDEX IF NOT EXISTS ix_negocios_responsavel ON negocios (responsavel_id)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS contatos (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		nome          TEXT NOT NULL,
		email         TEXT,
		telefone      TEXT,
		empresa       TEXT,
		origem        TEXT,
		situacao      TEXT NOT NULL DEFAULT 'lead',
		criado_em     DATETIME NOT NULL,
		atualizado_em DATETIME
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_contatos_email ON contatos (email)`,
	`CREATE INDEX IF NOT EXISTS ix_contatos_situacao ON contatos (situacao)`,
	`CREATE TABLE IF NOT EXISTS funcionarios (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		nome          TEXT NOT NULL,
		email         TEXT,
		cargo         TEXT,
		ativo         BOOLEAN NOT NULL DEFAULT 1,
		criado_em     DATETIME NOT NULL,
		atualizado_em DATETIME
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_funcionarios_email ON funcionarios (email)`,
	`CREATE TABLE IF NOT EXISTS negocios (
		id                       INTEGER PRIMARY KEY AUTOINCREMENT,
		titulo                   TEXT NOT NULL,
		descricao                TEXT,
		valor_previsto           REAL,
		fase                     TEXT NOT NULL DEFAULT 'novo',
		origem                   TEXT,
		probabilidade            INTEGER CHECK (probabilidade BETWEEN 0 AND 100),
		contato_id               INTEGER NOT NULL REFERENCES contatos (id),
		responsavel_id           INTEGER REFERENCES funcionarios (id),
		data_prevista_fechamento DATE,
		data_fechamento          DATE,
		criado_em                DATETIME NOT NULL,
		atualizado_em            DATETIME
	)`,
	`CREATE INDEX IF NOT EXISTS ix_negocios_fase ON negocios (fase)`,
	`CREATE INDEX IF NOT EXISTS ix_negocios_contato ON negocios (contato_id)`,
	`CREATE INDEX IF NOT EXISTS ix_negocios_responsavel ON negocios (responsavel_id)`,
}

// EnsureSchema cria as tabelas e índices que ainda não existem.
func EnsureSchema(ctx context.Context, db *sql.DB, dialect Dialect) error {
	statements := sqliteSchema
	if dialect == Postgres {
		statements = postgresSchema
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao criar schema (%s): %w", dialect, err)
		}
	}
	return nil
}
