package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // Driver do Postgres
	_ "modernc.org/sqlite"             // SQLite em Go puro (dev e testes)
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// NewDBConnection abre a conexão, configura o pool e testa o Ping
func NewDBConnection(driver, dsn string) (*sql.DB, error) {
	if _, err := DialectFor(driver); err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir banco (%s): %w", driver, err)
	}

	if driver == DriverSQLite {
		// SQLite aceita um único escritor; uma conexão também mantém vivo o banco ":memory:"
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("banco não respondeu ao ping: %w", err)
	}

	return db, nil
}
