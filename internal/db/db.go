package db

import (
	"context"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/mvcampos/painel-iptv/pkg/logger"
)

// schema DDL da tabela de clientes. A tabela carrega as duas partições
// (dono e sócio) lado a lado, separadas pela coluna user_type; registros
// antigos com user_type vazio são tratados como do chamador na leitura.
const schema = `
CREATE TABLE IF NOT EXISTS clients (
    id              UUID PRIMARY KEY,
    name            TEXT NOT NULL,
    phone           TEXT,
    plan            TEXT NOT NULL DEFAULT 'Básico',
    mac_address     TEXT,
    activation_date DATE,
    expiry_date     DATE,
    status          TEXT NOT NULL DEFAULT 'ativo',
    credits         DOUBLE PRECISION NOT NULL DEFAULT 0,
    monthly_value   DOUBLE PRECISION NOT NULL DEFAULT 0,
    notes           TEXT,
    user_type       TEXT,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_clients_user_type ON clients (user_type);
CREATE INDEX IF NOT EXISTS idx_clients_expiry_date ON clients (expiry_date);
`

// Migrate garante que o esquema do banco existe. É idempotente e roda a
// cada subida do serviço.
func Migrate(ctx context.Context, dsn string, log *logger.Logger) error {
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	log.Info("Database schema is up to date")
	return nil
}
