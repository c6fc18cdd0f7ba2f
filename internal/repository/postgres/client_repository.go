package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mvcampos/painel-iptv/internal/domain"
	"github.com/mvcampos/painel-iptv/internal/repository"
	"github.com/mvcampos/painel-iptv/pkg/logger"
)

// PostgresClientRepository implementação do repositório de clientes via PostgreSQL
type PostgresClientRepository struct {
	db  *pgxpool.Pool
	log *logger.Logger
}

// NewPostgresClientRepository cria um novo repositório de clientes via PostgreSQL
func NewPostgresClientRepository(db *pgxpool.Pool, log *logger.Logger) *PostgresClientRepository {
	return &PostgresClientRepository{
		db:  db,
		log: log,
	}
}

const clientColumns = `id, name, phone, plan, mac_address, activation_date, expiry_date,
		status, credits, monthly_value, notes, user_type, created_at, updated_at`

// scanClient lê uma linha da tabela clients
func scanClient(row pgx.Row, scope domain.OwnerScope) (domain.ClientRecord, error) {
	var c domain.ClientRecord
	var phone, mac, notes, userType *string

	err := row.Scan(
		&c.ID,
		&c.Name,
		&phone,
		&c.Plan,
		&mac,
		&c.ActivationDate,
		&c.ExpiryDate,
		&c.Status,
		&c.Credits,
		&c.MonthlyValue,
		&notes,
		&userType,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return domain.ClientRecord{}, err
	}

	if phone != nil {
		c.Phone = *phone
	}
	if mac != nil {
		c.MACAddress = *mac
	}
	if notes != nil {
		c.Notes = *notes
	}
	// Linhas antigas sem escopo gravado pertencem ao chamador
	if userType != nil && *userType != "" {
		c.OwnerScope = domain.OwnerScope(*userType)
	} else {
		c.OwnerScope = scope
	}

	return c, nil
}

// List retorna todos os clientes do escopo, ordenados por criação decrescente.
// O filtro de escopo roda no SQL: linhas com user_type vazio ou nulo contam
// como do chamador, preservando o comportamento do armazenamento original.
func (r *PostgresClientRepository) List(ctx context.Context, scope domain.OwnerScope) ([]domain.ClientRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM clients
		WHERE COALESCE(NULLIF(user_type, ''), $1) = $1
		ORDER BY created_at DESC
	`, clientColumns)

	rows, err := r.db.Query(ctx, query, string(scope))
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	var clients []domain.ClientRecord
	for rows.Next() {
		client, err := scanClient(rows, scope)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clients: %w", err)
	}

	return clients, nil
}

// GetByID retorna um cliente do escopo pelo ID
func (r *PostgresClientRepository) GetByID(ctx context.Context, scope domain.OwnerScope, id uuid.UUID) (domain.ClientRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM clients
		WHERE id = $1 AND COALESCE(NULLIF(user_type, ''), $2) = $2
	`, clientColumns)

	client, err := scanClient(r.db.QueryRow(ctx, query, id, string(scope)), scope)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ClientRecord{}, repository.ErrNotFound
		}
		return domain.ClientRecord{}, fmt.Errorf("failed to get client: %w", err)
	}

	return client, nil
}

// Create persiste um novo cliente
func (r *PostgresClientRepository) Create(ctx context.Context, client domain.ClientRecord) (domain.ClientRecord, error) {
	query := `
		INSERT INTO clients (id, name, phone, plan, mac_address, activation_date, expiry_date,
			status, credits, monthly_value, notes, user_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`

	now := time.Now()
	err := r.db.QueryRow(
		ctx,
		query,
		client.ID,
		client.Name,
		client.Phone,
		client.Plan,
		client.MACAddress,
		client.ActivationDate,
		client.ExpiryDate,
		string(client.Status),
		client.Credits,
		client.MonthlyValue,
		client.Notes,
		string(client.OwnerScope),
		now,
		now,
	).Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)

	if err != nil {
		return domain.ClientRecord{}, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// Update substitui os campos mutáveis do cliente de mesmo ID dentro do escopo
func (r *PostgresClientRepository) Update(ctx context.Context, client domain.ClientRecord) error {
	query := `
		UPDATE clients
		SET name = $1, phone = $2, plan = $3, mac_address = $4, activation_date = $5,
			expiry_date = $6, status = $7, credits = $8, monthly_value = $9,
			notes = $10, user_type = $11, updated_at = $12
		WHERE id = $13 AND COALESCE(NULLIF(user_type, ''), $11) = $11
	`

	result, err := r.db.Exec(
		ctx,
		query,
		client.Name,
		client.Phone,
		client.Plan,
		client.MACAddress,
		client.ActivationDate,
		client.ExpiryDate,
		string(client.Status),
		client.Credits,
		client.MonthlyValue,
		client.Notes,
		string(client.OwnerScope),
		time.Now(),
		client.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	if result.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete remove um cliente do escopo
func (r *PostgresClientRepository) Delete(ctx context.Context, scope domain.OwnerScope, id uuid.UUID) error {
	query := `
		DELETE FROM clients
		WHERE id = $1 AND COALESCE(NULLIF(user_type, ''), $2) = $2
	`

	result, err := r.db.Exec(ctx, query, id, string(scope))
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	if result.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// CreateBatch insere os registros importados em uma única operação COPY.
// Qualquer linha rejeitada derruba o lote inteiro.
func (r *PostgresClientRepository) CreateBatch(ctx context.Context, clients []domain.ClientRecord) (int, error) {
	if len(clients) == 0 {
		return 0, nil
	}

	now := time.Now()
	rows := make([][]any, 0, len(clients))
	for i, client := range clients {
		id := client.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		// Espaça os created_at para manter a ordem do arquivo na listagem
		createdAt := now.Add(time.Duration(i) * time.Microsecond)
		rows = append(rows, []any{
			id,
			client.Name,
			client.Phone,
			client.Plan,
			client.MACAddress,
			client.ActivationDate,
			client.ExpiryDate,
			string(client.Status),
			client.Credits,
			client.MonthlyValue,
			client.Notes,
			string(client.OwnerScope),
			createdAt,
			createdAt,
		})
	}

	copied, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"clients"},
		[]string{"id", "name", "phone", "plan", "mac_address", "activation_date", "expiry_date",
			"status", "credits", "monthly_value", "notes", "user_type", "created_at", "updated_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk insert clients: %w", err)
	}

	return int(copied), nil
}
