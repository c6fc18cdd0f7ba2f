package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mvcampos/painel-iptv/internal/domain"
	"github.com/mvcampos/painel-iptv/pkg/logger"
)

// InMemoryClientRepository implementação do repositório em memória,
// usada nos testes e como reserva quando não há banco configurado.
type InMemoryClientRepository struct {
	clients map[uuid.UUID]domain.ClientRecord
	mutex   sync.RWMutex
	log     *logger.Logger
}

// NewInMemoryClientRepository cria um novo repositório de clientes em memória
func NewInMemoryClientRepository(log *logger.Logger) *InMemoryClientRepository {
	return &InMemoryClientRepository{
		clients: make(map[uuid.UUID]domain.ClientRecord),
		log:     log,
	}
}

// List retorna todos os clientes do escopo, mais recentes primeiro
func (r *InMemoryClientRepository) List(ctx context.Context, scope domain.OwnerScope) ([]domain.ClientRecord, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	clients := make([]domain.ClientRecord, 0, len(r.clients))
	for _, client := range r.clients {
		// Registros sem escopo contam como sendo do chamador, igual ao
		// comportamento do armazenamento remoto.
		if client.OwnerScope == scope || client.OwnerScope == "" {
			clients = append(clients, client)
		}
	}

	sort.Slice(clients, func(i, j int) bool {
		return clients[i].CreatedAt.After(clients[j].CreatedAt)
	})

	return clients, nil
}

// GetByID retorna um cliente do escopo pelo ID
func (r *InMemoryClientRepository) GetByID(ctx context.Context, scope domain.OwnerScope, id uuid.UUID) (domain.ClientRecord, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	client, exists := r.clients[id]
	if !exists || (client.OwnerScope != scope && client.OwnerScope != "") {
		return domain.ClientRecord{}, ErrNotFound
	}

	return client, nil
}

// Create persiste um novo cliente
func (r *InMemoryClientRepository) Create(ctx context.Context, client domain.ClientRecord) (domain.ClientRecord, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	client.CreatedAt = time.Now()
	client.UpdatedAt = client.CreatedAt

	r.clients[client.ID] = client

	return client, nil
}

// Update substitui os campos mutáveis do cliente de mesmo ID
func (r *InMemoryClientRepository) Update(ctx context.Context, client domain.ClientRecord) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	existing, exists := r.clients[client.ID]
	if !exists || (existing.OwnerScope != client.OwnerScope && existing.OwnerScope != "") {
		return ErrNotFound
	}

	client.CreatedAt = existing.CreatedAt
	client.UpdatedAt = time.Now()

	r.clients[client.ID] = client

	return nil
}

// Delete remove um cliente do escopo
func (r *InMemoryClientRepository) Delete(ctx context.Context, scope domain.OwnerScope, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	existing, exists := r.clients[id]
	if !exists || (existing.OwnerScope != scope && existing.OwnerScope != "") {
		return ErrNotFound
	}

	delete(r.clients, id)

	return nil
}

// CreateBatch insere todos os registros de uma vez
func (r *InMemoryClientRepository) CreateBatch(ctx context.Context, clients []domain.ClientRecord) (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	now := time.Now()
	for i, client := range clients {
		if client.ID == uuid.Nil {
			client.ID = uuid.New()
		}
		// Preserva a ordem de importação na listagem por data de criação
		client.CreatedAt = now.Add(time.Duration(i) * time.Microsecond)
		client.UpdatedAt = client.CreatedAt
		r.clients[client.ID] = client
	}

	return len(clients), nil
}
