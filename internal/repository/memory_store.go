package repository

import (
	"context"
	"sync"

	"github.com/mvcampos/painel-iptv/internal/domain"
)

// InMemoryPlanStore catálogo de planos em memória, usado nos testes
type InMemoryPlanStore struct {
	mutex sync.RWMutex
	plans map[domain.OwnerScope][]domain.Plan
}

// NewInMemoryPlanStore cria um catálogo de planos em memória
func NewInMemoryPlanStore() *InMemoryPlanStore {
	return &InMemoryPlanStore{plans: make(map[domain.OwnerScope][]domain.Plan)}
}

// Load retorna o catálogo do escopo; nil quando nunca salvo
func (s *InMemoryPlanStore) Load(ctx context.Context, scope domain.OwnerScope) ([]domain.Plan, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	plans := s.plans[scope]
	out := make([]domain.Plan, len(plans))
	copy(out, plans)
	return out, nil
}

// Save substitui o catálogo do escopo
func (s *InMemoryPlanStore) Save(ctx context.Context, scope domain.OwnerScope, plans []domain.Plan) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stored := make([]domain.Plan, len(plans))
	copy(stored, plans)
	s.plans[scope] = stored
	return nil
}

// InMemoryActivityStore histórico de ações em memória, usado nos testes
type InMemoryActivityStore struct {
	mutex      sync.RWMutex
	activities map[domain.OwnerScope][]domain.Activity
}

// NewInMemoryActivityStore cria um histórico de ações em memória
func NewInMemoryActivityStore() *InMemoryActivityStore {
	return &InMemoryActivityStore{activities: make(map[domain.OwnerScope][]domain.Activity)}
}

// Push acrescenta uma entrada, respeitando o limite de 50
func (s *InMemoryActivityStore) Push(ctx context.Context, activity domain.Activity) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	entries := append([]domain.Activity{activity}, s.activities[activity.OwnerScope]...)
	if len(entries) > domain.ActivityLogSize {
		entries = entries[:domain.ActivityLogSize]
	}
	s.activities[activity.OwnerScope] = entries
	return nil
}

// List retorna as entradas do escopo, mais recentes primeiro
func (s *InMemoryActivityStore) List(ctx context.Context, scope domain.OwnerScope) ([]domain.Activity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entries := s.activities[scope]
	out := make([]domain.Activity, len(entries))
	copy(out, entries)
	return out, nil
}

// Clear apaga o histórico do escopo
func (s *InMemoryActivityStore) Clear(ctx context.Context, scope domain.OwnerScope) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.activities, scope)
	return nil
}
