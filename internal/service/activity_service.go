package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mvcampos/painel-iptv/internal/domain"
	"github.com/mvcampos/painel-iptv/internal/repository"
	"github.com/mvcampos/painel-iptv/pkg/logger"
)

// ActivityService mantém o histórico de ações de cada escopo, limitado às
// entradas mais recentes.
type ActivityService struct {
	store repository.ActivityStore
	log   *logger.Logger
}

// NewActivityService cria o serviço do histórico de ações
func NewActivityService(store repository.ActivityStore, log *logger.Logger) *ActivityService {
	return &ActivityService{
		store: store,
		log:   log,
	}
}

// Record registra uma entrada no histórico. O registro é de melhor
// esforço: uma falha aqui nunca desfaz a operação que a originou, apenas
// gera um aviso no log.
func (s *ActivityService) Record(ctx context.Context, scope domain.OwnerScope, kind domain.ActivityKind, description string, clientID *uuid.UUID) {
	activity := domain.Activity{
		ID:          uuid.New(),
		Kind:        kind,
		Description: description,
		ClientID:    clientID,
		OwnerScope:  scope,
		Timestamp:   time.Now(),
	}

	if err := s.store.Push(ctx, activity); err != nil {
		s.log.Warnw("Failed to record activity", "scope", scope, "kind", kind, "error", err)
	}
}

// List devolve o histórico do escopo, mais recente primeiro.
func (s *ActivityService) List(ctx context.Context, scope domain.OwnerScope) ([]domain.Activity, error) {
	activities, err := s.store.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	if activities == nil {
		activities = []domain.Activity{}
	}
	return activities, nil
}

// Clear apaga todo o histórico do escopo.
func (s *ActivityService) Clear(ctx context.Context, scope domain.OwnerScope) error {
	if err := s.store.Clear(ctx, scope); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	s.log.Infow("Activity log cleared", "scope", scope)
	return nil
}
