package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mvcampos/painel-iptv/internal/domain"
	"github.com/mvcampos/painel-iptv/internal/repository"
	"github.com/mvcampos/painel-iptv/pkg/logger"
)

// PlanService gerencia o catálogo de planos de cada escopo. O catálogo
// nunca fica vazio: o primeiro acesso semeia os três planos padrão, e a
// substituição por uma lista vazia é rejeitada.
type PlanService struct {
	store repository.PlanStore
	log   *logger.Logger
}

// NewPlanService cria o serviço do catálogo de planos
func NewPlanService(store repository.PlanStore, log *logger.Logger) *PlanService {
	return &PlanService{
		store: store,
		log:   log,
	}
}

// Catalog devolve o catálogo do escopo, semeando os planos padrão quando
// ainda não existe nada salvo.
func (s *PlanService) Catalog(ctx context.Context, scope domain.OwnerScope) ([]domain.Plan, error) {
	plans, err := s.store.Load(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	if len(plans) == 0 {
		plans = domain.DefaultPlans()
		if err := s.store.Save(ctx, scope, plans); err != nil {
			// O catálogo padrão continua utilizável mesmo sem persistir
			s.log.Warnw("Failed to seed default plan catalog", "scope", scope, "error", err)
		}
	}

	return plans, nil
}

// Save substitui o catálogo do escopo. Lista vazia e planos sem nome são
// rejeitados.
func (s *PlanService) Save(ctx context.Context, scope domain.OwnerScope, plans []domain.Plan) error {
	if len(plans) == 0 {
		return domain.ErrCatalogFloor
	}
	for _, p := range plans {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: plan name is required", domain.ErrValidation)
		}
	}

	if err := s.store.Save(ctx, scope, plans); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	s.log.Infow("Plan catalog updated", "scope", scope, "plans", len(plans))
	return nil
}

// Price devolve o preço de um plano pelo nome, caindo para o plano padrão
// quando o nome não existe no catálogo.
func (s *PlanService) Price(ctx context.Context, scope domain.OwnerScope, name string) (float64, error) {
	plans, err := s.Catalog(ctx, scope)
	if err != nil {
		return 0, err
	}
	return domain.CatalogPrice(plans, name), nil
}
