package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mvcampos/painel-iptv/internal/csvcodec"
	"github.com/mvcampos/painel-iptv/internal/domain"
	"github.com/mvcampos/painel-iptv/internal/events"
	"github.com/mvcampos/painel-iptv/internal/metrics"
	"github.com/mvcampos/painel-iptv/internal/repository"
	"github.com/mvcampos/painel-iptv/internal/whatsapp"
	"github.com/mvcampos/painel-iptv/pkg/logger"
)

// ClientService operações de negócio sobre os registros de clientes.
// Toda mutação segue a mesma sequência: persiste, notifica o canal de
// mudanças, registra no histórico e incrementa a métrica da operação.
// Notificação e histórico são de melhor esforço e nunca desfazem o que
// já foi persistido.
type ClientService struct {
	repo     repository.ClientRepository
	plans    *PlanService
	activity *ActivityService
	notifier events.Notifier
	metrics  metrics.ClientMetrics
	log      *logger.Logger
}

// NewClientService cria o serviço de clientes
func NewClientService(
	repo repository.ClientRepository,
	plans *PlanService,
	activity *ActivityService,
	notifier events.Notifier,
	m metrics.ClientMetrics,
	log *logger.Logger,
) *ClientService {
	return &ClientService{
		repo:     repo,
		plans:    plans,
		activity: activity,
		notifier: notifier,
		metrics:  m,
		log:      log,
	}
}

// List devolve todos os registros do escopo da sessão, mais recentes
// primeiro.
func (s *ClientService) List(ctx context.Context, session domain.Session) ([]domain.ClientRecord, error) {
	clients, err := s.repo.List(ctx, session.Scope)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	if clients == nil {
		clients = []domain.ClientRecord{}
	}
	return clients, nil
}

// Get devolve um registro do escopo da sessão.
func (s *ClientService) Get(ctx context.Context, session domain.Session, id uuid.UUID) (domain.ClientRecord, error) {
	client, err := s.repo.GetByID(ctx, session.Scope, id)
	if err != nil {
		return domain.ClientRecord{}, s.mapError(err)
	}
	return client, nil
}

// Create cria um novo registro no escopo da sessão. Nome é obrigatório;
// status ausente vira ativo e valor mensal ausente vem do catálogo de
// planos.
func (s *ClientService) Create(ctx context.Context, session domain.Session, req domain.ClientRequest) (domain.ClientRecord, error) {
	record, err := s.buildRecord(ctx, session, req)
	if err != nil {
		return domain.ClientRecord{}, err
	}
	record.ID = uuid.New()

	stored, err := s.repo.Create(ctx, record)
	if err != nil {
		return domain.ClientRecord{}, s.mapError(err)
	}

	s.afterMutation(ctx, session, domain.ActivityClientAdded, &stored.ID,
		fmt.Sprintf("Cliente %s adicionado", stored.Name))
	s.metrics.IncOperation("create", string(session.Scope))

	return stored, nil
}

// Update substitui todos os campos mutáveis do registro de mesmo ID.
func (s *ClientService) Update(ctx context.Context, session domain.Session, id uuid.UUID, req domain.ClientRequest) (domain.ClientRecord, error) {
	record, err := s.buildRecord(ctx, session, req)
	if err != nil {
		return domain.ClientRecord{}, err
	}
	record.ID = id

	if err := s.repo.Update(ctx, record); err != nil {
		return domain.ClientRecord{}, s.mapError(err)
	}

	s.afterMutation(ctx, session, domain.ActivityClientUpdated, &record.ID,
		fmt.Sprintf("Cliente %s atualizado", record.Name))
	s.metrics.IncOperation("update", string(session.Scope))

	return record, nil
}

// Delete remove um registro do escopo da sessão. A remoção exige
// confirmação do armazenamento: registro inexistente é erro, nunca
// sucesso silencioso.
func (s *ClientService) Delete(ctx context.Context, session domain.Session, id uuid.UUID) error {
	client, err := s.repo.GetByID(ctx, session.Scope, id)
	if err != nil {
		return s.mapError(err)
	}

	if err := s.repo.Delete(ctx, session.Scope, id); err != nil {
		return s.mapError(err)
	}

	s.afterMutation(ctx, session, domain.ActivityClientDeleted, &id,
		fmt.Sprintf("Cliente %s excluído", client.Name))
	s.metrics.IncOperation("delete", string(session.Scope))

	return nil
}

// ToggleStatus avança o status do cliente no ciclo fixo
// ativo -> suspenso -> inativo -> ativo.
func (s *ClientService) ToggleStatus(ctx context.Context, session domain.Session, id uuid.UUID) (domain.ClientRecord, error) {
	client, err := s.repo.GetByID(ctx, session.Scope, id)
	if err != nil {
		return domain.ClientRecord{}, s.mapError(err)
	}

	client.Status = domain.NextStatus(client.Status)

	if err := s.repo.Update(ctx, client); err != nil {
		return domain.ClientRecord{}, s.mapError(err)
	}

	s.afterMutation(ctx, session, domain.ActivityStatusChanged, &client.ID,
		fmt.Sprintf("Status de %s alterado para %s", client.Name, client.Status))
	s.metrics.IncOperation("toggle_status", string(session.Scope))

	return client, nil
}

// Renew renova a assinatura do cliente: reativa, soma os dias de
// renovação ao vencimento ATUAL (não à data de hoje) e, somente quando os
// créditos estão zerados, credita o preço de catálogo do plano.
func (s *ClientService) Renew(ctx context.Context, session domain.Session, id uuid.UUID) (domain.ClientRecord, error) {
	client, err := s.repo.GetByID(ctx, session.Scope, id)
	if err != nil {
		return domain.ClientRecord{}, s.mapError(err)
	}

	client.Status = domain.StatusActive
	client.ExpiryDate = client.ExpiryDate.AddDays(domain.RenewalDays)

	if client.Credits == 0 {
		price, err := s.plans.Price(ctx, session.Scope, client.Plan)
		if err != nil {
			return domain.ClientRecord{}, err
		}
		client.Credits = price
	}

	if err := s.repo.Update(ctx, client); err != nil {
		return domain.ClientRecord{}, s.mapError(err)
	}

	s.afterMutation(ctx, session, domain.ActivityClientRenewed, &client.ID,
		fmt.Sprintf("Cliente %s renovado até %s", client.Name, client.ExpiryDate.FormatBR()))
	s.metrics.IncOperation("renew", string(session.Scope))

	return client, nil
}

// AdjustCredits soma o delta (positivo ou negativo) aos créditos do
// cliente, com piso em zero.
func (s *ClientService) AdjustCredits(ctx context.Context, session domain.Session, id uuid.UUID, delta float64) (domain.ClientRecord, error) {
	client, err := s.repo.GetByID(ctx, session.Scope, id)
	if err != nil {
		return domain.ClientRecord{}, s.mapError(err)
	}

	client.Credits += delta
	if client.Credits < 0 {
		client.Credits = 0
	}

	if err := s.repo.Update(ctx, client); err != nil {
		return domain.ClientRecord{}, s.mapError(err)
	}

	s.afterMutation(ctx, session, domain.ActivityClientUpdated, &client.ID,
		fmt.Sprintf("Créditos de %s ajustados para %.2f", client.Name, client.Credits))
	s.metrics.IncOperation("adjust_credits", string(session.Scope))

	return client, nil
}

// BulkImport importa os registros de um arquivo CSV para o escopo da
// sessão e devolve quantos entraram. A inserção é atômica: ou todas as
// linhas aceitas entram, ou nenhuma.
func (s *ClientService) BulkImport(ctx context.Context, session domain.Session, raw string) (int, error) {
	plans, err := s.plans.Catalog(ctx, session.Scope)
	if err != nil {
		return 0, err
	}

	records, err := csvcodec.Parse(raw, session.Scope, plans, time.Now())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrImport, err)
	}
	if len(records) == 0 {
		return 0, nil
	}

	for i := range records {
		records[i].ID = uuid.New()
	}

	count, err := s.repo.CreateBatch(ctx, records)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrImport, err)
	}

	s.afterMutation(ctx, session, domain.ActivityClientAdded, nil,
		fmt.Sprintf("%d clientes importados via CSV", count))
	s.metrics.IncOperation("import", string(session.Scope))
	s.metrics.ObserveImportSize(count, string(session.Scope))

	return count, nil
}

// ExportCSV serializa a lista filtrada no formato CSV de exportação do
// painel.
func (s *ClientService) ExportCSV(ctx context.Context, session domain.Session, filter domain.Filter) (string, error) {
	clients, err := s.List(ctx, session)
	if err != nil {
		return "", err
	}

	filtered := filter.Apply(clients, time.Now())
	out := csvcodec.Export(filtered)

	s.activity.Record(ctx, session.Scope, domain.ActivityExport,
		fmt.Sprintf("Exportação CSV de %d clientes", len(filtered)), nil)
	s.metrics.IncOperation("export_csv", string(session.Scope))

	return out, nil
}

// ExportReport gera o relatório HTML para impressão da lista filtrada.
func (s *ClientService) ExportReport(ctx context.Context, session domain.Session, filter domain.Filter) (string, error) {
	clients, err := s.List(ctx, session)
	if err != nil {
		return "", err
	}

	filtered := filter.Apply(clients, time.Now())
	report, err := csvcodec.Report(filtered, session.Scope, time.Now())
	if err != nil {
		return "", err
	}

	s.activity.Record(ctx, session.Scope, domain.ActivityExport,
		fmt.Sprintf("Relatório gerado com %d clientes", len(filtered)), nil)
	s.metrics.IncOperation("export_report", string(session.Scope))

	return report, nil
}

// WhatsAppLink monta o link de cobrança de renovação do cliente.
func (s *ClientService) WhatsAppLink(ctx context.Context, session domain.Session, id uuid.UUID) (string, error) {
	client, err := s.repo.GetByID(ctx, session.Scope, id)
	if err != nil {
		return "", s.mapError(err)
	}
	return whatsapp.RenewalLink(client, time.Now()), nil
}

// Summary calcula as métricas do painel sobre a lista completa do escopo.
func (s *ClientService) Summary(ctx context.Context, session domain.Session) (domain.Summary, error) {
	clients, err := s.List(ctx, session)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summarize(clients, time.Now()), nil
}

// buildRecord valida a requisição e monta o registro com os padrões do
// painel aplicados.
func (s *ClientService) buildRecord(ctx context.Context, session domain.Session, req domain.ClientRequest) (domain.ClientRecord, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.ClientRecord{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	plan := req.Plan
	if plan == "" {
		plan = domain.DefaultPlanName
	}

	status := req.Status
	if status == "" {
		status = domain.StatusActive
	}

	monthlyValue := req.MonthlyValue
	if monthlyValue == 0 {
		price, err := s.plans.Price(ctx, session.Scope, plan)
		if err != nil {
			return domain.ClientRecord{}, err
		}
		monthlyValue = price
	}

	return domain.ClientRecord{
		Name:           strings.TrimSpace(req.Name),
		Phone:          req.Phone,
		Plan:           plan,
		MACAddress:     req.MACAddress,
		ActivationDate: req.ActivationDate,
		ExpiryDate:     req.ExpiryDate,
		Status:         status,
		Credits:        req.Credits,
		MonthlyValue:   monthlyValue,
		Notes:          req.Notes,
		OwnerScope:     session.Scope,
	}, nil
}

// afterMutation executa a sequência pós-persistência de toda mutação:
// notifica o canal de mudanças e registra no histórico.
func (s *ClientService) afterMutation(ctx context.Context, session domain.Session, kind domain.ActivityKind, clientID *uuid.UUID, description string) {
	event := events.NewChangeEvent(kind, clientID, session.Scope)
	if err := s.notifier.NotifyChanged(ctx, event); err != nil {
		s.log.Warnw("Failed to publish change event", "kind", kind, "scope", session.Scope, "error", err)
	}

	s.activity.Record(ctx, session.Scope, kind, description, clientID)
}

// mapError traduz os erros do repositório para a taxonomia de domínio.
func (s *ClientService) mapError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return domain.ErrNotFound
	case errors.Is(err, repository.ErrInvalidData):
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	default:
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
}
