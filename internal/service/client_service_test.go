package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mvcampos/painel-iptv/internal/domain"
	"github.com/mvcampos/painel-iptv/internal/events"
	"github.com/mvcampos/painel-iptv/internal/metrics"
	"github.com/mvcampos/painel-iptv/internal/repository"
	"github.com/mvcampos/painel-iptv/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClientService(t *testing.T) (*ClientService, *ActivityService) {
	t.Helper()
	log := logger.New(logger.ERROR)

	plans := NewPlanService(repository.NewInMemoryPlanStore(), log)
	activity := NewActivityService(repository.NewInMemoryActivityStore(), log)
	repo := repository.NewInMemoryClientRepository(log)

	svc := NewClientService(repo, plans, activity, events.NoopNotifier{}, metrics.NoopClientMetrics{}, log)
	return svc, activity
}

func ownerSession() domain.Session {
	return domain.NewSession(domain.ScopeOwner)
}

func TestCreateRequiresName(t *testing.T) {
	svc, _ := newTestClientService(t)

	_, err := svc.Create(context.Background(), ownerSession(), domain.ClientRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc, _ := newTestClientService(t)

	client, err := svc.Create(context.Background(), ownerSession(), domain.ClientRequest{
		Name: "Maria",
		Plan: "Premium",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusActive, client.Status)
	assert.InDelta(t, 50.0, client.MonthlyValue, 0.001)
	assert.Equal(t, domain.ScopeOwner, client.OwnerScope)
	assert.NotEqual(t, uuid.Nil, client.ID)
}

func TestCreateKeepsExplicitValues(t *testing.T) {
	svc, _ := newTestClientService(t)

	client, err := svc.Create(context.Background(), ownerSession(), domain.ClientRequest{
		Name:         "João",
		Status:       domain.StatusSuspended,
		MonthlyValue: 99,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSuspended, client.Status)
	assert.InDelta(t, 99.0, client.MonthlyValue, 0.001)
}

func TestToggleStatusCycle(t *testing.T) {
	svc, _ := newTestClientService(t)
	ctx := context.Background()
	session := ownerSession()

	client, err := svc.Create(ctx, session, domain.ClientRequest{Name: "Maria"})
	require.NoError(t, err)

	for _, expected := range []domain.ClientStatus{domain.StatusSuspended, domain.StatusInactive, domain.StatusActive} {
		client, err = svc.ToggleStatus(ctx, session, client.ID)
		require.NoError(t, err)
		assert.Equal(t, expected, client.Status)
	}
}

func TestRenewExtendsFromCurrentExpiry(t *testing.T) {
	svc, _ := newTestClientService(t)
	ctx := context.Background()
	session := ownerSession()

	expiry, _ := domain.ParseDate("2024-01-01")
	client, err := svc.Create(ctx, session, domain.ClientRequest{
		Name:       "Maria",
		Plan:       "Premium",
		Status:     domain.StatusInactive,
		ExpiryDate: expiry,
	})
	require.NoError(t, err)

	renewed, err := svc.Renew(ctx, session, client.ID)
	require.NoError(t, err)

	// O vencimento avança a partir do vencimento atual, não de hoje
	assert.Equal(t, "2024-01-31", renewed.ExpiryDate.String())
	assert.Equal(t, domain.StatusActive, renewed.Status)

	// Créditos zerados recebem o preço de catálogo do plano
	assert.InDelta(t, 50.0, renewed.Credits, 0.001)
}

func TestRenewKeepsNonZeroCredits(t *testing.T) {
	svc, _ := newTestClientService(t)
	ctx := context.Background()
	session := ownerSession()

	expiry, _ := domain.ParseDate("2024-01-01")
	client, err := svc.Create(ctx, session, domain.ClientRequest{
		Name:       "João",
		ExpiryDate: expiry,
		Credits:    15,
	})
	require.NoError(t, err)

	renewed, err := svc.Renew(ctx, session, client.ID)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, renewed.Credits, 0.001)
}

func TestAdjustCreditsFloorsAtZero(t *testing.T) {
	svc, _ := newTestClientService(t)
	ctx := context.Background()
	session := ownerSession()

	client, err := svc.Create(ctx, session, domain.ClientRequest{Name: "Maria", Credits: 20})
	require.NoError(t, err)

	adjusted, err := svc.AdjustCredits(ctx, session, client.ID, -1000)
	require.NoError(t, err)
	assert.Zero(t, adjusted.Credits)

	adjusted, err = svc.AdjustCredits(ctx, session, client.ID, 12.5)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, adjusted.Credits, 0.001)
}

func TestDeleteMissingClientFails(t *testing.T) {
	svc, _ := newTestClientService(t)

	err := svc.Delete(context.Background(), ownerSession(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestScopeIsolation(t *testing.T) {
	svc, _ := newTestClientService(t)
	ctx := context.Background()
	owner := domain.NewSession(domain.ScopeOwner)
	partner := domain.NewSession(domain.ScopePartner)

	client, err := svc.Create(ctx, owner, domain.ClientRequest{Name: "Do dono"})
	require.NoError(t, err)

	// O sócio não vê nem alcança o registro do dono
	list, err := svc.List(ctx, partner)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.Get(ctx, partner, client.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Delete(ctx, partner, client.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBulkImport(t *testing.T) {
	svc, _ := newTestClientService(t)
	ctx := context.Background()
	session := ownerSession()

	raw := "Nome,Telefone,Plano,MAC,Ativação,Vencimento,Status,Créditos\n" +
		"Maria,11,Premium,M1,2024-01-01,2024-02-01,ativo,0\n" +
		"João,21,Básico,M2,2024-01-01,2024-02-01,suspenso,5\n" +
		",33,Básico,M3,2024-01-01,2024-02-01,ativo,0\n"

	count, err := svc.BulkImport(ctx, session, raw)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	list, err := svc.List(ctx, session)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestBulkImportMalformedCSV(t *testing.T) {
	svc, _ := newTestClientService(t)

	_, err := svc.BulkImport(context.Background(), ownerSession(), "")
	assert.ErrorIs(t, err, domain.ErrImport)
}

func TestExportCSVRespectsFilter(t *testing.T) {
	svc, _ := newTestClientService(t)
	ctx := context.Background()
	session := ownerSession()

	_, err := svc.Create(ctx, session, domain.ClientRequest{Name: "Maria", Status: domain.StatusActive})
	require.NoError(t, err)
	_, err = svc.Create(ctx, session, domain.ClientRequest{Name: "João", Status: domain.StatusInactive})
	require.NoError(t, err)

	out, err := svc.ExportCSV(ctx, session, domain.Filter{Status: "ativo"})
	require.NoError(t, err)

	assert.Contains(t, out, "Maria")
	assert.NotContains(t, out, "João")
}

func TestMutationsRecordActivity(t *testing.T) {
	svc, activity := newTestClientService(t)
	ctx := context.Background()
	session := ownerSession()

	client, err := svc.Create(ctx, session, domain.ClientRequest{Name: "Maria"})
	require.NoError(t, err)
	_, err = svc.Renew(ctx, session, client.ID)
	require.NoError(t, err)

	entries, err := activity.List(ctx, session.Scope)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Mais recente primeiro
	assert.Equal(t, domain.ActivityClientRenewed, entries[0].Kind)
	assert.Equal(t, domain.ActivityClientAdded, entries[1].Kind)
	assert.Contains(t, entries[1].Description, "Maria")
}

func TestSummary(t *testing.T) {
	svc, _ := newTestClientService(t)
	ctx := context.Background()
	session := ownerSession()

	_, err := svc.Create(ctx, session, domain.ClientRequest{Name: "Maria", Plan: "Premium", Credits: 10})
	require.NoError(t, err)
	_, err = svc.Create(ctx, session, domain.ClientRequest{Name: "João", Plan: "Ultimate", Status: domain.StatusInactive})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, session)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalClients)
	assert.Equal(t, 1, summary.ActiveClients)
	assert.InDelta(t, 120.0, summary.MonthlyRevenue, 0.001)
	assert.InDelta(t, 10.0, summary.TotalCredits, 0.001)
}
