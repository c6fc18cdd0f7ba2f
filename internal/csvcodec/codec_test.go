package csvcodec

import (
	"strings"
	"testing"
	"time"

	"github.com/mvcampos/painel-iptv/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestParseFullRow(t *testing.T) {
	raw := "Nome,Telefone,Plano,MAC,Ativação,Vencimento,Status,Créditos\n" +
		"Maria Silva,11999998888,Premium,AA:BB:CC:DD:EE:FF,2024-01-10,2024-07-10,suspenso,25.5\n"

	clients, err := Parse(raw, domain.ScopeOwner, domain.DefaultPlans(), testNow)
	require.NoError(t, err)
	require.Len(t, clients, 1)

	c := clients[0]
	assert.Equal(t, "Maria Silva", c.Name)
	assert.Equal(t, "11999998888", c.Phone)
	assert.Equal(t, "Premium", c.Plan)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", c.MACAddress)
	assert.Equal(t, "2024-01-10", c.ActivationDate.String())
	assert.Equal(t, "2024-07-10", c.ExpiryDate.String())
	assert.Equal(t, domain.StatusSuspended, c.Status)
	assert.InDelta(t, 25.5, c.Credits, 0.001)
	assert.InDelta(t, 50.0, c.MonthlyValue, 0.001)
	assert.Equal(t, domain.ScopeOwner, c.OwnerScope)
}

func TestParseAppliesDefaults(t *testing.T) {
	raw := "Nome,Telefone,Plano,MAC,Ativação,Vencimento,Status,Créditos\n" +
		"João,,,,,,,\n"

	clients, err := Parse(raw, domain.ScopePartner, domain.DefaultPlans(), testNow)
	require.NoError(t, err)
	require.Len(t, clients, 1)

	c := clients[0]
	assert.Equal(t, "João", c.Name)
	assert.Equal(t, domain.DefaultPlanName, c.Plan)
	assert.Equal(t, domain.NewDate(testNow).String(), c.ActivationDate.String())
	assert.Equal(t, domain.NewDate(testNow).AddDays(domain.RenewalDays).String(), c.ExpiryDate.String())
	assert.Equal(t, domain.StatusActive, c.Status)
	assert.Zero(t, c.Credits)
	assert.InDelta(t, 30.0, c.MonthlyValue, 0.001)
}

func TestParseSkipsShortAndNamelessRows(t *testing.T) {
	raw := "Nome,Telefone,Plano,MAC,Ativação,Vencimento,Status,Créditos\n" +
		"Válido,11,Básico,MAC1,2024-01-01,2024-02-01,ativo,0\n" +
		",11,Básico,MAC2,2024-01-01,2024-02-01,ativo,0\n" +
		"Curto,11\n"

	clients, err := Parse(raw, domain.ScopeOwner, domain.DefaultPlans(), testNow)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Válido", clients[0].Name)
}

func TestParseUnparseableCreditsBecomeZero(t *testing.T) {
	raw := "Nome,Telefone,Plano,MAC,Ativação,Vencimento,Status,Créditos\n" +
		"Ana,11,Básico,MAC,2024-01-01,2024-02-01,ativo,abc\n"

	clients, err := Parse(raw, domain.ScopeOwner, domain.DefaultPlans(), testNow)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Zero(t, clients[0].Credits)
}

func TestParseQuotedFieldsWithCommas(t *testing.T) {
	raw := "Nome,Telefone,Plano,MAC,Ativação,Vencimento,Status,Créditos\n" +
		`"Silva, Maria",11999998888,Básico,MAC,2024-01-01,2024-02-01,ativo,0` + "\n"

	clients, err := Parse(raw, domain.ScopeOwner, domain.DefaultPlans(), testNow)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Silva, Maria", clients[0].Name)
}

func TestParseEmptyFile(t *testing.T) {
	_, err := Parse("", domain.ScopeOwner, nil, testNow)
	assert.Error(t, err)
}

func TestExportHeaderAndQuoting(t *testing.T) {
	activation, _ := domain.ParseDate("2024-01-10")
	expiry, _ := domain.ParseDate("2024-07-10")

	out := Export([]domain.ClientRecord{{
		Name:           `Maria "Mara" Silva`,
		Phone:          "11999998888",
		Plan:           "Premium",
		MACAddress:     "AA:BB",
		ActivationDate: activation,
		ExpiryDate:     expiry,
		Status:         domain.StatusActive,
		Credits:        25.5,
		Notes:          "paga em dia",
	}})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Nome,Telefone,Plano,MAC,Ativação,Vencimento,Status,Créditos,Notas", lines[0])
	assert.Equal(t, `"Maria ""Mara"" Silva","11999998888","Premium","AA:BB",2024-01-10,2024-07-10,ativo,25.5,"paga em dia"`, lines[1])
}

func TestExportParseRoundTrip(t *testing.T) {
	activation, _ := domain.ParseDate("2024-01-10")
	expiry, _ := domain.ParseDate("2024-07-10")

	original := []domain.ClientRecord{
		{Name: "Silva, Maria", Phone: "11", Plan: "Premium", MACAddress: "M1",
			ActivationDate: activation, ExpiryDate: expiry, Status: domain.StatusSuspended, Credits: 12.5},
		{Name: "João", Phone: "21", Plan: "Básico", MACAddress: "M2",
			ActivationDate: activation, ExpiryDate: expiry, Status: domain.StatusActive, Credits: 0},
	}

	clients, err := Parse(Export(original), domain.ScopeOwner, domain.DefaultPlans(), testNow)
	require.NoError(t, err)
	require.Len(t, clients, len(original))

	for i, c := range clients {
		assert.Equal(t, original[i].Name, c.Name)
		assert.Equal(t, original[i].Phone, c.Phone)
		assert.Equal(t, original[i].Plan, c.Plan)
		assert.Equal(t, original[i].MACAddress, c.MACAddress)
		assert.Equal(t, original[i].ActivationDate.String(), c.ActivationDate.String())
		assert.Equal(t, original[i].ExpiryDate.String(), c.ExpiryDate.String())
		assert.Equal(t, original[i].Status, c.Status)
		assert.InDelta(t, original[i].Credits, c.Credits, 0.001)
	}
}

func TestReportContainsClientsAndScope(t *testing.T) {
	expiry, _ := domain.ParseDate("2024-07-10")

	html, err := Report([]domain.ClientRecord{{
		Name:       "Maria",
		Phone:      "11",
		Plan:       "Premium",
		Status:     domain.StatusSuspended,
		ExpiryDate: expiry,
		Credits:    25.5,
	}}, domain.ScopeOwner, testNow)
	require.NoError(t, err)

	assert.Contains(t, html, "Relatório de Clientes - DONO")
	assert.Contains(t, html, "Maria")
	assert.Contains(t, html, "status-suspenso")
	assert.Contains(t, html, "SUSPENSO")
	assert.Contains(t, html, "10/07/2024")
	assert.Contains(t, html, "R$ 25.50")
	assert.Contains(t, html, "Total de clientes: 1")
}
