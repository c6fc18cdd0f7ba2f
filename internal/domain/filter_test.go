package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testClients(now time.Time) []ClientRecord {
	return []ClientRecord{
		{
			Name:         "Ana Souza",
			Phone:        "11 98888-7777",
			MACAddress:   "AA:BB:CC:DD:EE:01",
			Status:       StatusActive,
			ExpiryDate:   NewDate(now).AddDays(3),
			MonthlyValue: 30,
			Credits:      10,
		},
		{
			Name:         "Bia Lima",
			Phone:        "21 97777-6666",
			MACAddress:   "AA:BB:CC:DD:EE:02",
			Status:       StatusSuspended,
			ExpiryDate:   NewDate(now).AddDays(20),
			MonthlyValue: 50,
			Credits:      0,
		},
		{
			Name:         "Caio Santos",
			Phone:        "31 96666-5555",
			MACAddress:   "AA:BB:CC:DD:EE:03",
			Status:       StatusInactive,
			ExpiryDate:   NewDate(now).AddDays(-1),
			MonthlyValue: 70,
			Credits:      5,
		},
	}
}

func TestFilterSearchMatchesNamePhoneOrMAC(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	clients := testClients(now)

	// Busca sem diferenciar maiúsculas, por substring do nome
	byName := Filter{Search: "ANA"}.Apply(clients, now)
	assert.Len(t, byName, 1)
	assert.Equal(t, "Ana Souza", byName[0].Name)

	byPhone := Filter{Search: "21 97"}.Apply(clients, now)
	assert.Len(t, byPhone, 1)
	assert.Equal(t, "Bia Lima", byPhone[0].Name)

	byMAC := Filter{Search: "ee:03"}.Apply(clients, now)
	assert.Len(t, byMAC, 1)
	assert.Equal(t, "Caio Santos", byMAC[0].Name)

	none := Filter{Search: "zzz"}.Apply(clients, now)
	assert.Empty(t, none)
}

func TestFilterStatus(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	clients := testClients(now)

	active := Filter{Status: "ativo"}.Apply(clients, now)
	assert.Len(t, active, 1)
	assert.Equal(t, "Ana Souza", active[0].Name)

	// "todos" e vazio aceitam qualquer status
	all := Filter{Status: StatusFilterAll}.Apply(clients, now)
	assert.Len(t, all, 3)
	empty := Filter{}.Apply(clients, now)
	assert.Len(t, empty, 3)
}

func TestFilterExpiringIncludesExpired(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	clients := testClients(now)

	expiring := Filter{ExpiringOnly: true}.Apply(clients, now)
	assert.Len(t, expiring, 2)
	assert.Equal(t, "Ana Souza", expiring[0].Name)
	assert.Equal(t, "Caio Santos", expiring[1].Name)
}

func TestFilterCombined(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	clients := testClients(now)

	result := Filter{Search: "a", Status: "inativo", ExpiringOnly: true}.Apply(clients, now)
	assert.Len(t, result, 1)
	assert.Equal(t, "Caio Santos", result[0].Name)
}

func TestSummarizeIgnoresFiltersAndStatus(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	clients := testClients(now)

	s := Summarize(clients, now)
	assert.Equal(t, 3, s.TotalClients)
	assert.Equal(t, 1, s.ActiveClients)
	// A receita soma o valor mensal de todos, inclusive suspensos e inativos
	assert.InDelta(t, 150.0, s.MonthlyRevenue, 0.001)
	assert.InDelta(t, 15.0, s.TotalCredits, 0.001)
	assert.Equal(t, 2, s.ExpiringSoon)
}

func TestSummarizeEmptyList(t *testing.T) {
	s := Summarize(nil, time.Now())
	assert.Equal(t, Summary{}, s)
}
