package domain

import (
	"strings"
	"time"
)

// StatusFilterAll valor de filtro que aceita qualquer status.
const StatusFilterAll = "todos"

// Filter parâmetros de filtragem da lista de clientes. A busca compara
// substrings sem diferenciar maiúsculas contra nome OU telefone OU MAC.
type Filter struct {
	Search       string
	Status       string
	ExpiringOnly bool
}

// Matches informa se o registro passa por todos os filtros.
func (f Filter) Matches(c ClientRecord, now time.Time) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Name), term) &&
			!strings.Contains(strings.ToLower(c.Phone), term) &&
			!strings.Contains(strings.ToLower(c.MACAddress), term) {
			return false
		}
	}

	if f.Status != "" && f.Status != StatusFilterAll && string(c.Status) != f.Status {
		return false
	}

	if f.ExpiringOnly && !c.IsExpiring(now) {
		return false
	}

	return true
}

// Apply devolve o subconjunto da lista que passa pelos filtros, na ordem
// original.
func (f Filter) Apply(clients []ClientRecord, now time.Time) []ClientRecord {
	filtered := make([]ClientRecord, 0, len(clients))
	for _, c := range clients {
		if f.Matches(c, now) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// Summary métricas derivadas da lista completa de clientes
type Summary struct {
	TotalClients   int     `json:"total_clients"`
	ActiveClients  int     `json:"active_clients"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	TotalCredits   float64 `json:"total_credits"`
	ExpiringSoon   int     `json:"expiring_soon"`
}

// Summarize calcula as métricas do painel sobre a lista SEM filtros.
// A receita soma o valor mensal de todos os registros, independentemente
// do status; "vencendo" usa a mesma regra de <= 7 dias do filtro, sem
// excluir os já vencidos.
func Summarize(clients []ClientRecord, now time.Time) Summary {
	s := Summary{TotalClients: len(clients)}
	for _, c := range clients {
		if c.Status == StatusActive {
			s.ActiveClients++
		}
		s.MonthlyRevenue += c.MonthlyValue
		s.TotalCredits += c.Credits
		if c.IsExpiring(now) {
			s.ExpiringSoon++
		}
	}
	return s
}
