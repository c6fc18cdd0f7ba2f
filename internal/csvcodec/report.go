package csvcodec

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/mvcampos/painel-iptv/internal/domain"
)

// reportTemplate documento HTML autocontido do relatório de clientes,
// no mesmo layout do relatório original do painel.
var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Relatório de Clientes - {{.ScopeTitle}}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 20px; }
    h1 { color: #16a34a; text-align: center; }
    table { width: 100%; border-collapse: collapse; margin-top: 20px; }
    th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
    th { background-color: #f2f2f2; }
    .status-ativo { color: #16a34a; font-weight: bold; }
    .status-inativo { color: #dc2626; font-weight: bold; }
    .status-suspenso { color: #eab308; font-weight: bold; }
  </style>
</head>
<body>
  <h1>Relatório de Clientes - {{.ScopeTitle}}</h1>
  <p>Data: {{.Date}}</p>
  <p>Total de clientes: {{.Total}}</p>

  <table>
    <thead>
      <tr>
        <th>Nome</th>
        <th>Telefone</th>
        <th>Plano</th>
        <th>Status</th>
        <th>Vencimento</th>
        <th>Créditos</th>
      </tr>
    </thead>
    <tbody>
      {{range .Rows}}<tr>
        <td>{{.Name}}</td>
        <td>{{.Phone}}</td>
        <td>{{.Plan}}</td>
        <td class="status-{{.Status}}">{{.StatusUpper}}</td>
        <td>{{.Expiry}}</td>
        <td>{{.Credits}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
</body>
</html>
`))

type reportRow struct {
	Name        string
	Phone       string
	Plan        string
	Status      string
	StatusUpper string
	Expiry      string
	Credits     string
}

type reportData struct {
	ScopeTitle string
	Date       string
	Total      int
	Rows       []reportRow
}

// Report gera o relatório HTML para impressão da lista (já filtrada).
func Report(clients []domain.ClientRecord, scope domain.OwnerScope, now time.Time) (string, error) {
	data := reportData{
		ScopeTitle: strings.ToUpper(string(scope)),
		Date:       domain.NewDate(now).FormatBR(),
		Total:      len(clients),
	}

	for _, c := range clients {
		data.Rows = append(data.Rows, reportRow{
			Name:        c.Name,
			Phone:       c.Phone,
			Plan:        c.Plan,
			Status:      string(c.Status),
			StatusUpper: strings.ToUpper(string(c.Status)),
			Expiry:      c.ExpiryDate.FormatBR(),
			Credits:     fmt.Sprintf("R$ %.2f", c.Credits),
		})
	}

	var sb strings.Builder
	if err := reportTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	return sb.String(), nil
}
