package csvcodec

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mvcampos/painel-iptv/internal/domain"
)

// ExportHeader cabeçalho do arquivo CSV exportado pelo painel.
var ExportHeader = []string{"Nome", "Telefone", "Plano", "MAC", "Ativação", "Vencimento", "Status", "Créditos", "Notas"}

// Parse lê o texto CSV enviado e devolve os registros candidatos à
// importação. O arquivo precisa ter uma linha de cabeçalho seguida de
// linhas de dados com as colunas na ordem fixa
// [nome, telefone, plano, mac, ativação, vencimento, status, créditos].
// Uma linha só é aceita quando tem ao menos tantos campos quanto o
// cabeçalho e o primeiro campo (nome) não está vazio. Campos opcionais
// ausentes recebem os valores padrão do painel.
//
// A leitura segue a gramática RFC 4180 (campos com aspas e vírgulas
// embutidas funcionam); o formato original fazia split ingênuo por
// vírgula, limitação conhecida que não foi reproduzida.
func Parse(raw string, scope domain.OwnerScope, plans []domain.Plan, now time.Time) ([]domain.ClientRecord, error) {
	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty CSV file")
	}

	header := records[0]
	today := domain.NewDate(now)

	var clients []domain.ClientRecord
	for _, row := range records[1:] {
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
		if len(row) < len(header) || row[0] == "" {
			continue
		}

		plan := field(row, 2)
		if plan == "" {
			plan = domain.DefaultPlanName
		}

		activation := parseDateOr(field(row, 4), today)
		expiry := parseDateOr(field(row, 5), today.AddDays(domain.RenewalDays))

		status := domain.ClientStatus(field(row, 6))
		if status == "" {
			status = domain.StatusActive
		}

		// Créditos que não parseiam viram 0
		credits, err := strconv.ParseFloat(field(row, 7), 64)
		if err != nil {
			credits = 0
		}

		clients = append(clients, domain.ClientRecord{
			Name:           row[0],
			Phone:          field(row, 1),
			Plan:           plan,
			MACAddress:     field(row, 3),
			ActivationDate: activation,
			ExpiryDate:     expiry,
			Status:         status,
			Credits:        credits,
			MonthlyValue:   domain.CatalogPrice(plans, plan),
			OwnerScope:     scope,
		})
	}

	return clients, nil
}

// Export serializa a lista (já filtrada) no formato de exportação do
// painel: campos textuais entre aspas duplas, datas e números sem aspas.
// Aspas embutidas são dobradas para que a reimportação feche o ciclo.
func Export(clients []domain.ClientRecord) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(ExportHeader, ","))
	sb.WriteString("\n")

	for _, c := range clients {
		fields := []string{
			quote(c.Name),
			quote(c.Phone),
			quote(c.Plan),
			quote(c.MACAddress),
			c.ActivationDate.String(),
			c.ExpiryDate.String(),
			string(c.Status),
			strconv.FormatFloat(c.Credits, 'f', -1, 64),
			quote(c.Notes),
		}
		sb.WriteString(strings.Join(fields, ","))
		sb.WriteString("\n")
	}

	return sb.String()
}

// field devolve a coluna i da linha, ou "" quando ausente
func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// parseDateOr interpreta a data ou devolve o padrão quando vazia/inválida
func parseDateOr(s string, fallback domain.Date) domain.Date {
	if s == "" {
		return fallback
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		return fallback
	}
	return d
}

// quote envolve o campo em aspas duplas, dobrando aspas embutidas
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
