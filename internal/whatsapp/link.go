package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/mvcampos/painel-iptv/internal/domain"
)

// countryCode DDI prefixado ao telefone no link (Brasil).
const countryCode = "55"

// RenewalMessage monta a mensagem de cobrança de renovação do cliente.
func RenewalMessage(c domain.ClientRecord, now time.Time) string {
	days := c.DaysUntilExpiry(now)
	return fmt.Sprintf("Olá %s! Seu plano IPTV vence em %d dias. Renove já!", c.Name, days)
}

// RenewalLink monta o deep-link wa.me com a mensagem de renovação
// pré-preenchida. Tudo que não for dígito é removido do telefone.
func RenewalLink(c domain.ClientRecord, now time.Time) string {
	return fmt.Sprintf("https://wa.me/%s%s?text=%s",
		countryCode,
		digitsOnly(c.Phone),
		url.QueryEscape(RenewalMessage(c, now)),
	)
}

// digitsOnly remove qualquer caractere que não seja dígito
func digitsOnly(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
