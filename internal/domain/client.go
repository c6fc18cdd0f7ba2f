package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ClientStatus status de um cliente IPTV
type ClientStatus string

const (
	StatusActive    ClientStatus = "ativo"
	StatusInactive  ClientStatus = "inativo"
	StatusSuspended ClientStatus = "suspenso"

	// StatusCancelled existe apenas como opção de filtro na interface,
	// nunca é gravado em nenhum registro.
	StatusCancelled ClientStatus = "cancelado"
)

// OwnerScope partição de dados à qual um registro pertence (dono ou sócio)
type OwnerScope string

const (
	ScopeOwner   OwnerScope = "dono"
	ScopePartner OwnerScope = "socio"
)

// Valid informa se o escopo é um dos dois papéis conhecidos.
func (s OwnerScope) Valid() bool {
	return s == ScopeOwner || s == ScopePartner
}

// RenewalDays quantidade de dias somados ao vencimento em cada renovação.
const RenewalDays = 30

// ClientRecord representa a assinatura de um cliente IPTV
type ClientRecord struct {
	ID             uuid.UUID    `json:"id"`
	Name           string       `json:"name"`
	Phone          string       `json:"phone,omitempty"`
	Plan           string       `json:"plan"`
	MACAddress     string       `json:"mac_address,omitempty"`
	ActivationDate Date         `json:"activation_date"`
	ExpiryDate     Date         `json:"expiry_date"`
	Status         ClientStatus `json:"status"`
	Credits        float64      `json:"credits"`
	MonthlyValue   float64      `json:"monthly_value"`
	Notes          string       `json:"notes,omitempty"`
	OwnerScope     OwnerScope   `json:"owner_scope"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// MarshalJSON acrescenta ao payload os campos derivados do vencimento,
// para que o painel não precise recalcular datas.
func (c ClientRecord) MarshalJSON() ([]byte, error) {
	type clientRecord ClientRecord
	now := time.Now()
	return json.Marshal(struct {
		clientRecord
		DaysUntilExpiry int  `json:"days_until_expiry"`
		IsExpired       bool `json:"is_expired"`
	}{
		clientRecord:    clientRecord(c),
		DaysUntilExpiry: c.DaysUntilExpiry(now),
		IsExpired:       c.IsExpired(now),
	})
}

// ClientRequest representa a requisição de criação/edição de cliente
type ClientRequest struct {
	Name           string       `json:"name" validate:"required"`
	Phone          string       `json:"phone"`
	Plan           string       `json:"plan"`
	MACAddress     string       `json:"mac_address"`
	ActivationDate Date         `json:"activation_date"`
	ExpiryDate     Date         `json:"expiry_date"`
	Status         ClientStatus `json:"status"`
	Credits        float64      `json:"credits"`
	MonthlyValue   float64      `json:"monthly_value"`
	Notes          string       `json:"notes"`
}

// NextStatus aplica o ciclo fixo de três estados:
// ativo -> suspenso -> inativo -> ativo.
func NextStatus(s ClientStatus) ClientStatus {
	switch s {
	case StatusActive:
		return StatusSuspended
	case StatusSuspended:
		return StatusInactive
	case StatusInactive:
		return StatusActive
	default:
		return StatusActive
	}
}

// DaysUntilExpiry dias restantes até o vencimento (negativo quando já venceu).
func (c ClientRecord) DaysUntilExpiry(now time.Time) int {
	return c.ExpiryDate.DaysUntil(now)
}

// IsExpired informa se o vencimento já passou.
func (c ClientRecord) IsExpired(now time.Time) bool {
	return c.DaysUntilExpiry(now) < 0
}

// IsExpiring informa se o cliente vence em até 7 dias, incluindo os já
// vencidos (a regra é apenas "vencimento <= hoje + 7 dias").
func (c ClientRecord) IsExpiring(now time.Time) bool {
	if c.ExpiryDate.IsZero() {
		return false
	}
	return !c.ExpiryDate.Time.After(now.Add(7 * 24 * time.Hour))
}
