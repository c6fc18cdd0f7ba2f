package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityKind tipo de ação registrada no histórico
type ActivityKind string

const (
	ActivityClientAdded   ActivityKind = "client_added"
	ActivityClientUpdated ActivityKind = "client_updated"
	ActivityClientDeleted ActivityKind = "client_deleted"
	ActivityStatusChanged ActivityKind = "status_changed"
	ActivityClientRenewed ActivityKind = "client_renewed"
	ActivityExport        ActivityKind = "export"
)

// ActivityLogSize o histórico guarda apenas as 50 entradas mais recentes.
const ActivityLogSize = 50

// Activity uma entrada do histórico de ações do painel
type Activity struct {
	ID          uuid.UUID    `json:"id"`
	Kind        ActivityKind `json:"kind"`
	Description string       `json:"description"`
	ClientID    *uuid.UUID   `json:"client_id,omitempty"`
	OwnerScope  OwnerScope   `json:"owner_scope"`
	Timestamp   time.Time    `json:"timestamp"`
}
