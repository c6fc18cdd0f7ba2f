package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mvcampos/painel-iptv/internal/domain"
)

// Topic tópico único de eventos de mudança de clientes.
const Topic = "clients.events"

// ChangeEvent evento de mudança publicado após cada mutação. Quem consome
// ignora o conteúdo e apenas recarrega a lista inteira, então o payload
// carrega só o mínimo para depuração.
type ChangeEvent struct {
	Kind      domain.ActivityKind `json:"kind"`
	ClientID  *uuid.UUID          `json:"client_id,omitempty"`
	Scope     domain.OwnerScope   `json:"scope"`
	Timestamp time.Time           `json:"timestamp"`
}

// NewChangeEvent cria um evento de mudança com o instante atual.
func NewChangeEvent(kind domain.ActivityKind, clientID *uuid.UUID, scope domain.OwnerScope) ChangeEvent {
	return ChangeEvent{
		Kind:      kind,
		ClientID:  clientID,
		Scope:     scope,
		Timestamp: time.Now(),
	}
}

// Notifier canal de notificação de mudanças. A notificação é opcional e
// de melhor esforço: falhas são logadas por quem chama, nunca derrubam a
// operação que já foi persistida.
type Notifier interface {
	NotifyChanged(ctx context.Context, event ChangeEvent) error
	Close() error
}

// Broadcaster entrega uma mensagem a todas as sessões conectadas.
type Broadcaster interface {
	Broadcast(message any)
}

// HubNotifier notificador que entrega direto ao hub local, usado quando o
// Kafka está desabilitado na configuração.
type HubNotifier struct {
	hub Broadcaster
}

// NewHubNotifier cria um notificador direto para o hub
func NewHubNotifier(hub Broadcaster) *HubNotifier {
	return &HubNotifier{hub: hub}
}

// NotifyChanged envia o evento para todas as sessões conectadas
func (n *HubNotifier) NotifyChanged(ctx context.Context, event ChangeEvent) error {
	n.hub.Broadcast(event)
	return nil
}

// Close não tem recursos a liberar
func (n *HubNotifier) Close() error { return nil }

// NoopNotifier descarta todos os eventos (testes e canal desligado).
type NoopNotifier struct{}

// NotifyChanged descarta o evento
func (NoopNotifier) NotifyChanged(ctx context.Context, event ChangeEvent) error { return nil }

// Close não tem recursos a liberar
func (NoopNotifier) Close() error { return nil }
