package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mvcampos/painel-iptv/internal/domain"
)

// ClientRepository acesso ao armazenamento de registros de clientes.
// Toda operação recebe o escopo da sessão; um registro fora do escopo do
// chamador nunca é retornado nem alterado.
type ClientRepository interface {
	// List retorna todos os registros do escopo, mais recentes primeiro.
	List(ctx context.Context, scope domain.OwnerScope) ([]domain.ClientRecord, error)

	// GetByID retorna um registro do escopo; ErrNotFound quando ausente.
	GetByID(ctx context.Context, scope domain.OwnerScope, id uuid.UUID) (domain.ClientRecord, error)

	// Create persiste um novo registro e devolve a versão gravada.
	Create(ctx context.Context, client domain.ClientRecord) (domain.ClientRecord, error)

	// Update substitui todos os campos mutáveis do registro de mesmo ID
	// dentro do escopo do próprio registro; ErrNotFound quando ausente.
	Update(ctx context.Context, client domain.ClientRecord) error

	// Delete remove um registro do escopo; ErrNotFound quando ausente
	// (a exclusão exige confirmação positiva, nunca sucesso silencioso).
	Delete(ctx context.Context, scope domain.OwnerScope, id uuid.UUID) error

	// CreateBatch insere os registros em uma única operação; ou todos
	// entram, ou a chamada inteira falha.
	CreateBatch(ctx context.Context, clients []domain.ClientRecord) (int, error)
}

// PlanStore guarda o catálogo de planos de cada escopo.
type PlanStore interface {
	// Load retorna o catálogo do escopo; lista vazia quando nunca salvo.
	Load(ctx context.Context, scope domain.OwnerScope) ([]domain.Plan, error)

	// Save substitui o catálogo do escopo.
	Save(ctx context.Context, scope domain.OwnerScope, plans []domain.Plan) error
}

// ActivityStore guarda o histórico de ações de cada escopo, limitado às
// domain.ActivityLogSize entradas mais recentes.
type ActivityStore interface {
	// Push acrescenta uma entrada, descartando a mais antiga se o limite
	// foi atingido.
	Push(ctx context.Context, activity domain.Activity) error

	// List retorna as entradas do escopo, mais recentes primeiro.
	List(ctx context.Context, scope domain.OwnerScope) ([]domain.Activity, error)

	// Clear apaga todo o histórico do escopo.
	Clear(ctx context.Context, scope domain.OwnerScope) error
}
