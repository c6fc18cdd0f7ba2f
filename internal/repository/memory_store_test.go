package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/mvcampos/painel-iptv/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityStoreKeepsOnlyMostRecent(t *testing.T) {
	store := NewInMemoryActivityStore()
	ctx := context.Background()

	for i := 0; i < domain.ActivityLogSize+10; i++ {
		err := store.Push(ctx, domain.Activity{
			ID:          uuid.New(),
			Kind:        domain.ActivityClientAdded,
			Description: fmt.Sprintf("entrada %d", i),
			OwnerScope:  domain.ScopeOwner,
		})
		require.NoError(t, err)
	}

	entries, err := store.List(ctx, domain.ScopeOwner)
	require.NoError(t, err)
	require.Len(t, entries, domain.ActivityLogSize)

	// Mais recente primeiro; as 10 primeiras entradas foram descartadas
	assert.Equal(t, fmt.Sprintf("entrada %d", domain.ActivityLogSize+9), entries[0].Description)
	assert.Equal(t, "entrada 10", entries[len(entries)-1].Description)
}

func TestActivityStoreIsolatesScopes(t *testing.T) {
	store := NewInMemoryActivityStore()
	ctx := context.Background()

	require.NoError(t, store.Push(ctx, domain.Activity{ID: uuid.New(), OwnerScope: domain.ScopeOwner}))
	require.NoError(t, store.Push(ctx, domain.Activity{ID: uuid.New(), OwnerScope: domain.ScopePartner}))

	owner, err := store.List(ctx, domain.ScopeOwner)
	require.NoError(t, err)
	assert.Len(t, owner, 1)

	require.NoError(t, store.Clear(ctx, domain.ScopeOwner))

	owner, err = store.List(ctx, domain.ScopeOwner)
	require.NoError(t, err)
	assert.Empty(t, owner)

	partner, err := store.List(ctx, domain.ScopePartner)
	require.NoError(t, err)
	assert.Len(t, partner, 1)
}

func TestCreateBatchPreservesImportOrder(t *testing.T) {
	repo := NewInMemoryClientRepository(nil)
	ctx := context.Background()

	batch := []domain.ClientRecord{
		{Name: "Primeiro", OwnerScope: domain.ScopeOwner},
		{Name: "Segundo", OwnerScope: domain.ScopeOwner},
		{Name: "Terceiro", OwnerScope: domain.ScopeOwner},
	}

	count, err := repo.CreateBatch(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	list, err := repo.List(ctx, domain.ScopeOwner)
	require.NoError(t, err)
	require.Len(t, list, 3)

	// Listagem mais recente primeiro: a última linha importada vem antes
	assert.Equal(t, "Terceiro", list[0].Name)
	assert.Equal(t, "Primeiro", list[2].Name)
}

func TestRecordsWithoutScopeCountAsCallers(t *testing.T) {
	repo := NewInMemoryClientRepository(nil)
	ctx := context.Background()

	legacy, err := repo.Create(ctx, domain.ClientRecord{Name: "Antigo"})
	require.NoError(t, err)

	owner, err := repo.List(ctx, domain.ScopeOwner)
	require.NoError(t, err)
	assert.Len(t, owner, 1)

	partner, err := repo.List(ctx, domain.ScopePartner)
	require.NoError(t, err)
	assert.Len(t, partner, 1)

	_, err = repo.GetByID(ctx, domain.ScopePartner, legacy.ID)
	assert.NoError(t, err)
}
