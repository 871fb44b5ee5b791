package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/partner"
	"github.com/resinworks/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormClientRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("save and find by normalized name", func(t *testing.T) {
		repo := NewGormClientRepository(setupTestDB(t))
		ownerID := uuid.New()

		client, err := partner.NewClient(ownerID, "Ana García", "ana@example.com", "", "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, client))

		found, err := repo.FindByNormalizedName(ctx, ownerID, partner.NormalizeName("  ANA GARCÍA "))
		require.NoError(t, err)
		assert.Equal(t, client.ID, found.ID)
		assert.Equal(t, "ana@example.com", found.Email)
	})

	t.Run("normalized lookup is owner scoped", func(t *testing.T) {
		repo := NewGormClientRepository(setupTestDB(t))

		client, err := partner.NewClient(uuid.New(), "Ana", "", "", "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, client))

		_, err = repo.FindByNormalizedName(ctx, uuid.New(), "ana")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("empty normalized name is rejected", func(t *testing.T) {
		repo := NewGormClientRepository(setupTestDB(t))

		_, err := repo.FindByNormalizedName(ctx, uuid.New(), "")
		assert.Error(t, err)
	})

	t.Run("list for owner keeps creation order", func(t *testing.T) {
		repo := NewGormClientRepository(setupTestDB(t))
		ownerID := uuid.New()

		for _, name := range []string{"Zoe", "Ana", "Luis"} {
			client, err := partner.NewClient(ownerID, name, "", "", "")
			require.NoError(t, err)
			require.NoError(t, repo.Save(ctx, client))
		}

		clients, err := repo.ListForOwner(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, clients, 3)
		assert.Equal(t, "Zoe", clients[0].Name)
	})

	t.Run("search by name or email", func(t *testing.T) {
		repo := NewGormClientRepository(setupTestDB(t))
		ownerID := uuid.New()

		ana, err := partner.NewClient(ownerID, "Ana", "ana@example.com", "", "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, ana))
		luis, err := partner.NewClient(ownerID, "Luis", "", "", "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, luis))

		filter := shared.DefaultFilter()
		filter.Search = "example.com"

		clients, err := repo.FindAllForOwner(ctx, ownerID, filter)
		require.NoError(t, err)
		require.Len(t, clients, 1)
		assert.Equal(t, "Ana", clients[0].Name)
	})

	t.Run("delete", func(t *testing.T) {
		repo := NewGormClientRepository(setupTestDB(t))
		ownerID := uuid.New()

		client, err := partner.NewClient(ownerID, "Ana", "", "", "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, client))

		require.NoError(t, repo.DeleteForOwner(ctx, ownerID, client.ID))
		assert.ErrorIs(t, repo.DeleteForOwner(ctx, ownerID, client.ID), shared.ErrNotFound)
	})
}

func TestGormUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("save and find by email", func(t *testing.T) {
		repo := NewGormUserRepository(setupTestDB(t))

		user := mustUser(t, "maker@example.com")
		require.NoError(t, repo.Save(ctx, user))

		found, err := repo.FindByEmail(ctx, "  Maker@Example.com ")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)

		exists, err := repo.ExistsByEmail(ctx, "maker@example.com")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("missing user", func(t *testing.T) {
		repo := NewGormUserRepository(setupTestDB(t))

		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
