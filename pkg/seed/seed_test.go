package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reisemlak_backend/internal/model"
	"reisemlak_backend/internal/repository"
	"reisemlak_backend/pkg/storage"
)

func TestSeedListingsOnlyWhenEmpty(t *testing.T) {
	ctx := context.Background()
	repos := repository.New(storage.NewMemoryStore())
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, SeedListings(ctx, repos.Listings, now))
	seeded, err := repos.Listings.Load(ctx)
	require.NoError(t, err)
	require.Len(t, seeded, 3)

	for _, l := range seeded {
		assert.True(t, l.IsPublic())
		assert.Equal(t, model.CurrencyTRY, l.Currency)
	}
	assert.Equal(t, model.PropertyCategoryLand, seeded[2].Category)
	assert.Empty(t, seeded[2].Rooms)

	require.NoError(t, repos.Listings.Save(ctx, seeded[:1]))
	require.NoError(t, SeedListings(ctx, repos.Listings, now))
	after, err := repos.Listings.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 1)
}

func TestSeedAdminCredential(t *testing.T) {
	ctx := context.Background()
	repos := repository.New(storage.NewMemoryStore())

	require.NoError(t, SeedAdminCredential(ctx, repos.Credentials, "ilk-parola"))
	cred, err := repos.Credentials.Load(ctx)
	require.NoError(t, err)
	assert.True(t, cred.CheckPassword("ilk-parola"))

	// mevcut parolanın üzerine yazılmaz
	require.NoError(t, SeedAdminCredential(ctx, repos.Credentials, "baska"))
	cred, err = repos.Credentials.Load(ctx)
	require.NoError(t, err)
	assert.True(t, cred.CheckPassword("ilk-parola"))
	assert.False(t, cred.CheckPassword("baska"))
}
