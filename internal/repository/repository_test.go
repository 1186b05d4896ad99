package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reisemlak_backend/internal/model"
	apperrors "reisemlak_backend/pkg/errors"
	"reisemlak_backend/pkg/storage"
)

func TestListingRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repos := New(store)

	listings, err := repos.Listings.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, listings)
	assert.Empty(t, listings)

	age := 0
	in := []model.Listing{
		{ID: 2, Title: "B", Price: 200, Area: 80, Status: model.ListingStatusActive, BuildingAge: &age},
		{ID: 1, Title: "A", Price: 100, Area: 50, Status: model.ListingStatusSold},
	}
	require.NoError(t, repos.Listings.Save(ctx, in))

	out, err := repos.Listings.Load(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(2), out[0].ID)
	assert.Equal(t, int64(1), out[1].ID)
	require.NotNil(t, out[0].BuildingAge)
	assert.Equal(t, 0, *out[0].BuildingAge)

	raw, err := store.Get(ctx, ListingsKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"title":"B"`)
}

func TestListingRepositoryReadsStorefrontDocument(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	doc := `[{"id":1718000000000,"title":"Satılık 3+1","images":["/a.jpg"],"type":"konut",
		"listingType":"satilik","category":"daire","rooms":"3+1","area":145,"price":3250000,
		"currency":"TRY","address":"x","city":"Eskişehir","district":"Odunpazarı",
		"features":["Asansör"],"description":"d","createdAt":"2024-06-10T08:00:00.000Z",
		"status":"rezerve","location":{"lat":39.77,"lng":30.52}}]`
	require.NoError(t, store.Set(ctx, ListingsKey, []byte(doc)))

	listings, err := New(store).Listings.Load(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	l := listings[0]
	assert.Equal(t, model.ListingStatusReserved, l.Status)
	assert.Equal(t, model.PropertyCategoryApartment, l.Category)
	assert.Equal(t, int64(3250000), l.Price)
	require.NotNil(t, l.Location)
	assert.Equal(t, 30.52, l.Location.Lng)
}

func TestListingRepositoryCorruptDocument(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, ListingsKey, []byte("{not json")))

	_, err := New(store).Listings.Load(ctx)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "INTERNAL_ERROR"))
}

func TestOfferRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repos := New(storage.NewMemoryStore())

	amount := int64(1500000)
	require.NoError(t, repos.Offers.Save(ctx, []model.Offer{
		{ID: 10, PropertyID: 1, CustomerName: "Ayşe", OfferAmount: &amount, Status: model.OfferStatusNew},
	}))

	offers, err := repos.Offers.Load(ctx)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "Ayşe", offers[0].CustomerName)
	require.NotNil(t, offers[0].OfferAmount)
	assert.Equal(t, amount, *offers[0].OfferAmount)
}

func TestFooterSettingsDefaultsAndReplace(t *testing.T) {
	ctx := context.Background()
	repos := New(storage.NewMemoryStore())

	settings, err := repos.Footer.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultFooterSettings(), settings)

	updated := model.FooterSettings{CompanyName: "Yeni Emlak", Phone: "123"}
	require.NoError(t, repos.Footer.Save(ctx, updated))

	settings, err = repos.Footer.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Yeni Emlak", settings.CompanyName)
	assert.Equal(t, "123", settings.Phone)
}

func TestCredentialRepository(t *testing.T) {
	ctx := context.Background()
	repos := New(storage.NewMemoryStore())

	_, err := repos.Credentials.Load(ctx)
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))

	cred, err := model.NewAdminCredential("secret1")
	require.NoError(t, err)
	require.NoError(t, repos.Credentials.Save(ctx, cred))

	loaded, err := repos.Credentials.Load(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.CheckPassword("secret1"))
	assert.False(t, loaded.CheckPassword("wrong"))
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) { return nil, errors.New("down") }
func (failingStore) Set(context.Context, string, []byte) error   { return errors.New("down") }
func (failingStore) Delete(context.Context, string) error        { return errors.New("down") }

func TestRepositoryWrapsStoreErrors(t *testing.T) {
	ctx := context.Background()
	repos := New(failingStore{})

	_, err := repos.Listings.Load(ctx)
	assert.True(t, apperrors.Is(err, "INTERNAL_ERROR"))
	assert.ErrorContains(t, err, "down")

	err = repos.Offers.Save(ctx, nil)
	assert.True(t, apperrors.Is(err, "INTERNAL_ERROR"))
}
