package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPublic(t *testing.T) {
	cases := map[ListingStatus]bool{
		ListingStatusActive:   true,
		ListingStatusReserved: true,
		ListingStatusSold:     false,
		ListingStatusRented:   false,
		"":                    false,
	}
	for status, want := range cases {
		l := Listing{Status: status}
		assert.Equal(t, want, l.IsPublic(), "status %q", status)
	}
}

func TestNormalize(t *testing.T) {
	land := Listing{Type: PropertyTypeLand, Rooms: "3+1", Category: PropertyCategoryVilla}
	land.Normalize()
	assert.Empty(t, land.Rooms)
	assert.Equal(t, PropertyCategoryLand, land.Category)
	assert.Equal(t, []string{}, land.Images)
	assert.Equal(t, []string{}, land.Features)
	assert.Equal(t, CurrencyTRY, land.Currency)
	assert.Equal(t, ListingStatusActive, land.Status)

	flat := Listing{Type: PropertyTypeResidential, Rooms: "2+1", Currency: CurrencyEUR, Status: ListingStatusSold}
	flat.Normalize()
	assert.Equal(t, "2+1", flat.Rooms)
	assert.Equal(t, CurrencyEUR, flat.Currency)
	assert.Equal(t, ListingStatusSold, flat.Status)
}

func TestMintID(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	assert.Equal(t, int64(1700000000000), MintID(now, func(int64) bool { return false }))

	taken := map[int64]bool{1700000000000: true, 1700000000001: true}
	assert.Equal(t, int64(1700000000002), MintID(now, func(id int64) bool { return taken[id] }))
}

func TestTimestampAndCreatedTime(t *testing.T) {
	at := time.Date(2024, 3, 5, 10, 30, 0, 123000000, time.FixedZone("TRT", 3*60*60))

	ts := Timestamp(at)
	assert.Equal(t, "2024-03-05T07:30:00.123Z", ts)

	l := Listing{CreatedAt: ts}
	assert.True(t, at.Equal(l.CreatedTime()))

	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), (&Listing{CreatedAt: "2024-03-05"}).CreatedTime())
	assert.True(t, (&Listing{CreatedAt: "dün"}).CreatedTime().IsZero())
}

func TestOfferSnapshotAndMarkRead(t *testing.T) {
	listing := &Listing{ID: 9, Title: "Villa", Address: "Sazova", Currency: CurrencyUSD}
	offer := NewOffer(42, listing, "2024-03-05T07:30:00.000Z")

	assert.Equal(t, int64(9), offer.PropertyID)
	assert.Equal(t, "Villa", offer.PropertyTitle)
	assert.Equal(t, OfferStatusNew, offer.Status)

	listing.Title = "Değişti"
	assert.Equal(t, "Villa", offer.PropertyTitle)

	assert.True(t, offer.MarkRead())
	assert.Equal(t, OfferStatusRead, offer.Status)
	assert.False(t, offer.MarkRead())

	replied := Offer{Status: OfferStatusReplied}
	assert.False(t, replied.MarkRead())
	assert.Equal(t, OfferStatusReplied, replied.Status)

	assert.Equal(t, 1, CountUnread([]Offer{{Status: OfferStatusNew}, offer, replied}))
}

func TestAdminCredential(t *testing.T) {
	cred, err := NewAdminCredential("admin123")
	require.NoError(t, err)

	assert.NotEqual(t, "admin123", cred.PasswordHash)
	assert.True(t, cred.CheckPassword("admin123"))
	assert.False(t, cred.CheckPassword("admin124"))

	require.NoError(t, cred.SetPassword("yeni-parola"))
	assert.True(t, cred.CheckPassword("yeni-parola"))
	assert.False(t, cred.CheckPassword("admin123"))
}
