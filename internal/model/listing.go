package model

import (
	"time"
)

// Property Types
type PropertyType string

const (
	PropertyTypeResidential PropertyType = "konut"
	PropertyTypeLand        PropertyType = "arsa"
)

// Listing Types
type ListingType string

const (
	ListingTypeForSale ListingType = "satilik"
	ListingTypeForRent ListingType = "kiralik"
)

// Property Categories, yalnızca konut ilanlarında anlamlı
type PropertyCategory string

const (
	PropertyCategoryApartment     PropertyCategory = "daire"
	PropertyCategoryVilla         PropertyCategory = "villa"
	PropertyCategoryResidence     PropertyCategory = "residence"
	PropertyCategoryDetachedHouse PropertyCategory = "mustakil-ev"
	PropertyCategoryLand          PropertyCategory = "arsa"
)

// Listing Status
type ListingStatus string

const (
	ListingStatusActive   ListingStatus = "aktif"
	ListingStatusSold     ListingStatus = "satildi"
	ListingStatusRented   ListingStatus = "kiralandi"
	ListingStatusReserved ListingStatus = "rezerve"
)

// Currency Types
type Currency string

const (
	CurrencyTRY Currency = "TRY"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Listing struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Images      []string         `json:"images"`
	Videos      []string         `json:"videos,omitempty"`
	Type        PropertyType     `json:"type"`
	ListingType ListingType      `json:"listingType"`
	Category    PropertyCategory `json:"category,omitempty"`
	Rooms       string           `json:"rooms,omitempty"` // "3+1" gibi, sadece konut
	Area        float64          `json:"area"`            // m²
	Price       int64            `json:"price"`
	Currency    Currency         `json:"currency,omitempty"`

	// Location fields
	Address  string    `json:"address"`
	City     string    `json:"city"`
	District string    `json:"district"`
	Location *GeoPoint `json:"location,omitempty"`

	Features    []string `json:"features"`
	Description string   `json:"description"`

	CreatedAt    string        `json:"createdAt"`
	Status       ListingStatus `json:"status"`
	Floor        string        `json:"floor,omitempty"`
	BuildingAge  *int          `json:"buildingAge,omitempty"` // 0 = sıfır bina
	ContactPhone string        `json:"contactPhone,omitempty"`
}

// IsPublic vitrinde gösterilebilir mi? Satılan ve kiralanan ilanlar gizlenir,
// rezerve ilanlar görünmeye devam eder.
func (l *Listing) IsPublic() bool {
	return l.Status == ListingStatusActive || l.Status == ListingStatusReserved
}

// CreatedTime createdAt alanını zamana çevirir; okunamazsa sıfır zaman döner
func (l *Listing) CreatedTime() time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, l.CreatedAt); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Normalize kayıttan önce tutarlılık kurallarını uygular
func (l *Listing) Normalize() {
	if l.Type == PropertyTypeLand {
		l.Rooms = ""
		l.Category = PropertyCategoryLand
	}
	if l.Images == nil {
		l.Images = []string{}
	}
	if l.Features == nil {
		l.Features = []string{}
	}
	if l.Currency == "" {
		l.Currency = CurrencyTRY
	}
	if l.Status == "" {
		l.Status = ListingStatusActive
	}
}

func IsValidListingStatus(s ListingStatus) bool {
	switch s {
	case ListingStatusActive, ListingStatusSold, ListingStatusRented, ListingStatusReserved:
		return true
	}
	return false
}

// MintID şimdiki zamandan (ms) bir kimlik üretir, çakışma varsa bir artırır
func MintID(now time.Time, taken func(int64) bool) int64 {
	id := now.UnixMilli()
	for taken(id) {
		id++
	}
	return id
}

// Timestamp kayıtlarda kullanılan ISO-8601 biçimi
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
