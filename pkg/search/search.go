// Package search filters and orders a listing collection for the storefront.
//
// Query is a pure function over (collection, criteria): it never mutates its
// input, never touches storage and always returns a fresh slice. Raw values
// coming from the filter form are turned into Criteria by ParseCriteria,
// which is the only place where user input is interpreted.
package search

import (
	"cmp"
	"slices"
	"strings"

	"reisemlak_backend/internal/model"
)

type SortKey string

const (
	SortNone        SortKey = "none"
	SortPriceDesc   SortKey = "price-desc"
	SortPriceAsc    SortKey = "price-asc"
	SortAreaDesc    SortKey = "area-desc"
	SortAreaAsc     SortKey = "area-asc"
	SortCreatedDesc SortKey = "created-desc"
)

// Criteria is a parsed set of filters. Zero values and nil bounds impose no
// constraint.
type Criteria struct {
	PropertyType     model.PropertyType
	ListingType      model.ListingType
	PropertyCategory model.PropertyCategory
	City             string
	MinPrice         *float64
	MaxPrice         *float64
	MinArea          *float64
	MaxArea          *float64
	Rooms            string
	District         string
	SortKey          SortKey
}

// Query returns the publicly visible listings matching every supplied
// criterion, ordered by c.SortKey.
func Query(listings []model.Listing, c Criteria) []model.Listing {
	return Sort(Filter(listings, c), c.SortKey)
}

// Filter keeps the listings that are publicly visible and satisfy every
// criterion, preserving the source order.
func Filter(listings []model.Listing, c Criteria) []model.Listing {
	district := strings.ToLower(c.District)

	out := make([]model.Listing, 0, len(listings))
	for i := range listings {
		if matches(&listings[i], &c, district) {
			out = append(out, listings[i])
		}
	}
	return out
}

func matches(l *model.Listing, c *Criteria, district string) bool {
	if !l.IsPublic() {
		return false
	}
	if c.PropertyType != "" && l.Type != c.PropertyType {
		return false
	}
	if c.ListingType != "" && l.ListingType != c.ListingType {
		return false
	}
	if c.PropertyCategory != "" && l.Category != c.PropertyCategory {
		return false
	}
	if c.City != "" && l.City != c.City {
		return false
	}
	price := float64(l.Price)
	if c.MinPrice != nil && price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && price > *c.MaxPrice {
		return false
	}
	if c.MinArea != nil && l.Area < *c.MinArea {
		return false
	}
	if c.MaxArea != nil && l.Area > *c.MaxArea {
		return false
	}
	if c.Rooms != "" && l.Rooms != c.Rooms {
		return false
	}
	if district != "" && !strings.Contains(strings.ToLower(l.District), district) {
		return false
	}
	return true
}

// Sort returns a stably ordered copy of listings. Listings with equal keys
// keep their relative order; SortNone (or any unknown key) keeps the input
// order.
func Sort(listings []model.Listing, key SortKey) []model.Listing {
	out := slices.Clone(listings)
	if out == nil {
		out = []model.Listing{}
	}

	var compare func(a, b model.Listing) int
	switch key {
	case SortPriceDesc:
		compare = func(a, b model.Listing) int { return cmp.Compare(b.Price, a.Price) }
	case SortPriceAsc:
		compare = func(a, b model.Listing) int { return cmp.Compare(a.Price, b.Price) }
	case SortAreaDesc:
		compare = func(a, b model.Listing) int { return cmp.Compare(b.Area, a.Area) }
	case SortAreaAsc:
		compare = func(a, b model.Listing) int { return cmp.Compare(a.Area, b.Area) }
	case SortCreatedDesc:
		compare = func(a, b model.Listing) int { return b.CreatedTime().Compare(a.CreatedTime()) }
	default:
		return out
	}

	slices.SortStableFunc(out, compare)
	return out
}
