package search

import (
	"math"
	"strconv"
	"strings"

	"reisemlak_backend/internal/model"
)

// RawCriteria holds the filter form values exactly as the client sent them.
type RawCriteria struct {
	PropertyType     string `query:"type"`
	ListingType      string `query:"listingType"`
	PropertyCategory string `query:"category"`
	City             string `query:"city"`
	MinPrice         string `query:"minPrice"`
	MaxPrice         string `query:"maxPrice"`
	MinArea          string `query:"minArea"`
	MaxArea          string `query:"maxArea"`
	Rooms            string `query:"rooms"`
	District         string `query:"district"`
	Sort             string `query:"sort"`
}

// storefront form names
var sortAliases = map[string]SortKey{
	"":             SortNone,
	"none":         SortNone,
	"default":      SortNone,
	"price-desc":   SortPriceDesc,
	"price-high":   SortPriceDesc,
	"price-asc":    SortPriceAsc,
	"price-low":    SortPriceAsc,
	"area-desc":    SortAreaDesc,
	"area-high":    SortAreaDesc,
	"area-asc":     SortAreaAsc,
	"area-low":     SortAreaAsc,
	"created-desc": SortCreatedDesc,
	"date-new":     SortCreatedDesc,
}

// ParseCriteria never fails: a numeric bound that does not parse is dropped,
// an unknown sort key falls back to SortNone.
func ParseCriteria(raw RawCriteria) Criteria {
	return Criteria{
		PropertyType:     model.PropertyType(selectValue(raw.PropertyType)),
		ListingType:      model.ListingType(selectValue(raw.ListingType)),
		PropertyCategory: model.PropertyCategory(selectValue(raw.PropertyCategory)),
		City:             selectValue(raw.City),
		MinPrice:         ParseBound(raw.MinPrice),
		MaxPrice:         ParseBound(raw.MaxPrice),
		MinArea:          ParseBound(raw.MinArea),
		MaxArea:          ParseBound(raw.MaxArea),
		Rooms:            selectValue(raw.Rooms),
		District:         strings.TrimSpace(raw.District),
		SortKey:          ParseSortKey(raw.Sort),
	}
}

// ParseBound returns nil for empty, non-numeric and NaN input.
func ParseBound(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return nil
	}
	return &v
}

func ParseSortKey(s string) SortKey {
	if key, ok := sortAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return key
	}
	return SortNone
}

// "all" is what the select inputs send for "no filter"
func selectValue(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "all") {
		return ""
	}
	return s
}
