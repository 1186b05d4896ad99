package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reisemlak_backend/internal/model"
)

func listing(id int64, price int64, area float64, status model.ListingStatus) model.Listing {
	return model.Listing{
		ID:          id,
		Title:       "ilan",
		Type:        model.PropertyTypeResidential,
		ListingType: model.ListingTypeForSale,
		Category:    model.PropertyCategoryApartment,
		Rooms:       "3+1",
		Price:       price,
		Area:        area,
		City:        "Eskişehir",
		District:    "Tepebaşı",
		Status:      status,
		CreatedAt:   "2024-01-01T10:00:00.000Z",
	}
}

func ids(listings []model.Listing) []int64 {
	out := make([]int64, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func ptr(v float64) *float64 { return &v }

func sample() []model.Listing {
	return []model.Listing{
		listing(1, 100, 50, model.ListingStatusActive),
		listing(2, 200, 80, model.ListingStatusActive),
		listing(3, 150, 60, model.ListingStatusSold),
	}
}

func TestQueryNoCriteriaExcludesSold(t *testing.T) {
	got := Query(sample(), Criteria{})
	assert.Equal(t, []int64{1, 2}, ids(got))
}

func TestQuerySortPriceDesc(t *testing.T) {
	got := Query(sample(), Criteria{SortKey: SortPriceDesc})
	assert.Equal(t, []int64{2, 1}, ids(got))
}

func TestQueryMalformedMinPriceIsIgnored(t *testing.T) {
	c := ParseCriteria(RawCriteria{MinPrice: "abc"})
	assert.Nil(t, c.MinPrice)
	assert.Equal(t, Query(sample(), Criteria{}), Query(sample(), c))
}

func TestQueryDistrictSubstringIsCaseInsensitive(t *testing.T) {
	l := listing(4, 100, 50, model.ListingStatusActive)
	l.District = "Kızılay"
	got := Query([]model.Listing{l}, Criteria{District: "kızı"})
	assert.Equal(t, []int64{4}, ids(got))

	m := listing(5, 100, 50, model.ListingStatusActive)
	m.District = "Merkez"
	for _, q := range []string{"merkez", "MERKEZ", "erk"} {
		assert.Len(t, Query([]model.Listing{m}, Criteria{District: q}), 1, q)
	}
	assert.Empty(t, Query([]model.Listing{m}, Criteria{District: "kızı"}))
}

func TestQueryReservedIsEligible(t *testing.T) {
	got := Query([]model.Listing{listing(4, 300, 40, model.ListingStatusReserved)}, Criteria{})
	assert.Equal(t, []int64{4}, ids(got))
}

func TestQueryNeverReturnsSoldOrRented(t *testing.T) {
	all := []model.Listing{
		listing(1, 100, 50, model.ListingStatusSold),
		listing(2, 100, 50, model.ListingStatusRented),
		listing(3, 100, 50, model.ListingStatusActive),
	}
	criteria := []Criteria{
		{},
		{City: "Eskişehir"},
		{MinPrice: ptr(0), MaxPrice: ptr(1000)},
		{SortKey: SortCreatedDesc},
	}
	for _, c := range criteria {
		assert.Equal(t, []int64{3}, ids(Query(all, c)))
	}
}

func TestQueryRangeBoundsAreInclusive(t *testing.T) {
	all := []model.Listing{
		listing(1, 100, 50, model.ListingStatusActive),
		listing(2, 200, 80, model.ListingStatusActive),
		listing(3, 300, 120, model.ListingStatusActive),
	}
	assert.Equal(t, []int64{1, 2}, ids(Query(all, Criteria{MinPrice: ptr(100), MaxPrice: ptr(200)})))
	assert.Equal(t, []int64{2, 3}, ids(Query(all, Criteria{MinArea: ptr(80), MaxArea: ptr(120)})))
	assert.Empty(t, Query(all, Criteria{MinPrice: ptr(201), MaxPrice: ptr(299)}))
}

func TestQueryIsConjunctive(t *testing.T) {
	a := listing(1, 100, 50, model.ListingStatusActive)
	b := listing(2, 100, 50, model.ListingStatusActive)
	b.City = "Ankara"
	c := listing(3, 100, 50, model.ListingStatusActive)
	c.Rooms = "2+1"
	d := listing(4, 100, 50, model.ListingStatusActive)
	d.Type = model.PropertyTypeLand
	d.Category = model.PropertyCategoryLand
	d.Rooms = ""
	e := listing(5, 100, 50, model.ListingStatusActive)
	e.ListingType = model.ListingTypeForRent
	f := listing(6, 100, 50, model.ListingStatusActive)
	f.Category = model.PropertyCategoryVilla

	got := Query([]model.Listing{a, b, c, d, e, f}, Criteria{
		PropertyType:     model.PropertyTypeResidential,
		ListingType:      model.ListingTypeForSale,
		PropertyCategory: model.PropertyCategoryApartment,
		City:             "Eskişehir",
		Rooms:            "3+1",
	})
	assert.Equal(t, []int64{1}, ids(got))
}

func TestQueryCityIsExactAndCaseSensitive(t *testing.T) {
	all := sample()
	assert.Len(t, Query(all, Criteria{City: "Eskişehir"}), 2)
	assert.Empty(t, Query(all, Criteria{City: "eskişehir"}))
	assert.Empty(t, Query(all, Criteria{City: "Eski"}))
}

func TestSortIsStable(t *testing.T) {
	all := []model.Listing{
		listing(1, 500, 50, model.ListingStatusActive),
		listing(2, 900, 50, model.ListingStatusActive),
		listing(3, 500, 50, model.ListingStatusActive),
		listing(4, 900, 50, model.ListingStatusActive),
	}
	assert.Equal(t, []int64{2, 4, 1, 3}, ids(Query(all, Criteria{SortKey: SortPriceDesc})))
	assert.Equal(t, []int64{1, 3, 2, 4}, ids(Query(all, Criteria{SortKey: SortPriceAsc})))
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(Query(all, Criteria{SortKey: SortAreaDesc})))
}

func TestSortByArea(t *testing.T) {
	all := []model.Listing{
		listing(1, 1, 75.5, model.ListingStatusActive),
		listing(2, 1, 300, model.ListingStatusActive),
		listing(3, 1, 40, model.ListingStatusActive),
	}
	assert.Equal(t, []int64{2, 1, 3}, ids(Query(all, Criteria{SortKey: SortAreaDesc})))
	assert.Equal(t, []int64{3, 1, 2}, ids(Query(all, Criteria{SortKey: SortAreaAsc})))
}

func TestSortCreatedDesc(t *testing.T) {
	a := listing(1, 1, 1, model.ListingStatusActive)
	a.CreatedAt = "2024-01-15T10:30:00.000Z"
	b := listing(2, 1, 1, model.ListingStatusActive)
	b.CreatedAt = "2024-03-01T08:00:00Z"
	c := listing(3, 1, 1, model.ListingStatusActive)
	c.CreatedAt = "2023-12-31"
	d := listing(4, 1, 1, model.ListingStatusActive)
	d.CreatedAt = "not a date"

	got := Query([]model.Listing{a, b, c, d}, Criteria{SortKey: SortCreatedDesc})
	assert.Equal(t, []int64{2, 1, 3, 4}, ids(got))
}

func TestQueryIsIdempotentAndDoesNotMutateInput(t *testing.T) {
	all := []model.Listing{
		listing(1, 300, 50, model.ListingStatusActive),
		listing(2, 100, 80, model.ListingStatusSold),
		listing(3, 200, 60, model.ListingStatusReserved),
	}
	before := append([]model.Listing(nil), all...)
	c := Criteria{SortKey: SortPriceAsc}

	first := Query(all, c)
	second := Query(all, c)

	assert.Equal(t, first, second)
	assert.Equal(t, before, all)
	require.Len(t, first, 2)
	first[0].Title = "changed"
	assert.Equal(t, "ilan", all[2].Title)
}

func TestQueryEmptyInput(t *testing.T) {
	got := Query(nil, Criteria{SortKey: SortPriceDesc})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseCriteria(t *testing.T) {
	c := ParseCriteria(RawCriteria{
		PropertyType:     "konut",
		ListingType:      "all",
		PropertyCategory: "all",
		City:             "all",
		MinPrice:         " 1000 ",
		MaxPrice:         "",
		MinArea:          "NaN",
		MaxArea:          "120.5",
		Rooms:            "all",
		District:         "  merkez ",
		Sort:             "price-high",
	})

	assert.Equal(t, model.PropertyTypeResidential, c.PropertyType)
	assert.Empty(t, c.ListingType)
	assert.Empty(t, c.PropertyCategory)
	assert.Empty(t, c.City)
	require.NotNil(t, c.MinPrice)
	assert.Equal(t, 1000.0, *c.MinPrice)
	assert.Nil(t, c.MaxPrice)
	assert.Nil(t, c.MinArea)
	require.NotNil(t, c.MaxArea)
	assert.Equal(t, 120.5, *c.MaxArea)
	assert.Empty(t, c.Rooms)
	assert.Equal(t, "merkez", c.District)
	assert.Equal(t, SortPriceDesc, c.SortKey)
}

func TestParseSortKey(t *testing.T) {
	cases := map[string]SortKey{
		"":             SortNone,
		"default":      SortNone,
		"price-low":    SortPriceAsc,
		"price-asc":    SortPriceAsc,
		"area-high":    SortAreaDesc,
		"AREA-LOW":     SortAreaAsc,
		"date-new":     SortCreatedDesc,
		"created-desc": SortCreatedDesc,
		"random":       SortNone,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseSortKey(in), in)
	}
}
