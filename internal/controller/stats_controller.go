package controller

import (
	"github.com/gofiber/fiber/v2"

	"reisemlak_backend/internal/model"
	"reisemlak_backend/internal/repository"
)

// DashboardStats yönetim paneli özet kartları
type DashboardStats struct {
	TotalListings    int                         `json:"totalListings"`
	PublicListings   int                         `json:"publicListings"`
	ListingsByStatus map[model.ListingStatus]int `json:"listingsByStatus"`
	ListingsByType   map[model.ListingType]int   `json:"listingsByType"`
	TotalOffers      int                         `json:"totalOffers"`
	UnreadOffers     int                         `json:"unreadOffers"`
}

type StatsController struct {
	listings repository.ListingRepository
	offers   repository.OfferRepository
}

func NewStatsController(listings repository.ListingRepository, offers repository.OfferRepository) *StatsController {
	return &StatsController{listings: listings, offers: offers}
}

// GetDashboardStats dashboard istatistiklerini getirir
func (sc *StatsController) GetDashboardStats(c *fiber.Ctx) error {
	listings, err := sc.listings.Load(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	offers, err := sc.offers.Load(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(BuildDashboardStats(listings, offers))
}

func BuildDashboardStats(listings []model.Listing, offers []model.Offer) DashboardStats {
	stats := DashboardStats{
		TotalListings: len(listings),
		ListingsByStatus: map[model.ListingStatus]int{
			model.ListingStatusActive:   0,
			model.ListingStatusReserved: 0,
			model.ListingStatusSold:     0,
			model.ListingStatusRented:   0,
		},
		ListingsByType: map[model.ListingType]int{
			model.ListingTypeForSale: 0,
			model.ListingTypeForRent: 0,
		},
		TotalOffers:  len(offers),
		UnreadOffers: model.CountUnread(offers),
	}

	for i := range listings {
		stats.ListingsByStatus[listings[i].Status]++
		stats.ListingsByType[listings[i].ListingType]++
		if listings[i].IsPublic() {
			stats.PublicListings++
		}
	}

	return stats
}
