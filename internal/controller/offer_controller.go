package controller

import (
	"cmp"
	"slices"
	"time"

	"github.com/gofiber/fiber/v2"

	"reisemlak_backend/internal/model"
	"reisemlak_backend/internal/repository"
	apperrors "reisemlak_backend/pkg/errors"
	"reisemlak_backend/pkg/logger"
)

// OfferNotifier yeni teklifleri yöneticiye iletir (e-posta)
type OfferNotifier interface {
	SendOfferNotification(offer model.Offer) error
}

type OfferInput struct {
	Name        string         `json:"name" validate:"required"`
	Phone       string         `json:"phone" validate:"required"`
	Email       string         `json:"email" validate:"omitempty,email"`
	Message     string         `json:"message" validate:"required"`
	OfferAmount *int64         `json:"offerAmount" validate:"omitempty,gt=0"`
	Currency    model.Currency `json:"currency" validate:"omitempty,oneof=TRY USD EUR"`
}

type OfferController struct {
	offers   *collection[model.Offer]
	listings repository.ListingRepository
	notifier OfferNotifier
	now      func() time.Time
}

func NewOfferController(offers *collection[model.Offer], listings repository.ListingRepository, notifier OfferNotifier) *OfferController {
	return &OfferController{
		offers:   offers,
		listings: listings,
		notifier: notifier,
		now:      time.Now,
	}
}

// CreateOffer ilan detay sayfasındaki teklif formu
func (oc *OfferController) CreateOffer(c *fiber.Ctx) error {
	listingID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	input := new(OfferInput)
	if err := parseBody(c, input); err != nil {
		return respondError(c, err)
	}

	listings, err := oc.listings.Load(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	idx := indexOfListing(listings, listingID)
	if idx < 0 || !listings[idx].IsPublic() {
		return respondError(c, apperrors.NotFound("Listing", nil))
	}
	listing := listings[idx]

	var created model.Offer
	err = oc.offers.update(c.UserContext(), func(offers []model.Offer) ([]model.Offer, error) {
		taken := make(map[int64]bool, len(offers))
		for _, o := range offers {
			taken[o.ID] = true
		}

		now := oc.now()
		created = model.NewOffer(model.MintID(now, func(id int64) bool { return taken[id] }), &listing, model.Timestamp(now))
		created.CustomerName = input.Name
		created.CustomerPhone = input.Phone
		created.CustomerEmail = input.Email
		created.Message = input.Message
		created.OfferAmount = input.OfferAmount
		if input.Currency != "" {
			created.Currency = input.Currency
		}
		if created.Currency == "" {
			created.Currency = model.CurrencyTRY
		}

		return append(offers, created), nil
	})
	if err != nil {
		return respondError(c, err)
	}

	if oc.notifier != nil {
		if err := oc.notifier.SendOfferNotification(created); err != nil {
			logger.Warnf("Failed to send offer notification for offer %d: %v", created.ID, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Offer received successfully",
		"offer":   created,
	})
}

// AdminListOffers teklifleri en yeniden eskiye listeler
func (oc *OfferController) AdminListOffers(c *fiber.Ctx) error {
	offers, err := oc.offers.load(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	sorted := slices.Clone(offers)
	slices.SortStableFunc(sorted, func(a, b model.Offer) int {
		return cmp.Compare(b.ID, a.ID)
	})

	return c.JSON(fiber.Map{
		"offers": sorted,
		"unread": model.CountUnread(offers),
	})
}

// MarkOfferRead teklifi okundu olarak işaretler
func (oc *OfferController) MarkOfferRead(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var updated model.Offer
	err = oc.offers.update(c.UserContext(), func(offers []model.Offer) ([]model.Offer, error) {
		idx := indexOfOffer(offers, id)
		if idx < 0 {
			return nil, apperrors.NotFound("Offer", nil)
		}
		offers[idx].MarkRead()
		updated = offers[idx]
		return offers, nil
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(updated)
}

func (oc *OfferController) DeleteOffer(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	err = oc.offers.update(c.UserContext(), func(offers []model.Offer) ([]model.Offer, error) {
		idx := indexOfOffer(offers, id)
		if idx < 0 {
			return nil, apperrors.NotFound("Offer", nil)
		}
		return append(offers[:idx:idx], offers[idx+1:]...), nil
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func indexOfOffer(offers []model.Offer, id int64) int {
	for i := range offers {
		if offers[i].ID == id {
			return i
		}
	}
	return -1
}
