package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"reisemlak_backend/internal/model"
	apperrors "reisemlak_backend/pkg/errors"
	"reisemlak_backend/pkg/search"
	"reisemlak_backend/pkg/utils/location"
)

type ListingInput struct {
	Title       string                 `json:"title" validate:"required"`
	Images      []string               `json:"images" validate:"max=16"`
	Videos      []string               `json:"videos"`
	Type        model.PropertyType     `json:"type" validate:"required,oneof=konut arsa"`
	ListingType model.ListingType      `json:"listingType" validate:"required,oneof=satilik kiralik"`
	Category    model.PropertyCategory `json:"category" validate:"omitempty,oneof=daire villa residence mustakil-ev arsa"`
	Rooms       string                 `json:"rooms"`
	Area        float64                `json:"area" validate:"gt=0"`
	Price       int64                  `json:"price" validate:"gte=0"`
	Currency    model.Currency         `json:"currency" validate:"omitempty,oneof=TRY USD EUR"`

	// Location fields
	Address  string          `json:"address" validate:"required"`
	City     string          `json:"city" validate:"required"`
	District string          `json:"district" validate:"required"`
	Location *model.GeoPoint `json:"location"`

	Features     []string            `json:"features"`
	Description  string              `json:"description"`
	Status       model.ListingStatus `json:"status" validate:"omitempty,oneof=aktif satildi kiralandi rezerve"`
	Floor        string              `json:"floor"`
	BuildingAge  *int                `json:"buildingAge" validate:"omitempty,gte=0"`
	ContactPhone string              `json:"contactPhone"`
}

type ListingStatusInput struct {
	Status model.ListingStatus `json:"status" validate:"required,oneof=aktif satildi kiralandi rezerve"`
}

type ListingController struct {
	listings *collection[model.Listing]
	now      func() time.Time
}

func NewListingController(listings *collection[model.Listing]) *ListingController {
	return &ListingController{listings: listings, now: time.Now}
}

// SearchListings vitrin araması: satılan/kiralanan ilanlar hiç dönmez
func (lc *ListingController) SearchListings(c *fiber.Ctx) error {
	var raw search.RawCriteria
	if err := c.QueryParser(&raw); err != nil {
		return apperrors.BadRequest("Invalid query", err)
	}

	listings, err := lc.listings.load(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(search.Query(listings, search.ParseCriteria(raw)))
}

// GetListing vitrindeki ilan detayı
func (lc *ListingController) GetListing(c *fiber.Ctx) error {
	listing, err := lc.find(c)
	if err != nil {
		return respondError(c, err)
	}
	if !listing.IsPublic() {
		return respondError(c, apperrors.NotFound("Listing", nil))
	}
	return c.JSON(listing)
}

// AdminListListings yönetim paneli: bütün ilanlar, filtresiz, kayıt sırasıyla
func (lc *ListingController) AdminListListings(c *fiber.Ctx) error {
	listings, err := lc.listings.load(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listings)
}

func (lc *ListingController) AdminGetListing(c *fiber.Ctx) error {
	listing, err := lc.find(c)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listing)
}

// CreateListing yeni emlak ilanı oluşturur
func (lc *ListingController) CreateListing(c *fiber.Ctx) error {
	input := new(ListingInput)
	if err := parseBody(c, input); err != nil {
		return respondError(c, err)
	}
	if err := checkListingInput(input); err != nil {
		return respondError(c, err)
	}

	var created model.Listing
	err := lc.listings.update(c.UserContext(), func(listings []model.Listing) ([]model.Listing, error) {
		taken := make(map[int64]bool, len(listings))
		for _, l := range listings {
			taken[l.ID] = true
		}

		now := lc.now()
		created = input.toListing()
		created.ID = model.MintID(now, func(id int64) bool { return taken[id] })
		created.CreatedAt = model.Timestamp(now)
		if created.Status == "" {
			created.Status = model.ListingStatusActive
		}
		created.Normalize()

		return append(listings, created), nil
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateListing emlak ilanını yerinde günceller; id ve oluşturma zamanı korunur
func (lc *ListingController) UpdateListing(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	input := new(ListingInput)
	if err := parseBody(c, input); err != nil {
		return respondError(c, err)
	}
	if err := checkListingInput(input); err != nil {
		return respondError(c, err)
	}

	var updated model.Listing
	err = lc.listings.update(c.UserContext(), func(listings []model.Listing) ([]model.Listing, error) {
		idx := indexOfListing(listings, id)
		if idx < 0 {
			return nil, apperrors.NotFound("Listing", nil)
		}

		existing := listings[idx]
		updated = input.toListing()
		updated.ID = existing.ID
		updated.CreatedAt = existing.CreatedAt
		if updated.Status == "" {
			updated.Status = existing.Status
		}
		updated.Normalize()

		listings[idx] = updated
		return listings, nil
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(updated)
}

// UpdateListingStatus satıldı/kiralandı/rezerve gibi durum değişiklikleri
func (lc *ListingController) UpdateListingStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	input := new(ListingStatusInput)
	if err := parseBody(c, input); err != nil {
		return respondError(c, err)
	}

	var updated model.Listing
	err = lc.listings.update(c.UserContext(), func(listings []model.Listing) ([]model.Listing, error) {
		idx := indexOfListing(listings, id)
		if idx < 0 {
			return nil, apperrors.NotFound("Listing", nil)
		}
		listings[idx].Status = input.Status
		updated = listings[idx]
		return listings, nil
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Listing status updated successfully",
		"listing": updated,
	})
}

// DeleteListing emlak ilanını kalıcı olarak siler
func (lc *ListingController) DeleteListing(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	err = lc.listings.update(c.UserContext(), func(listings []model.Listing) ([]model.Listing, error) {
		idx := indexOfListing(listings, id)
		if idx < 0 {
			return nil, apperrors.NotFound("Listing", nil)
		}
		return append(listings[:idx:idx], listings[idx+1:]...), nil
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (lc *ListingController) find(c *fiber.Ctx) (*model.Listing, error) {
	id, err := paramID(c, "id")
	if err != nil {
		return nil, err
	}

	listings, err := lc.listings.load(c.UserContext())
	if err != nil {
		return nil, err
	}

	idx := indexOfListing(listings, id)
	if idx < 0 {
		return nil, apperrors.NotFound("Listing", nil)
	}
	return &listings[idx], nil
}

func checkListingInput(input *ListingInput) error {
	if !location.IsKnownCity(input.City) {
		return apperrors.BadRequest("Unknown city: "+input.City, nil)
	}
	if input.Type == model.PropertyTypeResidential && input.Category == model.PropertyCategoryLand {
		return apperrors.BadRequest("Residential listings cannot use the land category", nil)
	}
	return nil
}

func (in *ListingInput) toListing() model.Listing {
	return model.Listing{
		Title:        in.Title,
		Images:       in.Images,
		Videos:       in.Videos,
		Type:         in.Type,
		ListingType:  in.ListingType,
		Category:     in.Category,
		Rooms:        in.Rooms,
		Area:         in.Area,
		Price:        in.Price,
		Currency:     in.Currency,
		Address:      in.Address,
		City:         in.City,
		District:     in.District,
		Location:     in.Location,
		Features:     in.Features,
		Description:  in.Description,
		Status:       in.Status,
		Floor:        in.Floor,
		BuildingAge:  in.BuildingAge,
		ContactPhone: in.ContactPhone,
	}
}

func indexOfListing(listings []model.Listing, id int64) int {
	for i := range listings {
		if listings[i].ID == id {
			return i
		}
	}
	return -1
}
