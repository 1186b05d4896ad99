package controller

import (
	"context"
	"mime/multipart"
	"slices"

	"github.com/gofiber/fiber/v2"

	"reisemlak_backend/internal/model"
	apperrors "reisemlak_backend/pkg/errors"
	"reisemlak_backend/pkg/logger"
	"reisemlak_backend/pkg/utils/validation"
)

// MediaStore ilan fotoğraflarının tutulduğu nesne deposu (R2)
type MediaStore interface {
	UploadListingImage(ctx context.Context, listing *model.Listing, file *multipart.FileHeader) (string, error)
	DeleteImage(ctx context.Context, url string) error
}

type UploadController struct {
	listings *collection[model.Listing]
	media    MediaStore
}

func NewUploadController(listings *collection[model.Listing], media MediaStore) *UploadController {
	return &UploadController{listings: listings, media: media}
}

// UploadListingImage emlak ilanı için resim yükler ve ilanın görsellerine ekler
func (uc *UploadController) UploadListingImage(c *fiber.Ctx) error {
	if uc.media == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Image uploads are not configured",
		})
	}

	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return respondError(c, apperrors.BadRequest("No file uploaded", err))
	}
	if err := validation.ValidateImage(file); err != nil {
		return respondError(c, apperrors.BadRequest(err.Error(), err))
	}

	listings, err := uc.listings.load(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	idx := indexOfListing(listings, id)
	if idx < 0 {
		return respondError(c, apperrors.NotFound("Listing", nil))
	}
	if err := validation.ValidateImageCount(len(listings[idx].Images)); err != nil {
		return respondError(c, apperrors.BadRequest(err.Error(), err))
	}

	url, err := uc.media.UploadListingImage(c.UserContext(), &listings[idx], file)
	if err != nil {
		return respondError(c, apperrors.Internal("Could not upload image", err))
	}

	var updated model.Listing
	err = uc.listings.update(c.UserContext(), func(listings []model.Listing) ([]model.Listing, error) {
		idx := indexOfListing(listings, id)
		if idx < 0 {
			return nil, apperrors.NotFound("Listing", nil)
		}
		if err := validation.ValidateImageCount(len(listings[idx].Images)); err != nil {
			return nil, apperrors.BadRequest(err.Error(), err)
		}
		listings[idx].Images = append(listings[idx].Images, url)
		updated = listings[idx]
		return listings, nil
	})
	if err != nil {
		// yüklenen dosya ilana bağlanamadı, depoda yetim kalmasın
		if delErr := uc.media.DeleteImage(c.UserContext(), url); delErr != nil {
			logger.Warnf("Could not remove orphaned image %s: %v", url, delErr)
		}
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Image uploaded successfully",
		"url":     url,
		"listing": updated,
	})
}

// DeleteListingImage ?url= ile verilen görseli ilandan ve depodan siler
func (uc *UploadController) DeleteListingImage(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	url := c.Query("url")
	if url == "" {
		return respondError(c, apperrors.BadRequest("url is required", nil))
	}

	err = uc.listings.update(c.UserContext(), func(listings []model.Listing) ([]model.Listing, error) {
		idx := indexOfListing(listings, id)
		if idx < 0 {
			return nil, apperrors.NotFound("Listing", nil)
		}
		pos := slices.Index(listings[idx].Images, url)
		if pos < 0 {
			return nil, apperrors.NotFound("Image", nil)
		}
		listings[idx].Images = slices.Delete(listings[idx].Images, pos, pos+1)
		return listings, nil
	})
	if err != nil {
		return respondError(c, err)
	}

	if uc.media != nil {
		if err := uc.media.DeleteImage(c.UserContext(), url); err != nil {
			logger.Warnf("Could not delete image %s: %v", url, err)
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}
