package controller

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"reisemlak_backend/internal/model"
	"reisemlak_backend/internal/repository"
	apperrors "reisemlak_backend/pkg/errors"
	"reisemlak_backend/pkg/logger"
)

var validate = validator.New()

// Controllers HTTP katmanının bütün handler'ları
type Controllers struct {
	Auth     *AuthController
	Listings *ListingController
	Offers   *OfferController
	Settings *SettingsController
	Uploads  *UploadController
	Stats    *StatsController
}

// New notifier ve media nil olabilir; o durumda e-posta ve görsel yükleme kapalıdır
func New(repos *repository.Repositories, notifier OfferNotifier, media MediaStore) *Controllers {
	listings := &collection[model.Listing]{repo: repos.Listings}
	offers := &collection[model.Offer]{repo: repos.Offers}

	return &Controllers{
		Auth:     NewAuthController(repos.Credentials),
		Listings: NewListingController(listings),
		Offers:   NewOfferController(offers, repos.Listings, notifier),
		Settings: NewSettingsController(repos.Footer),
		Uploads:  NewUploadController(listings, media),
		Stats:    NewStatsController(repos.Listings, repos.Offers),
	}
}

type collectionRepo[T any] interface {
	Load(ctx context.Context) ([]T, error)
	Save(ctx context.Context, items []T) error
}

// collection aynı süreçteki load-modify-save döngülerini sıraya koyar.
// Başka süreçlerle yarışta son yazan kazanır.
type collection[T any] struct {
	mu   sync.Mutex
	repo collectionRepo[T]
}

func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	return c.repo.Load(ctx)
}

func (c *collection[T]) update(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.repo.Load(ctx)
	if err != nil {
		return err
	}
	updated, err := fn(items)
	if err != nil {
		return err
	}
	return c.repo.Save(ctx, updated)
}

// ErrorHandler fiber.Config için; AppError ve fiber.Error'ı JSON'a çevirir
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiberErr.Message,
		})
	}
	return respondError(c, err)
}

func respondError(c *fiber.Ctx, err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationMessage(validationErrs[0]),
			"code":  "VALIDATION_ERROR",
		})
	}

	if appErr, ok := apperrors.As(err); ok {
		if appErr.Status >= fiber.StatusInternalServerError {
			logger.Errorf("%s %s: %v", c.Method(), c.Path(), appErr)
		}
		return c.Status(appErr.Status).JSON(fiber.Map{
			"error": appErr.Message,
			"code":  appErr.Code,
		})
	}

	logger.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "An unexpected error occurred",
		"code":  "INTERNAL_ERROR",
	})
}

func validationMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "email":
		return field + " must be a valid email address"
	case "min", "gte":
		return field + " must be at least " + fe.Param()
	case "max", "lte":
		return field + " must be at most " + fe.Param()
	case "gt":
		return field + " must be greater than " + fe.Param()
	default:
		return field + " is invalid"
	}
}

// parseBody gövdeyi okur ve validate tag'lerini uygular
func parseBody(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return apperrors.BadRequest("Invalid input", err)
	}
	return validate.Struct(dst)
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0, apperrors.BadRequest("Invalid "+name, err)
	}
	return id, nil
}
