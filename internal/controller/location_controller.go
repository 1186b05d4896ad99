// internal/controller/location_controller.go
package controller

import (
	"reisemlak_backend/pkg/utils/location"

	"github.com/gofiber/fiber/v2"
)

// GetCities şehir filtresi için il listesi
func GetCities(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"cities": location.GetCities(),
	})
}
