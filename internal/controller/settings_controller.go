package controller

import (
	"github.com/gofiber/fiber/v2"

	"reisemlak_backend/internal/model"
	"reisemlak_backend/internal/repository"
)

type SettingsController struct {
	footer repository.FooterSettingsRepository
}

func NewSettingsController(footer repository.FooterSettingsRepository) *SettingsController {
	return &SettingsController{footer: footer}
}

// GetFooterSettings site alt bilgisi; hiç kaydedilmemişse varsayılanlar
func (sc *SettingsController) GetFooterSettings(c *fiber.Ctx) error {
	settings, err := sc.footer.Load(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(settings)
}

// UpdateFooterSettings ayarları bütünüyle değiştirir
func (sc *SettingsController) UpdateFooterSettings(c *fiber.Ctx) error {
	input := new(model.FooterSettings)
	if err := parseBody(c, input); err != nil {
		return respondError(c, err)
	}

	if err := sc.footer.Save(c.UserContext(), *input); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":  "Settings updated successfully",
		"settings": input,
	})
}
