package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"reisemlak_backend/internal/controller"
	"reisemlak_backend/internal/middleware"
)

// NewApp fiber uygulamasını middleware ve rotalarla birlikte kurar
func NewApp(ctrls *controller.Controllers, requestLogging bool) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: controller.ErrorHandler,
		BodyLimit:    12 * 1024 * 1024, // 10MB görsel + form alanları
	})

	app.Use(recover.New())
	if requestLogging {
		app.Use(fiberlogger.New())
	}
	app.Use(cors.New())

	SetupRoutes(app, ctrls)
	return app
}

func SetupRoutes(app *fiber.App, ctrls *controller.Controllers) {
	api := app.Group("/api")

	// Auth Routes
	auth := api.Group("/auth")
	auth.Post("/login", ctrls.Auth.Login)

	// Public Listing Routes
	listings := api.Group("/listings")
	listings.Get("/", ctrls.Listings.SearchListings)
	listings.Get("/:id", ctrls.Listings.GetListing)
	listings.Post("/:id/offers", ctrls.Offers.CreateOffer)

	// Public settings
	api.Get("/settings/footer", ctrls.Settings.GetFooterSettings)

	// Location routes
	api.Get("/locations/cities", controller.GetCities)

	// Admin Routes
	admin := api.Group("/admin", middleware.AdminAuth())
	admin.Get("/me", ctrls.Auth.GetMe)
	admin.Put("/password", ctrls.Auth.ChangePassword)
	admin.Get("/stats", ctrls.Stats.GetDashboardStats)

	adminListings := admin.Group("/listings")
	adminListings.Get("/", ctrls.Listings.AdminListListings)
	adminListings.Post("/", ctrls.Listings.CreateListing)
	adminListings.Get("/:id", ctrls.Listings.AdminGetListing)
	adminListings.Put("/:id", ctrls.Listings.UpdateListing)
	adminListings.Delete("/:id", ctrls.Listings.DeleteListing)
	adminListings.Patch("/:id/status", ctrls.Listings.UpdateListingStatus)
	adminListings.Post("/:id/images", ctrls.Uploads.UploadListingImage)
	adminListings.Delete("/:id/images", ctrls.Uploads.DeleteListingImage)

	offers := admin.Group("/offers")
	offers.Get("/", ctrls.Offers.AdminListOffers)
	offers.Put("/:id/read", ctrls.Offers.MarkOfferRead)
	offers.Delete("/:id", ctrls.Offers.DeleteOffer)

	admin.Put("/settings/footer", ctrls.Settings.UpdateFooterSettings)
}
