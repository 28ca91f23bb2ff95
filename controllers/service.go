package controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/servicehub-backend/db"
	"github.com/meinhoongagan/servicehub-backend/models"
	"github.com/meinhoongagan/servicehub-backend/redis"
	"github.com/meinhoongagan/servicehub-backend/utils"
)

const (
	categoriesCacheKey = "catalog:categories"
	featuredCacheKey   = "catalog:featured"
)

// ProviderSummary is the public slice of a provider attached to catalog
// responses. References are resolved lazily; a dangling provider id just
// leaves the field nil.
type ProviderSummary struct {
	ID           string  `json:"id"`
	BusinessName string  `json:"business_name"`
	Category     string  `json:"category"`
	Rating       float64 `json:"rating"`
	ProfileImage string  `json:"profile_image"`
}

type ServiceView struct {
	models.Service
	Provider *ProviderSummary `json:"provider,omitempty"`
}

// hydrateServices resolves provider references for a service list.
func hydrateServices(services []models.Service) []ServiceView {
	views := make([]ServiceView, 0, len(services))
	for _, s := range services {
		view := ServiceView{Service: s}
		var provider models.Provider
		if db.DB.First(&provider, "id = ?", s.ProviderID).RowsAffected > 0 {
			view.Provider = &ProviderSummary{
				ID:           provider.ID,
				BusinessName: provider.BusinessName,
				Category:     provider.Category,
				Rating:       provider.Rating,
				ProfileImage: provider.ProfileImage,
			}
		}
		views = append(views, view)
	}
	return views
}

// GetAllServices lists available services, optionally filtered by category
// or a name search.
func GetAllServices(c *fiber.Ctx) error {
	query := db.DB.Model(&models.Service{}).Where("is_available = ?", true)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var services []models.Service
	if err := query.Order("rating DESC").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}

	return c.JSON(utils.OK("Services retrieved", hydrateServices(services)))
}

// GetFeaturedServices returns the top-rated available services, cached in
// redis for the catalog TTL.
func GetFeaturedServices(c *fiber.Ctx) error {
	if cached := redis.GetCached(featuredCacheKey); cached != "" {
		c.Set("Content-Type", "application/json")
		return c.SendString(cached)
	}

	var services []models.Service
	if err := db.DB.Where("is_available = ?", true).
		Order("rating DESC").Limit(6).Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch featured services",
			Error:   err.Error(),
		})
	}

	resp := utils.OK("Featured services retrieved", hydrateServices(services))
	if payload, err := json.Marshal(resp); err == nil {
		redis.SetCached(featuredCacheKey, string(payload))
	}
	return c.JSON(resp)
}

// GetService returns one service with its provider and visible reviews.
func GetService(c *fiber.Ctx) error {
	id := c.Params("id")

	var service models.Service
	if err := db.DB.First(&service, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	views := hydrateServices([]models.Service{service})

	var reviews []models.Review
	db.DB.Where("service_id = ? AND is_visible = ?", id, true).
		Order("created_at DESC").Limit(20).Find(&reviews)

	return c.JSON(utils.OK("Service retrieved", fiber.Map{
		"service": views[0],
		"reviews": reviews,
	}))
}

// GetCategories returns the platform category list, redis-cached.
func GetCategories(c *fiber.Ctx) error {
	if cached := redis.GetCached(categoriesCacheKey); cached != "" {
		c.Set("Content-Type", "application/json")
		return c.SendString(cached)
	}

	config, err := models.GetPlatformConfig(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch categories",
			Error:   err.Error(),
		})
	}

	resp := utils.OK("Categories retrieved", config.Categories)
	if payload, err := json.Marshal(resp); err == nil {
		redis.SetCached(categoriesCacheKey, string(payload))
	}
	return c.JSON(resp)
}
