package handler

import (
	"errors"

	"go-warrior-store/internal/catalog"
	"go-warrior-store/internal/service"
	"go-warrior-store/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type ConfigurationHandler struct {
	service service.ConfigurationService
}

func NewConfigurationHandler(s service.ConfigurationService) *ConfigurationHandler {
	return &ConfigurationHandler{service: s}
}

// SaveConfigurationRequest is the save request body. Empty slots default to
// "none".
type SaveConfigurationRequest struct {
	Race       string `json:"race" validate:"required,oneof=human goblin"`
	Helmet     string `json:"helmet"`
	Chestplate string `json:"chestplate"`
	Pants      string `json:"pants"`
	Shoes      string `json:"shoes"`
	Weapon     string `json:"weapon"`
	FacialHair string `json:"facial_hair"`
	Mount      string `json:"mount"`
}

func (r *SaveConfigurationRequest) equipment() validation.Equipment {
	orNone := func(v string) string {
		if v == "" {
			return validation.NoneItem
		}
		return v
	}
	return validation.Equipment{
		Helmet:     orNone(r.Helmet),
		Chestplate: orNone(r.Chestplate),
		Pants:      orNone(r.Pants),
		Shoes:      orNone(r.Shoes),
		Weapon:     orNone(r.Weapon),
		FacialHair: orNone(r.FacialHair),
		Mount:      orNone(r.Mount),
	}
}

// GetConfiguration loads the caller's saved configuration
// GET /api/v1/configuration
func (h *ConfigurationHandler) GetConfiguration(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid user context"})
	}

	cfg, err := h.service.Load(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load configuration"})
	}
	if cfg == nil {
		return c.JSON(fiber.Map{"exists": false, "configuration": nil})
	}
	return c.JSON(fiber.Map{"exists": true, "configuration": cfg})
}

// SaveConfiguration validates and upserts the caller's configuration
// PUT /api/v1/configuration
func (h *ConfigurationHandler) SaveConfiguration(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid user context"})
	}

	var req SaveConfigurationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	cfg, result, err := h.service.Save(userID, catalog.Race(req.Race), req.equipment())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRace):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrRaceLocked):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
	}
	if result != nil {
		return c.Status(422).JSON(result)
	}

	return c.JSON(fiber.Map{"message": "Configuration saved", "data": cfg})
}
