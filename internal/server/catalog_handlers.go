package server

import (
	"socialmanager/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPlatforms handles GET /api/platforms
// @Summary Platform catalogue
// @Tags platforms
// @Produce json
// @Success 200 {array} catalog.PlatformInfo
// @Router /platforms [get]
func (s *Server) GetPlatforms(c *fiber.Ctx) error {
	return c.JSON(s.catalog.List())
}

// GetPlatform handles GET /api/platforms/:platform
// @Summary One platform
// @Tags platforms
// @Produce json
// @Param platform path string true "Platform tag"
// @Success 200 {object} catalog.PlatformInfo
// @Failure 404 {object} models.ErrorResponse
// @Router /platforms/{platform} [get]
func (s *Server) GetPlatform(c *fiber.Ctx) error {
	p, err := models.ParsePlatform(c.Params("platform"))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			&models.AppError{Code: models.CodeNotFound, Message: err.Error()})
	}

	info, err := s.catalog.Get(p)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			&models.AppError{Code: models.CodeNotFound, Message: err.Error()})
	}
	return c.JSON(info)
}
