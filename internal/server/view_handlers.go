package server

import (
	"socialmanager/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetView handles GET /api/view
// @Summary Active section
// @Tags view
// @Produce json
// @Success 200 {object} composer.ViewState
// @Router /view [get]
func (s *Server) GetView(c *fiber.Ctx) error {
	return c.JSON(s.view.State())
}

// SetView handles PUT /api/view
// @Summary Switch section
// @Tags view
// @Accept json
// @Produce json
// @Param request body object{section=string} true "Section"
// @Success 200 {object} composer.ViewState
// @Failure 400 {object} models.ErrorResponse
// @Router /view [put]
func (s *Server) SetView(c *fiber.Ctx) error {
	var req struct {
		Section string `json:"section"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	state, err := s.view.SetSection(req.Section)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(state)
}
