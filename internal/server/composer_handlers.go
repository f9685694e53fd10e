package server

import (
	"net/url"

	"socialmanager/internal/composer"
	"socialmanager/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetComposer handles GET /api/composer
// @Summary Composer state
// @Tags composer
// @Produce json
// @Success 200 {object} composer.Snapshot
// @Router /composer [get]
func (s *Server) GetComposer(c *fiber.Ctx) error {
	return c.JSON(s.composer.Snapshot())
}

// OpenComposer handles POST /api/composer
// @Summary Open the composer for a new post
// @Tags composer
// @Produce json
// @Success 201 {object} composer.Snapshot
// @Failure 409 {object} models.ErrorResponse
// @Router /composer [post]
func (s *Server) OpenComposer(c *fiber.Ctx) error {
	snap, err := s.composer.OpenCreate()
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(snap)
}

// OpenComposerForEdit handles POST /api/composer/edit/:id
// @Summary Open the composer on an existing post
// @Tags composer
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} composer.Snapshot
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /composer/edit/{id} [post]
func (s *Server) OpenComposerForEdit(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	snap, err := s.composer.OpenEdit(c.UserContext(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(snap)
}

// UpdateComposer handles PATCH /api/composer. Absent fields are left alone;
// a request that fails validation changes nothing.
// @Summary Edit the draft
// @Tags composer
// @Accept json
// @Produce json
// @Param request body object{content=string,scheduled_date=string,clear_schedule=bool} true "Changed fields"
// @Success 200 {object} composer.Snapshot
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /composer [patch]
func (s *Server) UpdateComposer(c *fiber.Ctx) error {
	var req struct {
		Content       *string `json:"content"`
		ScheduledDate *string `json:"scheduled_date"`
		ClearSchedule bool    `json:"clear_schedule"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	patch := composer.Patch{Content: req.Content, ClearSchedule: req.ClearSchedule}
	if req.ScheduledDate != nil && !req.ClearSchedule {
		when, err := parseSchedule(*req.ScheduledDate)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("scheduled_date must be RFC 3339"))
		}
		patch.ScheduledDate = when
		patch.ClearSchedule = when == nil
	}

	snap, err := s.composer.Apply(patch)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(snap)
}

// ToggleComposerPlatform handles POST /api/composer/platforms/:platform
// @Summary Toggle a platform on the draft
// @Tags composer
// @Produce json
// @Param platform path string true "Platform tag"
// @Success 200 {object} composer.Snapshot
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /composer/platforms/{platform} [post]
func (s *Server) ToggleComposerPlatform(c *fiber.Ctx) error {
	p, err := models.ParsePlatform(c.Params("platform"))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	snap, err := s.composer.TogglePlatform(p)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(snap)
}

// AddComposerMedia handles POST /api/composer/media
// @Summary Attach media to the draft
// @Tags composer
// @Accept json
// @Produce json
// @Param request body models.MediaAttachment true "Attachment"
// @Success 201 {object} composer.Snapshot
// @Failure 400 {object} models.ErrorResponse
// @Router /composer/media [post]
func (s *Server) AddComposerMedia(c *fiber.Ctx) error {
	var att models.MediaAttachment
	if err := c.BodyParser(&att); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	snap, err := s.composer.AddMedia(att, flagSubject(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(snap)
}

// RemoveComposerMedia handles DELETE /api/composer/media/:name
// @Summary Detach media from the draft
// @Tags composer
// @Produce json
// @Param name path string true "Attachment name"
// @Success 200 {object} composer.Snapshot
// @Router /composer/media/{name} [delete]
func (s *Server) RemoveComposerMedia(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		name = c.Params("name")
	}

	snap, err := s.composer.RemoveMedia(name)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(snap)
}

// SaveComposer handles POST /api/composer/save. On failure the response
// carries the still-open composer alongside the error.
// @Summary Save the draft
// @Tags composer
// @Produce json
// @Success 200 {object} object{post=models.Post,composer=composer.Snapshot}
// @Failure 400 {object} object{error=string,code=string,composer=composer.Snapshot}
// @Failure 404 {object} object{error=string,code=string,composer=composer.Snapshot}
// @Router /composer/save [post]
func (s *Server) SaveComposer(c *fiber.Ctx) error {
	post, snap, err := s.composer.Save(c.UserContext())
	if err != nil {
		status, appErr := models.Classify(err)
		return c.Status(status).JSON(fiber.Map{
			"error":    appErr.Message,
			"code":     appErr.Code,
			"composer": snap,
		})
	}
	return c.JSON(fiber.Map{
		"post":     post,
		"composer": snap,
	})
}

// CancelComposer handles POST /api/composer/cancel
// @Summary Discard the draft
// @Tags composer
// @Produce json
// @Success 200 {object} composer.Snapshot
// @Router /composer/cancel [post]
func (s *Server) CancelComposer(c *fiber.Ctx) error {
	return c.JSON(s.composer.Cancel())
}
