package server

import (
	"errors"
	"strings"
	"time"

	"socialmanager/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+strings.ToUpper(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// postRequest is the body accepted by the create and update endpoints.
type postRequest struct {
	Content       string   `json:"content"`
	Platforms     []string `json:"platforms"`
	ScheduledDate string   `json:"scheduled_date,omitempty"`
}

// parsePostRequest decodes and validates a create/update body into a draft.
// The save guard applies here exactly as it does in the composer.
func parsePostRequest(c *fiber.Ctx) (models.Draft, error) {
	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
		return models.Draft{}, errResponseWritten
	}

	platforms, err := models.ParsePlatforms(req.Platforms)
	if err != nil {
		_ = models.RespondWithAppError(c, err)
		return models.Draft{}, errResponseWritten
	}

	when, err := parseSchedule(req.ScheduledDate)
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("scheduled_date must be RFC 3339"))
		return models.Draft{}, errResponseWritten
	}

	draft := models.NewDraft()
	draft.Content = req.Content
	draft.Platforms = platforms
	draft.ScheduledDate = when

	if !draft.CanSave() {
		_ = models.RespondWithAppError(c, models.ErrSaveDisabled)
		return models.Draft{}, errResponseWritten
	}
	return draft, nil
}

// parseSchedule reads an RFC 3339 timestamp. Empty means unscheduled.
func parseSchedule(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	return &t, nil
}

// parseFilter reads the platform and status query parameters.
func parseFilter(c *fiber.Ctx) (models.PostFilter, error) {
	var filter models.PostFilter
	if raw := c.Query("platform"); raw != "" {
		p, err := models.ParsePlatform(raw)
		if err != nil {
			return filter, err
		}
		filter.Platform = p
	}
	if raw := c.Query("status"); raw != "" {
		st, err := models.ParseStatus(raw)
		if err != nil {
			return filter, err
		}
		filter.Status = st
	}
	return filter, nil
}

// flagSubject identifies the caller for percentage rollouts. Every gate and
// GET /api/flags evaluate against the same value.
func flagSubject(c *fiber.Ctx) string {
	return c.IP()
}
