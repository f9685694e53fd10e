package server

import (
	"socialmanager/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts?platform=&status=
// @Summary List posts
// @Description Posts in insertion order. Filters apply only while post_filters is on for the caller; X-Post-Filters reports which.
// @Tags posts
// @Produce json
// @Param platform query string false "Platform tag" Enums(facebook, instagram, linkedin, twitter)
// @Param status query string false "Derived status" Enums(draft, scheduled, published)
// @Success 200 {array} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	filter, err := parseFilter(c)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	subject := flagSubject(c)
	posts, err := s.postService.ListPosts(ctx, filter, subject)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}

	c.Set("X-Post-Filters", boolHeader(s.postService.FiltersEnabledFor(subject)))
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(post)
}

// CreatePost handles POST /api/posts
// @Summary Create a post
// @Description Status is derived from the schedule and analytics start at zero.
// @Tags posts
// @Accept json
// @Produce json
// @Param request body postRequest true "Post"
// @Success 201 {object} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	draft, err := parsePostRequest(c)
	if err != nil {
		return nil
	}

	post, err := s.postService.CreateOrUpdate(c.UserContext(), draft, nil)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/posts/:id. Analytics and ID are kept.
// @Summary Replace a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body postRequest true "Post"
// @Success 200 {object} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [put]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	draft, err := parsePostRequest(c)
	if err != nil {
		return nil
	}

	post, err := s.postService.CreateOrUpdate(c.UserContext(), draft, &id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id?confirm=true. Without the
// confirmation it answers 409 and deletes nothing. Unknown IDs succeed.
// @Summary Delete a post
// @Tags posts
// @Param id path int true "Post ID"
// @Param confirm query bool true "Must be true"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if !c.QueryBool("confirm", false) {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewConflictError("Are you sure you want to delete this post?", nil))
	}

	if err := s.postService.DeletePost(c.UserContext(), id); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RequestDelete handles POST /api/posts/:id/delete-request
// @Summary Ask to delete a post
// @Description Records the pending delete prompt; a newer request replaces it.
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 202 {object} object{pending_delete=int,prompt=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id}/delete-request [post]
func (s *Server) RequestDelete(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, err := s.postService.GetPost(c.UserContext(), id); err != nil {
		return models.RespondWithAppError(c, err)
	}

	snap := s.composer.RequestDelete(id)
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"pending_delete": snap.PendingDelete,
		"prompt":         "Are you sure you want to delete this post?",
	})
}

// ConfirmDelete handles POST /api/delete-confirmation
// @Summary Answer the delete prompt
// @Tags posts
// @Accept json
// @Produce json
// @Param request body object{confirm=bool} true "Answer"
// @Success 200 {object} object{id=int,deleted=bool}
// @Failure 400 {object} models.ErrorResponse
// @Router /delete-confirmation [post]
func (s *Server) ConfirmDelete(c *fiber.Ctx) error {
	var req struct {
		Confirm bool `json:"confirm"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	id, deleted, err := s.composer.ConfirmDelete(c.UserContext(), req.Confirm)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	resp := fiber.Map{"deleted": deleted}
	if id != 0 {
		resp["id"] = id
	}
	return c.JSON(resp)
}

func boolHeader(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}
