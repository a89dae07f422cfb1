package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cofd-tools/character-api/internal/api/metrics"
	"github.com/cofd-tools/character-api/internal/core/domain"
	"github.com/cofd-tools/character-api/internal/core/ports"
)

// MeritHandler serves the shared merit catalog.
type MeritHandler struct {
	service ports.MeritService
}

func NewMeritHandler(service ports.MeritService) *MeritHandler {
	return &MeritHandler{service: service}
}

type meritRequest struct {
	Name          string `json:"name"          validate:"required"`
	Rating        int    `json:"rating"        validate:"required,min=1"`
	Prerequisites string `json:"prerequisites"`
	Description   string `json:"description"`
}

func (r meritRequest) input() domain.MeritInput {
	return domain.MeritInput{
		Name:          r.Name,
		Rating:        r.Rating,
		Prerequisites: r.Prerequisites,
		Description:   r.Description,
	}
}

// bindMerit binds and validates a merit payload.
func bindMerit(c echo.Context) (domain.MeritInput, error) {
	var req meritRequest
	if err := c.Bind(&req); err != nil {
		return domain.MeritInput{}, err
	}
	if err := c.Validate(&req); err != nil {
		return domain.MeritInput{}, err
	}
	return req.input(), nil
}

// List handles GET /api/merit.
//
// @Summary      List the merit catalog
// @Tags         merits
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Merit
// @Router       /api/merit [get]
func (h *MeritHandler) List(c echo.Context) error {
	merits, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, merits)
}

// Get handles GET /api/merit/:id.
//
// @Summary      Get a merit
// @Tags         merits
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Merit id"
// @Success      200  {object}  domain.Merit
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/merit/{id} [get]
func (h *MeritHandler) Get(c echo.Context) error {
	merit, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, merit)
}

// Create handles POST /api/merit.
//
// @Summary      Add a merit to the catalog
// @Tags         merits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      meritRequest  true  "Merit"
// @Success      201   {object}  domain.Merit
// @Failure      400   {object}  ErrorResponse
// @Router       /api/merit [post]
func (h *MeritHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	input, err := bindMerit(c)
	if err != nil {
		return err
	}

	merit, err := h.service.Create(c.Request().Context(), identity.UserID, input)
	if err != nil {
		return err
	}

	metrics.MeritOpsTotal.WithLabelValues("create").Inc()
	c.Response().Header().Set(echo.HeaderLocation, "/api/merit/"+merit.ID)
	return c.JSON(http.StatusCreated, merit)
}

// Replace handles PUT /api/merit/:id.
//
// @Summary      Replace a merit the caller created
// @Tags         merits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Merit id"
// @Param        body  body      meritRequest  true  "Merit"
// @Success      200   {object}  domain.Merit
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /api/merit/{id} [put]
func (h *MeritHandler) Replace(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	input, err := bindMerit(c)
	if err != nil {
		return err
	}

	merit, err := h.service.Replace(c.Request().Context(), identity.UserID, c.Param("id"), input)
	if err != nil {
		return err
	}

	metrics.MeritOpsTotal.WithLabelValues("replace").Inc()
	return c.JSON(http.StatusOK, merit)
}

// Delete handles DELETE /api/merit/:id.
//
// @Summary      Delete a merit the caller created
// @Tags         merits
// @Security     BearerAuth
// @Param        id   path  string  true  "Merit id"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Router       /api/merit/{id} [delete]
func (h *MeritHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), identity.UserID, c.Param("id")); err != nil {
		return err
	}

	metrics.MeritOpsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
