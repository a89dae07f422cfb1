package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cofd-tools/character-api/internal/api/metrics"
	"github.com/cofd-tools/character-api/internal/core/domain"
	"github.com/cofd-tools/character-api/internal/core/ports"
)

// CharacterHandler serves the caller's own character sheets.
type CharacterHandler struct {
	service ports.CharacterService
}

func NewCharacterHandler(service ports.CharacterService) *CharacterHandler {
	return &CharacterHandler{service: service}
}

// List handles GET /api/character.
//
// @Summary      List the caller's characters
// @Tags         characters
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   characterResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /api/character [get]
func (h *CharacterHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	chars, err := h.service.List(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCharacterResponses(chars))
}

// Get handles GET /api/character/:id.
//
// @Summary      Get one of the caller's characters
// @Tags         characters
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Character id"
// @Success      200  {object}  characterResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/character/{id} [get]
func (h *CharacterHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	char, err := h.service.Get(c.Request().Context(), identity.UserID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCharacterResponse(*char))
}

// Create handles POST /api/character.
//
// @Summary      Create a character
// @Description  Unspecified traits take their defaults. Only name is required.
// @Tags         characters
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.CharacterFields  true  "Character fields"
// @Success      201   {object}  characterResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /api/character [post]
func (h *CharacterHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var fields domain.CharacterFields
	if err := decodeBody(c, &fields); err != nil {
		return err
	}

	char, err := h.service.Create(c.Request().Context(), identity.UserID, fields)
	if err != nil {
		return err
	}

	metrics.CharacterOpsTotal.WithLabelValues("create").Inc()
	c.Response().Header().Set(echo.HeaderLocation, "/api/character/"+char.ID)
	return c.JSON(http.StatusCreated, toCharacterResponse(*char))
}

// Update handles PATCH /api/character/:id.
//
// @Summary      Update a character
// @Description  Only supplied fields change. id, userId and timestamps are ignored.
// @Tags         characters
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Character id"
// @Param        body  body      domain.CharacterFields  true  "Fields to change"
// @Success      200   {object}  characterResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /api/character/{id} [patch]
func (h *CharacterHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var fields domain.CharacterFields
	if err := decodeBody(c, &fields); err != nil {
		return err
	}

	char, err := h.service.Update(c.Request().Context(), identity.UserID, c.Param("id"), fields)
	if err != nil {
		return err
	}

	metrics.CharacterOpsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toCharacterResponse(*char))
}

// Delete handles DELETE /api/character/:id.
//
// @Summary      Delete a character
// @Tags         characters
// @Security     BearerAuth
// @Param        id   path  string  true  "Character id"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Router       /api/character/{id} [delete]
func (h *CharacterHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), identity.UserID, c.Param("id")); err != nil {
		return err
	}

	metrics.CharacterOpsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
