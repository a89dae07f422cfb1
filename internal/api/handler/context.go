package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/cofd-tools/character-api/internal/api/middleware"
	"github.com/cofd-tools/character-api/internal/core/domain"
	"github.com/cofd-tools/character-api/internal/core/ports"
)

// ctxIdentity extracts the caller injected by the Auth middleware. A missing
// user id means the route was reached without a verified token.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	userID, _ := c.Get(middleware.ContextUserID).(string)
	if userID == "" {
		return ports.Identity{}, domain.ErrUnauthenticated
	}

	username, _ := c.Get(middleware.ContextUsername).(string)
	name, _ := c.Get(middleware.ContextName).(string)
	return ports.Identity{UserID: userID, Username: username, Name: name}, nil
}
