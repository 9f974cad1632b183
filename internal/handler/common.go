package handler

import (
	"errors"

	"github.com/labstack/echo/v4"
)

// callerEmail extracts the authenticated user's email from the echo
// context.  JWTAuth stores the claim under "email"; an absent or
// empty value means the middleware chain was misconfigured and the
// request must be treated as unauthenticated.
func callerEmail(c echo.Context) (string, error) {
	if v, ok := c.Get("email").(string); ok && v != "" {
		return v, nil
	}
	return "", errors.New("no email claim in context")
}
