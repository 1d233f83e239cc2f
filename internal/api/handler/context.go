package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Identity is the acting member, as asserted by the auth provider's token.
type Identity struct {
	UID         string
	DisplayName string
	Email       string
	PhotoURL    string
}

// ctxIdentity extracts the identity claims injected by the Auth middleware.
// A missing uid means the middleware did not run or the token carried no
// subject; either way the request cannot act on anyone's behalf.
func ctxIdentity(c echo.Context) (Identity, error) {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	name, _ := c.Get("display_name").(string)
	email, _ := c.Get("email").(string)
	photo, _ := c.Get("photo_url").(string)

	return Identity{UID: uid, DisplayName: name, Email: email, PhotoURL: photo}, nil
}
