package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	uidHeader  = "X-Farm-Uid"
	uidCookie  = "FARM_UID"
	DefaultUID = "U_DEV_DEFAULT"
)

// DevLogin resolves the tenant id and stashes it on the context as "uid";
// every handler downstream assumes it is set. Resolution order: X-Farm-Uid
// header, FARM_UID cookie, uid query param, then a fixed development default.
// A query-param or defaulted login is written back as the cookie so browser
// sessions stick. Stand-in for real auth.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("uid", resolveUID(c))
			return next(c)
		}
	}
}

func resolveUID(c echo.Context) string {
	if uid := c.Request().Header.Get(uidHeader); uid != "" {
		return uid
	}
	if ck, err := c.Cookie(uidCookie); err == nil && ck.Value != "" {
		return ck.Value
	}
	uid := c.QueryParam("uid")
	if uid == "" {
		uid = DefaultUID
	}
	c.SetCookie(&http.Cookie{Name: uidCookie, Value: uid, Path: "/"})
	return uid
}
