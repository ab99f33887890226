package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ashara.health/site/internal/http/dto"
	"ashara.health/site/internal/theme"
)

const themeCookieMaxAge = 365 * 24 * 60 * 60 // 1 year

type ThemeHandler struct {
	secure bool
}

// NewThemeHandler creates the theme endpoint handler. secure marks the
// cookie Secure, which production sets and local development does not.
func NewThemeHandler(secure bool) *ThemeHandler {
	return &ThemeHandler{secure: secure}
}

func (h *ThemeHandler) Set(c *gin.Context) {
	var req dto.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Bad request"})
		return
	}

	if !theme.Valid(req.Theme) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid theme"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	// Not HttpOnly: the page script reads the cookie to apply the theme
	// class before hydration.
	c.SetCookie("theme", req.Theme, themeCookieMaxAge, "/", "", h.secure, false)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Get resolves the effective theme for the caller: cookie first, then the
// legacy darkMode flag the client may echo in a header, light as fallback.
func (h *ThemeHandler) Get(c *gin.Context) {
	cookie, _ := c.Cookie("theme")
	resolved := theme.Resolve(theme.Light,
		theme.CookieSource{Value: cookie},
		theme.LegacySource{DarkMode: c.GetHeader("X-Dark-Mode")},
	)
	c.JSON(http.StatusOK, gin.H{"theme": resolved})
}
