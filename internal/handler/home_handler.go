package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"bloghub/internal/service"
)

// HomeHandler serves the global feed and the static about page.
type HomeHandler struct {
	posts service.PostService
}

// NewHomeHandler creates a new home handler.
func NewHomeHandler(posts service.PostService) *HomeHandler {
	return &HomeHandler{posts: posts}
}

// Home renders the paginated global feed, five posts per page, newest first.
func (h *HomeHandler) Home(c echo.Context) error {
	page, err := h.posts.Feed(c.Request().Context(), pageParam(c))
	if err != nil {
		return err
	}
	return render(c, "home.html", echo.Map{"Page": page})
}

// About renders the static info page.
func (h *HomeHandler) About(c echo.Context) error {
	return render(c, "about.html", echo.Map{"Title": "About"})
}

// pageParam reads the 1-indexed page query parameter, defaulting to 1.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
