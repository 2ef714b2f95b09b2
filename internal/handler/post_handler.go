package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "bloghub/internal/errors"
	"bloghub/internal/service"
	"bloghub/internal/session"
)

// PostHandler serves post CRUD pages and the per-author listing.
type PostHandler struct {
	posts service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(posts service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// PostForm is the shared create/update input.
type PostForm struct {
	Title   string `form:"title" validate:"required,max=100"`
	Content string `form:"content" validate:"required"`
}

// ShowCreate renders the empty post form.
func (h *PostHandler) ShowCreate(c echo.Context) error {
	return render(c, "post_form.html", echo.Map{"Title": "New Post", "Legend": "New Post", "Form": PostForm{}})
}

// Create stores a post authored by the current user and redirects home.
func (h *PostHandler) Create(c echo.Context) error {
	var form PostForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		return render(c, "post_form.html", echo.Map{"Title": "New Post", "Legend": "New Post", "Form": form, "Errors": formErrors(err)})
	}

	if _, err := h.posts.CreatePost(c.Request().Context(), currentUser(c).ID, form.Title, form.Content); err != nil {
		return err
	}

	_ = session.AddFlash(c, "success", "Your post has been created!")
	return c.Redirect(http.StatusSeeOther, "/")
}

// Show renders a single post, 404 when the id is unknown.
func (h *PostHandler) Show(c echo.Context) error {
	post, err := h.posts.GetPost(c.Request().Context(), postID(c))
	if err != nil {
		return mapDomainError(err)
	}
	return render(c, "post.html", echo.Map{"Title": post.Title, "Post": post})
}

// ShowUpdate renders the post form prefilled for the author, 403 otherwise.
func (h *PostHandler) ShowUpdate(c echo.Context) error {
	post, err := h.posts.GetPost(c.Request().Context(), postID(c))
	if err != nil {
		return mapDomainError(err)
	}
	if post.UserID != currentUser(c).ID {
		return echo.NewHTTPError(http.StatusForbidden)
	}
	form := PostForm{Title: post.Title, Content: post.Content}
	return render(c, "post_form.html", echo.Map{"Title": "Update Post", "Legend": "Update Post", "Form": form})
}

// Update changes title and content when the current user is the author.
func (h *PostHandler) Update(c echo.Context) error {
	var form PostForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		return render(c, "post_form.html", echo.Map{"Title": "Update Post", "Legend": "Update Post", "Form": form, "Errors": formErrors(err)})
	}

	post, err := h.posts.UpdatePost(c.Request().Context(), currentUser(c).ID, postID(c), form.Title, form.Content)
	if err != nil {
		return mapDomainError(err)
	}

	_ = session.AddFlash(c, "success", "Your post has been updated!")
	return c.Redirect(http.StatusSeeOther, "/post/"+strconv.FormatUint(uint64(post.ID), 10))
}

// Delete removes the post when the current user is the author. POST only.
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.posts.DeletePost(c.Request().Context(), currentUser(c).ID, postID(c)); err != nil {
		return mapDomainError(err)
	}

	_ = session.AddFlash(c, "success", "Your post has been deleted!")
	return c.Redirect(http.StatusSeeOther, "/")
}

// ByUser renders the paginated posts of one author, 404 for an unknown
// username.
func (h *PostHandler) ByUser(c echo.Context) error {
	user, page, err := h.posts.PostsByUser(c.Request().Context(), c.Param("username"), pageParam(c))
	if err != nil {
		return mapDomainError(err)
	}
	return render(c, "user_posts.html", echo.Map{"Title": user.Username, "Author": user, "Page": page})
}

func postID(c echo.Context) uint {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// mapDomainError converts service sentinels into echo HTTP errors so the
// default error handler renders the matching status page.
func mapDomainError(err error) error {
	if code := apperrors.StatusCode(err); code != http.StatusInternalServerError {
		return echo.NewHTTPError(code, err.Error())
	}
	return err
}
