package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "bloghub/internal/errors"
	"bloghub/internal/model"
)

func TestPostHandler_Show(t *testing.T) {
	svc := new(MockPostService)
	svc.On("GetPost", mock.Anything, uint(3)).
		Return(&model.Post{ID: 3, Title: "Hello", UserID: 1, Author: model.User{ID: 1, Username: "alice"}}, nil)

	e := newTestEcho()
	h := NewPostHandler(svc)
	e.GET("/post/:id", h.Show)

	req := httptest.NewRequest(http.MethodGet, "/post/3", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "post.html", rec.Body.String())
}

func TestPostHandler_Show_NotFound(t *testing.T) {
	svc := new(MockPostService)
	svc.On("GetPost", mock.Anything, uint(999)).Return(nil, apperrors.ErrPostNotFound)

	e := newTestEcho()
	h := NewPostHandler(svc)
	e.GET("/post/:id", h.Show)

	req := httptest.NewRequest(http.MethodGet, "/post/999", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostHandler_Update_ForbiddenForNonAuthor(t *testing.T) {
	svc := new(MockPostService)
	svc.On("UpdatePost", mock.Anything, uint(2), uint(3), "hacked", "hacked").
		Return(nil, apperrors.ErrForbidden)

	e := newTestEcho()
	e.Use(asUser(&model.User{ID: 2, Username: "bob"}))
	h := NewPostHandler(svc)
	e.POST("/post/:id/update", h.Update, RequireAuth)

	rec := doForm(t, e, http.MethodPost, "/post/3/update", url.Values{"title": {"hacked"}, "content": {"hacked"}})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPostHandler_Update_AuthorSucceeds(t *testing.T) {
	svc := new(MockPostService)
	svc.On("UpdatePost", mock.Anything, uint(1), uint(3), "Hello again", "updated").
		Return(&model.Post{ID: 3, Title: "Hello again", Content: "updated", UserID: 1}, nil)

	e := newTestEcho()
	e.Use(asUser(&model.User{ID: 1, Username: "alice"}))
	h := NewPostHandler(svc)
	e.POST("/post/:id/update", h.Update, RequireAuth)

	rec := doForm(t, e, http.MethodPost, "/post/3/update", url.Values{"title": {"Hello again"}, "content": {"updated"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/post/3", rec.Header().Get("Location"))
}

func TestPostHandler_Create(t *testing.T) {
	svc := new(MockPostService)
	svc.On("CreatePost", mock.Anything, uint(1), "Hello", "first").
		Return(&model.Post{ID: 1, Title: "Hello", UserID: 1}, nil)

	e := newTestEcho()
	e.Use(asUser(&model.User{ID: 1, Username: "alice"}))
	h := NewPostHandler(svc)
	e.POST("/post/new", h.Create, RequireAuth)

	rec := doForm(t, e, http.MethodPost, "/post/new", url.Values{"title": {"Hello"}, "content": {"first"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestPostHandler_Delete_ForbiddenForNonAuthor(t *testing.T) {
	svc := new(MockPostService)
	svc.On("DeletePost", mock.Anything, uint(2), uint(3)).Return(apperrors.ErrForbidden)

	e := newTestEcho()
	e.Use(asUser(&model.User{ID: 2, Username: "bob"}))
	h := NewPostHandler(svc)
	e.POST("/post/:id/delete", h.Delete, RequireAuth)

	rec := doForm(t, e, http.MethodPost, "/post/3/delete", url.Values{})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPostHandler_ByUser_UnknownUsername(t *testing.T) {
	svc := new(MockPostService)
	svc.On("PostsByUser", mock.Anything, "ghost", 1).Return(nil, nil, apperrors.ErrUserNotFound)

	e := newTestEcho()
	h := NewPostHandler(svc)
	e.GET("/user/:username", h.ByUser)

	req := httptest.NewRequest(http.MethodGet, "/user/ghost", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
