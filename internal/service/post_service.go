package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "bloghub/internal/errors"
	"bloghub/internal/model"
	"bloghub/internal/repository"
)

// PostService owns post CRUD and the paginated listings. Mutations enforce
// that the acting user is the author.
type PostService interface {
	CreatePost(ctx context.Context, authorID uint, title, content string) (*model.Post, error)
	GetPost(ctx context.Context, id uint) (*model.Post, error)
	UpdatePost(ctx context.Context, actorID, id uint, title, content string) (*model.Post, error)
	DeletePost(ctx context.Context, actorID, id uint) error
	Feed(ctx context.Context, page int) (*model.Page, error)
	PostsByUser(ctx context.Context, username string, page int) (*model.User, *model.Page, error)
}

type postService struct {
	posts repository.PostRepository
	users repository.UserRepository
}

// NewPostService creates a new post service.
func NewPostService(posts repository.PostRepository, users repository.UserRepository) PostService {
	return &postService{posts: posts, users: users}
}

func (s *postService) CreatePost(ctx context.Context, authorID uint, title, content string) (*model.Post, error) {
	post := &model.Post{Title: title, Content: content, UserID: authorID}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

func (s *postService) GetPost(ctx context.Context, id uint) (*model.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return post, nil
}

// UpdatePost changes title and content. Authorship is immutable and only the
// author may update; anyone else gets ErrForbidden with the post untouched.
func (s *postService) UpdatePost(ctx context.Context, actorID, id uint, title, content string) (*model.Post, error) {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.UserID != actorID {
		return nil, apperrors.ErrForbidden
	}

	if err := s.posts.Update(ctx, id, title, content); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	post.Title = title
	post.Content = content
	return post, nil
}

func (s *postService) DeletePost(ctx context.Context, actorID, id uint) error {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != actorID {
		return apperrors.ErrForbidden
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// Feed returns one page of the global listing, newest first.
func (s *postService) Feed(ctx context.Context, page int) (*model.Page, error) {
	posts, total, err := s.posts.List(ctx, page, model.PostsPerPage)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return model.NewPage(posts, page, model.PostsPerPage, total), nil
}

// PostsByUser returns one page of a single author's posts. An unknown
// username yields ErrUserNotFound.
func (s *postService) PostsByUser(ctx context.Context, username string, page int) (*model.User, *model.Page, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("find user: %w", err)
	}

	posts, total, err := s.posts.ListByAuthor(ctx, user.ID, page, model.PostsPerPage)
	if err != nil {
		return nil, nil, fmt.Errorf("list posts by author: %w", err)
	}
	return user, model.NewPage(posts, page, model.PostsPerPage, total), nil
}
