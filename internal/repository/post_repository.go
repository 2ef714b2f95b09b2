package repository

import (
	"context"

	"gorm.io/gorm"

	"bloghub/internal/model"
)

// PostRepository defines post persistence operations. Authorship checks are
// the caller's responsibility; this layer only moves rows.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id uint) (*model.Post, error)
	Update(ctx context.Context, id uint, title, content string) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, page, perPage int) ([]model.Post, int64, error)
	ListByAuthor(ctx context.Context, authorID uint, page, perPage int) ([]model.Post, int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository builds a GORM-backed repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) FindByID(ctx context.Context, id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).Preload("Author").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Update changes title and content only; the author column is never touched.
func (r *postRepository) Update(ctx context.Context, id uint, title, content string) error {
	return r.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "content": content}).Error
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Post{}, id).Error
}

func (r *postRepository) List(ctx context.Context, page, perPage int) ([]model.Post, int64, error) {
	return r.list(ctx, page, perPage, nil)
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint, page, perPage int) ([]model.Post, int64, error) {
	return r.list(ctx, page, perPage, map[string]interface{}{"user_id": authorID})
}

// list pages posts newest first. Pages are 1-indexed; a page beyond the
// range returns an empty slice, not an error. The id tiebreaker keeps
// ordering stable for posts created within the same timestamp.
func (r *postRepository) list(ctx context.Context, page, perPage int, where map[string]interface{}) ([]model.Post, int64, error) {
	if page < 1 {
		page = 1
	}

	base := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&model.Post{})
		if where != nil {
			query = query.Where(where)
		}
		return query
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []model.Post
	err := base().
		Preload("Author").
		Order("created_at DESC, id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}
