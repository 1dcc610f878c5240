package repository

import (
	"context"

	"gorm.io/gorm"

	"postboard/internal/model"
)

// PostRepository defines post persistence operations.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id uint) (*model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
	Update(ctx context.Context, post *model.Post) error
	// Delete removes the post with the given id, reporting rows affected so
	// callers can detect a missing row without a second query.
	Delete(ctx context.Context, id uint) (int64, error)
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
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.WithContext(ctx).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	// Select forces the published column to be written even when false.
	return r.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", post.ID).
		Select("title", "content", "published").
		Updates(map[string]interface{}{
			"title":     post.Title,
			"content":   post.Content,
			"published": post.Published,
		}).Error
}

func (r *postRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Post{}, id)
	return res.RowsAffected, res.Error
}
