package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"postboard/internal/errors"
	"postboard/internal/model"
	"postboard/internal/repository"
)

// PostService exposes post domain operations.
type PostService interface {
	ListPosts(ctx context.Context) ([]model.Post, error)
	GetPost(ctx context.Context, id uint) (*model.Post, error)
	CreatePost(ctx context.Context, title, content string, published bool) (*model.Post, error)
	UpdatePost(ctx context.Context, id uint, title, content string, published bool) (*model.Post, error)
	DeletePost(ctx context.Context, id uint) error
}

type postService struct {
	repo repository.PostRepository
}

// NewPostService builds a PostService backed by a repository.
func NewPostService(repo repository.PostRepository) PostService {
	return &postService{repo: repo}
}

func (s *postService) ListPosts(ctx context.Context) ([]model.Post, error) {
	return s.repo.List(ctx)
}

func (s *postService) GetPost(ctx context.Context, id uint) (*model.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return post, nil
}

// CreatePost validates required fields before any storage call.
func (s *postService) CreatePost(ctx context.Context, title, content string, published bool) (*model.Post, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, errors.ErrMissingPostFields
	}

	post := &model.Post{
		Title:     title,
		Content:   content,
		Published: published,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// UpdatePost replaces all mutable fields. Partial updates are not supported.
func (s *postService) UpdatePost(ctx context.Context, id uint, title, content string, published bool) (*model.Post, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, errors.ErrMissingPostFields
	}

	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	post.Title = title
	post.Content = content
	post.Published = published
	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return post, nil
}

func (s *postService) DeletePost(ctx context.Context, id uint) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if affected == 0 {
		return errors.ErrPostNotFound
	}
	return nil
}
