package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"postboard/internal/errors"
	"postboard/internal/model"
)

// MockPostRepository is a mock implementation of PostRepository.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) FindByID(ctx context.Context, id uint) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestPostService_CreatePost(t *testing.T) {
	tests := []struct {
		name          string
		title         string
		content       string
		published     bool
		setupMock     func(*MockPostRepository)
		expectedError error
	}{
		{
			name:      "successful creation",
			title:     "A",
			content:   "B",
			published: true,
			setupMock: func(m *MockPostRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).
					Run(func(args mock.Arguments) {
						post := args.Get(1).(*model.Post)
						post.ID = 1
						post.CreatedAt = time.Now()
					}).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "empty title rejected before storage",
			title:         "",
			content:       "B",
			published:     true,
			setupMock:     func(m *MockPostRepository) {},
			expectedError: errors.ErrMissingPostFields,
		},
		{
			name:          "empty content rejected before storage",
			title:         "A",
			content:       "   ",
			published:     true,
			setupMock:     func(m *MockPostRepository) {},
			expectedError: errors.ErrMissingPostFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPostRepository)
			tt.setupMock(mockRepo)

			svc := NewPostService(mockRepo)
			post, err := svc.CreatePost(context.Background(), tt.title, tt.content, tt.published)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, post)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, post)
				assert.NotZero(t, post.ID)
				assert.NotZero(t, post.CreatedAt)
				assert.Equal(t, tt.title, post.Title)
				assert.Equal(t, tt.content, post.Content)
				assert.Equal(t, tt.published, post.Published)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_GetPost(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockRepo.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewPostService(mockRepo)
	post, err := svc.GetPost(context.Background(), 7)

	assert.Nil(t, post)
	assert.Equal(t, errors.ErrPostNotFound, err)
	mockRepo.AssertExpectations(t)
}

func TestPostService_UpdatePost(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		setupMock     func(*MockPostRepository)
		expectedError error
	}{
		{
			name: "full-field replace",
			id:   1,
			setupMock: func(m *MockPostRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.Post{
					ID:        1,
					Title:     "A",
					Content:   "B",
					Published: true,
					CreatedAt: time.Now(),
				}, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.Post")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "missing post yields not found and no write",
			id:   42,
			setupMock: func(m *MockPostRepository) {
				m.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPostRepository)
			tt.setupMock(mockRepo)

			svc := NewPostService(mockRepo)
			post, err := svc.UpdatePost(context.Background(), tt.id, "C", "D", false)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, post)
				mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "C", post.Title)
				assert.Equal(t, "D", post.Content)
				assert.False(t, post.Published)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_DeletePost(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		affected      int64
		expectedError error
	}{
		{name: "existing post removed", id: 1, affected: 1, expectedError: nil},
		{name: "missing post yields not found", id: 9, affected: 0, expectedError: errors.ErrPostNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPostRepository)
			mockRepo.On("Delete", mock.Anything, tt.id).Return(tt.affected, nil)

			svc := NewPostService(mockRepo)
			err := svc.DeletePost(context.Background(), tt.id)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
