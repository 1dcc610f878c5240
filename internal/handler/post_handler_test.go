package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"postboard/internal/errors"
	"postboard/internal/model"
)

// MockPostService is a mock implementation of service.PostService.
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) ListPosts(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, id uint) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) CreatePost(ctx context.Context, title, content string, published bool) (*model.Post, error) {
	args := m.Called(ctx, title, content, published)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, id uint, title, content string, published bool) (*model.Post, error) {
	args := m.Called(ctx, id, title, content, published)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPostHandler_CreatePost(t *testing.T) {
	mockSvc := new(MockPostService)
	// Omitted published must default to true.
	mockSvc.On("CreatePost", mock.Anything, "A", "B", true).Return(&model.Post{
		ID:        1,
		Title:     "A",
		Content:   "B",
		Published: true,
		CreatedAt: time.Now(),
	}, nil)

	h := NewPostHandler(mockSvc)
	c, rec := newTestContext(http.MethodPost, "/api/posts", `{"title":"A","content":"B"}`)

	assert.NoError(t, h.CreatePost(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got model.Post
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, uint(1), got.ID)
	assert.True(t, got.Published)
	mockSvc.AssertExpectations(t)
}

func TestPostHandler_CreatePostExplicitUnpublished(t *testing.T) {
	mockSvc := new(MockPostService)
	mockSvc.On("CreatePost", mock.Anything, "A", "B", false).Return(&model.Post{
		ID:        2,
		Title:     "A",
		Content:   "B",
		Published: false,
	}, nil)

	h := NewPostHandler(mockSvc)
	c, rec := newTestContext(http.MethodPost, "/api/posts", `{"title":"A","content":"B","published":false}`)

	assert.NoError(t, h.CreatePost(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	mockSvc.AssertExpectations(t)
}

func TestPostHandler_CreatePostMissingTitle(t *testing.T) {
	mockSvc := new(MockPostService)
	h := NewPostHandler(mockSvc)
	c, _ := newTestContext(http.MethodPost, "/api/posts", `{"content":"B"}`)

	err := h.CreatePost(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	mockSvc.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPostHandler_GetPostNotFound(t *testing.T) {
	mockSvc := new(MockPostService)
	mockSvc.On("GetPost", mock.Anything, uint(99)).Return(nil, errors.ErrPostNotFound)

	h := NewPostHandler(mockSvc)
	c, _ := newTestContext(http.MethodGet, "/api/posts/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := h.GetPost(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
	mockSvc.AssertExpectations(t)
}

func TestPostHandler_GetPostInvalidID(t *testing.T) {
	mockSvc := new(MockPostService)
	h := NewPostHandler(mockSvc)
	c, _ := newTestContext(http.MethodGet, "/api/posts/apple", "")
	c.SetParamNames("id")
	c.SetParamValues("apple")

	err := h.GetPost(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	mockSvc.AssertNotCalled(t, "GetPost", mock.Anything, mock.Anything)
}

func TestPostHandler_DeletePost(t *testing.T) {
	tests := []struct {
		name         string
		svcErr       error
		expectedCode int
	}{
		{name: "existing post", svcErr: nil, expectedCode: http.StatusNoContent},
		{name: "missing post", svcErr: errors.ErrPostNotFound, expectedCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockPostService)
			mockSvc.On("DeletePost", mock.Anything, uint(5)).Return(tt.svcErr)

			h := NewPostHandler(mockSvc)
			c, rec := newTestContext(http.MethodDelete, "/api/posts/5", "")
			c.SetParamNames("id")
			c.SetParamValues("5")

			err := h.DeletePost(c)
			if tt.svcErr != nil {
				httpErr, ok := err.(*echo.HTTPError)
				assert.True(t, ok)
				assert.Equal(t, tt.expectedCode, httpErr.Code)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCode, rec.Code)
				assert.Zero(t, rec.Body.Len())
			}
			mockSvc.AssertExpectations(t)
		})
	}
}
