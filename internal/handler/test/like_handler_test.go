package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"whisp/internal/repository"
	"whisp/internal/service"
)

func TestLikePostHandler(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		mockSetup      func(*testMocks)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "likes the post",
			requestBody: map[string]interface{}{"postId": "post1"},
			mockSetup: func(m *testMocks) {
				m.session.On("ResolveViewer", mock.Anything).Return(testViewer(), nil)
				m.like.On("LikePost", mock.Anything, mock.Anything, "post1").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "second like of the same post conflicts",
			requestBody: map[string]interface{}{"postId": "post1"},
			mockSetup: func(m *testMocks) {
				m.session.On("ResolveViewer", mock.Anything).Return(testViewer(), nil)
				m.like.On("LikePost", mock.Anything, mock.Anything, "post1").
					Return(repository.ErrAlreadyLiked)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   "Already liked",
		},
		{
			name:        "liking a nonexistent post",
			requestBody: map[string]interface{}{"postId": "gone"},
			mockSetup: func(m *testMocks) {
				m.session.On("ResolveViewer", mock.Anything).Return(testViewer(), nil)
				m.like.On("LikePost", mock.Anything, mock.Anything, "gone").
					Return(repository.ErrPostNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Post not found",
		},
		{
			name:        "missing post id",
			requestBody: map[string]interface{}{},
			mockSetup: func(m *testMocks) {
				m.session.On("ResolveViewer", mock.Anything).Return(testViewer(), nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Post ID required",
		},
		{
			name:        "anonymous caller",
			requestBody: map[string]interface{}{"postId": "post1"},
			mockSetup: func(m *testMocks) {
				m.session.On("ResolveViewer", mock.Anything).
					Return(nil, service.ErrUnauthenticated)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mocks := newTestHandlers(nil)
			tt.mockSetup(mocks)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/posts/like", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			rr := httptest.NewRecorder()
			handler.LikePost(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, strings.TrimSpace(rr.Body.String()))
			}
			mocks.like.AssertExpectations(t)
		})
	}
}

func TestUnlikePostHandler(t *testing.T) {
	tests := []struct {
		name           string
		mockSetup      func(*testMocks)
		expectedStatus int
	}{
		{
			name: "removes the like",
			mockSetup: func(m *testMocks) {
				m.session.On("ResolveViewer", mock.Anything).Return(testViewer(), nil)
				m.like.On("UnlikePost", mock.Anything, mock.Anything, "post1").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			// The service reports success with no like row to remove, so
			// a repeated unlike looks identical to the first.
			name: "unliking a post that is not liked still succeeds",
			mockSetup: func(m *testMocks) {
				m.session.On("ResolveViewer", mock.Anything).Return(testViewer(), nil)
				m.like.On("UnlikePost", mock.Anything, mock.Anything, "post1").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mocks := newTestHandlers(nil)
			tt.mockSetup(mocks)

			body, _ := json.Marshal(map[string]interface{}{"postId": "post1"})
			req := httptest.NewRequest(http.MethodDelete, "/api/posts/like", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			rr := httptest.NewRecorder()
			handler.UnlikePost(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			var response map[string]interface{}
			json.Unmarshal(rr.Body.Bytes(), &response)
			assert.Equal(t, "Post unliked", response["message"])

			mocks.like.AssertExpectations(t)
		})
	}
}

func TestGetLikesHandler(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockSetup      func(*testMocks)
		expectedStatus int
		expectedCount  float64
		expectedLiked  bool
	}{
		{
			name: "state for a signed-in viewer",
			url:  "/api/posts/likes?postId=post1",
			mockSetup: func(m *testMocks) {
				m.session.On("ResolveViewer", mock.Anything).Return(testViewer(), nil)
				m.like.On("GetLikeState", mock.Anything, "post1", "user1").
					Return(&service.LikeState{Count: 3, Liked: true}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  3,
			expectedLiked:  true,
		},
		{
			name: "anonymous viewer gets the count with liked false",
			url:  "/api/posts/likes?postId=post1",
			mockSetup: func(m *testMocks) {
				m.session.On("ResolveViewer", mock.Anything).
					Return(nil, service.ErrUnauthenticated)
				m.like.On("GetLikeState", mock.Anything, "post1", "").
					Return(&service.LikeState{Count: 3, Liked: false}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  3,
			expectedLiked:  false,
		},
		{
			name: "missing post id",
			url:  "/api/posts/likes",
			mockSetup: func(m *testMocks) {
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mocks := newTestHandlers(nil)
			tt.mockSetup(mocks)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rr := httptest.NewRecorder()
			handler.GetLikes(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var response map[string]interface{}
				err := json.Unmarshal(rr.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCount, response["count"])
				assert.Equal(t, tt.expectedLiked, response["liked"])
			}

			mocks.like.AssertExpectations(t)
		})
	}
}
