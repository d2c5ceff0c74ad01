package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"whisp/internal/models"
	"whisp/internal/service"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) IssueToken(user *models.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) ParseToken(tokenString string) (*service.SessionClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SessionClaims), args.Error(1)
}

func (m *MockSessionService) EnsureUser(ctx context.Context, claims service.SessionClaims) (*models.User, error) {
	args := m.Called(ctx, claims)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockSessionService) ResolveViewer(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, author *models.User, content string, imageURL *string) (*models.Post, error) {
	args := m.Called(ctx, author, content, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) ListPosts(ctx context.Context, authorID, viewerID string) ([]models.PostProjection, error) {
	args := m.Called(ctx, authorID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostProjection), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, postID, viewerID string) (*models.PostProjection, error) {
	args := m.Called(ctx, postID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostProjection), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, viewer *models.User, postID string) error {
	args := m.Called(ctx, viewer, postID)
	return args.Error(0)
}

func (m *MockPostService) ModeratorDeletePost(ctx context.Context, moderator *models.User, postID string) error {
	args := m.Called(ctx, moderator, postID)
	return args.Error(0)
}

func (m *MockPostService) UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, fileName, file, size)
	return args.String(0), args.Error(1)
}

type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) LikePost(ctx context.Context, viewer *models.User, postID string) error {
	args := m.Called(ctx, viewer, postID)
	return args.Error(0)
}

func (m *MockLikeService) UnlikePost(ctx context.Context, viewer *models.User, postID string) error {
	args := m.Called(ctx, viewer, postID)
	return args.Error(0)
}

func (m *MockLikeService) GetLikeState(ctx context.Context, postID, viewerID string) (*service.LikeState, error) {
	args := m.Called(ctx, postID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LikeState), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfileByName(ctx context.Context, name string) (*models.Profile, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockUserService) GetProfileByID(ctx context.Context, userID string) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, viewer *models.User, displayName, bio *string) error {
	args := m.Called(ctx, viewer, displayName, bio)
	return args.Error(0)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) ReportPost(ctx context.Context, reporter *models.User, postID, reason string) error {
	args := m.Called(ctx, reporter, postID, reason)
	return args.Error(0)
}
