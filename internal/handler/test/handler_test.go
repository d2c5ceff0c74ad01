package test

import (
	"github.com/go-playground/validator/v10"

	"whisp/internal/config"
	handlers "whisp/internal/handler"
	"whisp/internal/models"
)

type testMocks struct {
	session *MockSessionService
	post    *MockPostService
	like    *MockLikeService
	user    *MockUserService
	report  *MockReportService
}

func newTestHandlers(cfg *config.Config) (*handlers.Handlers, *testMocks) {
	if cfg == nil {
		cfg = &config.Config{MaxContentLength: 300}
	}

	mocks := &testMocks{
		session: new(MockSessionService),
		post:    new(MockPostService),
		like:    new(MockLikeService),
		user:    new(MockUserService),
		report:  new(MockReportService),
	}

	handler := &handlers.Handlers{
		SessionService: mocks.session,
		PostService:    mocks.post,
		LikeService:    mocks.like,
		UserService:    mocks.user,
		ReportService:  mocks.report,
		Cfg:            cfg,
		Validate:       validator.New(),
	}

	return handler, mocks
}

func testViewer() *models.User {
	return &models.User{
		UserID: "user1",
		Name:   "alice",
		Email:  "alice@example.com",
	}
}
