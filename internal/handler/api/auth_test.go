//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"petcare-booking/internal/handler/api"
	resdto "petcare-booking/internal/handler/dto/response"
	"petcare-booking/internal/pkg/config"
	"petcare-booking/internal/pkg/jwt"
	"petcare-booking/internal/usecase"
	"petcare-booking/tests/common/httptest"
	usecasemock "petcare-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockAuthUseCase
	handler     *api.AuthHandler
	userID      uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	jwtService := jwt.NewService("test-secret", 15*time.Minute, 168*time.Hour)
	s.handler = api.NewAuthHandler(s.mockUseCase, jwtService, config.NewTestConfig())
	s.userID = uuid.New()

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) loginResult() *usecase.LoginResult {
	return &usecase.LoginResult{
		User: &usecase.UserView{
			ID:    s.userID,
			Name:  "Lionel Messi",
			Email: "lionel.messi@example.com",
		},
		TokenPair: &usecase.TokenPair{
			AccessToken:  "test-access-token",
			RefreshToken: "test-refresh-token",
		},
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	body := map[string]any{"email": "anyone@example.com", "password": "whatever"}

	s.Run("success: returns the demo profile and sets token cookies", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), "anyone@example.com", "whatever").
			Return(s.loginResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", body, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Lionel Messi", response.User.Name)
		s.Equal("lionel.messi@example.com", response.User.Email)

		access := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(access)
		s.Equal("test-access-token", access.Value)
		s.True(access.HttpOnly)

		refresh := httptest.ExtractCookie(rec, "refresh_token")
		s.Require().NotNil(refresh)
		s.Equal("test-refresh-token", refresh.Value)
	})

	s.Run("error: 400 Bad Request when fields are missing", func() {
		cases := []map[string]any{
			{"password": "whatever"},
			{"email": "anyone@example.com"},
			{"email": "", "password": ""},
			{},
		}
		for _, c := range cases {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", c, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: 400 Bad Request on whitespace credentials", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), "   ", "   ").
			Return(nil, usecase.ErrEmptyCredentials).Times(1)

		blank := map[string]any{"email": "   ", "password": "   "}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", blank, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	s.Run("success: rotates the pair from the cookie", func() {
		s.mockUseCase.EXPECT().Refresh(gomock.Any(), "old-refresh").
			Return(&usecase.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil).Times(1)

		cookies := []*http.Cookie{{Name: "refresh_token", Value: "old-refresh"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/auth/refresh", nil, cookies, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		access := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(access)
		s.Equal("new-access", access.Value)
	})

	s.Run("success: falls back to the request body", func() {
		s.mockUseCase.EXPECT().Refresh(gomock.Any(), "body-refresh").
			Return(&usecase.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil).Times(1)

		body := map[string]any{"refresh_token": "body-refresh"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/refresh", body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 without any token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/refresh", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 401 on a rejected token", func() {
		s.mockUseCase.EXPECT().Refresh(gomock.Any(), "bad").
			Return(nil, usecase.ErrTokenValidation).Times(1)

		body := map[string]any{"refresh_token": "bad"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/refresh", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: clears the token cookies", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		access := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(access)
		s.Empty(access.Value)
		s.True(access.MaxAge < 0)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns the current profile", func() {
		s.mockUseCase.EXPECT().CurrentUser(gomock.Any(), s.userID).
			Return(s.loginResult().User, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "some-token")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.userID, response.ID)
	})

	s.Run("error: 401 for an unknown identity", func() {
		s.mockUseCase.EXPECT().CurrentUser(gomock.Any(), s.userID).
			Return(nil, usecase.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "some-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
