//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"shareit/internal/handler/api"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase"
	"shareit/internal/usecase/readmodel"
	"shareit/tests/common/httptest"
	usecasemock "shareit/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	userUseCase *usecasemock.MockUserUseCase
	handler     *api.UserHandler
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.userUseCase = usecasemock.NewMockUserUseCase(s.mockCtrl)
	s.handler = api.NewUserHandler(s.userUseCase)

	// User endpoints carry no identity header.
	s.router.POST("/users", s.handler.CreateUser)
	s.router.PATCH("/users/:id", s.handler.UpdateUser)
	s.router.GET("/users/:id", s.handler.GetUser)
	s.router.GET("/users", s.handler.ListUsers)
	s.router.DELETE("/users/:id", s.handler.DeleteUser)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestCreateUser() {
	url := "/users"
	reqBody := map[string]any{"name": "alice", "email": "alice@example.com"}
	view := &readmodel.UserView{ID: 1, Name: "alice", Email: "alice@example.com"}

	s.Run("success: returns 201 Created with the new user", func() {
		s.userUseCase.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var resp resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(int64(1), resp.ID)
		s.Equal("alice", resp.Name)
	})

	s.Run("error: 400 Bad Request on binding failures", func() {
		cases := []struct {
			name string
			body map[string]any
		}{
			{name: "missing name", body: map[string]any{"email": "alice@example.com"}},
			{name: "missing email", body: map[string]any{"name": "alice"}},
			{name: "malformed email", body: map[string]any{"name": "alice", "email": "not-an-email"}},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeBadRequest)
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedCode   string
		}{
			{name: "email conflict", usecaseError: usecase.ErrEmailConflict, expectedStatus: http.StatusConflict, expectedCode: httperr.CodeConflict},
			{name: "domain validation", usecaseError: usecase.ErrDomainValidationFailed, expectedStatus: http.StatusBadRequest, expectedCode: httperr.CodeBadRequest},
			{name: "internal error", usecaseError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedCode: httperr.CodeInternal},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.userUseCase.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, tc.usecaseError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})
}

func (s *UserHandlerTestSuite) TestUpdateUser() {
	url := "/users/1"
	reqBody := map[string]any{"name": "alice2"}
	view := &readmodel.UserView{ID: 1, Name: "alice2", Email: "alice@example.com"}

	s.Run("success: returns 200 OK with the updated user", func() {
		s.userUseCase.EXPECT().UpdateUser(gomock.Any(), int64(1), gomock.Any()).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")

		var resp resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("alice2", resp.Name)
	})

	s.Run("error: 400 Bad Request for a non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/users/abc", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeBadRequest)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedCode   string
		}{
			{name: "user not found", usecaseError: usecase.ErrUserNotFound, expectedStatus: http.StatusNotFound, expectedCode: httperr.CodeNotFound},
			{name: "email conflict", usecaseError: usecase.ErrEmailConflict, expectedStatus: http.StatusConflict, expectedCode: httperr.CodeConflict},
			{name: "domain validation", usecaseError: usecase.ErrDomainValidationFailed, expectedStatus: http.StatusBadRequest, expectedCode: httperr.CodeBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.userUseCase.EXPECT().UpdateUser(gomock.Any(), int64(1), gomock.Any()).Return(nil, tc.usecaseError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})
}

func (s *UserHandlerTestSuite) TestGetUser() {
	s.Run("success: returns 200 OK", func() {
		view := &readmodel.UserView{ID: 3, Name: "carol", Email: "carol@example.com"}
		s.userUseCase.EXPECT().GetUser(gomock.Any(), int64(3)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/3", nil, "")

		var resp resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("carol@example.com", resp.Email)
	})

	s.Run("error: 404 Not Found for a missing user", func() {
		s.userUseCase.EXPECT().GetUser(gomock.Any(), int64(99)).Return(nil, usecase.ErrUserNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/99", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound)
	})

	s.Run("error: 400 Bad Request for a non-positive id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/0", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeBadRequest)
	})
}

func (s *UserHandlerTestSuite) TestListUsers() {
	views := []*readmodel.UserView{
		{ID: 1, Name: "alice", Email: "alice@example.com"},
		{ID: 2, Name: "bob", Email: "bob@example.com"},
	}
	s.userUseCase.EXPECT().ListUsers(gomock.Any()).Return(views, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users", nil, "")

	var resp []resdto.UserResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Len(resp, 2)
}

func (s *UserHandlerTestSuite) TestDeleteUser() {
	s.Run("success: returns 204 No Content", func() {
		s.userUseCase.EXPECT().DeleteUser(gomock.Any(), int64(1)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/1", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 500 Internal Server Error on repository failure", func() {
		s.userUseCase.EXPECT().DeleteUser(gomock.Any(), int64(1)).Return(errors.New("database error"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, httperr.CodeInternal)
	})
}
