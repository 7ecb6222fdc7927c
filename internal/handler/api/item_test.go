//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"shareit/internal/handler/api"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/usecase"
	"shareit/internal/usecase/readmodel"
	"shareit/tests/common/httptest"
	usecasemock "shareit/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ItemHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	itemUseCase    *usecasemock.MockItemUseCase
	commentUseCase *usecasemock.MockCommentUseCase
	handler        *api.ItemHandler
}

func (s *ItemHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.itemUseCase = usecasemock.NewMockItemUseCase(s.mockCtrl)
	s.commentUseCase = usecasemock.NewMockCommentUseCase(s.mockCtrl)
	s.handler = api.NewItemHandler(s.itemUseCase, s.commentUseCase)

	identity := middleware.RequireUserID()
	s.router.POST("/items", identity, s.handler.CreateItem)
	s.router.PATCH("/items/:id", identity, s.handler.UpdateItem)
	s.router.GET("/items/search", identity, s.handler.SearchItems)
	s.router.GET("/items/:id", identity, s.handler.GetItem)
	s.router.GET("/items", identity, s.handler.ListOwnerItems)
	// Delete carries no identity header.
	s.router.DELETE("/items/:id", s.handler.DeleteItem)
	s.router.POST("/items/:id/comment", identity, s.handler.AddComment)
}

func (s *ItemHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestItemHandlerSuite(t *testing.T) {
	suite.Run(t, new(ItemHandlerTestSuite))
}

func sampleItemView() *readmodel.ItemView {
	return &readmodel.ItemView{ID: 10, Name: "drill", Description: "cordless drill", Available: true, OwnerID: 1}
}

func (s *ItemHandlerTestSuite) TestCreateItem() {
	url := "/items"
	reqBody := map[string]any{"name": "drill", "description": "cordless drill", "available": true}

	s.Run("success: returns 201 Created", func() {
		s.itemUseCase.EXPECT().CreateItem(gomock.Any(), int64(1), gomock.Any()).
			Return(sampleItemView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "1")

		var resp resdto.ItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(int64(10), resp.ID)
		s.True(resp.Available)
	})

	s.Run("error: 400 Bad Request without identity header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeBadRequest)
	})

	s.Run("error: 400 Bad Request when available is missing", func() {
		body := map[string]any{"name": "drill", "description": "cordless drill"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "1")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeBadRequest)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedCode   string
		}{
			{name: "owner not found", usecaseError: usecase.ErrUserNotFound, expectedStatus: http.StatusNotFound, expectedCode: httperr.CodeNotFound},
			{name: "answered request not found", usecaseError: usecase.ErrRequestNotFound, expectedStatus: http.StatusNotFound, expectedCode: httperr.CodeNotFound},
			{name: "domain validation", usecaseError: usecase.ErrDomainValidationFailed, expectedStatus: http.StatusBadRequest, expectedCode: httperr.CodeBadRequest},
			{name: "internal error", usecaseError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedCode: httperr.CodeInternal},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.itemUseCase.EXPECT().CreateItem(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, tc.usecaseError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "1")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})
}

func (s *ItemHandlerTestSuite) TestUpdateItem() {
	url := "/items/10"
	reqBody := map[string]any{"name": "hammer drill"}

	s.Run("success: returns 200 OK", func() {
		updated := sampleItemView()
		updated.Name = "hammer drill"
		s.itemUseCase.EXPECT().UpdateItem(gomock.Any(), int64(1), int64(10), gomock.Any()).
			Return(updated, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "1")

		var resp resdto.ItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("hammer drill", resp.Name)
	})

	s.Run("error: 403 Forbidden for a non-owner", func() {
		s.itemUseCase.EXPECT().UpdateItem(gomock.Any(), int64(2), int64(10), gomock.Any()).
			Return(nil, usecase.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "2")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, httperr.CodeForbidden)
	})

	s.Run("error: 404 Not Found for a missing item", func() {
		s.itemUseCase.EXPECT().UpdateItem(gomock.Any(), int64(1), int64(99), gomock.Any()).
			Return(nil, usecase.ErrItemNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/items/99", reqBody, "1")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound)
	})
}

func (s *ItemHandlerTestSuite) TestGetItem() {
	s.Run("success: owner sees booking neighbors", func() {
		detail := &readmodel.ItemDetailView{
			ItemView:    *sampleItemView(),
			LastBooking: &readmodel.BookingRef{ID: 3, BookerID: 2},
			NextBooking: nil,
			Comments:    []readmodel.CommentView{{ID: 1, Text: "worked great", AuthorName: "bob", Created: time.Now()}},
		}
		s.itemUseCase.EXPECT().GetItem(gomock.Any(), int64(1), int64(10)).Return(detail, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/10", nil, "1")

		var resp resdto.ItemDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.NotNil(resp.LastBooking)
		s.Equal(int64(3), resp.LastBooking.ID)
		s.Nil(resp.NextBooking)
		s.Len(resp.Comments, 1)
	})

	s.Run("success: comments render as an empty array, never null", func() {
		detail := &readmodel.ItemDetailView{ItemView: *sampleItemView()}
		s.itemUseCase.EXPECT().GetItem(gomock.Any(), int64(2), int64(10)).Return(detail, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/10", nil, "2")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Contains(rec.Body.String(), `"comments":[]`)
	})

	s.Run("error: 404 Not Found for a missing item", func() {
		s.itemUseCase.EXPECT().GetItem(gomock.Any(), int64(1), int64(99)).
			Return(nil, usecase.ErrItemNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/99", nil, "1")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound)
	})
}

func (s *ItemHandlerTestSuite) TestListOwnerItems() {
	details := []*readmodel.ItemDetailView{
		{ItemView: *sampleItemView()},
	}
	s.itemUseCase.EXPECT().ListOwnerItems(gomock.Any(), int64(1)).Return(details, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items", nil, "1")

	var resp []resdto.ItemDetailResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Len(resp, 1)
}

func (s *ItemHandlerTestSuite) TestSearchItems() {
	s.Run("success: forwards the text query", func() {
		s.itemUseCase.EXPECT().SearchItems(gomock.Any(), "drill").
			Return([]*readmodel.ItemView{sampleItemView()}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/search?text=drill", nil, "2")

		var resp []resdto.ItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 1)
	})

	s.Run("success: blank text yields an empty array", func() {
		s.itemUseCase.EXPECT().SearchItems(gomock.Any(), "").
			Return([]*readmodel.ItemView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/search", nil, "2")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal("[]", rec.Body.String())
	})
}

func (s *ItemHandlerTestSuite) TestDeleteItem() {
	s.Run("success: returns 204 without an identity header", func() {
		s.itemUseCase.EXPECT().DeleteItem(gomock.Any(), int64(10)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/items/10", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for a non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/items/abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeBadRequest)
	})
}

func (s *ItemHandlerTestSuite) TestAddComment() {
	url := "/items/10/comment"
	reqBody := map[string]any{"text": "worked great"}

	s.Run("success: returns 201 Created", func() {
		view := &readmodel.CommentView{ID: 1, Text: "worked great", ItemID: 10, AuthorName: "bob", Created: time.Now()}
		s.commentUseCase.EXPECT().AddComment(gomock.Any(), int64(2), int64(10), gomock.Any()).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "2")

		var resp resdto.CommentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal("bob", resp.AuthorName)
	})

	s.Run("error: 400 Bad Request without a finished booking", func() {
		s.commentUseCase.EXPECT().AddComment(gomock.Any(), int64(2), int64(10), gomock.Any()).
			Return(nil, usecase.ErrNoFinishedBooking)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "2")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeBadRequest)
	})

	s.Run("error: 400 Bad Request for a missing text field", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "2")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeBadRequest)
	})

	s.Run("error: 404 Not Found for a missing item", func() {
		s.commentUseCase.EXPECT().AddComment(gomock.Any(), int64(2), int64(10), gomock.Any()).
			Return(nil, usecase.ErrItemNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "2")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound)
	})
}
