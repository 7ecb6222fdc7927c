//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/request"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase"
	"shareit/internal/usecase/readmodel"
	usecasemock "shareit/tests/mock/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RequestUseCaseTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	requestRepo *usecasemock.MockRequestRepository
	itemRepo    *usecasemock.MockItemRepository
	userRepo    *usecasemock.MockUserRepository
	clock       *clock.MockClock
	uc          usecase.RequestUseCase
}

func (s *RequestUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.requestRepo = usecasemock.NewMockRequestRepository(s.mockCtrl)
	s.itemRepo = usecasemock.NewMockItemRepository(s.mockCtrl)
	s.userRepo = usecasemock.NewMockUserRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s.uc = usecase.NewRequestUseCase(s.requestRepo, s.itemRepo, s.userRepo, s.clock)
}

func (s *RequestUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRequestUseCaseSuite(t *testing.T) {
	suite.Run(t, new(RequestUseCaseTestSuite))
}

func requesterView(id int64) *readmodel.UserView {
	return &readmodel.UserView{ID: id, Name: "requester", Email: "requester@example.com"}
}

func (s *RequestUseCaseTestSuite) TestCreateRequest() {
	ctx := context.Background()
	req := reqdto.CreateItemRequestRequest{Description: "need a ladder"}

	s.Run("success returns a view with empty items", func() {
		created := &readmodel.RequestView{ID: 1, Description: "need a ladder", RequesterID: 4, Created: s.clock.Now()}
		s.userRepo.EXPECT().FindByID(ctx, int64(4)).Return(requesterView(4), nil)
		s.requestRepo.EXPECT().Create(ctx, gomock.Any()).Return(created, nil)

		got, err := s.uc.CreateRequest(ctx, 4, req)
		s.NoError(err)
		s.NotNil(got.Items)
		s.Empty(got.Items)
	})

	s.Run("missing requester maps to user not found", func() {
		s.userRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, notFoundErr())

		_, err := s.uc.CreateRequest(ctx, 99, req)
		s.ErrorIs(err, usecase.ErrUserNotFound)
	})

	s.Run("blank description fails domain validation", func() {
		s.userRepo.EXPECT().FindByID(ctx, int64(4)).Return(requesterView(4), nil)

		_, err := s.uc.CreateRequest(ctx, 4, reqdto.CreateItemRequestRequest{Description: "  "})
		s.ErrorIs(err, usecase.ErrDomainValidationFailed)
		s.ErrorIs(err, request.ErrEmptyDescription)
	})
}

func (s *RequestUseCaseTestSuite) TestGetUserRequests() {
	ctx := context.Background()

	s.Run("attaches answering items and keeps empty slices non-nil", func() {
		views := []*readmodel.RequestView{
			{ID: 1, Description: "need a ladder", RequesterID: 4},
			{ID: 2, Description: "need a drill", RequesterID: 4},
		}
		itemsByRequest := map[int64][]readmodel.RequestItemView{
			1: {{ID: 10, Name: "ladder", OwnerID: 7}},
		}
		s.userRepo.EXPECT().FindByID(ctx, int64(4)).Return(requesterView(4), nil)
		s.requestRepo.EXPECT().FindByRequester(ctx, int64(4)).Return(views, nil)
		s.itemRepo.EXPECT().FindByRequestIDs(ctx, []int64{1, 2}).Return(itemsByRequest, nil)

		got, err := s.uc.GetUserRequests(ctx, 4)
		s.NoError(err)
		s.Len(got, 2)
		s.Empty(cmp.Diff(itemsByRequest[1], got[0].Items))
		s.NotNil(got[1].Items)
		s.Empty(got[1].Items)
	})

	s.Run("missing requester maps to user not found", func() {
		s.userRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, notFoundErr())

		_, err := s.uc.GetUserRequests(ctx, 99)
		s.ErrorIs(err, usecase.ErrUserNotFound)
	})

	s.Run("no requests means no item lookup", func() {
		s.userRepo.EXPECT().FindByID(ctx, int64(4)).Return(requesterView(4), nil)
		s.requestRepo.EXPECT().FindByRequester(ctx, int64(4)).Return(nil, nil)

		got, err := s.uc.GetUserRequests(ctx, 4)
		s.NoError(err)
		s.Empty(got)
	})
}

func (s *RequestUseCaseTestSuite) TestGetAllRequests() {
	ctx := context.Background()

	s.Run("pages through requests of other users", func() {
		views := []*readmodel.RequestView{{ID: 3, Description: "need a saw", RequesterID: 8}}
		s.userRepo.EXPECT().FindByID(ctx, int64(4)).Return(requesterView(4), nil)
		s.requestRepo.EXPECT().FindAllExcluding(ctx, int64(4), int32(20), int32(0)).Return(views, nil)
		s.itemRepo.EXPECT().FindByRequestIDs(ctx, []int64{3}).
			Return(map[int64][]readmodel.RequestItemView{}, nil)

		got, err := s.uc.GetAllRequests(ctx, 4, 0, 20)
		s.NoError(err)
		s.Len(got, 1)
		s.NotNil(got[0].Items)
	})

	s.Run("missing user maps to user not found", func() {
		s.userRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, notFoundErr())

		_, err := s.uc.GetAllRequests(ctx, 99, 0, 20)
		s.ErrorIs(err, usecase.ErrUserNotFound)
	})

	s.Run("invalid pagination is rejected", func() {
		s.userRepo.EXPECT().FindByID(ctx, int64(4)).Return(requesterView(4), nil)

		_, err := s.uc.GetAllRequests(ctx, 4, -1, 20)
		s.ErrorIs(err, usecase.ErrInvalidPagination)
	})
}

func (s *RequestUseCaseTestSuite) TestGetRequest() {
	ctx := context.Background()

	s.Run("success with answering items", func() {
		view := &readmodel.RequestView{ID: 3, Description: "need a saw", RequesterID: 8}
		items := []readmodel.RequestItemView{{ID: 10, Name: "saw", OwnerID: 7}}
		s.requestRepo.EXPECT().FindByID(ctx, int64(3)).Return(view, nil)
		s.itemRepo.EXPECT().FindByRequestID(ctx, int64(3)).Return(items, nil)

		got, err := s.uc.GetRequest(ctx, 3)
		s.NoError(err)
		s.Empty(cmp.Diff(items, got.Items))
	})

	s.Run("nil item slice becomes empty", func() {
		view := &readmodel.RequestView{ID: 3, Description: "need a saw", RequesterID: 8}
		s.requestRepo.EXPECT().FindByID(ctx, int64(3)).Return(view, nil)
		s.itemRepo.EXPECT().FindByRequestID(ctx, int64(3)).Return(nil, nil)

		got, err := s.uc.GetRequest(ctx, 3)
		s.NoError(err)
		s.NotNil(got.Items)
		s.Empty(got.Items)
	})

	s.Run("missing request maps to not found", func() {
		s.requestRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, notFoundErr())

		_, err := s.uc.GetRequest(ctx, 99)
		s.ErrorIs(err, usecase.ErrRequestNotFound)
	})
}
