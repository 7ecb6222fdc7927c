package usecase

import (
	"context"
	"errors"

	"shareit/internal/domain/request"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/readmodel"
)

var ErrRequestNotFound = errors.New("item request not found")

type RequestRepository interface {
	Create(ctx context.Context, req *request.ItemRequest) (*readmodel.RequestView, error)
	FindByID(ctx context.Context, id int64) (*readmodel.RequestView, error)
	FindByRequester(ctx context.Context, requesterID int64) ([]*readmodel.RequestView, error)
	FindAllExcluding(ctx context.Context, userID int64, limit, offset int32) ([]*readmodel.RequestView, error)
}

type RequestUseCase interface {
	CreateRequest(ctx context.Context, requesterID int64, req reqdto.CreateItemRequestRequest) (*readmodel.RequestView, error)
	GetUserRequests(ctx context.Context, requesterID int64) ([]*readmodel.RequestView, error)
	GetAllRequests(ctx context.Context, userID int64, from, size int32) ([]*readmodel.RequestView, error)
	GetRequest(ctx context.Context, requestID int64) (*readmodel.RequestView, error)
}

type requestUseCaseImpl struct {
	requestRepo RequestRepository
	itemRepo    ItemRepository
	userRepo    UserRepository
	clock       clock.Clock
}

func NewRequestUseCase(
	requestRepo RequestRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	clock clock.Clock,
) RequestUseCase {
	return &requestUseCaseImpl{
		requestRepo: requestRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		clock:       clock,
	}
}

func (u *requestUseCaseImpl) CreateRequest(ctx context.Context, requesterID int64, req reqdto.CreateItemRequestRequest) (*readmodel.RequestView, error) {
	if _, err := u.userRepo.FindByID(ctx, requesterID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, errs.Wrap(err, "failed to verify requester")
	}

	entity, err := request.NewItemRequest(requesterID, req.Description, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	view, err := u.requestRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create item request")
	}
	view.Items = []readmodel.RequestItemView{}

	return view, nil
}

func (u *requestUseCaseImpl) GetUserRequests(ctx context.Context, requesterID int64) ([]*readmodel.RequestView, error) {
	if _, err := u.userRepo.FindByID(ctx, requesterID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, errs.Wrap(err, "failed to verify requester")
	}

	views, err := u.requestRepo.FindByRequester(ctx, requesterID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list own item requests")
	}

	if err := u.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

// GetAllRequests pages through requests posted by other users, newest first.
func (u *requestUseCaseImpl) GetAllRequests(ctx context.Context, userID int64, from, size int32) ([]*readmodel.RequestView, error) {
	if _, err := u.userRepo.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, errs.Wrap(err, "failed to verify user")
	}
	if err := ValidatePagination(from, size); err != nil {
		return nil, err
	}

	views, err := u.requestRepo.FindAllExcluding(ctx, userID, size, from)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list item requests")
	}

	if err := u.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (u *requestUseCaseImpl) GetRequest(ctx context.Context, requestID int64) (*readmodel.RequestView, error) {
	view, err := u.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRequestNotFound)
		}
		return nil, errs.Wrap(err, "failed to find item request")
	}

	items, err := u.itemRepo.FindByRequestID(ctx, requestID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load answering items")
	}
	if items == nil {
		items = []readmodel.RequestItemView{}
	}
	view.Items = items

	return view, nil
}

func (u *requestUseCaseImpl) attachItems(ctx context.Context, views []*readmodel.RequestView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}

	itemsByRequest, err := u.itemRepo.FindByRequestIDs(ctx, ids)
	if err != nil {
		return errs.Wrap(err, "failed to load answering items")
	}

	for _, v := range views {
		items := itemsByRequest[v.ID]
		if items == nil {
			items = []readmodel.RequestItemView{}
		}
		v.Items = items
	}
	return nil
}
