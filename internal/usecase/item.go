package usecase

import (
	"context"
	"errors"
	"strings"

	"shareit/internal/domain/item"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/readmodel"
)

var ErrItemNotFound = errors.New("item not found")

type ItemRepository interface {
	Create(ctx context.Context, it *item.Item) (*readmodel.ItemView, error)
	Update(ctx context.Context, id int64, name, description *string, available *bool) (*readmodel.ItemView, error)
	FindByID(ctx context.Context, id int64) (*readmodel.ItemView, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]*readmodel.ItemView, error)
	Search(ctx context.Context, text string) ([]*readmodel.ItemView, error)
	Delete(ctx context.Context, id int64) error
	FindByRequestID(ctx context.Context, requestID int64) ([]readmodel.RequestItemView, error)
	FindByRequestIDs(ctx context.Context, requestIDs []int64) (map[int64][]readmodel.RequestItemView, error)
}

type ItemUseCase interface {
	CreateItem(ctx context.Context, ownerID int64, req reqdto.CreateItemRequest) (*readmodel.ItemView, error)
	UpdateItem(ctx context.Context, userID, itemID int64, req reqdto.UpdateItemRequest) (*readmodel.ItemView, error)
	GetItem(ctx context.Context, userID, itemID int64) (*readmodel.ItemDetailView, error)
	ListOwnerItems(ctx context.Context, ownerID int64) ([]*readmodel.ItemDetailView, error)
	SearchItems(ctx context.Context, text string) ([]*readmodel.ItemView, error)
	DeleteItem(ctx context.Context, itemID int64) error
}

type itemUseCaseImpl struct {
	itemRepo    ItemRepository
	userRepo    UserRepository
	requestRepo RequestRepository
	bookingRepo BookingRepository
	commentRepo CommentRepository
	clock       clock.Clock
}

func NewItemUseCase(
	itemRepo ItemRepository,
	userRepo UserRepository,
	requestRepo RequestRepository,
	bookingRepo BookingRepository,
	commentRepo CommentRepository,
	clock clock.Clock,
) ItemUseCase {
	return &itemUseCaseImpl{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		requestRepo: requestRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
		clock:       clock,
	}
}

func (u *itemUseCaseImpl) CreateItem(ctx context.Context, ownerID int64, req reqdto.CreateItemRequest) (*readmodel.ItemView, error) {
	if _, err := u.userRepo.FindByID(ctx, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, errs.Wrap(err, "failed to verify item owner")
	}
	if req.RequestID != nil {
		if _, err := u.requestRepo.FindByID(ctx, *req.RequestID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrRequestNotFound)
			}
			return nil, errs.Wrap(err, "failed to verify answered request")
		}
	}

	entity, err := item.NewItem(ownerID, req.Name, req.Description, *req.Available, req.RequestID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	view, err := u.itemRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create item")
	}

	return view, nil
}

func (u *itemUseCaseImpl) UpdateItem(ctx context.Context, userID, itemID int64, req reqdto.UpdateItemRequest) (*readmodel.ItemView, error) {
	existing, err := u.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrItemNotFound)
		}
		return nil, errs.Wrap(err, "failed to find item")
	}
	if !itemEntityOf(existing).IsOwnedBy(userID) {
		return nil, errs.Mark(errs.New("only the owner may edit an item"), ErrForbidden)
	}

	name, description := req.Name, req.Description
	if name != nil && strings.TrimSpace(*name) == "" {
		return nil, errs.Mark(item.ErrEmptyName, ErrDomainValidationFailed)
	}
	if description != nil && strings.TrimSpace(*description) == "" {
		return nil, errs.Mark(item.ErrEmptyDescription, ErrDomainValidationFailed)
	}

	view, err := u.itemRepo.Update(ctx, itemID, name, description, req.Available)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrItemNotFound)
		}
		return nil, errs.Wrap(err, "failed to update item")
	}

	return view, nil
}

// GetItem returns the item with its comments. Last and next bookings are
// visible to the owner only.
func (u *itemUseCaseImpl) GetItem(ctx context.Context, userID, itemID int64) (*readmodel.ItemDetailView, error) {
	view, err := u.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrItemNotFound)
		}
		return nil, errs.Wrap(err, "failed to find item")
	}

	detail := &readmodel.ItemDetailView{ItemView: *view}

	comments, err := u.commentRepo.FindByItemID(ctx, itemID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load item comments")
	}
	detail.Comments = comments

	if itemEntityOf(view).IsOwnedBy(userID) {
		if err := u.attachNeighborBookings(ctx, detail); err != nil {
			return nil, err
		}
	}

	return detail, nil
}

func (u *itemUseCaseImpl) ListOwnerItems(ctx context.Context, ownerID int64) ([]*readmodel.ItemDetailView, error) {
	if _, err := u.userRepo.FindByID(ctx, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, errs.Wrap(err, "failed to verify owner")
	}

	views, err := u.itemRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list owner items")
	}

	itemIDs := make([]int64, 0, len(views))
	for _, v := range views {
		itemIDs = append(itemIDs, v.ID)
	}

	commentsByItem := map[int64][]readmodel.CommentView{}
	if len(itemIDs) > 0 {
		commentsByItem, err = u.commentRepo.FindByItemIDs(ctx, itemIDs)
		if err != nil {
			return nil, errs.Wrap(err, "failed to load item comments")
		}
	}

	result := make([]*readmodel.ItemDetailView, 0, len(views))
	for _, v := range views {
		detail := &readmodel.ItemDetailView{
			ItemView: *v,
			Comments: commentsByItem[v.ID],
		}
		if err := u.attachNeighborBookings(ctx, detail); err != nil {
			return nil, err
		}
		result = append(result, detail)
	}

	return result, nil
}

func (u *itemUseCaseImpl) SearchItems(ctx context.Context, text string) ([]*readmodel.ItemView, error) {
	if strings.TrimSpace(text) == "" {
		return []*readmodel.ItemView{}, nil
	}

	views, err := u.itemRepo.Search(ctx, text)
	if err != nil {
		return nil, errs.Wrap(err, "failed to search items")
	}
	return views, nil
}

// DeleteItem is idempotent and unrestricted, matching the open admin-style
// surface of the user endpoints.
func (u *itemUseCaseImpl) DeleteItem(ctx context.Context, itemID int64) error {
	if err := u.itemRepo.Delete(ctx, itemID); err != nil {
		return errs.Wrap(err, "failed to delete item")
	}
	return nil
}

// itemEntityOf rehydrates the domain entity behind a stored item view,
// mirroring how ResolveBooking rebuilds a booking before applying rules.
func itemEntityOf(v *readmodel.ItemView) *item.Item {
	return item.ReconstructItem(v.ID, v.Name, v.Description, v.Available, v.OwnerID, v.RequestID)
}

func (u *itemUseCaseImpl) attachNeighborBookings(ctx context.Context, detail *readmodel.ItemDetailView) error {
	now := u.clock.Now()

	last, err := u.bookingRepo.FindLastForItem(ctx, detail.ID, now)
	if err != nil {
		return errs.Wrap(err, "failed to load last booking")
	}
	next, err := u.bookingRepo.FindNextForItem(ctx, detail.ID, now)
	if err != nil {
		return errs.Wrap(err, "failed to load next booking")
	}

	detail.LastBooking = last
	detail.NextBooking = next
	return nil
}
