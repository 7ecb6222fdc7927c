package usecase

import (
	"context"
	"errors"

	"shareit/internal/domain/comment"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/readmodel"
)

var ErrNoFinishedBooking = errors.New("user has no finished booking of this item")

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (*readmodel.CommentView, error)
	FindByItemID(ctx context.Context, itemID int64) ([]readmodel.CommentView, error)
	FindByItemIDs(ctx context.Context, itemIDs []int64) (map[int64][]readmodel.CommentView, error)
}

type CommentUseCase interface {
	AddComment(ctx context.Context, authorID, itemID int64, req reqdto.CreateCommentRequest) (*readmodel.CommentView, error)
}

type commentUseCaseImpl struct {
	commentRepo CommentRepository
	bookingRepo BookingRepository
	itemRepo    ItemRepository
	userRepo    UserRepository
	clock       clock.Clock
}

func NewCommentUseCase(
	commentRepo CommentRepository,
	bookingRepo BookingRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	clock clock.Clock,
) CommentUseCase {
	return &commentUseCaseImpl{
		commentRepo: commentRepo,
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		clock:       clock,
	}
}

// AddComment requires an APPROVED booking of the item that already ended.
func (u *commentUseCaseImpl) AddComment(ctx context.Context, authorID, itemID int64, req reqdto.CreateCommentRequest) (*readmodel.CommentView, error) {
	if _, err := u.userRepo.FindByID(ctx, authorID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, errs.Wrap(err, "failed to verify author")
	}
	if _, err := u.itemRepo.FindByID(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrItemNotFound)
		}
		return nil, errs.Wrap(err, "failed to find commented item")
	}

	now := u.clock.Now()
	eligible, err := u.bookingRepo.HasFinishedApproved(ctx, authorID, itemID, now)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check comment eligibility")
	}
	if !eligible {
		return nil, errs.Mark(errs.New("no finished booking of this item"), ErrNoFinishedBooking)
	}

	entity, err := comment.NewComment(itemID, authorID, req.Text, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	view, err := u.commentRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create comment")
	}

	return view, nil
}
