package usecase

import (
	"context"
	"errors"
	"time"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/readmodel"
	"shareit/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrItemUnavailable   = errors.New("item is not available for booking")
	ErrBookingOverlap    = errors.New("requested slot overlaps an existing booking")
	ErrInvalidPagination = errors.New("invalid pagination parameters")
)

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (int64, error)
	ExistsOverlapping(ctx context.Context, tx db.DBTX, itemID int64, start, end time.Time) (bool, error)
	FindByID(ctx context.Context, id int64) (*readmodel.BookingView, error)
	FindItemOwner(ctx context.Context, bookingID int64) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status booking.Status) (*readmodel.BookingView, error)
	FindByBooker(ctx context.Context, bookerID int64, filter booking.StateFilter, now time.Time, limit, offset int32) ([]*readmodel.BookingView, error)
	FindByOwner(ctx context.Context, ownerID int64, filter booking.StateFilter, now time.Time, limit, offset int32) ([]*readmodel.BookingView, error)
	FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*readmodel.BookingRef, error)
	FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*readmodel.BookingRef, error)
	HasFinishedApproved(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, bookerID int64, req reqdto.CreateBookingRequest) (*readmodel.BookingView, error)
	ResolveBooking(ctx context.Context, ownerID, bookingID int64, approved bool) (*readmodel.BookingView, error)
	GetBooking(ctx context.Context, userID, bookingID int64) (*readmodel.BookingView, error)
	ListBookerBookings(ctx context.Context, bookerID int64, state string, from, size int32) ([]*readmodel.BookingView, error)
	ListOwnerBookings(ctx context.Context, ownerID int64, state string, from, size int32) ([]*readmodel.BookingView, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	itemRepo    ItemRepository
	userRepo    UserRepository
	pool        *pgxpool.Pool
	clock       clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	pool *pgxpool.Pool,
	clock clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		pool:        pool,
		clock:       clock,
	}
}

func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, bookerID int64, req reqdto.CreateBookingRequest) (*readmodel.BookingView, error) {
	if _, err := u.userRepo.FindByID(ctx, bookerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, errs.Wrap(err, "failed to verify booker")
	}

	itemView, err := u.itemRepo.FindByID(ctx, req.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrItemNotFound)
		}
		return nil, errs.Wrap(err, "failed to find booked item")
	}
	if itemEntityOf(itemView).IsOwnedBy(bookerID) {
		// Hidden from the owner-as-booker rather than rejected outright.
		return nil, errs.Mark(booking.ErrOwnBooking, ErrBookingNotFound)
	}
	if !itemView.Available {
		return nil, errs.Mark(errs.New("item is unavailable"), ErrItemUnavailable)
	}

	slot, err := booking.NewTimeRange(req.Start, req.End)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	entity := booking.NewBooking(req.ItemID, bookerID, slot)

	// The overlap check and insert share one transaction, retried on
	// serialization failures; the exclusion constraint turns any lost
	// race into KindConflict.
	id, err := shared.WithDefaultRetry(ctx, u.pool, func(tx db.DBTX) (int64, error) {
		taken, err := u.bookingRepo.ExistsOverlapping(ctx, tx, req.ItemID, slot.Start(), slot.End())
		if err != nil {
			return 0, err
		}
		if taken {
			return 0, errs.Mark(errs.New("slot already booked"), ErrBookingOverlap)
		}
		return u.bookingRepo.Create(ctx, tx, entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, ErrBookingOverlap)
		}
		if errors.Is(err, ErrBookingOverlap) {
			return nil, err
		}
		return nil, errs.Wrap(err, "failed to create booking")
	}

	view, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load created booking")
	}
	return view, nil
}

func (u *bookingUseCaseImpl) ResolveBooking(ctx context.Context, ownerID, bookingID int64, approved bool) (*readmodel.BookingView, error) {
	view, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	itemOwner, err := u.bookingRepo.FindItemOwner(ctx, bookingID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find booking item owner")
	}
	if itemOwner != ownerID {
		return nil, errs.Mark(errs.New("only the item owner may resolve a booking"), ErrForbidden)
	}

	slot, err := booking.NewTimeRange(view.Start, view.End)
	if err != nil {
		return nil, errs.Wrap(err, "stored booking has an invalid slot")
	}
	entity := booking.ReconstructBooking(view.ID, view.Item.ID, view.Booker.ID, slot, booking.Status(view.Status))
	if err := entity.Resolve(approved); err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	updated, err := u.bookingRepo.UpdateStatus(ctx, bookingID, entity.Status())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Wrap(err, "failed to update booking status")
	}

	return updated, nil
}

// GetBooking is visible to the booker and the item owner; anyone else sees
// not-found.
func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, userID, bookingID int64) (*readmodel.BookingView, error) {
	view, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	if view.Booker.ID != userID {
		itemOwner, err := u.bookingRepo.FindItemOwner(ctx, bookingID)
		if err != nil {
			return nil, errs.Wrap(err, "failed to find booking item owner")
		}
		if itemOwner != userID {
			return nil, errs.Mark(errs.New("booking is not visible to this user"), ErrBookingNotFound)
		}
	}

	return view, nil
}

func (u *bookingUseCaseImpl) ListBookerBookings(ctx context.Context, bookerID int64, state string, from, size int32) ([]*readmodel.BookingView, error) {
	filter, err := u.prepareListing(ctx, bookerID, state, from, size)
	if err != nil {
		return nil, err
	}

	views, err := u.bookingRepo.FindByBooker(ctx, bookerID, filter, u.clock.Now(), size, from)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list booker bookings")
	}
	return views, nil
}

func (u *bookingUseCaseImpl) ListOwnerBookings(ctx context.Context, ownerID int64, state string, from, size int32) ([]*readmodel.BookingView, error) {
	filter, err := u.prepareListing(ctx, ownerID, state, from, size)
	if err != nil {
		return nil, err
	}

	views, err := u.bookingRepo.FindByOwner(ctx, ownerID, filter, u.clock.Now(), size, from)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list owner bookings")
	}
	return views, nil
}

func (u *bookingUseCaseImpl) prepareListing(ctx context.Context, userID int64, state string, from, size int32) (booking.StateFilter, error) {
	if _, err := u.userRepo.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", errs.Mark(err, ErrUserNotFound)
		}
		return "", errs.Wrap(err, "failed to verify user")
	}

	filter, err := booking.ParseStateFilter(state)
	if err != nil {
		return "", err
	}
	if err := ValidatePagination(from, size); err != nil {
		return "", err
	}

	return filter, nil
}

// ValidatePagination enforces a non-negative offset and a positive page size.
func ValidatePagination(from, size int32) error {
	if from < 0 || size < 1 {
		return errs.Mark(errs.Newf("invalid pagination: from=%d size=%d", from, size), ErrInvalidPagination)
	}
	return nil
}
