package repository

import (
	"context"
	"fmt"
	"time"

	domain "shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: pool}
}

const bookingSelect = `
	SELECT b.id, b.start_date, b.end_date, b.status,
	       i.id, i.name,
	       u.id, u.name
	FROM bookings b
	JOIN items i ON i.id = b.item_id
	JOIN users u ON u.id = b.booker_id`

// Create inserts inside the caller's transaction so the overlap check and the
// insert see the same snapshot. The exclusion constraint reports any race as
// KindConflict.
func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *domain.Booking) (int64, error) {
	const query = `
		INSERT INTO bookings (start_date, end_date, item_id, booker_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := tx.QueryRow(ctx, query,
		b.Slot().Start(), b.Slot().End(), b.ItemID(), b.BookerID(), b.Status().String()).
		Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

// ExistsOverlapping reports whether any booking for the item intersects
// [start, end), regardless of status.
func (r *BookingRepository) ExistsOverlapping(ctx context.Context, tx db.DBTX, itemID int64, start, end time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE item_id = $1 AND start_date < $3 AND end_date > $2
		)`

	var exists bool
	if err := tx.QueryRow(ctx, query, itemID, start, end).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check overlapping bookings", err)
	}

	return exists, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*readmodel.BookingView, error) {
	query := bookingSelect + ` WHERE b.id = $1`

	view, err := scanBookingView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return view, nil
}

// FindItemOwner returns the owner of the booked item, needed for approval checks.
func (r *BookingRepository) FindItemOwner(ctx context.Context, bookingID int64) (int64, error) {
	const query = `
		SELECT i.owner_id
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		WHERE b.id = $1`

	var ownerID int64
	if err := r.db.QueryRow(ctx, query, bookingID).Scan(&ownerID); err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to find booking item owner", err)
	}

	return ownerID, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) (*readmodel.BookingView, error) {
	const query = `UPDATE bookings SET status = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}

	return r.FindByID(ctx, id)
}

// FindByBooker lists the booker's bookings scoped by the state filter,
// newest start first.
func (r *BookingRepository) FindByBooker(ctx context.Context, bookerID int64, filter domain.StateFilter, now time.Time, limit, offset int32) ([]*readmodel.BookingView, error) {
	return r.findScoped(ctx, `b.booker_id = $1`, bookerID, filter, now, limit, offset)
}

// FindByOwner lists bookings of all items the owner shares, newest start first.
func (r *BookingRepository) FindByOwner(ctx context.Context, ownerID int64, filter domain.StateFilter, now time.Time, limit, offset int32) ([]*readmodel.BookingView, error) {
	return r.findScoped(ctx, `i.owner_id = $1`, ownerID, filter, now, limit, offset)
}

// Each state filter maps to its own predicate, dispatched here rather than
// through polymorphic query objects.
func stateCondition(filter domain.StateFilter) (cond string, withNow bool) {
	switch filter {
	case domain.FilterCurrent:
		return ` AND b.start_date <= $2 AND b.end_date > $2`, true
	case domain.FilterPast:
		return ` AND b.end_date < $2`, true
	case domain.FilterFuture:
		return ` AND b.start_date > $2`, true
	case domain.FilterWaiting:
		return ` AND b.status = 'WAITING' AND b.start_date > $2`, true
	case domain.FilterRejected:
		return ` AND b.status = 'REJECTED'`, false
	default: // FilterAll
		return ``, false
	}
}

func (r *BookingRepository) findScoped(ctx context.Context, scope string, scopeID int64, filter domain.StateFilter, now time.Time, limit, offset int32) ([]*readmodel.BookingView, error) {
	cond, withNow := stateCondition(filter)

	args := []any{scopeID}
	next := 2
	if withNow {
		args = append(args, now)
		next = 3
	}
	query := bookingSelect + ` WHERE ` + scope + cond +
		fmt.Sprintf(` ORDER BY b.start_date DESC LIMIT $%d OFFSET $%d`, next, next+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*readmodel.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return result, nil
}

// FindLastForItem returns the latest APPROVED booking started at or before
// now, or nil when the item has none.
func (r *BookingRepository) FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*readmodel.BookingRef, error) {
	const query = `
		SELECT id, booker_id, start_date, end_date
		FROM bookings
		WHERE item_id = $1 AND status = 'APPROVED' AND start_date <= $2
		ORDER BY start_date DESC
		LIMIT 1`

	return r.findBookingRef(ctx, query, itemID, now)
}

// FindNextForItem returns the earliest APPROVED booking starting after now,
// or nil when the item has none.
func (r *BookingRepository) FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*readmodel.BookingRef, error) {
	const query = `
		SELECT id, booker_id, start_date, end_date
		FROM bookings
		WHERE item_id = $1 AND status = 'APPROVED' AND start_date > $2
		ORDER BY start_date ASC
		LIMIT 1`

	return r.findBookingRef(ctx, query, itemID, now)
}

func (r *BookingRepository) findBookingRef(ctx context.Context, query string, itemID int64, now time.Time) (*readmodel.BookingRef, error) {
	var ref readmodel.BookingRef
	err := r.db.QueryRow(ctx, query, itemID, now).Scan(&ref.ID, &ref.BookerID, &ref.Start, &ref.End)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find neighbor booking", err)
	}

	return &ref, nil
}

// HasFinishedApproved reports whether the user has an APPROVED booking of the
// item that ended before now (the comment eligibility rule).
func (r *BookingRepository) HasFinishedApproved(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE booker_id = $1 AND item_id = $2 AND status = 'APPROVED' AND end_date < $3
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, bookerID, itemID, now).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check finished bookings", err)
	}

	return exists, nil
}

func scanBookingView(row pgx.Row) (*readmodel.BookingView, error) {
	var view readmodel.BookingView
	err := row.Scan(
		&view.ID, &view.Start, &view.End, &view.Status,
		&view.Item.ID, &view.Item.Name,
		&view.Booker.ID, &view.Booker.Name,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
