package repository

import (
	"context"

	"shareit/internal/domain/request"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestRepository struct {
	db db.DBTX
}

func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{db: pool}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.ItemRequest) (*readmodel.RequestView, error) {
	const query = `
		INSERT INTO item_requests (description, requester_id, created)
		VALUES ($1, $2, $3)
		RETURNING id, description, requester_id, created`

	view, err := scanRequestView(r.db.QueryRow(ctx, query, req.Description(), req.RequesterID(), req.Created()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create item request", err)
	}

	return view, nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id int64) (*readmodel.RequestView, error) {
	const query = `
		SELECT id, description, requester_id, created
		FROM item_requests
		WHERE id = $1`

	view, err := scanRequestView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item request by ID", err)
	}

	return view, nil
}

func (r *RequestRepository) FindByRequester(ctx context.Context, requesterID int64) ([]*readmodel.RequestView, error) {
	const query = `
		SELECT id, description, requester_id, created
		FROM item_requests
		WHERE requester_id = $1
		ORDER BY created DESC`

	rows, err := r.db.Query(ctx, query, requesterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find item requests by requester", err)
	}
	defer rows.Close()

	return collectRequestViews(rows)
}

// FindAllExcluding pages through requests posted by everyone except userID,
// newest first.
func (r *RequestRepository) FindAllExcluding(ctx context.Context, userID int64, limit, offset int32) ([]*readmodel.RequestView, error) {
	const query = `
		SELECT id, description, requester_id, created
		FROM item_requests
		WHERE requester_id <> $1
		ORDER BY created DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item requests", err)
	}
	defer rows.Close()

	return collectRequestViews(rows)
}

func scanRequestView(row pgx.Row) (*readmodel.RequestView, error) {
	var view readmodel.RequestView
	if err := row.Scan(&view.ID, &view.Description, &view.RequesterID, &view.Created); err != nil {
		return nil, err
	}
	return &view, nil
}

func collectRequestViews(rows pgx.Rows) ([]*readmodel.RequestView, error) {
	var result []*readmodel.RequestView
	for rows.Next() {
		view, err := scanRequestView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item request row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item request rows", err)
	}
	return result, nil
}
