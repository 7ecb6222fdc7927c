package repository

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemRepository struct {
	db db.DBTX
}

func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: pool}
}

const itemColumns = `id, name, description, available, owner_id, request_id`

func (r *ItemRepository) Create(ctx context.Context, it *item.Item) (*readmodel.ItemView, error) {
	const query = `
		INSERT INTO items (name, description, available, owner_id, request_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + itemColumns

	row := r.db.QueryRow(ctx, query,
		it.Name(), it.Description(), it.Available(), it.OwnerID(), pgconv.Int64PtrToPgtype(it.RequestID()))

	view, err := scanItemView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create item", err)
	}

	return view, nil
}

func (r *ItemRepository) Update(ctx context.Context, id int64, name, description *string, available *bool) (*readmodel.ItemView, error) {
	const query = `
		UPDATE items
		SET name = COALESCE($2, name),
		    description = COALESCE($3, description),
		    available = COALESCE($4, available)
		WHERE id = $1
		RETURNING ` + itemColumns

	var avail pgtype.Bool
	if available != nil {
		avail = pgtype.Bool{Bool: *available, Valid: true}
	}

	row := r.db.QueryRow(ctx, query,
		id, pgconv.StringPtrToPgtype(name), pgconv.StringPtrToPgtype(description), avail)

	view, err := scanItemView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update item", err)
	}

	return view, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*readmodel.ItemView, error) {
	const query = `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	view, err := scanItemView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}

	return view, nil
}

func (r *ItemRepository) FindByOwner(ctx context.Context, ownerID int64) ([]*readmodel.ItemView, error) {
	const query = `SELECT ` + itemColumns + ` FROM items WHERE owner_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find items by owner", err)
	}
	defer rows.Close()

	return collectItemViews(rows)
}

// Search matches available items whose name or description contains the text,
// case-insensitively. Blank text is handled by the usecase, never here.
func (r *ItemRepository) Search(ctx context.Context, text string) ([]*readmodel.ItemView, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE available
		  AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, text)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	defer rows.Close()

	return collectItemViews(rows)
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM items WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	return nil
}

func (r *ItemRepository) FindByRequestID(ctx context.Context, requestID int64) ([]readmodel.RequestItemView, error) {
	const query = `SELECT id, name, owner_id FROM items WHERE request_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find items by request ID", err)
	}
	defer rows.Close()

	var result []readmodel.RequestItemView
	for rows.Next() {
		var v readmodel.RequestItemView
		if err := rows.Scan(&v.ID, &v.Name, &v.OwnerID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request item row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate request item rows", err)
	}

	return result, nil
}

// FindByRequestIDs returns answering items grouped by request id.
func (r *ItemRepository) FindByRequestIDs(ctx context.Context, requestIDs []int64) (map[int64][]readmodel.RequestItemView, error) {
	const query = `SELECT id, name, owner_id, request_id FROM items WHERE request_id = ANY($1) ORDER BY id`

	rows, err := r.db.Query(ctx, query, requestIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find items by request IDs", err)
	}
	defer rows.Close()

	result := make(map[int64][]readmodel.RequestItemView)
	for rows.Next() {
		var (
			v         readmodel.RequestItemView
			requestID int64
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.OwnerID, &requestID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request item row", err)
		}
		result[requestID] = append(result[requestID], v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate request item rows", err)
	}

	return result, nil
}

func scanItemView(row pgx.Row) (*readmodel.ItemView, error) {
	var (
		view      readmodel.ItemView
		requestID pgtype.Int8
	)
	if err := row.Scan(&view.ID, &view.Name, &view.Description, &view.Available, &view.OwnerID, &requestID); err != nil {
		return nil, err
	}
	view.RequestID = pgconv.Int64PtrFromPgtype(requestID)
	return &view, nil
}

func collectItemViews(rows pgx.Rows) ([]*readmodel.ItemView, error) {
	var result []*readmodel.ItemView
	for rows.Next() {
		var (
			view      readmodel.ItemView
			requestID pgtype.Int8
		)
		if err := rows.Scan(&view.ID, &view.Name, &view.Description, &view.Available, &view.OwnerID, &requestID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		view.RequestID = pgconv.Int64PtrFromPgtype(requestID)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item rows", err)
	}
	return result, nil
}
