package repository

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentRepository struct {
	db db.DBTX
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: pool}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) (*readmodel.CommentView, error) {
	const query = `
		WITH ins AS (
			INSERT INTO comments (text, item_id, author_id, created)
			VALUES ($1, $2, $3, $4)
			RETURNING id, text, item_id, author_id, created
		)
		SELECT ins.id, ins.text, ins.item_id, u.name, ins.created
		FROM ins
		JOIN users u ON u.id = ins.author_id`

	var view readmodel.CommentView
	err := r.db.QueryRow(ctx, query, c.Text(), c.ItemID(), c.AuthorID(), c.Created()).
		Scan(&view.ID, &view.Text, &view.ItemID, &view.AuthorName, &view.Created)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create comment", err)
	}

	return &view, nil
}

func (r *CommentRepository) FindByItemID(ctx context.Context, itemID int64) ([]readmodel.CommentView, error) {
	const query = `
		SELECT c.id, c.text, c.item_id, u.name, c.created
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = $1
		ORDER BY c.created`

	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find comments by item", err)
	}
	defer rows.Close()

	var result []readmodel.CommentView
	for rows.Next() {
		var view readmodel.CommentView
		if err := rows.Scan(&view.ID, &view.Text, &view.ItemID, &view.AuthorName, &view.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate comment rows", err)
	}

	return result, nil
}

// FindByItemIDs returns comments grouped by item id, for owner listings.
func (r *CommentRepository) FindByItemIDs(ctx context.Context, itemIDs []int64) (map[int64][]readmodel.CommentView, error) {
	const query = `
		SELECT c.id, c.text, c.item_id, u.name, c.created
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = ANY($1)
		ORDER BY c.created`

	rows, err := r.db.Query(ctx, query, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find comments by items", err)
	}
	defer rows.Close()

	result := make(map[int64][]readmodel.CommentView)
	for rows.Next() {
		var view readmodel.CommentView
		if err := rows.Scan(&view.ID, &view.Text, &view.ItemID, &view.AuthorName, &view.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		result[view.ItemID] = append(result[view.ItemID], view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate comment rows", err)
	}

	return result, nil
}
