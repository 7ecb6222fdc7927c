package repository

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*readmodel.UserView, error) {
	const query = `
		INSERT INTO users (name, email)
		VALUES ($1, $2)
		RETURNING id, name, email`

	var view readmodel.UserView
	err := r.db.QueryRow(ctx, query, u.Name(), u.Email()).
		Scan(&view.ID, &view.Name, &view.Email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create user", err)
	}

	return &view, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, name, email *string) (*readmodel.UserView, error) {
	const query = `
		UPDATE users
		SET name = COALESCE($2, name), email = COALESCE($3, email)
		WHERE id = $1
		RETURNING id, name, email`

	var view readmodel.UserView
	err := r.db.QueryRow(ctx, query, id, pgconv.StringPtrToPgtype(name), pgconv.StringPtrToPgtype(email)).
		Scan(&view.ID, &view.Name, &view.Email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update user", err)
	}

	return &view, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*readmodel.UserView, error) {
	const query = `SELECT id, name, email FROM users WHERE id = $1`

	var view readmodel.UserView
	err := r.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.Name, &view.Email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &view, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*readmodel.UserView, error) {
	const query = `SELECT id, name, email FROM users ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var result []*readmodel.UserView
	for rows.Next() {
		var view readmodel.UserView
		if err := rows.Scan(&view.ID, &view.Name, &view.Email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}

	return result, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	return nil
}
