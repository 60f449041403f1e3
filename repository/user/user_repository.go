package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/user-directory/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserRequest) (*model.UserEntity, error)
	GetByID(ctx context.Context, id int64) (*model.UserEntity, error)
	List(ctx context.Context) ([]model.UserEntity, error)
	ListPaged(ctx context.Context, limit, offset int64) ([]model.UserEntity, error)
	Update(ctx context.Context, id int64, req *model.UserRequest) (*model.UserEntity, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO users (name, email, phone, occupation)
VALUES ($1, $2, $3, $4)
RETURNING id, name, email, phone, occupation, created_at, updated_at`

	getUserByIDQuery = `SELECT id, name, email, phone, occupation, created_at, updated_at
FROM users WHERE id = $1`

	listUsersQuery = `SELECT id, name, email, phone, occupation, created_at, updated_at
FROM users ORDER BY id`

	listUsersPagedQuery = `SELECT id, name, email, phone, occupation, created_at, updated_at
FROM users ORDER BY id LIMIT $1 OFFSET $2`

	updateUserQuery = `UPDATE users
SET name = $1, email = $2, phone = $3, occupation = $4, updated_at = NOW()
WHERE id = $5
RETURNING id, name, email, phone, occupation, created_at, updated_at`

	deleteUserQuery = `DELETE FROM users WHERE id = $1`
)

func (s *SQL) Create(ctx context.Context, req *model.UserRequest) (*model.UserEntity, error) {
	var entity model.UserEntity
	err := s.conn.QueryRowxContext(ctx, insertUserQuery, req.Name, req.Email, req.Phone, req.Occupation).StructScan(&entity)
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetByID(ctx context.Context, id int64) (*model.UserEntity, error) {
	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, getUserByIDQuery, id).StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.UserEntity, error) {
	users := make([]model.UserEntity, 0)
	if err := s.conn.SelectContext(ctx, &users, listUsersQuery); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *SQL) ListPaged(ctx context.Context, limit, offset int64) ([]model.UserEntity, error) {
	// Negative or zero paging values are corrected, not rejected.
	if limit < 1 {
		limit = 1
	}
	if offset < 0 {
		offset = 0
	}

	users := make([]model.UserEntity, 0)
	if err := s.conn.SelectContext(ctx, &users, listUsersPagedQuery, limit, offset); err != nil {
		return nil, err
	}
	return users, nil
}

// Update replaces all business fields and refreshes updated_at. The id and
// created_at are never touched. Returns (nil, nil) when the id does not exist.
func (s *SQL) Update(ctx context.Context, id int64, req *model.UserRequest) (*model.UserEntity, error) {
	var entity model.UserEntity
	err := s.conn.QueryRowxContext(ctx, updateUserQuery, req.Name, req.Email, req.Phone, req.Occupation, id).StructScan(&entity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// Delete returns the number of rows removed (0 or 1). A zero-match delete is
// not an error at this layer.
func (s *SQL) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := s.conn.ExecContext(ctx, deleteUserQuery, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
