package sqlite

import (
	"context"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/table"
)

// CreateUser stores a new user
func (s *SQLite) CreateUser(ctx context.Context, user model.User) (int64, error) {
	stmt := table.User.
		INSERT(table.User.Username).
		MODEL(user)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	return result.LastInsertId()
}

// GetUser gets a user matching the where condition
func (s *SQLite) GetUser(ctx context.Context, where sqlite.BoolExpression) (*model.User, error) {
	stmt := table.User.
		SELECT(table.User.AllColumns).
		FROM(table.User).
		WHERE(where)

	var user model.User
	if err := s.query(ctx, stmt, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// ListUsers lists all users by id
func (s *SQLite) ListUsers(ctx context.Context) ([]*model.User, error) {
	stmt := table.User.
		SELECT(table.User.AllColumns).
		FROM(table.User).
		ORDER_BY(table.User.ID.ASC())

	users := make([]*model.User, 0)
	if err := s.query(ctx, stmt, &users); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// DeleteUser removes the user row. Memberships and watch states must already be gone.
func (s *SQLite) DeleteUser(ctx context.Context, id int64) error {
	stmt := table.User.
		DELETE().
		WHERE(table.User.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
