package sqlite

import (
	"context"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/showtrack/pkg/storage"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/table"
)

// CreateMembership stores a membership unless the user already has one for the show
func (s *SQLite) CreateMembership(ctx context.Context, membership model.ShowMembership) (bool, error) {
	stmt := table.ShowMembership.
		INSERT(table.ShowMembership.UserID, table.ShowMembership.ShowID, table.ShowMembership.Status).
		MODEL(membership).
		ON_CONFLICT(table.ShowMembership.UserID, table.ShowMembership.ShowID).
		DO_NOTHING()

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return false, fmt.Errorf("failed to create membership: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

// GetMembership gets the membership of a user for a show
func (s *SQLite) GetMembership(ctx context.Context, userID, showID int64) (*storage.Membership, error) {
	stmt := table.ShowMembership.
		SELECT(table.ShowMembership.AllColumns).
		FROM(table.ShowMembership).
		WHERE(
			table.ShowMembership.UserID.EQ(sqlite.Int64(userID)).
				AND(table.ShowMembership.ShowID.EQ(sqlite.Int64(showID))),
		)

	var membership storage.Membership
	if err := s.query(ctx, stmt, &membership); err != nil {
		return nil, err
	}

	return &membership, nil
}

// ListMemberships lists memberships with their show
func (s *SQLite) ListMemberships(ctx context.Context, where ...sqlite.BoolExpression) ([]*storage.Membership, error) {
	stmt := sqlite.
		SELECT(
			table.ShowMembership.AllColumns,
			table.Show.AllColumns,
		).
		FROM(
			table.ShowMembership.
				INNER_JOIN(table.Show, table.Show.ID.EQ(table.ShowMembership.ShowID)),
		)

	if len(where) > 0 {
		stmt = stmt.WHERE(sqlite.AND(where...))
	}
	stmt = stmt.ORDER_BY(table.ShowMembership.ID.ASC())

	memberships := make([]*storage.Membership, 0)
	if err := s.query(ctx, stmt, &memberships); err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	return memberships, nil
}

// UpdateMembershipStatus sets the status of a membership by id
func (s *SQLite) UpdateMembershipStatus(ctx context.Context, id int64, status storage.MembershipStatus) error {
	stmt := table.ShowMembership.
		UPDATE().
		SET(
			table.ShowMembership.Status.SET(sqlite.String(string(status))),
			table.ShowMembership.UpdatedAt.SET(sqlite.CURRENT_TIMESTAMP()),
		).
		WHERE(table.ShowMembership.ID.EQ(sqlite.Int64(id)))

	result, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update membership status: %w", err)
	}

	if n, _ := result.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// DeleteMemberships removes memberships matching the where condition and
// returns how many were removed
func (s *SQLite) DeleteMemberships(ctx context.Context, where sqlite.BoolExpression) (int64, error) {
	stmt := table.ShowMembership.
		DELETE().
		WHERE(where)

	result, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to delete memberships: %w", err)
	}

	return result.RowsAffected()
}
