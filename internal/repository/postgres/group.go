package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/draganczukp/lldap/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// The administrative bind identity is not a row in the users table; group
// lookups for it answer with this synthetic group instead of querying.
const (
	adminGroupID   int32 = 1
	adminGroupName       = "lldap_admin"
)

const (
	// Left join so groups without members still produce one row (with a NULL
	// member id). Ordering by (display_name, user_id) keeps all rows of a
	// group contiguous, which collectGroups relies on.
	listGroupsQuery = `
SELECT groups.group_id, groups.display_name, memberships.user_id
FROM groups
LEFT JOIN memberships ON groups.group_id = memberships.group_id
ORDER BY groups.display_name ASC, memberships.user_id ASC
`
	selectGroupQuery = "SELECT group_id, display_name FROM groups WHERE group_id = $1"
	// Inner join: a user without memberships yields an empty set, not an error.
	selectUserGroupsQuery = `
SELECT groups.group_id, groups.display_name
FROM groups
INNER JOIN memberships ON groups.group_id = memberships.group_id
WHERE memberships.user_id = $1
ORDER BY groups.group_id ASC
`
	insertGroupQuery           = "INSERT INTO groups(display_name) VALUES ($1) RETURNING group_id"
	deleteGroupMembershipQuery = "DELETE FROM memberships WHERE group_id = $1"
	deleteGroupQuery           = "DELETE FROM groups WHERE group_id = $1"
)

// ListGroups returns all groups with their member lists, ordered by display
// name; members are ordered by user id. Empty groups are included with empty
// member lists.
func (p *Postgres) ListGroups(ctx context.Context) ([]entities.Group, error) {
	rows, err := p.db.Query(ctx, listGroupsQuery)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	groups, err := collectGroups(rows)
	if err != nil {
		return nil, err
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate groups: %w", err)
	}

	return groups, nil
}

// collectGroups folds the ordered flat rows of the group listing into Group
// values. Rows for the same group are consecutive because the query orders by
// the group key first; a NULL member id marks a group with no members and
// must not become a phantom member.
func collectGroups(rows pgx.Rows) ([]entities.Group, error) {
	groups := make([]entities.Group, 0)
	for rows.Next() {
		var (
			groupID     int32
			displayName string
			memberID    *string
		)
		if err := rows.Scan(&groupID, &displayName, &memberID); err != nil {
			return nil, fmt.Errorf("scan group row: %w", err)
		}

		last := len(groups) - 1
		if last < 0 || groups[last].ID != groupID {
			groups = append(groups, entities.Group{
				ID:          groupID,
				DisplayName: displayName,
				Users:       []string{},
			})
			last++
		}
		if memberID != nil && *memberID != "" {
			groups[last].Users = append(groups[last].Users, *memberID)
		}
	}
	return groups, nil
}

// GetGroupDetails fetches a group's id and display name.
func (p *Postgres) GetGroupDetails(ctx context.Context, groupID int32) (*entities.GroupIDAndName, error) {
	var g entities.GroupIDAndName
	err := p.db.QueryRow(ctx, selectGroupQuery, groupID).Scan(&g.GroupID, &g.DisplayName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrGroupNotFound
		}
		return nil, fmt.Errorf("get group: %w", err)
	}
	return &g, nil
}

// GetUserGroups returns the groups a user belongs to. The administrative
// bind identity gets its synthetic group without a storage round trip.
func (p *Postgres) GetUserGroups(ctx context.Context, userID string) ([]entities.GroupIDAndName, error) {
	if userID == p.adminDN {
		return []entities.GroupIDAndName{{GroupID: adminGroupID, DisplayName: adminGroupName}}, nil
	}

	rows, err := p.db.Query(ctx, selectUserGroupsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("get user groups: %w", err)
	}
	defer rows.Close()

	groups := make([]entities.GroupIDAndName, 0)
	for rows.Next() {
		var g entities.GroupIDAndName
		if err := rows.Scan(&g.GroupID, &g.DisplayName); err != nil {
			return nil, fmt.Errorf("scan user group: %w", err)
		}
		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user groups: %w", err)
	}

	return groups, nil
}

// CreateGroup inserts a group and returns its generated id. Display names
// are unique; a duplicate maps to ErrGroupExists.
func (p *Postgres) CreateGroup(ctx context.Context, displayName string) (int32, error) {
	var groupID int32
	if err := p.db.QueryRow(ctx, insertGroupQuery, displayName).Scan(&groupID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, entities.ErrGroupExists
		}
		return 0, fmt.Errorf("insert group: %w", err)
	}

	p.log.Infow("group created", "group_id", groupID, "display_name", displayName)
	return groupID, nil
}

// UpdateGroup applies a partial update; with no fields set it is a no-op.
func (p *Postgres) UpdateGroup(ctx context.Context, req entities.UpdateGroupRequest) error {
	if req.Empty() {
		return nil
	}

	if _, err := p.db.Exec(ctx,
		"UPDATE groups SET display_name = $1 WHERE group_id = $2",
		*req.DisplayName, req.GroupID,
	); err != nil {
		return fmt.Errorf("update group: %w", err)
	}
	return nil
}

// DeleteGroup removes a group and its membership edges in one transaction.
func (p *Postgres) DeleteGroup(ctx context.Context, groupID int32) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin delete group: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, deleteGroupMembershipQuery, groupID); err != nil {
		return fmt.Errorf("delete group memberships: %w", err)
	}
	if _, err := tx.Exec(ctx, deleteGroupQuery, groupID); err != nil {
		return fmt.Errorf("delete group: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete group: %w", err)
	}

	p.log.Infow("group deleted", "group_id", groupID)
	return nil
}
