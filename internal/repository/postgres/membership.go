package postgres

import (
	"context"
	"fmt"
)

const (
	insertMembershipQuery = "INSERT INTO memberships(user_id, group_id) VALUES ($1, $2)"
	deleteMembershipQuery = "DELETE FROM memberships WHERE user_id = $1 AND group_id = $2"
)

// AddUserToGroup inserts a membership edge. Both endpoints must exist;
// violating that is an integrity failure surfaced as a storage error.
func (p *Postgres) AddUserToGroup(ctx context.Context, userID string, groupID int32) error {
	if _, err := p.db.Exec(ctx, insertMembershipQuery, userID, groupID); err != nil {
		return fmt.Errorf("insert membership: %w", err)
	}

	p.log.Infow("membership added", "user_id", userID, "group_id", groupID)
	return nil
}

// RemoveUserFromGroup deletes a membership edge. Removing an absent edge is
// not an error.
func (p *Postgres) RemoveUserFromGroup(ctx context.Context, userID string, groupID int32) error {
	if _, err := p.db.Exec(ctx, deleteMembershipQuery, userID, groupID); err != nil {
		return fmt.Errorf("delete membership: %w", err)
	}

	p.log.Infow("membership removed", "user_id", userID, "group_id", groupID)
	return nil
}
