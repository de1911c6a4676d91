// Package entities contains core business entities.
package entities

// Group aggregates member user ids under a display name. Users holds the
// member ids sorted ascending; an empty group has an empty (non-nil) slice.
type Group struct {
	ID          int32
	DisplayName string
	Users       []string
}

// GroupIDAndName is a lightweight projection used where only group identity
// and label are needed, e.g. listing the groups a user belongs to.
type GroupIDAndName struct {
	GroupID     int32
	DisplayName string
}

// UpdateGroupRequest is a partial update for a group. The group id is never
// updatable.
type UpdateGroupRequest struct {
	GroupID     int32
	DisplayName *string
}

// Empty reports whether the request carries no fields to update.
func (r UpdateGroupRequest) Empty() bool {
	return r.DisplayName == nil
}
