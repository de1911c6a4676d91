// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"fmt"

	"github.com/draganczukp/lldap/internal/api"
	"github.com/draganczukp/lldap/internal/entities"
)

// FromAPIFilter decodes a JSON filter tree into the domain filter sum type.
// A nil input means "no filter". Unknown ops are rejected.
func FromAPIFilter(src *api.Filter) (entities.Filter, error) {
	if src == nil {
		return nil, nil
	}

	switch src.Op {
	case api.FilterOpAnd:
		children, err := fromAPIFilterList(src.Filters)
		if err != nil {
			return nil, err
		}
		return entities.AndFilter{Children: children}, nil
	case api.FilterOpOr:
		children, err := fromAPIFilterList(src.Filters)
		if err != nil {
			return nil, err
		}
		return entities.OrFilter{Children: children}, nil
	case api.FilterOpNot:
		if len(src.Filters) != 1 {
			return nil, fmt.Errorf("%w: not takes exactly one child", entities.ErrInvalidFilter)
		}
		child, err := FromAPIFilter(&src.Filters[0])
		if err != nil {
			return nil, err
		}
		return entities.NotFilter{Child: child}, nil
	case api.FilterOpEquality:
		if src.Field == "" {
			return nil, fmt.Errorf("%w: eq requires a field", entities.ErrInvalidFilter)
		}
		return entities.EqualityFilter{Field: src.Field, Value: src.Value}, nil
	case api.FilterOpMemberOf:
		if src.Group == "" {
			return nil, fmt.Errorf("%w: member_of requires a group", entities.ErrInvalidFilter)
		}
		return entities.MemberOfFilter{Group: src.Group}, nil
	case api.FilterOpMemberOfID:
		return entities.MemberOfIDFilter{GroupID: src.GroupID}, nil
	default:
		return nil, fmt.Errorf("%w: unknown op %q", entities.ErrInvalidFilter, src.Op)
	}
}

func fromAPIFilterList(src []api.Filter) ([]entities.Filter, error) {
	children := make([]entities.Filter, 0, len(src))
	for i := range src {
		c, err := FromAPIFilter(&src[i])
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	return children, nil
}

// FromAPICreateUser builds an entities.CreateUserRequest from transport DTO.
func FromAPICreateUser(src api.CreateUserRequest) entities.CreateUserRequest {
	return entities.CreateUserRequest{
		UserID:      src.UserID,
		Email:       src.Email,
		DisplayName: src.DisplayName,
		FirstName:   src.FirstName,
		LastName:    src.LastName,
	}
}

// FromAPIUpdateUser builds a partial update request for the given user id.
func FromAPIUpdateUser(userID string, src api.UpdateUserRequest) entities.UpdateUserRequest {
	return entities.UpdateUserRequest{
		UserID:      userID,
		Email:       src.Email,
		DisplayName: src.DisplayName,
		FirstName:   src.FirstName,
		LastName:    src.LastName,
	}
}

// FromAPIUpdateGroup builds a partial update request for the given group id.
func FromAPIUpdateGroup(groupID int32, src api.UpdateGroupRequest) entities.UpdateGroupRequest {
	return entities.UpdateGroupRequest{
		GroupID:     groupID,
		DisplayName: src.DisplayName,
	}
}

// ToAPIUser maps entities.User to transport model.
func ToAPIUser(u entities.User) api.User {
	return api.User{
		UserID:       u.ID,
		Email:        u.Email,
		DisplayName:  u.DisplayName,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Avatar:       u.Avatar,
		CreationDate: u.CreationDate,
	}
}

// ToAPIUserList maps a slice of users to transport slice.
func ToAPIUserList(list []entities.User) []api.User {
	res := make([]api.User, 0, len(list))
	for _, u := range list {
		res = append(res, ToAPIUser(u))
	}
	return res
}

// ToAPIGroup maps entities.Group to transport model.
func ToAPIGroup(g entities.Group) api.Group {
	users := make([]string, len(g.Users))
	copy(users, g.Users)
	return api.Group{
		GroupID:     g.ID,
		DisplayName: g.DisplayName,
		Users:       users,
	}
}

// ToAPIGroupList maps a slice of groups to transport slice.
func ToAPIGroupList(list []entities.Group) []api.Group {
	res := make([]api.Group, 0, len(list))
	for _, g := range list {
		res = append(res, ToAPIGroup(g))
	}
	return res
}

// ToAPIGroupSummary maps the (id, name) projection to transport model.
func ToAPIGroupSummary(g entities.GroupIDAndName) api.GroupSummary {
	return api.GroupSummary{
		GroupID:     g.GroupID,
		DisplayName: g.DisplayName,
	}
}

// ToAPIGroupSummaryList maps a slice of projections to transport slice.
func ToAPIGroupSummaryList(list []entities.GroupIDAndName) []api.GroupSummary {
	res := make([]api.GroupSummary, 0, len(list))
	for _, g := range list {
		res = append(res, ToAPIGroupSummary(g))
	}
	return res
}
