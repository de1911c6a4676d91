package mapper

import (
	"testing"

	"github.com/draganczukp/lldap/internal/api"
	"github.com/draganczukp/lldap/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestFromAPIFilterNilMeansNoFilter(t *testing.T) {
	f, err := FromAPIFilter(nil)
	require.NoError(t, err)
	require.Nil(t, f)
}

func TestFromAPIFilterDecodesTree(t *testing.T) {
	src := &api.Filter{
		Op: api.FilterOpAnd,
		Filters: []api.Filter{
			{Op: api.FilterOpEquality, Field: "user_id", Value: "bob"},
			{Op: api.FilterOpNot, Filters: []api.Filter{
				{Op: api.FilterOpMemberOf, Group: "Best Group"},
			}},
			{Op: api.FilterOpMemberOfID, GroupID: 3},
		},
	}

	f, err := FromAPIFilter(src)
	require.NoError(t, err)
	require.Equal(t, entities.AndFilter{Children: []entities.Filter{
		entities.EqualityFilter{Field: "user_id", Value: "bob"},
		entities.NotFilter{Child: entities.MemberOfFilter{Group: "Best Group"}},
		entities.MemberOfIDFilter{GroupID: 3},
	}}, f)
}

func TestFromAPIFilterEmptyComposites(t *testing.T) {
	f, err := FromAPIFilter(&api.Filter{Op: api.FilterOpAnd})
	require.NoError(t, err)
	require.True(t, entities.MatchesAll(f))

	f, err = FromAPIFilter(&api.Filter{Op: api.FilterOpNot, Filters: []api.Filter{{Op: api.FilterOpAnd}}})
	require.NoError(t, err)
	require.True(t, entities.MatchesNone(f))
}

func TestFromAPIFilterRejectsUnknownOp(t *testing.T) {
	_, err := FromAPIFilter(&api.Filter{Op: "like"})
	require.ErrorIs(t, err, entities.ErrInvalidFilter)
}

func TestFromAPIFilterRejectsMalformedNodes(t *testing.T) {
	_, err := FromAPIFilter(&api.Filter{Op: api.FilterOpNot})
	require.ErrorIs(t, err, entities.ErrInvalidFilter)

	_, err = FromAPIFilter(&api.Filter{Op: api.FilterOpEquality, Value: "bob"})
	require.ErrorIs(t, err, entities.ErrInvalidFilter)

	_, err = FromAPIFilter(&api.Filter{Op: api.FilterOpMemberOf})
	require.ErrorIs(t, err, entities.ErrInvalidFilter)

	_, err = FromAPIFilter(&api.Filter{Op: api.FilterOpAnd, Filters: []api.Filter{{Op: "bogus"}}})
	require.ErrorIs(t, err, entities.ErrInvalidFilter)
}

func TestToAPIGroupCopiesMembers(t *testing.T) {
	g := entities.Group{ID: 1, DisplayName: "Best Group", Users: []string{"bob", "patrick"}}
	out := ToAPIGroup(g)
	require.Equal(t, g.Users, out.Users)

	out.Users[0] = "mutated"
	require.Equal(t, "bob", g.Users[0])
}

func TestFromAPIUpdateUserKeepsAbsentFieldsNil(t *testing.T) {
	email := "bob@bob.bob"
	req := FromAPIUpdateUser("bob", api.UpdateUserRequest{Email: &email})
	require.Equal(t, "bob", req.UserID)
	require.NotNil(t, req.Email)
	require.Nil(t, req.DisplayName)
	require.Nil(t, req.FirstName)
	require.Nil(t, req.LastName)
	require.False(t, req.Empty())

	require.True(t, FromAPIUpdateUser("bob", api.UpdateUserRequest{}).Empty())
}
