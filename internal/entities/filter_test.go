package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchesAll(t *testing.T) {
	require.True(t, MatchesAll(AndFilter{}))
	require.True(t, MatchesAll(OrFilter{}))
	require.False(t, MatchesAll(AndFilter{Children: []Filter{OrFilter{}}}))
	require.False(t, MatchesAll(EqualityFilter{Field: "user_id", Value: "bob"}))
	require.False(t, MatchesAll(NotFilter{Child: AndFilter{}}))
}

func TestMatchesNone(t *testing.T) {
	require.True(t, MatchesNone(NotFilter{Child: AndFilter{}}))
	require.False(t, MatchesNone(NotFilter{Child: OrFilter{}}))
	require.False(t, MatchesNone(AndFilter{}))
	require.False(t, MatchesNone(NotFilter{Child: AndFilter{Children: []Filter{OrFilter{}}}}))
}

func TestUpdateRequestsEmpty(t *testing.T) {
	require.True(t, UpdateUserRequest{UserID: "bob"}.Empty())
	email := "bob@bob.bob"
	require.False(t, UpdateUserRequest{UserID: "bob", Email: &email}.Empty())

	require.True(t, UpdateGroupRequest{GroupID: 1}.Empty())
	name := "Best Group"
	require.False(t, UpdateGroupRequest{GroupID: 1, DisplayName: &name}.Empty())
}
