package postgres

// Table and column identifiers for the directory schema. The filter compiler
// and query builder reference these instead of inlining names so the closed
// vocabulary of filterable columns stays in one place.
const (
	tableUsers       = "users"
	tableGroups      = "groups"
	tableMemberships = "memberships"
	tableCredentials = "credentials"

	colUserID       = "user_id"
	colEmail        = "email"
	colDisplayName  = "display_name"
	colFirstName    = "first_name"
	colLastName     = "last_name"
	colAvatar       = "avatar"
	colCreationDate = "creation_date"

	colGroupID = "group_id"
)

// userColumns is the canonical user projection, qualified with the users
// table so filtered queries joining the group tables stay unambiguous.
const userColumns = "users.user_id, users.email, users.display_name, users.first_name, users.last_name, users.avatar, users.creation_date"
