package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/draganczukp/lldap/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	listUsersBase = "SELECT " + userColumns + " FROM users"
	// The joined variant is DISTINCT: a user matching through several
	// membership rows must still be listed once.
	listUsersJoinedBase = "SELECT DISTINCT " + userColumns + " FROM users"
	// Left joins so attribute predicates keep matching users without
	// memberships; added only when the compiled filter requires them.
	listUsersGroupJoins = " LEFT JOIN memberships ON users.user_id = memberships.user_id" +
		" LEFT JOIN groups ON memberships.group_id = groups.group_id"
	listUsersOrder = " ORDER BY users.user_id ASC"

	selectUserQuery = "SELECT " + userColumns + " FROM users WHERE users.user_id = $1"

	insertUserQuery = `
INSERT INTO users(user_id, email, display_name, first_name, last_name, creation_date)
VALUES ($1, $2, $3, $4, $5, $6)
`
	deleteUserMembershipsQuery = "DELETE FROM memberships WHERE user_id = $1"
	deleteUserCredentialQuery  = "DELETE FROM credentials WHERE user_id = $1"
	deleteUserQuery            = "DELETE FROM users WHERE user_id = $1"
)

// buildListUsersQuery assembles the list statement for an optional filter.
// The second result is false when the filter can never match and no query
// should be issued at all.
func buildListUsersQuery(filter entities.Filter) (string, []any, bool, error) {
	if filter == nil || entities.MatchesAll(filter) {
		return listUsersBase + listUsersOrder, nil, true, nil
	}
	if entities.MatchesNone(filter) {
		return "", nil, false, nil
	}

	compiled, err := compileFilter(filter)
	if err != nil {
		return "", nil, false, err
	}

	var sb strings.Builder
	if compiled.joinGroups {
		sb.WriteString(listUsersJoinedBase)
		sb.WriteString(listUsersGroupJoins)
	} else {
		sb.WriteString(listUsersBase)
	}
	sb.WriteString(" WHERE ")
	sb.WriteString(compiled.cond)
	sb.WriteString(listUsersOrder)
	return sb.String(), compiled.args, true, nil
}

// ListUsers returns users matching the filter, ordered by user id ascending.
// A nil filter lists everything.
func (p *Postgres) ListUsers(ctx context.Context, filter entities.Filter) ([]entities.User, error) {
	query, args, matchable, err := buildListUsersQuery(filter)
	if err != nil {
		return nil, err
	}
	if !matchable {
		return []entities.User{}, nil
	}

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Email, &u.DisplayName, &u.FirstName, &u.LastName, &u.Avatar, &u.CreationDate); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// GetUserDetails fetches a single user by id.
func (p *Postgres) GetUserDetails(ctx context.Context, userID string) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserQuery, userID).
		Scan(&u.ID, &u.Email, &u.DisplayName, &u.FirstName, &u.LastName, &u.Avatar, &u.CreationDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// CreateUser inserts a full user row. The creation date is always assigned
// here, never taken from the request; absent optional names become empty
// strings rather than NULLs.
func (p *Postgres) CreateUser(ctx context.Context, req entities.CreateUserRequest) error {
	_, err := p.db.Exec(ctx, insertUserQuery,
		req.UserID,
		req.Email,
		orEmpty(req.DisplayName),
		orEmpty(req.FirstName),
		orEmpty(req.LastName),
		time.Now().UTC(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entities.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user created", "user_id", req.UserID)
	return nil
}

// UpdateUser applies a partial update. A request with no fields set succeeds
// without touching the database.
func (p *Postgres) UpdateUser(ctx context.Context, req entities.UpdateUserRequest) error {
	query, args, ok := buildUserUpdateQuery(req)
	if !ok {
		return nil
	}

	if _, err := p.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// buildUserUpdateQuery renders the SET clause from the fields present in the
// request. The third result is false when there is nothing to update, so the
// caller never issues a degenerate empty-SET statement.
func buildUserUpdateQuery(req entities.UpdateUserRequest) (string, []any, bool) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)
	set := func(col, val string) {
		args = append(args, val)
		sets = append(sets, col+" = $"+strconv.Itoa(len(args)))
	}

	if req.Email != nil {
		set(colEmail, *req.Email)
	}
	if req.DisplayName != nil {
		set(colDisplayName, *req.DisplayName)
	}
	if req.FirstName != nil {
		set(colFirstName, *req.FirstName)
	}
	if req.LastName != nil {
		set(colLastName, *req.LastName)
	}
	if len(sets) == 0 {
		return "", nil, false
	}

	args = append(args, req.UserID)
	query := "UPDATE users SET " + strings.Join(sets, ", ") +
		" WHERE user_id = $" + strconv.Itoa(len(args))
	return query, args, true
}

// DeleteUser removes a user and its dependent membership and credential rows
// in one transaction. Deleting an absent user is not an error.
func (p *Postgres) DeleteUser(ctx context.Context, userID string) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin delete user: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, deleteUserMembershipsQuery, userID); err != nil {
		return fmt.Errorf("delete user memberships: %w", err)
	}
	if _, err := tx.Exec(ctx, deleteUserCredentialQuery, userID); err != nil {
		return fmt.Errorf("delete user credential: %w", err)
	}
	if _, err := tx.Exec(ctx, deleteUserQuery, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete user: %w", err)
	}

	p.log.Infow("user deleted", "user_id", userID)
	return nil
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
