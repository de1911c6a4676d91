package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/draganczukp/lldap/internal/entities"
)

// compiledFilter is a parameterized SQL predicate plus the flag telling the
// query builder to pull in the memberships/groups tables. Args are numbered
// from $1: list-users is the only filtered statement and carries no other
// parameters.
type compiledFilter struct {
	cond       string
	args       []any
	joinGroups bool
}

// compileFilter lowers a filter tree into a relational predicate. Callers
// must handle entities.MatchesAll and entities.MatchesNone before compiling;
// those shortcuts are semantic, not an optimization.
func compileFilter(f entities.Filter) (compiledFilter, error) {
	b := &condBuilder{}
	cond, joinGroups, err := b.compile(f)
	if err != nil {
		return compiledFilter{}, err
	}
	return compiledFilter{cond: cond, args: b.args, joinGroups: joinGroups}, nil
}

type condBuilder struct {
	args []any
}

func (b *condBuilder) bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *condBuilder) compile(f entities.Filter) (string, bool, error) {
	switch v := f.(type) {
	case entities.AndFilter:
		return b.compileComposite(v.Children, " AND ")
	case entities.OrFilter:
		return b.compileComposite(v.Children, " OR ")
	case entities.NotFilter:
		cond, joinGroups, err := b.compile(v.Child)
		if err != nil {
			return "", false, err
		}
		return "NOT (" + cond + ")", joinGroups, nil
	case entities.EqualityFilter:
		switch v.Field {
		case colDisplayName:
			// Scoped to users: the groups table has a column of the same name.
			return tableUsers + "." + colDisplayName + " = " + b.bind(v.Value), false, nil
		case colUserID:
			return tableUsers + "." + colUserID + " = " + b.bind(v.Value), false, nil
		default:
			// The field is a column name from the server-controlled
			// filterable vocabulary; unknown names fail at execution time.
			return v.Field + " = " + b.bind(v.Value), false, nil
		}
	case entities.MemberOfFilter:
		return tableGroups + "." + colDisplayName + " = " + b.bind(v.Group), true, nil
	case entities.MemberOfIDFilter:
		return tableGroups + "." + colGroupID + " = " + b.bind(v.GroupID), true, nil
	default:
		return "", false, fmt.Errorf("%w: unknown filter variant %T", entities.ErrInvalidFilter, f)
	}
}

// compileComposite folds children with the given operator. The join flag is
// OR-ed across children: the join is needed once at the outer query level as
// soon as any branch touches group membership.
func (b *condBuilder) compileComposite(children []entities.Filter, op string) (string, bool, error) {
	if len(children) == 0 {
		// Reached only for an empty composite nested under another filter;
		// top-level empty And/Or is handled by the caller as match-all.
		return "TRUE", false, nil
	}

	parts := make([]string, 0, len(children))
	joinGroups := false
	for _, c := range children {
		cond, join, err := b.compile(c)
		if err != nil {
			return "", false, err
		}
		joinGroups = joinGroups || join
		parts = append(parts, cond)
	}

	if len(parts) == 1 {
		return parts[0], joinGroups, nil
	}
	return "(" + strings.Join(parts, op) + ")", joinGroups, nil
}
