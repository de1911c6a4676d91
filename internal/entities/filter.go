// Package entities contains core business entities.
package entities

// Filter is a boolean expression tree over directory attributes, decoded by
// the transport layer and compiled to a relational predicate by the storage
// backend. The variant set is closed: And, Or, Not, Equality, MemberOf and
// MemberOfID, matched exhaustively by type switch.
type Filter interface {
	isFilter()
}

// AndFilter matches when every child matches. An empty AndFilter matches
// every user and is treated by callers as "no filter".
type AndFilter struct {
	Children []Filter
}

// OrFilter matches when any child matches. An empty OrFilter matches every
// user, same as an empty AndFilter.
type OrFilter struct {
	Children []Filter
}

// NotFilter negates its child.
type NotFilter struct {
	Child Filter
}

// EqualityFilter matches users whose attribute Field equals Value. Field
// names come from a closed, server-controlled vocabulary of filterable
// columns, never from end-user input.
type EqualityFilter struct {
	Field string
	Value string
}

// MemberOfFilter matches users belonging to the group with this display name.
type MemberOfFilter struct {
	Group string
}

// MemberOfIDFilter matches users belonging to the group with this id.
type MemberOfIDFilter struct {
	GroupID int32
}

func (AndFilter) isFilter()        {}
func (OrFilter) isFilter()         {}
func (NotFilter) isFilter()        {}
func (EqualityFilter) isFilter()   {}
func (MemberOfFilter) isFilter()   {}
func (MemberOfIDFilter) isFilter() {}

// MatchesAll reports whether f is the universal "match everything" filter:
// an empty And or an empty Or. Callers must skip filtering entirely for such
// filters instead of emitting a trivially-true clause.
func MatchesAll(f Filter) bool {
	switch v := f.(type) {
	case AndFilter:
		return len(v.Children) == 0
	case OrFilter:
		return len(v.Children) == 0
	default:
		return false
	}
}

// MatchesNone reports whether f is the literal negation of "match
// everything", i.e. Not(And([])). Callers must return an empty result set
// without issuing a query.
func MatchesNone(f Filter) bool {
	not, ok := f.(NotFilter)
	if !ok {
		return false
	}
	and, ok := not.Child.(AndFilter)
	return ok && len(and.Children) == 0
}
