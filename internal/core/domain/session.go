package domain

// PrincipalKind names the three disjoint authentication namespaces.
// Tokens issued for one kind are never valid for another. Sessions have
// no expiry: a token lives until it is explicitly revoked (or, for admin
// tokens, until the process restarts).
type PrincipalKind string

const (
	KindUser   PrincipalKind = "user"
	KindAdmin  PrincipalKind = "admin"
	KindIntern PrincipalKind = "intern"
)

// Principal is the identity a validated token resolves to.
type Principal struct {
	Kind  PrincipalKind
	ID    int64
	Email string
	Role  string
}
