package model

// WhomKind discriminates a Whom qualifier.
type WhomKind int

// Recognized Whom qualifiers for permission queries.
const (
	WhomOwnerKind WhomKind = iota
	WhomGroupKind
	WhomOthersKind
	WhomUserKind
)

// Whom qualifies a file permission query: Owner, Group, Others, or a
// named User whose effective permission is resolved via ownership and
// group-membership checks, falling back to Others.
type Whom struct {
	Kind WhomKind
	User string
}

// WhomOwner qualifies a query to the file's owning user.
func WhomOwner() Whom { return Whom{Kind: WhomOwnerKind} }

// WhomGroup qualifies a query to the file's owning group.
func WhomGroup() Whom { return Whom{Kind: WhomGroupKind} }

// WhomOthers qualifies a query to everyone else.
func WhomOthers() Whom { return Whom{Kind: WhomOthersKind} }

// WhomUser qualifies a query to a named user.
func WhomUser(name string) Whom { return Whom{Kind: WhomUserKind, User: name} }
