package fluent

// Extension observes forwarded method calls on a chain.
type Extension interface {
	// BeforeCall runs before the method is invoked on the subject
	BeforeCall(method string, args []any)
	// AfterCall runs after the method returned without error
	AfterCall(method string, result any)
}

// Resolver looks subjects up by identifier.
type Resolver interface {
	// Has reports whether id is known
	Has(id string) bool
	// Get returns the subject registered under id
	Get(id string) (any, error)
}

// Cloner is implemented by subjects that copy themselves for Chain.Clone.
type Cloner interface {
	CloneSubject() any
}

