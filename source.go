package settings

// Source is the capability a holder chain terminates at: an opaque root
// configuration that can resolve flat keys and enumerate the keys it knows.
// Implementations live in the source subpackage; *Holder implements Source
// as well so holders chain onto one another.
type Source interface {
	// Lookup resolves key, reporting whether a value is present.
	Lookup(key string) (any, bool)
	// Keys returns every key the source can resolve. Order is unspecified.
	Keys() []string
}

// Loader produces the root configuration on first access when no explicit
// Configure call happened. Invoked at most once per Settings instance.
type Loader func() (Source, error)
