package units

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrCategoryNotFound indicates a category id that is not in the catalog.
	// Registry lookups report this through a boolean; callers that need an
	// error value wrap this sentinel.
	ErrCategoryNotFound = constError("category not found")

	// ErrInvalidDefinition indicates a category or unit definition that violates
	// the catalog invariants (empty ids, duplicate units, missing base unit).
	ErrInvalidDefinition = constError("invalid unit definition")
)
