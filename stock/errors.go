package stock

import "errors"

// Business-rule violations are reported as sentinel errors so HTTP handlers
// can map them to user-facing failures. None of them indicate a corrupted
// state: the engine leaves its data untouched whenever one is returned.
var (
	// ErrNotFound is returned when the addressed entity does not exist.
	ErrNotFound = errors.New("entity not found")
	// ErrCategoryInUse blocks deleting a category still referenced by products.
	ErrCategoryInUse = errors.New("category is used by existing products")
	// ErrSupplierInUse blocks deleting a supplier still referenced by products.
	ErrSupplierInUse = errors.New("supplier is used by existing products")
	// ErrLastUser blocks deleting the only remaining user.
	ErrLastUser = errors.New("cannot delete the last user")
	// ErrInvalidTransaction rejects movements without a positive quantity
	// or a known type.
	ErrInvalidTransaction = errors.New("transaction needs a positive quantity and a valid type")
)
