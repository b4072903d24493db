package specification

import "gorm.io/gorm"

// Specification narrows a query. Repositories apply any number of them
// before executing, so callers compose filters instead of growing the
// repository interfaces.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
