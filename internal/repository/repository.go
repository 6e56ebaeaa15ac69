// internal/repository/repository.go
package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// translateNotFound maps gorm's missing-record error onto the domain
// sentinel for the entity, leaving other database errors wrapped.
func translateNotFound(err error, sentinel error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return fmt.Errorf("failed to find %s: %w", what, err)
}
