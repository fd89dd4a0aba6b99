package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// notFoundOr maps a missing record to sentinel and wraps anything else.
func notFoundOr(err, sentinel error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return fmt.Errorf("%s: %w", msg, err)
}
