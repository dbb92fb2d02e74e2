package service

import (
	"errors"

	"go-inventory-tracker/internal/apperr"

	"gorm.io/gorm"
)

// translateDuplicate classifies storage uniqueness violations. The
// database driver reports the race winner; everyone else sees a
// duplicate-key error with a caller-facing message.
func translateDuplicate(err error, msg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.New(apperr.DuplicateKey, msg)
	}
	return err
}

func translateNotFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, msg)
	}
	return err
}
