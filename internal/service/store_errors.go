package service

import (
	"errors"

	"gorm.io/gorm"

	apperrors "orders/internal/errors"
)

// storeError converts gorm sentinel errors to the domain taxonomy. Anything
// unrecognized passes through and surfaces to the caller as-is.
func storeError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrDuplicateName
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.ErrHasRelatedRecords
	default:
		return err
	}
}
