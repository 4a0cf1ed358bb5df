package postgres

import (
	"errors"

	"gorm.io/gorm"

	"hr-dashboard/internal/storage"
)

// mapError translates gorm driver errors into the storage sentinel errors the
// service layer matches on. Requires the connection to be opened with
// TranslateError enabled.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return storage.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return storage.ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return storage.ErrConflict
	default:
		return err
	}
}
