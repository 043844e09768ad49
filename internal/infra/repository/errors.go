package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/slot-booker/internal/httperr"
)

// translate maps storage failures onto business codes. Anything it does not
// recognise is returned unchanged and surfaces as internal_error.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return httperr.ErrBusiness(httperr.CodeNotFound)
	case httperr.IsExclusionConflict(err):
		return httperr.ErrBusiness(httperr.CodeOverlapConflict)
	case httperr.IsUniqueViolation(err):
		return httperr.ErrBusiness(httperr.CodeDuplicateEmail)
	case httperr.IsForeignKeyViolation(err):
		return httperr.ErrBusiness(httperr.CodeUnknownClient)
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		httperr.IsTransient(err):
		return httperr.Wrap(httperr.CodeUnavailable, err)
	}
	return err
}
