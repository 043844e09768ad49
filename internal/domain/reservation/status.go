package reservation

import "github.com/BruksfildServices01/slot-booker/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// ===============================
// Validations
// ===============================

// CanCancel allows Confirmed -> Cancelled only. Cancelled is terminal.
func CanCancel(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrBusiness(httperr.CodeAlreadyCancelled)
	}
	if current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}
