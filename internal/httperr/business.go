package httperr

import "errors"

// Codes shared between use cases and handlers.
const (
	CodeSlotTaken        = "slot_taken"
	CodeValidationFailed = "validation_failed"
	CodeNotFound         = "not_found"
	CodeInvalidState     = "invalid_state"
	CodeInvalidStatus    = "invalid_status"
	CodeInvalidDate      = "invalid_date"
	CodeSlotBooked       = "slot_booked"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code, or "" for non-business errors.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
