package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingRequiredFields = errors.New("required fields are missing")
	ErrPasswordsDoNotMatch   = errors.New("passwords do not match")
	ErrPasswordTooShort      = errors.New("password is too short")
	ErrStatusRequired        = errors.New("status is required")
	ErrInvalidStatus         = errors.New("invalid shipment status")
	ErrInvalidType           = errors.New("invalid shipment type")
	ErrInvalidExpectedDate   = errors.New("invalid expected date")
	ErrInvalidWeight         = errors.New("invalid weight")
)
