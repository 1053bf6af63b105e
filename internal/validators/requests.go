package validators

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-logistics/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldFirstName       = "first_name"
	FieldLastName        = "last_name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"

	// FieldPasswordsMatch compares password and confirmation.
	FieldPasswordsMatch = "passwords_match"

	// FieldPasswordLength enforces MinPasswordLength.
	FieldPasswordLength = "password_length"

	FieldTrackID      = "track_id"
	FieldProductName  = "product_name"
	FieldSource       = "source"
	FieldDestination  = "destination"
	FieldExpectedDate = "expected_date"
	FieldStatus       = "status"
	FieldType         = "type"

	FieldOrigin     = "origin"
	FieldWeight     = "weight"
	FieldDimensions = "dimensions"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// dateOnly is the layout of plain calendar dates accepted for expected
// delivery dates.
const dateOnly = "2006-01-02"

// RequestValidator implements [Validator] for the inbound request payloads
// of the logistics API. Missing fields are always reported before malformed
// ones, so a request lacking a field never yields a format error.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator and returns it as
// the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.RegisterRequest / *models.RegisterRequest
//   - models.LoginRequest / *models.LoginRequest
//   - models.CreateShipmentRequest / *models.CreateShipmentRequest
//   - models.UpdateStatusRequest / *models.UpdateStatusRequest
//   - models.QuoteRequest / *models.QuoteRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.CreateShipmentRequest:
		return v.validateCreateShipmentRequest(ctx, value, fields...)
	case *models.CreateShipmentRequest:
		return v.validateCreateShipmentRequest(ctx, *value, fields...)

	case models.UpdateStatusRequest:
		return v.validateUpdateStatusRequest(ctx, value, fields...)
	case *models.UpdateStatusRequest:
		return v.validateUpdateStatusRequest(ctx, *value, fields...)

	case models.QuoteRequest:
		return v.validateQuoteRequest(ctx, value, fields...)
	case *models.QuoteRequest:
		return v.validateQuoteRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRegisterRequest checks presence of every field first, then that
// the passwords match and finally the password length.
func (v *RequestValidator) validateRegisterRequest(_ context.Context, r models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldPassword, FieldConfirmPassword, FieldPasswordsMatch, FieldPasswordLength}
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if blank(r.FirstName) {
				return ErrMissingRequiredFields
			}
		case FieldLastName:
			if blank(r.LastName) {
				return ErrMissingRequiredFields
			}
		case FieldEmail:
			if blank(r.Email) {
				return ErrMissingRequiredFields
			}
		case FieldPassword:
			if r.Password == "" {
				return ErrMissingRequiredFields
			}
		case FieldConfirmPassword:
			if r.ConfirmPassword == "" {
				return ErrMissingRequiredFields
			}
		case FieldPasswordsMatch:
			if r.Password != r.ConfirmPassword {
				return ErrPasswordsDoNotMatch
			}
		case FieldPasswordLength:
			if len([]rune(r.Password)) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateLoginRequest(_ context.Context, r models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if blank(r.Email) {
				return ErrMissingRequiredFields
			}
		case FieldPassword:
			if r.Password == "" {
				return ErrMissingRequiredFields
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCreateShipmentRequest validates a new shipment.
//
// Default validated fields: every field for presence, then expected date
// format, status and type membership.
func (v *RequestValidator) validateCreateShipmentRequest(_ context.Context, r models.CreateShipmentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTrackID, FieldProductName, FieldSource, FieldDestination, FieldExpectedDate, FieldStatus, FieldType}
	}

	// presence first
	for _, f := range fields {
		var value string
		switch f {
		case FieldTrackID:
			value = r.TrackID
		case FieldProductName:
			value = r.ProductName
		case FieldSource:
			value = r.Source
		case FieldDestination:
			value = r.Destination
		case FieldExpectedDate:
			value = r.ExpectedDate
		case FieldStatus:
			value = r.Status
		case FieldType:
			value = r.Type
		default:
			return ErrUnknownField
		}
		if blank(value) {
			return ErrMissingRequiredFields
		}
	}

	for _, f := range fields {
		switch f {
		case FieldExpectedDate:
			if _, err := ParseExpectedDate(r.ExpectedDate); err != nil {
				return ErrInvalidExpectedDate
			}
		case FieldStatus:
			if !models.ShipmentStatus(strings.TrimSpace(r.Status)).Valid() {
				return ErrInvalidStatus
			}
		case FieldType:
			if !models.ShipmentType(strings.TrimSpace(r.Type)).Valid() {
				return ErrInvalidType
			}
		}
	}

	return nil
}

func (v *RequestValidator) validateUpdateStatusRequest(_ context.Context, r models.UpdateStatusRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldStatus:
			if blank(r.Status) {
				return ErrStatusRequired
			}
			if !models.ShipmentStatus(strings.TrimSpace(r.Status)).Valid() {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateQuoteRequest reports missing fields before an invalid weight.
func (v *RequestValidator) validateQuoteRequest(_ context.Context, r models.QuoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOrigin, FieldDestination, FieldWeight, FieldDimensions}
	}

	checkWeight := false
	for _, f := range fields {
		switch f {
		case FieldOrigin:
			if blank(r.Origin) {
				return ErrMissingRequiredFields
			}
		case FieldDestination:
			if blank(r.Destination) {
				return ErrMissingRequiredFields
			}
		case FieldDimensions:
			if blank(r.Dimensions) {
				return ErrMissingRequiredFields
			}
		case FieldWeight:
			// zero counts as missing, as it does for the other fields
			if !r.Weight.Given || r.Weight.Kg == 0 {
				return ErrMissingRequiredFields
			}
			checkWeight = true
		default:
			return ErrUnknownField
		}
	}

	if checkWeight && (!r.Weight.Positive() || r.Weight.Kg > models.MaxWeightKg) {
		return ErrInvalidWeight
	}

	return nil
}

// ParseExpectedDate accepts an RFC 3339 timestamp or a plain YYYY-MM-DD
// date (interpreted as midnight UTC).
func ParseExpectedDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}

	t, err := time.Parse(dateOnly, s)
	if err != nil {
		return time.Time{}, ErrInvalidExpectedDate
	}
	return t, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
