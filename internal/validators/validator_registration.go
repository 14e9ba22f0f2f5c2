package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-event-gate/models"
)

// Field name constants used to restrict validation to a subset of the
// registration form.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldCompany     = "company"
	FieldDesignation = "designation"
	FieldLocation    = "location"
)

// registrationFields is the default field set, in form order.
var registrationFields = []string{FieldName, FieldEmail, FieldCompany, FieldDesignation, FieldLocation}

// RegistrationValidator checks a [models.RegistrationRecord] for required
// fields and the company-email policy.
type RegistrationValidator struct {
}

func NewRegistrationValidator() Validator {
	return &RegistrationValidator{}
}

func (v *RegistrationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegistrationRecord:
		return v.validateRecord(ctx, value, fields...)
	case *models.RegistrationRecord:
		return v.validateRecord(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RegistrationValidator) validateRecord(_ context.Context, record models.RegistrationRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = registrationFields
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if record.Name == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if record.Email == "" {
				return ErrEmptyEmail
			}
			if result := ValidateEmail(record.Email); !result.Valid {
				return fmt.Errorf("%w: %s", ErrInvalidCompanyEmail, record.Email)
			}
		case FieldCompany:
			if record.Company == "" {
				return ErrEmptyCompany
			}
		case FieldDesignation:
			if record.Designation == "" {
				return ErrEmptyDesignation
			}
		case FieldLocation:
			if record.Location == "" {
				return ErrEmptyLocation
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
