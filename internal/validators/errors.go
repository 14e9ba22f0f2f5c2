package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrEmptyField is the parent of every required-field error below.
	ErrEmptyField = errors.New("required field is empty")

	ErrEmptyName        = fmt.Errorf("%w: name", ErrEmptyField)
	ErrEmptyEmail       = fmt.Errorf("%w: email", ErrEmptyField)
	ErrEmptyCompany     = fmt.Errorf("%w: company", ErrEmptyField)
	ErrEmptyDesignation = fmt.Errorf("%w: designation", ErrEmptyField)
	ErrEmptyLocation    = fmt.Errorf("%w: location", ErrEmptyField)

	ErrInvalidCompanyEmail = errors.New("invalid company email")
)
