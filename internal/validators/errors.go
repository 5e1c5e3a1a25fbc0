package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName           = errors.New("name is required")
	ErrBasePriceOutOfRange = errors.New("base price must be between 1 and 20")
	ErrEmptyID             = errors.New("id is required")
)
