package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyItemID       = errors.New("item id is required")
	ErrInvalidKind       = errors.New("invalid item kind")
	ErrInvalidTier       = errors.New("invalid security tier")
	ErrEmptyName         = errors.New("name is required")
	ErrUnsupportedSecret = errors.New("secret field is not supported by item kind")
)
