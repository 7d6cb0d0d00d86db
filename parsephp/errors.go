package parsephp

import "errors"

var (
	// ErrUnsupportedSeparator is returned when a query string has to be
	// decoded while a separator other than "&" is configured. The mapping
	// from an arbitrary separator back to bracket-array pairs is ambiguous.
	ErrUnsupportedSeparator = errors.New("decoding with a custom separator is not implemented")

	// ErrInvalidKeyType is returned by indexed access with a key that is
	// neither an integer nor a string.
	ErrInvalidKeyType = errors.New("key must be an integer or a string")
)
