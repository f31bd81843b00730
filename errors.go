package split

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrInvalidArgument indicates an empty delimiter or a nil transform.
	ErrInvalidArgument = errors.New("split: invalid argument")

	// ErrTransform indicates a fallible token transform returned an error.
	ErrTransform = errors.New("split: token transform failed")
)
