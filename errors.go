package windc

import (
	"errors"
	"fmt"
)

// ErrInvalidClassName reports a token with no utility segment: empty,
// whitespace-only, or nothing but colons. It is fatal to that token only;
// sibling tokens keep processing.
var ErrInvalidClassName = errors.New("invalid class name")

// UnknownUtilityError reports a base utility name the catalog could not
// resolve. The token is skipped and the build continues.
type UnknownUtilityError struct {
	Utility string
}

func (e *UnknownUtilityError) Error() string {
	return fmt.Sprintf("unknown utility %q", e.Utility)
}

// ComposeError reports an internal invariant violation during selector
// composition, e.g. an ancestor name attached to a variant with no ancestor
// concept. It signals a malformed token shape, not a user-facing parse
// failure.
type ComposeError struct {
	Variant string
	Reason  string
}

func (e *ComposeError) Error() string {
	return fmt.Sprintf("cannot compose variant %q: %s", e.Variant, e.Reason)
}
