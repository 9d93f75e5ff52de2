package quat

import (
	"errors"
	"fmt"
)

// ErrImmutable is matched by every ImmutabilityViolation.
var ErrImmutable = errors.New("quaternion is immutable")

// ImmutabilityViolation reports an attempt to write an attribute of an
// already-constructed Quaternion.
type ImmutabilityViolation struct {
	Attr string
}

func (e *ImmutabilityViolation) Error() string {
	return fmt.Sprintf("can't modify attribute %s of frozen quaternion", e.Attr)
}

func (e *ImmutabilityViolation) Unwrap() error { return ErrImmutable }
