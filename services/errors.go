package services

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure so handlers can pick a status code
// without parsing messages.
type Kind string

const (
	KindNotFound          Kind = "not_found"
	KindDuplicate         Kind = "duplicate"
	KindInvalid           Kind = "invalid"
	KindHasDependents     Kind = "has_dependents"
	KindOutOfStock        Kind = "out_of_stock"
	KindInsufficientStock Kind = "insufficient_stock"
	KindQuantityBounds    Kind = "quantity_bounds"
	KindCouponInvalid     Kind = "coupon_invalid"
	KindAlreadyExists     Kind = "already_exists"
	KindPermissionDenied  Kind = "permission_denied"
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func errf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of a service error, or "" for any other error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}
