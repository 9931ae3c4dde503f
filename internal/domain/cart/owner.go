package cart

import (
	"github.com/sunset/storefront/internal/domain/shared"
)

// OwnerKind discriminates between authenticated and anonymous cart owners.
type OwnerKind string

const (
	OwnerCustomer OwnerKind = "customer"
	OwnerGuest    OwnerKind = "guest"
)

// OwnerRef identifies the owner of a cart. For customers the key is the
// customer UUID, for guests it is the opaque session identifier issued
// by the session cookie.
type OwnerRef struct {
	Kind OwnerKind
	Key  string
}

// CustomerOwner builds an owner reference for an authenticated customer.
func CustomerOwner(customerID string) OwnerRef {
	return OwnerRef{Kind: OwnerCustomer, Key: customerID}
}

// GuestOwner builds an owner reference for an anonymous session.
func GuestOwner(sessionID string) OwnerRef {
	return OwnerRef{Kind: OwnerGuest, Key: sessionID}
}

// Validate checks that the reference is well formed.
func (o OwnerRef) Validate() error {
	if o.Key == "" {
		return shared.ErrInvalidInput
	}
	if o.Kind != OwnerCustomer && o.Kind != OwnerGuest {
		return shared.ErrInvalidInput
	}
	return nil
}

// IsCustomer reports whether the owner is an authenticated customer.
func (o OwnerRef) IsCustomer() bool {
	return o.Kind == OwnerCustomer
}
