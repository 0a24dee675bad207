package services

import "github.com/yeremiapane/restaurant-ordering/models"

// Principal is the requesting user as established by the auth middleware.
// The zero value is an anonymous request.
type Principal struct {
	UserID uint
	Role   string
}

func (p Principal) Authenticated() bool {
	return p.UserID != 0
}

func (p Principal) IsAdmin() bool {
	return p.Authenticated() && p.Role == models.RoleAdmin
}

// Capability decides whether a principal may act on a resource owned by ownerID.
type Capability func(p Principal, ownerID uint) bool

var (
	Authenticated Capability = func(p Principal, _ uint) bool { return p.Authenticated() }
	OwnerOnly     Capability = func(p Principal, ownerID uint) bool { return p.Authenticated() && p.UserID == ownerID }
	AdminOnly     Capability = func(p Principal, _ uint) bool { return p.IsAdmin() }
)

// Authorize runs the capabilities in order. Anonymous principals get ErrUnauthorized,
// authenticated ones that fail a check get ErrForbidden.
func Authorize(p Principal, ownerID uint, caps ...Capability) error {
	if !p.Authenticated() {
		return ErrUnauthorized
	}
	for _, can := range caps {
		if !can(p, ownerID) {
			return ErrForbidden
		}
	}
	return nil
}
