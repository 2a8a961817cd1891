package component

import (
	"fmt"

	"github.com/milk9111/platformer/geometry"
)

// Support names the surface the actor stands on. The zero value means the
// actor has not landed anywhere.
type Support struct {
	Surface geometry.Handle
	Valid   bool
}

// SupportedBy returns a support pointing at h.
func SupportedBy(h geometry.Handle) Support {
	return Support{Surface: h, Valid: true}
}

// On reports whether the actor is supported by h.
func (s Support) On(h geometry.Handle) bool {
	return s.Valid && s.Surface == h
}

func (s Support) String() string {
	if !s.Valid {
		return "none"
	}
	return fmt.Sprintf("surface %d", s.Surface)
}

var SupportComponent = NewComponent[Support]()
