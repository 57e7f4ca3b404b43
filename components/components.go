// Package components defines ECS components for the simulation.
package components

import "fmt"

// Role marks how the driver treats a body.
type Role uint8

const (
	RoleFree      Role = iota // only gravity
	RolePlayer                // receives joystick thrust
	RoleReference             // angle readouts are measured from this body
)

var roleNames = [...]string{"free", "player", "reference"}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown"
}

// ParseRole maps a config name to a Role. The empty string is RoleFree.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return RoleFree, nil
	}
	for i, name := range roleNames {
		if name == s {
			return Role(i), nil
		}
	}
	return RoleFree, fmt.Errorf("unknown body role %q", s)
}

// Label identifies a body for display and role lookup.
type Label struct {
	Name string
	Role Role
}
