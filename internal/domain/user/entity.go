package user

import "time"

type Role string

const (
	RoleManager Role = "Manager" // Global authority, self-approving
	RoleLead    Role = "Lead"    // Authority over assigned members, self-approving
	RoleMember  Role = "Member"  // QR-only access, entries need approval
)

// Authority is the approval capability a role resolves to. It is derived once
// per request and consulted by the attendance and QR services instead of
// re-dispatching on the role string.
type Authority int

const (
	AuthorityNone       Authority = iota // cannot approve anything
	AuthorityEdgeScoped                  // limited to assigned members
	AuthorityGlobal                      // every record in the system
)

type User struct {
	ID           int64
	Username     string
	DisplayName  string
	Email        string
	PasswordHash *string
	Role         Role
	CreatedAt    time.Time
}

// Assignment is a supervision edge from a lead to a member. A member has at
// most one lead; managers supervise everyone implicitly and carry no edges.
type Assignment struct {
	ID             int64
	LeadUsername   string
	MemberUsername string
	AssignedAt     time.Time
}

// Authority resolves the approval capability for the user's role.
func (u *User) Authority() Authority {
	switch u.Role {
	case RoleManager:
		return AuthorityGlobal
	case RoleLead:
		return AuthorityEdgeScoped
	default:
		return AuthorityNone
	}
}

// SelfApproving reports whether the user's own check-ins are approved
// immediately without review.
func (u *User) SelfApproving() bool {
	return u.Role == RoleManager || u.Role == RoleLead
}

// RequiresSupervision reports whether the user needs an assigned lead before
// attendance can be recorded.
func (u *User) RequiresSupervision() bool {
	return u.Role == RoleMember
}

// RequiresPassword reports whether the role can hold a login credential.
// Members authenticate through QR tokens only.
func (u *User) RequiresPassword() bool {
	return u.Role == RoleManager || u.Role == RoleLead
}

func ValidRole(r string) bool {
	switch Role(r) {
	case RoleManager, RoleLead, RoleMember:
		return true
	}
	return false
}
