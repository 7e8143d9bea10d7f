package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthority(t *testing.T) {
	cases := []struct {
		role Role
		want Authority
	}{
		{RoleManager, AuthorityGlobal},
		{RoleLead, AuthorityEdgeScoped},
		{RoleMember, AuthorityNone},
	}
	for _, c := range cases {
		u := User{Role: c.role}
		assert.Equal(t, c.want, u.Authority(), "authority for %s", c.role)
	}
}

func TestSelfApproving(t *testing.T) {
	assert.True(t, (&User{Role: RoleManager}).SelfApproving())
	assert.True(t, (&User{Role: RoleLead}).SelfApproving())
	assert.False(t, (&User{Role: RoleMember}).SelfApproving())
}

func TestRequiresSupervision(t *testing.T) {
	assert.False(t, (&User{Role: RoleManager}).RequiresSupervision())
	assert.False(t, (&User{Role: RoleLead}).RequiresSupervision())
	assert.True(t, (&User{Role: RoleMember}).RequiresSupervision())
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("Manager"))
	assert.True(t, ValidRole("Lead"))
	assert.True(t, ValidRole("Member"))
	assert.False(t, ValidRole("manager"))
	assert.False(t, ValidRole("Admin"))
	assert.False(t, ValidRole(""))
}
