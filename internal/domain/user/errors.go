package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameExists     = errors.New("username already exists")
	ErrEmailExists        = errors.New("email already registered")
	ErrNotALead           = errors.New("user is not a lead")
	ErrNotAMember         = errors.New("user is not a member")
	ErrNoLeadAssigned     = errors.New("no lead assigned")
	ErrAssignmentExists   = errors.New("assignment already exists")
	ErrMemberHasLead      = errors.New("member is already assigned to a lead")
	ErrNotAssignedToLead  = errors.New("member is not assigned to this lead")
	ErrApprovalNotAllowed = errors.New("only managers and leads can approve entries")
)
