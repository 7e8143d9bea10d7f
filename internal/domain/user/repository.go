package user

import "context"

// UserRepository defines data access for users and supervision edges.
type UserRepository interface {
	// Create inserts a user and returns it with the generated ID.
	Create(ctx context.Context, u User) (User, error)

	// GetByUsername retrieves a user by username.
	GetByUsername(ctx context.Context, username string) (User, error)

	// GetLead returns the lead supervising the given member, if any.
	GetLead(ctx context.Context, memberUsername string) (User, error)

	// ListTeam returns the members assigned to a lead, ordered by display name.
	ListTeam(ctx context.Context, leadUsername string) ([]User, error)

	// IsAssigned reports whether a lead->member supervision edge exists.
	IsAssigned(ctx context.Context, leadUsername, memberUsername string) (bool, error)

	// CreateAssignment inserts a supervision edge.
	CreateAssignment(ctx context.Context, leadUsername, memberUsername string) (Assignment, error)

	// HasLead reports whether the member already has a supervising lead.
	HasLead(ctx context.Context, memberUsername string) (bool, error)
}
