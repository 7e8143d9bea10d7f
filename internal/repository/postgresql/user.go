package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (username, display_name, email, password_hash, user_level)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		u.Username,
		u.DisplayName,
		u.Email,
		u.PasswordHash,
		u.Role,
	).Scan(&u.ID, &u.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "users_email_key" {
				return user.User{}, user.ErrEmailExists
			}
			return user.User{}, user.ErrUsernameExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetByUsername implements user.UserRepository.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, display_name, email, password_hash, user_level, created_at
		FROM users
		WHERE username = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, username).Scan(
		&u.ID, &u.Username, &u.DisplayName, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return u, nil
}

// GetLead implements user.UserRepository.
func (r *userRepository) GetLead(ctx context.Context, memberUsername string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.username, u.display_name, u.email, u.password_hash, u.user_level, u.created_at
		FROM users u
		JOIN lead_assignments la ON la.lead_username = u.username
		WHERE la.member_username = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, memberUsername).Scan(
		&u.ID, &u.Username, &u.DisplayName, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrNoLeadAssigned
		}
		return user.User{}, fmt.Errorf("failed to get lead for member: %w", err)
	}

	return u, nil
}

// ListTeam implements user.UserRepository.
func (r *userRepository) ListTeam(ctx context.Context, leadUsername string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.username, u.display_name, u.email, u.password_hash, u.user_level, u.created_at
		FROM users u
		JOIN lead_assignments la ON la.member_username = u.username
		WHERE la.lead_username = $1
		ORDER BY u.display_name
	`

	rows, err := q.Query(ctx, query, leadUsername)
	if err != nil {
		return nil, fmt.Errorf("failed to list team: %w", err)
	}
	defer rows.Close()

	var team []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.DisplayName, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		team = append(team, u)
	}

	return team, rows.Err()
}

// IsAssigned implements user.UserRepository.
func (r *userRepository) IsAssigned(ctx context.Context, leadUsername, memberUsername string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM lead_assignments
			WHERE lead_username = $1 AND member_username = $2
		)
	`

	var assigned bool
	if err := q.QueryRow(ctx, query, leadUsername, memberUsername).Scan(&assigned); err != nil {
		return false, fmt.Errorf("failed to check assignment: %w", err)
	}

	return assigned, nil
}

// HasLead implements user.UserRepository.
func (r *userRepository) HasLead(ctx context.Context, memberUsername string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM lead_assignments
			WHERE member_username = $1
		)
	`

	var hasLead bool
	if err := q.QueryRow(ctx, query, memberUsername).Scan(&hasLead); err != nil {
		return false, fmt.Errorf("failed to check lead assignment: %w", err)
	}

	return hasLead, nil
}

// CreateAssignment implements user.UserRepository.
func (r *userRepository) CreateAssignment(ctx context.Context, leadUsername, memberUsername string) (user.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO lead_assignments (lead_username, member_username)
		VALUES ($1, $2)
		RETURNING id, assigned_at
	`

	assignment := user.Assignment{
		LeadUsername:   leadUsername,
		MemberUsername: memberUsername,
	}
	err := q.QueryRow(ctx, query, leadUsername, memberUsername).Scan(&assignment.ID, &assignment.AssignedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "lead_assignments_member_username_key" {
				return user.Assignment{}, user.ErrMemberHasLead
			}
			return user.Assignment{}, user.ErrAssignmentExists
		}
		return user.Assignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return assignment, nil
}
